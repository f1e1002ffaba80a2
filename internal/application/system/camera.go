package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/locomotion/internal/domain/entity"
	"github.com/younwookim/locomotion/internal/infrastructure/config"
)

// CameraRig is an orbit camera whose world up follows the character's up.
// Yaw 0 looks along the terrain's forward plane axis; positive yaw turns right.
type CameraRig struct {
	up                 mgl64.Vec3
	tangent, bitangent mgl64.Vec3
	sensitivity        float64
	maxPitch           float64

	yaw, pitch float64 // degrees
}

// NewCameraRig creates a level camera looking forward.
func NewCameraRig(up mgl64.Vec3, cfg config.CameraConfig) *CameraRig {
	up = up.Normalize()
	tan, bitan := entity.PlaneBasis(up)
	return &CameraRig{
		up:          up,
		tangent:     tan,
		bitangent:   bitan,
		sensitivity: cfg.Sensitivity,
		maxPitch:    cfg.MaxPitch,
	}
}

// Look applies a mouse or stick delta.
func (c *CameraRig) Look(dx, dy float64) {
	c.yaw = math.Mod(c.yaw+dx*c.sensitivity, 360)
	c.pitch = mgl64.Clamp(c.pitch-dy*c.sensitivity, -c.maxPitch, c.maxPitch)
}

// Yaw returns the heading in degrees.
func (c *CameraRig) Yaw() float64 { return c.yaw }

// Pitch returns the elevation in degrees.
func (c *CameraRig) Pitch() float64 { return c.pitch }

// Forward returns the view direction flattened onto the ground plane.
func (c *CameraRig) Forward() mgl64.Vec3 {
	rad := mgl64.DegToRad(c.yaw)
	return c.bitangent.Mul(math.Cos(rad)).Add(c.tangent.Mul(math.Sin(rad)))
}

// Right returns the flattened right axis.
func (c *CameraRig) Right() mgl64.Vec3 {
	return c.up.Cross(c.Forward())
}

// Relative maps a 2D move input onto the ground plane: x along Right, y
// along Forward. Unit-length input gives a unit-length direction; callers
// clamp input with ClampUnit first.
func (c *CameraRig) Relative(input mgl64.Vec2) mgl64.Vec3 {
	dir := c.Right().Mul(input.X()).Add(c.Forward().Mul(input.Y()))
	return dir.Sub(c.up.Mul(dir.Dot(c.up)))
}
