package entity

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Platform is a raised walkable slab. Min/Max bound its footprint in terrain
// plane coordinates; Height is the top surface measured along up.
type Platform struct {
	Min, Max mgl64.Vec2
	Height   float64
}

// Contains reports whether a plane point lies within the footprint.
func (p Platform) Contains(pt mgl64.Vec2) bool {
	return pt.X() >= p.Min.X() && pt.X() <= p.Max.X() &&
		pt.Y() >= p.Min.Y() && pt.Y() <= p.Max.Y()
}

// Terrain is a ground plane with optional platforms, oriented by Up.
// Platform sides are not solid; only top surfaces support a body.
type Terrain struct {
	Up           mgl64.Vec3
	GroundHeight float64
	Platforms    []Platform
	Spawn        mgl64.Vec3

	tangent, bitangent mgl64.Vec3
}

// NewTerrain creates a terrain whose surfaces are perpendicular to up.
func NewTerrain(up mgl64.Vec3, groundHeight float64, platforms []Platform, spawn mgl64.Vec3) *Terrain {
	t := &Terrain{
		Up:           up.Normalize(),
		GroundHeight: groundHeight,
		Platforms:    platforms,
		Spawn:        spawn,
	}
	t.tangent, t.bitangent = PlaneBasis(t.Up)
	return t
}

// PlaneBasis returns two unit vectors spanning the plane perpendicular to up.
// For up = +Y this is (+X, +Z).
func PlaneBasis(up mgl64.Vec3) (tangent, bitangent mgl64.Vec3) {
	ref := mgl64.Vec3{0, 0, 1}
	if math.Abs(up.Dot(ref)) > 0.99 {
		ref = mgl64.Vec3{1, 0, 0}
	}
	tangent = up.Cross(ref).Normalize()
	bitangent = tangent.Cross(up).Normalize()
	return tangent, bitangent
}

// Basis returns the terrain plane axes.
func (t *Terrain) Basis() (tangent, bitangent mgl64.Vec3) {
	return t.tangent, t.bitangent
}

// Decompose splits a world position into plane coordinates and height.
func (t *Terrain) Decompose(pos mgl64.Vec3) (mgl64.Vec2, float64) {
	return mgl64.Vec2{pos.Dot(t.tangent), pos.Dot(t.bitangent)}, pos.Dot(t.Up)
}

// Compose is the inverse of Decompose.
func (t *Terrain) Compose(plane mgl64.Vec2, height float64) mgl64.Vec3 {
	return t.tangent.Mul(plane.X()).Add(t.bitangent.Mul(plane.Y())).Add(t.Up.Mul(height))
}

// SurfaceBelow returns the highest surface under pt whose top is not above
// fromHeight (within skin).
func (t *Terrain) SurfaceBelow(pt mgl64.Vec2, fromHeight float64) float64 {
	surface := t.GroundHeight
	for _, p := range t.Platforms {
		if p.Height > surface && p.Height <= fromHeight+groundSkin && p.Contains(pt) {
			surface = p.Height
		}
	}
	return surface
}
