// Package motion integrates vertical and horizontal character velocity.
//
// The integrator owns a single MotionState and is advanced once per tick by
// its owner. It performs no collision detection: displacements it returns are
// applied to an external collidable body in the same tick, and the resulting
// grounded flag is fed back on the next call.
package motion

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// approxLimit is the minimum velocity component along up (or -up) for the
// body to count as rising (or falling).
const approxLimit = 0.9

// GravityProfile holds the tunable gravity parameters.
// FallMultiplier and LowJumpMultiplier are expected to be >= 1.
type GravityProfile struct {
	Gravity           float64
	FallMultiplier    float64
	LowJumpMultiplier float64
}

// MotionState is the integrator's mutable state.
type MotionState struct {
	VerticalVelocity   mgl64.Vec3
	HorizontalVelocity mgl64.Vec3
	JumpedThisFrame    bool
	Grounded           bool
}

// MovementIntent is the per-tick horizontal movement request.
type MovementIntent struct {
	Direction     mgl64.Vec3 // may be zero
	Speed         float64
	Acceleration  float64
	Decceleration float64
}

// Integrator advances a MotionState under a GravityProfile.
type Integrator struct {
	profile GravityProfile
	state   MotionState
}

// NewIntegrator creates an integrator at rest.
func NewIntegrator(profile GravityProfile) *Integrator {
	return &Integrator{profile: profile}
}

// Profile returns the gravity profile.
func (i *Integrator) Profile() GravityProfile {
	return i.profile
}

// State returns a copy of the current motion state.
func (i *Integrator) State() MotionState {
	return i.state
}

// SetGrounded records the body's grounded flag as last reported by the collider.
func (i *Integrator) SetGrounded(grounded bool) {
	i.state.Grounded = grounded
}

// Reset zeroes all velocities and flags.
func (i *Integrator) Reset() {
	i.state = MotionState{}
}

// Jump requests a jump of the given height along up.
// The request is always recorded for this tick, which suppresses the low-jump
// modifier, but velocity only changes when grounded. Returns true if an
// impulse was applied.
// jumpHeight must be >= 0; a negative height yields NaN velocity.
func (i *Integrator) Jump(jumpHeight float64, up mgl64.Vec3) bool {
	i.state.JumpedThisFrame = true
	if !i.state.Grounded {
		return false
	}
	i.state.VerticalVelocity = up.Normalize().Mul(JumpVelocity(jumpHeight, i.profile.Gravity))
	return true
}

// IntegrateGravity advances vertical velocity by dt and returns the vertical
// displacement for this tick. Grounded ticks reset velocity and return zero.
func (i *Integrator) IntegrateGravity(dt float64, up mgl64.Vec3, grounded bool) mgl64.Vec3 {
	i.state.Grounded = grounded
	defer func() { i.state.JumpedThisFrame = false }()

	if grounded {
		i.state.VerticalVelocity = mgl64.Vec3{}
		return mgl64.Vec3{}
	}

	up = up.Normalize()
	g := i.profile.Gravity
	v := i.state.VerticalVelocity.Sub(up.Mul(g * dt))

	falling := v.Dot(up.Mul(-1)) >= approxLimit
	rising := v.Dot(up) >= approxLimit

	if falling {
		v = v.Sub(up.Mul(g * (i.profile.FallMultiplier - 1) * dt))
	} else if rising && !i.state.JumpedThisFrame {
		// Early release or passive ascent: cut the arc short.
		v = v.Sub(up.Mul(g * (i.profile.LowJumpMultiplier - 1) * dt))
	}

	i.state.VerticalVelocity = v
	return v.Mul(dt)
}

// IntegrateHorizontal blends horizontal velocity toward the intent and
// returns the horizontal displacement for this tick.
// Decay is applied unconditionally before the acceleration blend.
func (i *Integrator) IntegrateHorizontal(intent MovementIntent, dt float64) mgl64.Vec3 {
	v := Lerp(i.state.HorizontalVelocity, mgl64.Vec3{}, intent.Decceleration*dt)
	if intent.Direction.Len() > 0 {
		v = Lerp(v, intent.Direction.Mul(intent.Speed), intent.Acceleration*dt)
	}
	i.state.HorizontalVelocity = v
	return v.Mul(dt)
}

// JumpVelocity returns the launch speed that reaches jumpHeight under gravity.
func JumpVelocity(jumpHeight, gravity float64) float64 {
	return math.Sqrt(2 * math.Abs(gravity) * jumpHeight)
}

// Lerp interpolates between a and b with t clamped to [0, 1].
func Lerp(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	t = mgl64.Clamp(t, 0, 1)
	return a.Add(b.Sub(a).Mul(t))
}
