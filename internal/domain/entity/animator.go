package entity

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Blend parameter names written by RootMove.
const (
	ParamXInput = "xInput"
	ParamYInput = "yInput"
)

// Animator is the animation layer consumed by the character. It receives
// damped blend parameters and produces a root-motion displacement.
type Animator interface {
	SetFloat(name string, value, dampTime, dt float64)
	DeltaPosition() mgl64.Vec3
}

// RootMotionAnimator is a stand-in blend tree: two damped float parameters
// drive a directional clip authored at ClipSpeed units per second.
type RootMotionAnimator struct {
	ClipSpeed float64

	params map[string]float64
	delta  mgl64.Vec3
}

// NewRootMotionAnimator creates an animator with all parameters at zero.
func NewRootMotionAnimator(clipSpeed float64) *RootMotionAnimator {
	return &RootMotionAnimator{
		ClipSpeed: clipSpeed,
		params:    make(map[string]float64),
	}
}

// SetFloat moves a parameter toward value with exponential damping.
// A non-positive dampTime sets it immediately.
func (a *RootMotionAnimator) SetFloat(name string, value, dampTime, dt float64) {
	if dampTime <= 0 {
		a.params[name] = value
		return
	}
	cur := a.params[name]
	a.params[name] = cur + (value-cur)*(1-math.Exp(-dt/dampTime))
}

// Float returns a parameter's current value.
func (a *RootMotionAnimator) Float(name string) float64 {
	return a.params[name]
}

// Advance samples the blend tree for dt. The blend input saturates at unit
// length, like a 2D blend tree whose outermost clips sit on the unit circle.
func (a *RootMotionAnimator) Advance(dt float64, right, forward mgl64.Vec3) {
	in := mgl64.Vec2{a.params[ParamXInput], a.params[ParamYInput]}
	if l := in.Len(); l > 1 {
		in = in.Mul(1 / l)
	}
	a.delta = right.Mul(in.X()).Add(forward.Mul(in.Y())).Mul(a.ClipSpeed * dt)
}

// DeltaPosition returns the root-motion displacement of the last Advance.
func (a *RootMotionAnimator) DeltaPosition() mgl64.Vec3 {
	return a.delta
}
