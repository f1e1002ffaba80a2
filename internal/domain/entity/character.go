package entity

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/locomotion/internal/domain/motion"
)

// RootMoveDampTime smooths the blend parameters written by RootMove (seconds).
const RootMoveDampTime = 0.05

// CharacterSettings configures a Character.
type CharacterSettings struct {
	Gravity       motion.GravityProfile
	Acceleration  float64
	Decceleration float64
	Up            mgl64.Vec3
}

// Character drives a collider with the velocity integrator and optionally
// merges root motion from an animator.
//
// Per tick the owner calls, in order: Jump (while jump is held), Move or
// RootMove, RotateTowards, Update, and ApplyRootMotion. Every displacement is
// applied to the collider immediately.
type Character struct {
	collider Collider
	animator Animator
	motion   *motion.Integrator
	settings CharacterSettings

	up                 mgl64.Vec3
	orientation        mgl64.Quat
	movementMultiplier float64
	tookOff            bool
}

// NewCharacter creates a character facing forward in the plane
// perpendicular to settings.Up. animator may be nil.
func NewCharacter(collider Collider, animator Animator, settings CharacterSettings, forward mgl64.Vec3) *Character {
	up := settings.Up.Normalize()
	return &Character{
		collider:           collider,
		animator:           animator,
		motion:             motion.NewIntegrator(settings.Gravity),
		settings:           settings,
		up:                 up,
		orientation:        LookRotation(forward, up),
		movementMultiplier: 1,
	}
}

// Jump requests a jump of the given height. A grounded character takes off
// this tick; an airborne one only holds off the low-jump modifier.
func (c *Character) Jump(jumpHeight float64) {
	c.motion.SetGrounded(c.collider.IsGrounded())
	if c.motion.Jump(jumpHeight, c.up) {
		c.tookOff = true
	}
}

// Move blends horizontal velocity toward direction*speed and moves the collider.
func (c *Character) Move(direction mgl64.Vec3, speed, dt float64) {
	disp := c.motion.IntegrateHorizontal(motion.MovementIntent{
		Direction:     direction,
		Speed:         speed,
		Acceleration:  c.settings.Acceleration,
		Decceleration: c.settings.Decceleration,
	}, dt)
	c.collider.Move(disp)
}

// RootMove feeds the blend parameters and sets the root-motion multiplier.
func (c *Character) RootMove(input mgl64.Vec2, speedRatio, dt float64) {
	if c.animator != nil {
		c.animator.SetFloat(ParamXInput, input.X(), RootMoveDampTime, dt)
		c.animator.SetFloat(ParamYInput, input.Y(), RootMoveDampTime, dt)
	}
	c.movementMultiplier = speedRatio
}

// RotateTowards turns toward lookDirection at degreesPerSecond.
// A zero look direction leaves the orientation unchanged.
func (c *Character) RotateTowards(lookDirection mgl64.Vec3, degreesPerSecond, dt float64) {
	if lookDirection.Len() == 0 {
		return
	}
	target := LookRotation(lookDirection, c.up)
	c.orientation = RotateTowards(c.orientation, target, degreesPerSecond*dt)
}

// Update runs the gravity phase. The tick counts as airborne if the collider
// is off the ground or a jump impulse was applied this tick.
func (c *Character) Update(dt float64) {
	grounded := c.collider.IsGrounded() && !c.tookOff
	c.tookOff = false

	disp := c.motion.IntegrateGravity(dt, c.up, grounded)
	if grounded {
		return
	}
	c.collider.Move(disp)
}

// ApplyRootMotion moves the collider by the animator's root motion scaled
// by the movement multiplier.
func (c *Character) ApplyRootMotion() {
	if c.animator == nil {
		return
	}
	c.collider.Move(c.animator.DeltaPosition().Mul(c.movementMultiplier))
}

// Respawn teleports a Body collider and zeroes all motion.
func (c *Character) Respawn(pos mgl64.Vec3) {
	if b, ok := c.collider.(*Body); ok {
		b.Teleport(pos)
	}
	c.motion.Reset()
	c.tookOff = false
}

// Motion returns a copy of the motion state.
func (c *Character) Motion() motion.MotionState {
	return c.motion.State()
}

// Orientation returns the current rotation.
func (c *Character) Orientation() mgl64.Quat {
	return c.orientation
}

// Forward returns the facing direction.
func (c *Character) Forward() mgl64.Vec3 {
	return c.orientation.Rotate(localForward)
}

// Right returns the character's right axis.
func (c *Character) Right() mgl64.Vec3 {
	return c.orientation.Rotate(localRight)
}

// Up returns the normalized up axis.
func (c *Character) Up() mgl64.Vec3 {
	return c.up
}

// MovementMultiplier returns the root-motion multiplier set by RootMove.
func (c *Character) MovementMultiplier() float64 {
	return c.movementMultiplier
}

// Grounded reports the collider's grounded state.
func (c *Character) Grounded() bool {
	return c.collider.IsGrounded()
}

// Position returns the collider position.
func (c *Character) Position() mgl64.Vec3 {
	return c.collider.Position()
}
