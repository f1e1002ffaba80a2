package entity

import "github.com/go-gl/mathgl/mgl64"

// groundSkin is the tolerance within which a body resting on a surface keeps
// counting as grounded.
const groundSkin = 1e-3

// Collider is the collidable body the character moves.
// Move applies a displacement and returns the resulting grounded state.
type Collider interface {
	Move(displacement mgl64.Vec3) bool
	IsGrounded() bool
	Position() mgl64.Vec3
}

// Body is a kinematic collider resting on a Terrain.
type Body struct {
	terrain  *Terrain
	pos      mgl64.Vec3
	grounded bool
}

// NewBody places a body at pos and settles it if it starts on a surface.
func NewBody(terrain *Terrain, pos mgl64.Vec3) *Body {
	b := &Body{terrain: terrain}
	b.Teleport(pos)
	return b
}

// Position returns the world position.
func (b *Body) Position() mgl64.Vec3 {
	return b.pos
}

// IsGrounded reports the grounded state after the last move.
func (b *Body) IsGrounded() bool {
	return b.grounded
}

// Height returns the position along the terrain's up axis.
func (b *Body) Height() float64 {
	_, h := b.terrain.Decompose(b.pos)
	return h
}

// Teleport moves the body without sweeping and re-evaluates ground contact.
func (b *Body) Teleport(pos mgl64.Vec3) {
	b.pos = pos
	b.grounded = false
	b.settle(pos, mgl64.Vec3{})
}

// Move applies a displacement. The body lands when it reaches or crosses the
// highest surface beneath it that it started above; moving off a platform
// edge leaves it airborne.
func (b *Body) Move(displacement mgl64.Vec3) bool {
	b.settle(b.pos, displacement)
	return b.grounded
}

func (b *Body) settle(from, displacement mgl64.Vec3) {
	_, fromHeight := b.terrain.Decompose(from)
	plane, h := b.terrain.Decompose(from.Add(displacement))

	surface := b.terrain.SurfaceBelow(plane, fromHeight)
	descending := displacement.Dot(b.terrain.Up) <= 0

	if h <= surface || (descending && h <= surface+groundSkin) {
		b.pos = b.terrain.Compose(plane, surface)
		b.grounded = true
		return
	}

	b.pos = b.terrain.Compose(plane, h)
	b.grounded = false
}
