package entity

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestTerrain() *Terrain {
	return NewTerrain(
		mgl64.Vec3{0, 1, 0},
		0,
		[]Platform{
			{Min: mgl64.Vec2{2, 2}, Max: mgl64.Vec2{4, 4}, Height: 1},
		},
		mgl64.Vec3{0, 0, 0},
	)
}

func assertVec3(t *testing.T, want, got mgl64.Vec3) {
	t.Helper()
	assert.True(t, want.ApproxEqualThreshold(got, 1e-6), "want %v, got %v", want, got)
}

func TestNewBody(t *testing.T) {
	terrain := createTestTerrain()

	tests := []struct {
		name         string
		pos          mgl64.Vec3
		wantGrounded bool
		wantPos      mgl64.Vec3
	}{
		{"on ground", mgl64.Vec3{0, 0, 0}, true, mgl64.Vec3{0, 0, 0}},
		{"in the air", mgl64.Vec3{0, 3, 0}, false, mgl64.Vec3{0, 3, 0}},
		{"below ground snaps up", mgl64.Vec3{1, -2, 1}, true, mgl64.Vec3{1, 0, 1}},
		{"on platform top", mgl64.Vec3{3, 1, 3}, true, mgl64.Vec3{3, 1, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBody(terrain, tt.pos)
			assert.Equal(t, tt.wantGrounded, b.IsGrounded())
			assertVec3(t, tt.wantPos, b.Position())
		})
	}
}

func TestBody_Move(t *testing.T) {
	terrain := createTestTerrain()

	t.Run("horizontal move keeps ground contact", func(t *testing.T) {
		b := NewBody(terrain, mgl64.Vec3{0, 0, 0})
		grounded := b.Move(mgl64.Vec3{0.5, 0, -0.25})

		assert.True(t, grounded)
		assertVec3(t, mgl64.Vec3{0.5, 0, -0.25}, b.Position())
	})

	t.Run("upward move leaves ground", func(t *testing.T) {
		b := NewBody(terrain, mgl64.Vec3{0, 0, 0})
		grounded := b.Move(mgl64.Vec3{0, 0.1, 0})

		assert.False(t, grounded)
		assert.InDelta(t, 0.1, b.Height(), 1e-9)
	})

	t.Run("falling through ground clamps", func(t *testing.T) {
		b := NewBody(terrain, mgl64.Vec3{0, 0.5, 0})
		require.False(t, b.IsGrounded())

		grounded := b.Move(mgl64.Vec3{0, -2, 0})

		assert.True(t, grounded)
		assertVec3(t, mgl64.Vec3{0, 0, 0}, b.Position())
	})

	t.Run("lands on platform from above", func(t *testing.T) {
		b := NewBody(terrain, mgl64.Vec3{3, 2, 3})
		grounded := b.Move(mgl64.Vec3{0, -1.5, 0})

		assert.True(t, grounded)
		assertVec3(t, mgl64.Vec3{3, 1, 3}, b.Position())
	})

	t.Run("walking off platform edge becomes airborne", func(t *testing.T) {
		b := NewBody(terrain, mgl64.Vec3{3, 1, 3})
		require.True(t, b.IsGrounded())

		grounded := b.Move(mgl64.Vec3{2, 0, 0})

		assert.False(t, grounded)
		assert.InDelta(t, 1.0, b.Height(), 1e-9)
	})

	t.Run("walking under platform stays on ground", func(t *testing.T) {
		b := NewBody(terrain, mgl64.Vec3{0, 0, 3})
		grounded := b.Move(mgl64.Vec3{3, 0, 0})

		assert.True(t, grounded)
		assert.InDelta(t, 0.0, b.Height(), 1e-9)
	})
}

func TestBody_Teleport(t *testing.T) {
	b := NewBody(createTestTerrain(), mgl64.Vec3{0, 5, 0})
	require.False(t, b.IsGrounded())

	b.Teleport(mgl64.Vec3{1, 0, 1})

	assert.True(t, b.IsGrounded())
	assertVec3(t, mgl64.Vec3{1, 0, 1}, b.Position())
}
