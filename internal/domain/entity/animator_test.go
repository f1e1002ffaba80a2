package entity

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestRootMotionAnimator_SetFloat(t *testing.T) {
	t.Run("no damping sets immediately", func(t *testing.T) {
		a := NewRootMotionAnimator(1)
		a.SetFloat(ParamXInput, 0.7, 0, 1.0/60.0)

		assert.Equal(t, 0.7, a.Float(ParamXInput))
	})

	t.Run("damped value approaches target", func(t *testing.T) {
		a := NewRootMotionAnimator(1)
		dt := 1.0 / 60.0

		a.SetFloat(ParamYInput, 1, RootMoveDampTime, dt)
		first := a.Float(ParamYInput)
		assert.InDelta(t, 1-math.Exp(-dt/RootMoveDampTime), first, 1e-12)

		for i := 0; i < 120; i++ {
			a.SetFloat(ParamYInput, 1, RootMoveDampTime, dt)
		}
		assert.InDelta(t, 1.0, a.Float(ParamYInput), 1e-6)
	})
}

func TestRootMotionAnimator_Advance(t *testing.T) {
	right := mgl64.Vec3{1, 0, 0}
	forward := mgl64.Vec3{0, 0, 1}

	t.Run("forward input", func(t *testing.T) {
		a := NewRootMotionAnimator(4)
		a.SetFloat(ParamYInput, 1, 0, 0)

		a.Advance(0.5, right, forward)

		assertVec3(t, mgl64.Vec3{0, 0, 2}, a.DeltaPosition())
	})

	t.Run("blend input saturates at unit length", func(t *testing.T) {
		a := NewRootMotionAnimator(2)
		a.SetFloat(ParamXInput, 10, 0, 0)

		a.Advance(1, right, forward)

		assertVec3(t, mgl64.Vec3{2, 0, 0}, a.DeltaPosition())
	})

	t.Run("idle produces no motion", func(t *testing.T) {
		a := NewRootMotionAnimator(2)
		a.Advance(1, right, forward)

		assert.Equal(t, mgl64.Vec3{}, a.DeltaPosition())
	})
}
