package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/locomotion/internal/infrastructure/config"
)

const testDT = 1.0 / 60.0

func createTestWorld(mode string) *World {
	cfg := config.Default()
	cfg.Player.MoveMode = mode
	return LoadWorld(cfg)
}

func tickN(w *World, input InputState, n int) {
	for i := 0; i < n; i++ {
		w.Locomotion.Tick(input, testDT)
	}
}

// sliceSource replays a fixed list of inputs.
type sliceSource struct {
	inputs []InputState
	next   int
}

func (s *sliceSource) NextInput() (InputState, bool) {
	if s.next >= len(s.inputs) {
		return InputState{}, false
	}
	in := s.inputs[s.next]
	s.next++
	return in, true
}

func TestLocomotion_IdleIsStable(t *testing.T) {
	for _, mode := range []string{config.MoveModeDirect, config.MoveModeRootMotion} {
		t.Run(mode, func(t *testing.T) {
			w := createTestWorld(mode)
			start := w.Character.Position()

			for i := 0; i < 120; i++ {
				w.Locomotion.Tick(InputState{}, testDT)
				require.True(t, w.Character.Grounded(), "tick %d", i)
				require.Equal(t, mgl64.Vec3{}, w.Character.Motion().VerticalVelocity, "tick %d", i)
			}

			assertVec3(t, start, w.Character.Position())
			assert.Equal(t, 120, w.Locomotion.Ticks())
		})
	}
}

func TestLocomotion_HeldJumpReachesJumpHeight(t *testing.T) {
	w := createTestWorld(config.MoveModeRootMotion)

	w.Locomotion.Tick(InputState{Jump: true}, testDT)
	require.False(t, w.Character.Grounded())

	peak := 0.0
	for i := 0; i < 600 && !w.Character.Grounded(); i++ {
		w.Locomotion.Tick(InputState{Jump: true}, testDT)
		if h := w.Body.Height(); h > peak {
			peak = h
		}
	}

	assert.True(t, w.Character.Grounded(), "landed")
	assert.InDelta(t, config.Default().Player.JumpHeight, peak, 0.15)
}

func TestLocomotion_TappedJumpIsShorter(t *testing.T) {
	w := createTestWorld(config.MoveModeRootMotion)

	w.Locomotion.Tick(InputState{Jump: true}, testDT)
	peak := 0.0
	for i := 0; i < 600 && !w.Character.Grounded(); i++ {
		w.Locomotion.Tick(InputState{}, testDT)
		if h := w.Body.Height(); h > peak {
			peak = h
		}
	}

	assert.Greater(t, peak, 0.0)
	assert.Less(t, peak, 1.0)
}

func TestLocomotion_DirectMove(t *testing.T) {
	w := createTestWorld(config.MoveModeDirect)

	tickN(w, InputState{Move: mgl64.Vec2{0, 1}}, 120)

	pos := w.Character.Position()
	assert.Greater(t, pos.Z(), 1.0)
	assert.InDelta(t, 0.0, pos.X(), 1e-9)
	assert.True(t, w.Character.Grounded())
	assert.Greater(t, w.Character.Motion().HorizontalVelocity.Len(), 0.0)
}

func TestLocomotion_DirectDiagonalIsNotFaster(t *testing.T) {
	straight := createTestWorld(config.MoveModeDirect)
	diagonal := createTestWorld(config.MoveModeDirect)

	tickN(straight, InputState{Move: mgl64.Vec2{0, 1}}, 600)
	tickN(diagonal, InputState{Move: mgl64.Vec2{1, 1}}, 600)

	want := straight.Character.Motion().HorizontalVelocity.Len()
	got := diagonal.Character.Motion().HorizontalVelocity.Len()
	require.Greater(t, want, 0.0)
	assert.InDelta(t, want, got, 1e-9)

	// both axes contribute equally
	v := diagonal.Character.Motion().HorizontalVelocity
	assert.InDelta(t, v.X(), v.Z(), 1e-9)
}

func TestLocomotion_DirectPartialInputIsSlower(t *testing.T) {
	full := createTestWorld(config.MoveModeDirect)
	half := createTestWorld(config.MoveModeDirect)

	tickN(full, InputState{Move: mgl64.Vec2{0, 1}}, 600)
	tickN(half, InputState{Move: mgl64.Vec2{0, 0.5}}, 600)

	assert.InDelta(t,
		full.Character.Motion().HorizontalVelocity.Len()/2,
		half.Character.Motion().HorizontalVelocity.Len(), 1e-9)
}

func TestLocomotion_DirectMoveFollowsCamera(t *testing.T) {
	w := createTestWorld(config.MoveModeDirect)
	// 90 degrees at 0.2 degrees per pixel
	w.Locomotion.Tick(InputState{LookDX: 450}, testDT)

	tickN(w, InputState{Move: mgl64.Vec2{0, 1}}, 120)

	pos := w.Character.Position()
	assert.Greater(t, pos.X(), 1.0)
	assert.InDelta(t, 0.0, pos.Z(), 1e-9)
}

func TestLocomotion_RootMotion(t *testing.T) {
	t.Run("walk", func(t *testing.T) {
		w := createTestWorld(config.MoveModeRootMotion)

		tickN(w, InputState{Move: mgl64.Vec2{0, 1}}, 60)

		z := w.Character.Position().Z()
		assert.Greater(t, z, 3.0)
		assert.Less(t, z, 4.1)
		assert.Equal(t, mgl64.Vec3{}, w.Character.Motion().HorizontalVelocity)
	})

	t.Run("sprint doubles distance", func(t *testing.T) {
		walk := createTestWorld(config.MoveModeRootMotion)
		sprint := createTestWorld(config.MoveModeRootMotion)

		tickN(walk, InputState{Move: mgl64.Vec2{0, 1}}, 60)
		tickN(sprint, InputState{Move: mgl64.Vec2{0, 1}, Sprint: true}, 60)

		assert.InDelta(t, 2*walk.Character.Position().Z(), sprint.Character.Position().Z(), 1e-9)
	})

	t.Run("gamepad input is scaled", func(t *testing.T) {
		kb := createTestWorld(config.MoveModeRootMotion)
		pad := createTestWorld(config.MoveModeRootMotion)

		tickN(kb, InputState{Move: mgl64.Vec2{0, 1}}, 120)
		tickN(pad, InputState{Move: mgl64.Vec2{0, 0.1}, Device: DeviceGamepad}, 120)

		// 0.1 * 10 saturates the blend tree like a full key press
		assert.InDelta(t, kb.Character.Position().Z(), pad.Character.Position().Z(), 0.05)
	})
}

func TestLocomotion_RotatesTowardCamera(t *testing.T) {
	w := createTestWorld(config.MoveModeRootMotion)
	w.Locomotion.Tick(InputState{LookDX: 450}, testDT)

	tickN(w, InputState{}, 30)

	assertVec3(t, mgl64.Vec3{1, 0, 0}, w.Character.Forward())
}

func TestLocomotion_Run(t *testing.T) {
	w := createTestWorld(config.MoveModeRootMotion)
	src := &sliceSource{inputs: make([]InputState, 10)}

	assert.Equal(t, 4, w.Locomotion.Run(src, testDT, 4))
	assert.Equal(t, 6, w.Locomotion.Run(src, testDT, 0))
	assert.Equal(t, 10, w.Locomotion.Ticks())
}

func TestWorld_Respawn(t *testing.T) {
	w := createTestWorld(config.MoveModeRootMotion)
	tickN(w, InputState{Move: mgl64.Vec2{1, 1}, Jump: true}, 20)
	require.NotEqual(t, w.Terrain.Spawn, w.Character.Position())

	w.Respawn()

	assertVec3(t, w.Terrain.Spawn, w.Character.Position())
	assert.True(t, w.Character.Grounded())
}
