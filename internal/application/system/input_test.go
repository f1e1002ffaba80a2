package system

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInputSystem(t *testing.T) {
	sys := NewInputSystem()

	require.NotNil(t, sys)
	assert.Equal(t, DeviceKeyboard, sys.ActiveDevice())
}

func TestDeviceKind_String(t *testing.T) {
	assert.Equal(t, "Keyboard", DeviceKeyboard.String())
	assert.Equal(t, "Gamepad", DeviceGamepad.String())
	assert.Equal(t, "Unknown", DeviceKind(7).String())
}

func TestInputSystem_NormalizeKeyboard(t *testing.T) {
	tests := []struct {
		name     string
		kb       RawKeyboard
		wantMove mgl64.Vec2
	}{
		{"idle", RawKeyboard{}, mgl64.Vec2{0, 0}},
		{"forward", RawKeyboard{Forward: true}, mgl64.Vec2{0, 1}},
		{"back left is clamped to unit length", RawKeyboard{Back: true, Left: true}, mgl64.Vec2{-1, -1}.Mul(1 / math.Sqrt2)},
		{"opposing keys cancel", RawKeyboard{Left: true, Right: true}, mgl64.Vec2{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := NewInputSystem()
			state := sys.Normalize(RawInput{Keyboard: tt.kb})

			assert.True(t, tt.wantMove.ApproxEqualThreshold(state.Move, 1e-12), "got %v", state.Move)
			assert.LessOrEqual(t, state.Move.Len(), 1.0+1e-12)
			assert.Equal(t, DeviceKeyboard, state.Device)
		})
	}
}

func TestInputSystem_MouseLook(t *testing.T) {
	sys := NewInputSystem()

	first := sys.Normalize(RawInput{Keyboard: RawKeyboard{CursorX: 100, CursorY: 50}})
	assert.Zero(t, first.LookDX, "first frame has no previous cursor")

	second := sys.Normalize(RawInput{Keyboard: RawKeyboard{CursorX: 110, CursorY: 45}})
	assert.Equal(t, 10.0, second.LookDX)
	assert.Equal(t, -5.0, second.LookDY)

	sys.SetCapture(false)
	third := sys.Normalize(RawInput{Keyboard: RawKeyboard{CursorX: 200, CursorY: 45}})
	assert.Zero(t, third.LookDX)
}

func TestInputSystem_ActiveDeviceSwitching(t *testing.T) {
	sys := NewInputSystem()
	pad := RawGamepad{Connected: true}

	sys.Normalize(RawInput{Gamepad: pad})
	require.Equal(t, DeviceKeyboard, sys.ActiveDevice())

	t.Run("stick noise below threshold keeps keyboard", func(t *testing.T) {
		pad.LeftX = 0.00005
		sys.Normalize(RawInput{Gamepad: pad})
		assert.Equal(t, DeviceKeyboard, sys.ActiveDevice())
	})

	t.Run("stick deflection activates gamepad", func(t *testing.T) {
		pad.LeftX = 0.5
		pad.LeftY = -0.5
		state := sys.Normalize(RawInput{Gamepad: pad})

		assert.Equal(t, DeviceGamepad, sys.ActiveDevice())
		assert.Equal(t, DeviceGamepad, state.Device)
		assert.Equal(t, mgl64.Vec2{0.5, 0.5}, state.Move)
	})

	t.Run("keyboard ignored while gamepad active until it changes", func(t *testing.T) {
		state := sys.Normalize(RawInput{Gamepad: pad})
		assert.Equal(t, DeviceGamepad, state.Device)

		state = sys.Normalize(RawInput{Keyboard: RawKeyboard{Forward: true}, Gamepad: pad})
		assert.Equal(t, DeviceKeyboard, state.Device)
		assert.Equal(t, mgl64.Vec2{0, 1}, state.Move)
	})

	t.Run("disconnected gamepad never activates", func(t *testing.T) {
		s := NewInputSystem()
		s.Normalize(RawInput{})
		s.Normalize(RawInput{Gamepad: RawGamepad{LeftX: 1}})
		assert.Equal(t, DeviceKeyboard, s.ActiveDevice())
	})
}

func TestInputSystem_GamepadButtons(t *testing.T) {
	sys := NewInputSystem()
	sys.Normalize(RawInput{Gamepad: RawGamepad{Connected: true}})

	state := sys.Normalize(RawInput{Gamepad: RawGamepad{
		Connected: true,
		Jump:      true,
		Sprint:    true,
		RightX:    0.5,
	}})

	assert.True(t, state.Jump)
	assert.True(t, state.Sprint)
	assert.Equal(t, 0.5*stickLookRate, state.LookDX)
}

func TestInputSystem_PauseFromEitherDevice(t *testing.T) {
	sys := NewInputSystem()

	state := sys.Normalize(RawInput{Gamepad: RawGamepad{Connected: true, PausePressed: true}})
	assert.True(t, state.Pause)

	state = sys.Normalize(RawInput{Keyboard: RawKeyboard{PausePressed: true}})
	assert.True(t, state.Pause)
}

func TestClampUnit(t *testing.T) {
	tests := []struct {
		name string
		in   mgl64.Vec2
		want mgl64.Vec2
	}{
		{"zero", mgl64.Vec2{}, mgl64.Vec2{}},
		{"partial deflection kept", mgl64.Vec2{0.3, -0.4}, mgl64.Vec2{0.3, -0.4}},
		{"unit kept", mgl64.Vec2{0, 1}, mgl64.Vec2{0, 1}},
		{"diagonal", mgl64.Vec2{1, 1}, mgl64.Vec2{1, 1}.Mul(1 / math.Sqrt2)},
		{"long", mgl64.Vec2{3, 4}, mgl64.Vec2{0.6, 0.8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClampUnit(tt.in)
			assert.True(t, tt.want.ApproxEqualThreshold(got, 1e-12), "got %v", got)
		})
	}
}

func TestInputSystem_GamepadStickIsClamped(t *testing.T) {
	sys := NewInputSystem()
	sys.Normalize(RawInput{Gamepad: RawGamepad{Connected: true}})

	state := sys.Normalize(RawInput{Gamepad: RawGamepad{Connected: true, LeftX: 1, LeftY: -1}})

	require.Equal(t, DeviceGamepad, state.Device)
	assert.InDelta(t, 1.0, state.Move.Len(), 1e-12)
}
