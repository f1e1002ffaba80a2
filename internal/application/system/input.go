package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// changeThreshold is the minimum axis change that makes a device active.
const changeThreshold = 0.0001

// stickLookRate converts a right-stick deflection into look pixels per tick.
const stickLookRate = 8.0

// DeviceKind identifies the device that last produced input.
type DeviceKind int

const (
	DeviceKeyboard DeviceKind = iota
	DeviceGamepad
)

// String returns the device name
func (d DeviceKind) String() string {
	switch d {
	case DeviceKeyboard:
		return "Keyboard"
	case DeviceGamepad:
		return "Gamepad"
	default:
		return "Unknown"
	}
}

// InputState is the per-tick input consumed by the locomotion system.
type InputState struct {
	Move   mgl64.Vec2 // x: strafe right, y: forward
	Jump   bool       // held
	Sprint bool       // held
	Pause  bool       // just pressed
	LookDX float64
	LookDY float64
	Device DeviceKind
}

// InputSource supplies one InputState per tick.
type InputSource interface {
	ReadInput() InputState
}

// RawKeyboard is the keyboard and mouse snapshot for one tick.
type RawKeyboard struct {
	Forward, Back, Left, Right bool
	Jump, Sprint               bool
	PausePressed               bool
	CursorX, CursorY           int
}

// RawGamepad is the standard-layout gamepad snapshot for one tick.
type RawGamepad struct {
	Connected      bool
	LeftX, LeftY   float64
	RightX, RightY float64
	Jump, Sprint   bool
	PausePressed   bool
}

// RawInput is everything read from the devices for one tick.
type RawInput struct {
	Keyboard RawKeyboard
	Gamepad  RawGamepad
}

// InputSystem reads devices through ebiten and tracks which one is active.
type InputSystem struct {
	active    DeviceKind
	prev      RawInput
	hasPrev   bool
	captureOn bool
}

// NewInputSystem creates an input system with the keyboard active.
func NewInputSystem() *InputSystem {
	return &InputSystem{active: DeviceKeyboard, captureOn: true}
}

// ActiveDevice returns the device that last produced a meaningful change.
func (s *InputSystem) ActiveDevice() DeviceKind {
	return s.active
}

// SetCapture toggles mouse-look. While off, cursor motion is ignored.
func (s *InputSystem) SetCapture(on bool) {
	s.captureOn = on
}

// ReadInput implements InputSource.
func (s *InputSystem) ReadInput() InputState {
	return s.Normalize(ReadRaw())
}

// ReadRaw polls ebiten for the current device state.
func ReadRaw() RawInput {
	cx, cy := ebiten.CursorPosition()
	raw := RawInput{
		Keyboard: RawKeyboard{
			Forward:      ebiten.IsKeyPressed(ebiten.KeyW),
			Back:         ebiten.IsKeyPressed(ebiten.KeyS),
			Left:         ebiten.IsKeyPressed(ebiten.KeyA),
			Right:        ebiten.IsKeyPressed(ebiten.KeyD),
			Jump:         ebiten.IsKeyPressed(ebiten.KeySpace),
			Sprint:       ebiten.IsKeyPressed(ebiten.KeyShiftLeft),
			PausePressed: inpututil.IsKeyJustPressed(ebiten.KeyEscape),
			CursorX:      cx,
			CursorY:      cy,
		},
	}

	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		raw.Gamepad = RawGamepad{
			Connected:    true,
			LeftX:        ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal),
			LeftY:        ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical),
			RightX:       ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal),
			RightY:       ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical),
			Jump:         ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom),
			Sprint:       ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftStick),
			PausePressed: inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight),
		}
		break
	}
	return raw
}

// Normalize converts a raw snapshot into an InputState for the active
// device. A device becomes active when it changes noticeably; the other
// device's input is ignored until it does the same.
func (s *InputSystem) Normalize(raw RawInput) InputState {
	var lookDX, lookDY float64
	if s.hasPrev && s.captureOn {
		lookDX = float64(raw.Keyboard.CursorX - s.prev.Keyboard.CursorX)
		lookDY = float64(raw.Keyboard.CursorY - s.prev.Keyboard.CursorY)
	}

	if s.hasPrev {
		switch {
		case s.active != DeviceGamepad && gamepadChanged(s.prev.Gamepad, raw.Gamepad):
			s.active = DeviceGamepad
		case s.active != DeviceKeyboard && keyboardChanged(s.prev.Keyboard, raw.Keyboard):
			s.active = DeviceKeyboard
		}
	}
	s.prev = raw
	s.hasPrev = true

	if s.active == DeviceGamepad && raw.Gamepad.Connected {
		pad := raw.Gamepad
		return InputState{
			// stick up is negative in the standard layout
			Move:   ClampUnit(mgl64.Vec2{pad.LeftX, -pad.LeftY}),
			Jump:   pad.Jump,
			Sprint: pad.Sprint,
			Pause:  pad.PausePressed || raw.Keyboard.PausePressed,
			LookDX: pad.RightX * stickLookRate,
			LookDY: pad.RightY * stickLookRate,
			Device: DeviceGamepad,
		}
	}

	kb := raw.Keyboard
	return InputState{
		Move:   ClampUnit(mgl64.Vec2{axis(kb.Left, kb.Right), axis(kb.Back, kb.Forward)}),
		Jump:   kb.Jump,
		Sprint: kb.Sprint,
		Pause:  kb.PausePressed || raw.Gamepad.PausePressed,
		LookDX: lookDX,
		LookDY: lookDY,
		Device: DeviceKeyboard,
	}
}

// ClampUnit scales v down to unit length when it is longer; shorter input
// keeps its magnitude so partial stick deflection still walks slower.
func ClampUnit(v mgl64.Vec2) mgl64.Vec2 {
	if l := v.Len(); l > 1 {
		return v.Mul(1 / l)
	}
	return v
}

func axis(neg, pos bool) float64 {
	v := 0.0
	if neg {
		v--
	}
	if pos {
		v++
	}
	return v
}

func keyboardChanged(a, b RawKeyboard) bool {
	return a != b
}

func gamepadChanged(a, b RawGamepad) bool {
	if !b.Connected {
		return false
	}
	return math.Abs(a.LeftX-b.LeftX) > changeThreshold ||
		math.Abs(a.LeftY-b.LeftY) > changeThreshold ||
		math.Abs(a.RightX-b.RightX) > changeThreshold ||
		math.Abs(a.RightY-b.RightY) > changeThreshold ||
		a.Jump != b.Jump || a.Sprint != b.Sprint || a.PausePressed != b.PausePressed
}
