package replay

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/locomotion/internal/application/system"
)

// FormatVersion is written into every recording.
const FormatVersion = "2.0"

// FrameInput records input state for a single tick
type FrameInput struct {
	F  int     `json:"f"`            // Frame number
	MX float64 `json:"mx,omitempty"` // Move strafe
	MY float64 `json:"my,omitempty"` // Move forward
	J  bool    `json:"j,omitempty"`  // Jump held
	S  bool    `json:"s,omitempty"`  // Sprint held
	LX float64 `json:"lx,omitempty"` // Look delta X
	LY float64 `json:"ly,omitempty"` // Look delta Y
	G  bool    `json:"g,omitempty"`  // Gamepad was the active device
}

// ReplayData contains all data needed to replay a session
type ReplayData struct {
	Version   string       `json:"version"`
	MoveMode  string       `json:"moveMode"`
	TPS       int          `json:"tps"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// toFrame converts an InputState into its recorded form.
func toFrame(frame int, in system.InputState) FrameInput {
	return FrameInput{
		F:  frame,
		MX: in.Move.X(),
		MY: in.Move.Y(),
		J:  in.Jump,
		S:  in.Sprint,
		LX: in.LookDX,
		LY: in.LookDY,
		G:  in.Device == system.DeviceGamepad,
	}
}

// InputState converts a recorded frame back into tick input.
func (fi FrameInput) InputState() system.InputState {
	device := system.DeviceKeyboard
	if fi.G {
		device = system.DeviceGamepad
	}
	return system.InputState{
		Move:   mgl64.Vec2{fi.MX, fi.MY},
		Jump:   fi.J,
		Sprint: fi.S,
		LookDX: fi.LX,
		LookDY: fi.LY,
		Device: device,
	}
}
