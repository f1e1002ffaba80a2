package replay

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/locomotion/internal/application/system"
	"github.com/younwookim/locomotion/internal/infrastructure/config"
)

// Result is the character state after a headless replay.
type Result struct {
	Frames             int
	Position           mgl64.Vec3
	VerticalVelocity   mgl64.Vec3
	HorizontalVelocity mgl64.Vec3
	Grounded           bool
}

// Simulate replays data against a fresh world built from cfg without opening
// a window. The recording's move mode and tick rate override cfg when set.
// The same config and recording always produce the same Result.
func Simulate(cfg *config.GameConfig, data ReplayData) (Result, error) {
	if len(data.Frames) == 0 {
		return Result{}, fmt.Errorf("simulate replay: %w", ErrNoFrames)
	}

	run := *cfg
	if data.MoveMode != "" {
		run.Player.MoveMode = data.MoveMode
	}
	if data.TPS > 0 {
		run.Display.Framerate = data.TPS
	}
	if err := run.Validate(); err != nil {
		return Result{}, fmt.Errorf("simulate replay: %w", err)
	}

	world := system.LoadWorld(&run)
	dt := 1.0 / float64(run.Display.Framerate)
	n := world.Locomotion.Run(NewReplayer(data), dt, 0)

	m := world.Character.Motion()
	return Result{
		Frames:             n,
		Position:           world.Character.Position(),
		VerticalVelocity:   m.VerticalVelocity,
		HorizontalVelocity: m.HorizontalVelocity,
		Grounded:           world.Character.Grounded(),
	}, nil
}
