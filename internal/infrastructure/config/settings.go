package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/locomotion/internal/domain/motion"
)

// ErrInvalidSettings is returned when a loaded value is outside its range.
var ErrInvalidSettings = errors.New("invalid settings")

// Default returns a complete, valid configuration.
func Default() *GameConfig {
	return &GameConfig{
		Player: PlayerSettings{
			MovementSpeed:     5,
			SprintModifier:    2,
			Acceleration:      1.5,
			Decceleration:     1,
			RotationSpeed:     360,
			JumpHeight:        2,
			Gravity:           20,
			FallMultiplier:    2,
			LowFallMultiplier: 3,
			GravityDirection:  mgl64.Vec3{0, -1, 0},
			MoveMode:          MoveModeRootMotion,
			GamepadScale:      10,
			ClipSpeed:         4,
		},
		Camera: CameraConfig{
			Sensitivity: 0.2,
			MaxPitch:    80,
		},
		Terrain: TerrainConfig{
			Spawn: mgl64.Vec3{0, 0, 0},
			Platforms: []PlatformConfig{
				{Min: [2]float64{3, 3}, Max: [2]float64{6, 6}, Height: 1},
				{Min: [2]float64{-7, 2}, Max: [2]float64{-4, 5}, Height: 1.8},
			},
		},
		Display: DisplayConfig{
			ScreenWidth:   320,
			ScreenHeight:  240,
			Scale:         2,
			Framerate:     60,
			PixelsPerUnit: 12,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// ApplyDefaults fills zero-valued fields that have a sensible default.
func (c *GameConfig) ApplyDefaults() {
	d := Default()

	p := &c.Player
	if p.GravityDirection == (mgl64.Vec3{}) {
		p.GravityDirection = d.Player.GravityDirection
	}
	if p.MoveMode == "" {
		p.MoveMode = d.Player.MoveMode
	}
	if p.GamepadScale == 0 {
		p.GamepadScale = d.Player.GamepadScale
	}
	if p.ClipSpeed == 0 {
		p.ClipSpeed = d.Player.ClipSpeed
	}
	if p.SprintModifier == 0 {
		p.SprintModifier = d.Player.SprintModifier
	}

	if c.Camera.Sensitivity == 0 {
		c.Camera.Sensitivity = d.Camera.Sensitivity
	}
	if c.Camera.MaxPitch == 0 {
		c.Camera.MaxPitch = d.Camera.MaxPitch
	}

	disp := &c.Display
	if disp.ScreenWidth == 0 {
		disp.ScreenWidth = d.Display.ScreenWidth
	}
	if disp.ScreenHeight == 0 {
		disp.ScreenHeight = d.Display.ScreenHeight
	}
	if disp.Scale == 0 {
		disp.Scale = d.Display.Scale
	}
	if disp.Framerate == 0 {
		disp.Framerate = d.Display.Framerate
	}
	if disp.PixelsPerUnit == 0 {
		disp.PixelsPerUnit = d.Display.PixelsPerUnit
	}

	if c.Logging.Level == "" {
		c.Logging.Level = d.Logging.Level
	}
	if c.Logging.Format == "" {
		c.Logging.Format = d.Logging.Format
	}
}

// Validate checks every range-limited field.
func (c *GameConfig) Validate() error {
	if err := c.Player.Validate(); err != nil {
		return err
	}
	if c.Camera.MaxPitch <= 0 || c.Camera.MaxPitch >= 90 {
		return fmt.Errorf("%w: camera.maxPitch %v not in (0, 90)", ErrInvalidSettings, c.Camera.MaxPitch)
	}
	if c.Display.Framerate <= 0 {
		return fmt.Errorf("%w: display.framerate must be positive", ErrInvalidSettings)
	}
	for i, p := range c.Terrain.Platforms {
		if p.Min[0] > p.Max[0] || p.Min[1] > p.Max[1] {
			return fmt.Errorf("%w: terrain.platforms[%d] min exceeds max", ErrInvalidSettings, i)
		}
	}
	return nil
}

type rangeCheck struct {
	name     string
	value    float64
	min, max float64
}

// Validate checks the player settings against their inspector ranges.
func (p PlayerSettings) Validate() error {
	checks := []rangeCheck{
		{"movementSpeed", p.MovementSpeed, 0, 500},
		{"sprintModifier", p.SprintModifier, 1, 10},
		{"acceleration", p.Acceleration, 0.1, 2},
		{"decceleration", p.Decceleration, 0.1, 2},
		{"rotationSpeed", p.RotationSpeed, 0, 1000},
		{"jumpHeight", p.JumpHeight, 0, 100},
		{"fallMultiplier", p.FallMultiplier, 1, 5},
		{"lowFallMultiplier", p.LowFallMultiplier, 1, 5},
	}
	for _, rc := range checks {
		if math.IsNaN(rc.value) || rc.value < rc.min || rc.value > rc.max {
			return fmt.Errorf("%w: player.%s %v not in [%v, %v]", ErrInvalidSettings, rc.name, rc.value, rc.min, rc.max)
		}
	}

	if math.IsNaN(p.Gravity) || math.IsInf(p.Gravity, 0) {
		return fmt.Errorf("%w: player.gravity must be finite", ErrInvalidSettings)
	}
	if p.GravityDirection.Len() == 0 {
		return fmt.Errorf("%w: player.gravityDirection must be non-zero", ErrInvalidSettings)
	}
	if p.MoveMode != MoveModeDirect && p.MoveMode != MoveModeRootMotion {
		return fmt.Errorf("%w: player.moveMode %q", ErrInvalidSettings, p.MoveMode)
	}
	if p.ClipSpeed < 0 {
		return fmt.Errorf("%w: player.clipSpeed must not be negative", ErrInvalidSettings)
	}
	return nil
}

// GravityProfile returns the integrator's gravity parameters.
func (p PlayerSettings) GravityProfile() motion.GravityProfile {
	return motion.GravityProfile{
		Gravity:           p.Gravity,
		FallMultiplier:    p.FallMultiplier,
		LowJumpMultiplier: p.LowFallMultiplier,
	}
}

// Up returns the unit vector opposite to the gravity direction.
func (p PlayerSettings) Up() mgl64.Vec3 {
	return p.GravityDirection.Normalize().Mul(-1)
}
