package config

import "github.com/go-gl/mathgl/mgl64"

// Move modes select how horizontal input reaches the character.
const (
	MoveModeDirect     = "direct"     // camera-relative velocity integration
	MoveModeRootMotion = "rootMotion" // animator-driven root motion
)

// GameConfig is the root config for game.json / game.yaml
type GameConfig struct {
	Player  PlayerSettings `json:"player" yaml:"player"`
	Camera  CameraConfig   `json:"camera" yaml:"camera"`
	Terrain TerrainConfig  `json:"terrain" yaml:"terrain"`
	Display DisplayConfig  `json:"display" yaml:"display"`
	Logging LoggingConfig  `json:"logging" yaml:"logging"`
}

// PlayerSettings holds the character's tunable movement parameters.
type PlayerSettings struct {
	// Horizontal movement
	MovementSpeed  float64 `json:"movementSpeed" yaml:"movementSpeed"`   // [0, 500]
	SprintModifier float64 `json:"sprintModifier" yaml:"sprintModifier"` // [1, 10]
	Acceleration   float64 `json:"acceleration" yaml:"acceleration"`     // [0.1, 2]
	Decceleration  float64 `json:"decceleration" yaml:"decceleration"`   // [0.1, 2]
	RotationSpeed  float64 `json:"rotationSpeed" yaml:"rotationSpeed"`   // degrees/sec, [0, 1000]

	// Vertical movement
	JumpHeight        float64    `json:"jumpHeight" yaml:"jumpHeight"` // [0, 100]
	Gravity           float64    `json:"gravity" yaml:"gravity"`
	FallMultiplier    float64    `json:"fallMultiplier" yaml:"fallMultiplier"`       // [1, 5]
	LowFallMultiplier float64    `json:"lowFallMultiplier" yaml:"lowFallMultiplier"` // [1, 5]
	GravityDirection  mgl64.Vec3 `json:"gravityDirection" yaml:"gravityDirection"`

	// Input / animation
	MoveMode     string  `json:"moveMode" yaml:"moveMode"`
	GamepadScale float64 `json:"gamepadScale" yaml:"gamepadScale"` // gamepad stick multiplier
	ClipSpeed    float64 `json:"clipSpeed" yaml:"clipSpeed"`       // root-motion clip speed (units/sec)
}

// CameraConfig configures the orbit camera
type CameraConfig struct {
	Sensitivity float64 `json:"sensitivity" yaml:"sensitivity"` // degrees per mouse pixel
	MaxPitch    float64 `json:"maxPitch" yaml:"maxPitch"`       // degrees
}

// PlatformConfig is a raised walkable slab.
// Min/Max are plane coordinates (X, Z for a Y-up world).
type PlatformConfig struct {
	Min    [2]float64 `json:"min" yaml:"min"`
	Max    [2]float64 `json:"max" yaml:"max"`
	Height float64    `json:"height" yaml:"height"`
}

// TerrainConfig describes the demo collision world
type TerrainConfig struct {
	GroundHeight float64          `json:"groundHeight" yaml:"groundHeight"`
	Spawn        mgl64.Vec3       `json:"spawn" yaml:"spawn"`
	Platforms    []PlatformConfig `json:"platforms" yaml:"platforms"`
}

type DisplayConfig struct {
	ScreenWidth   int     `json:"screenWidth" yaml:"screenWidth"`
	ScreenHeight  int     `json:"screenHeight" yaml:"screenHeight"`
	Scale         int     `json:"scale" yaml:"scale"`
	Framerate     int     `json:"framerate" yaml:"framerate"`
	PixelsPerUnit float64 `json:"pixelsPerUnit" yaml:"pixelsPerUnit"`
}

type LoggingConfig struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"`
}
