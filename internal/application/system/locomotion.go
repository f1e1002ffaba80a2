package system

import (
	"github.com/younwookim/locomotion/internal/domain/entity"
	"github.com/younwookim/locomotion/internal/infrastructure/config"
)

// LocomotionSystem drives one character from per-tick input.
//
// Tick order: jump, horizontal input, rotation, gravity, root motion.
// Every phase moves the collider immediately so the next phase sees the
// updated grounded state.
type LocomotionSystem struct {
	settings  config.PlayerSettings
	character *entity.Character
	animator  *entity.RootMotionAnimator
	camera    *CameraRig
	ticks     int
}

// NewLocomotionSystem creates a locomotion system. animator may be nil, in
// which case root-motion mode only feeds the blend parameters.
func NewLocomotionSystem(settings config.PlayerSettings, character *entity.Character, animator *entity.RootMotionAnimator, camera *CameraRig) *LocomotionSystem {
	return &LocomotionSystem{
		settings:  settings,
		character: character,
		animator:  animator,
		camera:    camera,
	}
}

// Ticks returns the number of completed ticks.
func (s *LocomotionSystem) Ticks() int {
	return s.ticks
}

// Tick advances the character by dt seconds.
func (s *LocomotionSystem) Tick(input InputState, dt float64) {
	s.camera.Look(input.LookDX, input.LookDY)

	// Holding jump re-requests it every tick, which keeps the low-jump
	// modifier off and gives variable jump height.
	if input.Jump {
		s.character.Jump(s.settings.JumpHeight)
	}

	modifier := 1.0
	if input.Sprint {
		modifier = s.settings.SprintModifier
	}

	switch s.settings.MoveMode {
	case config.MoveModeDirect:
		dir := s.camera.Relative(ClampUnit(input.Move))
		s.character.Move(dir, s.settings.MovementSpeed*modifier, dt)
	default:
		move := input.Move
		if input.Device == DeviceGamepad {
			move = move.Mul(s.settings.GamepadScale)
		}
		s.character.RootMove(move, modifier, dt)
	}

	s.character.RotateTowards(s.camera.Forward(), s.settings.RotationSpeed, dt)

	s.character.Update(dt)

	if s.settings.MoveMode == config.MoveModeRootMotion && s.animator != nil {
		s.animator.Advance(dt, s.character.Right(), s.character.Forward())
		s.character.ApplyRootMotion()
	}

	s.ticks++
}

// Run ticks until the source is exhausted or maxTicks is reached
// (maxTicks <= 0 means no limit). Returns the number of ticks run.
func (s *LocomotionSystem) Run(src FiniteSource, dt float64, maxTicks int) int {
	n := 0
	for maxTicks <= 0 || n < maxTicks {
		input, ok := src.NextInput()
		if !ok {
			break
		}
		s.Tick(input, dt)
		n++
	}
	return n
}

// FiniteSource is an input source that can run out, such as a replay.
type FiniteSource interface {
	NextInput() (InputState, bool)
}
