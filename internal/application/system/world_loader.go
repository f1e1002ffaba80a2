package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/locomotion/internal/domain/entity"
	"github.com/younwookim/locomotion/internal/infrastructure/config"
)

// World bundles everything one character needs to be simulated.
type World struct {
	Terrain    *entity.Terrain
	Body       *entity.Body
	Animator   *entity.RootMotionAnimator
	Character  *entity.Character
	Camera     *CameraRig
	Locomotion *LocomotionSystem
}

// LoadWorld converts a GameConfig into a ready-to-tick World.
// The character spawns facing the terrain's forward plane axis.
func LoadWorld(cfg *config.GameConfig) *World {
	player := cfg.Player
	up := player.Up()

	platforms := make([]entity.Platform, 0, len(cfg.Terrain.Platforms))
	for _, p := range cfg.Terrain.Platforms {
		platforms = append(platforms, entity.Platform{
			Min:    mgl64.Vec2{p.Min[0], p.Min[1]},
			Max:    mgl64.Vec2{p.Max[0], p.Max[1]},
			Height: p.Height,
		})
	}
	terrain := entity.NewTerrain(up, cfg.Terrain.GroundHeight, platforms, cfg.Terrain.Spawn)
	body := entity.NewBody(terrain, terrain.Spawn)

	var animator *entity.RootMotionAnimator
	var anim entity.Animator
	if player.MoveMode == config.MoveModeRootMotion {
		animator = entity.NewRootMotionAnimator(player.ClipSpeed)
		anim = animator
	}

	_, forward := terrain.Basis()
	character := entity.NewCharacter(body, anim, entity.CharacterSettings{
		Gravity:       player.GravityProfile(),
		Acceleration:  player.Acceleration,
		Decceleration: player.Decceleration,
		Up:            up,
	}, forward)

	camera := NewCameraRig(up, cfg.Camera)

	return &World{
		Terrain:    terrain,
		Body:       body,
		Animator:   animator,
		Character:  character,
		Camera:     camera,
		Locomotion: NewLocomotionSystem(player, character, animator, camera),
	}
}

// Respawn returns the character to the terrain spawn point at rest.
func (w *World) Respawn() {
	w.Character.Respawn(w.Terrain.Spawn)
}
