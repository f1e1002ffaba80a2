package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/locomotion/internal/infrastructure/config"
)

func TestLoadWorld(t *testing.T) {
	cfg := config.Default()

	w := LoadWorld(cfg)

	require.NotNil(t, w.Character)
	require.NotNil(t, w.Animator)
	assert.Len(t, w.Terrain.Platforms, len(cfg.Terrain.Platforms))
	assertVec3(t, mgl64.Vec3{0, 1, 0}, w.Character.Up())
	assertVec3(t, mgl64.Vec3{0, 0, 1}, w.Character.Forward())
	assert.True(t, w.Character.Grounded())
}

func TestLoadWorld_DirectModeHasNoAnimator(t *testing.T) {
	cfg := config.Default()
	cfg.Player.MoveMode = config.MoveModeDirect

	w := LoadWorld(cfg)

	assert.Nil(t, w.Animator)
}

func TestLoadWorld_SpawnOnPlatform(t *testing.T) {
	cfg := config.Default()
	cfg.Terrain.Spawn = mgl64.Vec3{4, 1, 4}

	w := LoadWorld(cfg)

	assert.True(t, w.Character.Grounded())
	assert.InDelta(t, 1.0, w.Body.Height(), 1e-9)
}

func TestLoadWorld_CustomGravityDirection(t *testing.T) {
	cfg := config.Default()
	cfg.Player.GravityDirection = mgl64.Vec3{0, 0, -2}
	cfg.Terrain.Spawn = mgl64.Vec3{0, 0, 3}

	w := LoadWorld(cfg)
	require.False(t, w.Character.Grounded())

	for i := 0; i < 600 && !w.Character.Grounded(); i++ {
		w.Locomotion.Tick(InputState{}, testDT)
	}

	assert.True(t, w.Character.Grounded())
	assert.InDelta(t, 0.0, w.Character.Position().Z(), 1e-9)
}
