package bot

import (
	"math/rand/v2"

	"github.com/lab1702/seabots/game"
)

// Test helpers to reach unexported state
// This file is only compiled for tests

// NewWithPersonality creates a bot with fixed traits
func NewWithPersonality(r *rand.Rand, aggression float32, aimBias game.Vec2, levelAmbition uint8) *Bot {
	b := New(r)
	b.aggression = aggression
	b.aimBias = aimBias
	b.levelAmbition = levelAmbition
	return b
}

// SetSpawnOptions replaces the spawn option source and returns a func restoring it
func SetSpawnOptions(f func(bot bool) []game.EntityType) (restore func()) {
	old := spawnOptions
	spawnOptions = f
	return func() { spawnOptions = old }
}

// SetUpgradeOptions replaces the upgrade option source and returns a func restoring it
func SetUpgradeOptions(f func(t game.EntityType, score uint32, bot bool) []game.EntityType) (restore func()) {
	old := upgradeOptions
	upgradeOptions = f
	return func() { upgradeOptions = old }
}
