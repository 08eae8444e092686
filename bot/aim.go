package bot

import (
	"math/rand/v2"

	"github.com/lab1702/seabots/game"
)

// randomAimBias returns a fixed per-bot aim offset. Bots that miss in
// different directions produce more interesting hit patterns.
func randomAimBias(r *rand.Rand) game.Vec2 {
	return game.RandomInDisk(r, AimBiasRadius)
}

// randomAggression favours low values by squaring a uniform draw.
func randomAggression(r *rand.Rand) float32 {
	u := r.Float32()
	return u * u * MaxAggression
}

// randomLevelAmbition returns a level in [1, game.MaxBoatLevel).
func randomLevelAmbition(r *rand.Rand) uint8 {
	return 1 + uint8(r.IntN(game.MaxBoatLevel-1))
}
