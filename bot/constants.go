package bot

import (
	"github.com/lab1702/seabots/game"
)

// Bot personality and decision constants.
const (
	// MaxAggression caps the per-tick chance of attacking or upgrading.
	// Higher values fill the water with stray torpedoes.
	MaxAggression = 0.1

	// AimBiasRadius bounds the random offset added to every aim target.
	AimBiasRadius = 10.0

	// TerrainSamples is the number of directions probed around the boat for land.
	TerrainSamples = 10

	// CruiseSpeedFraction of the boat's top speed is used for all movement.
	CruiseSpeedFraction = 0.8

	// ActiveHealthPercent is the health at and above which sensors stay active.
	ActiveHealthPercent = 0.5

	// RageQuitChance is the chance per tick that a dead bot leaves instead of respawning.
	RageQuitChance = 1.0 / 3.0
)

// MaxFireDeviation is the largest angle between an armament's facing and the
// target at which the bot will fire.
var MaxFireDeviation = game.FromDegrees(60)
