// Package bot implements the decision engine for computer-controlled boats.
//
// A Bot turns a read-only Snapshot of the world into at most two commands per
// tick. It never mutates the world; the only state it keeps between ticks is
// its personality and lifecycle.
package bot

import (
	"fmt"
	"math/rand/v2"

	"github.com/lab1702/seabots/game"
)

// Overridable in tests.
var (
	spawnOptions   = game.SpawnOptions
	upgradeOptions = game.EntityType.UpgradeOptions
)

// Bot controls one player's boat.
type Bot struct {
	// aggression is the per-tick chance of firing or upgrading.
	aggression float32
	// aimBias offsets every aim target.
	aimBias game.Vec2
	// levelAmbition is the level the bot stops upgrading at.
	levelAmbition uint8

	state State
	rng   *rand.Rand
}

// New creates a bot with a random personality drawn from r. The bot keeps
// using r, so r must not be shared with other goroutines.
func New(r *rand.Rand) *Bot {
	return &Bot{
		aggression:    randomAggression(r),
		aimBias:       randomAimBias(r),
		levelAmbition: randomLevelAmbition(r),
		state:         StateNeverSpawned,
		rng:           r,
	}
}

// NewSeeded creates a bot with its own PCG source.
func NewSeeded(seed uint64) *Bot {
	return New(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

func (b *Bot) Aggression() float32 { return b.aggression }

func (b *Bot) AimBias() game.Vec2 { return b.aimBias }

func (b *Bot) LevelAmbition() uint8 { return b.levelAmbition }

func (b *Bot) State() State { return b.state }

// SpawnedAtLeastOnce reports whether the bot has ever been seen alive, which
// makes it eligible to rage quit.
func (b *Bot) SpawnedAtLeastOnce() bool {
	return b.state != StateNeverSpawned
}

// Update processes a snapshot and returns the commands to execute and whether
// the bot quits. Once a bot has quit, every later call returns (nil, true).
func (b *Bot) Update(s Snapshot) ([]game.Command, bool) {
	if b.state == StateQuit {
		return nil, true
	}

	contacts := s.Contacts()
	if len(contacts) > 0 {
		self := contacts[0]
		if boatType, data, ok := contactData(self); ok && data.Kind == game.EntityKindBoat {
			if owner, owned := self.PlayerID(); owned && owner == s.PlayerID() {
				b.state = StateAlive
				return b.updateAlive(s, self, boatType, data, contacts), false
			}
		}
	}

	if b.state != StateNeverSpawned {
		b.state = StateDead
		if b.rng.Float64() < RageQuitChance {
			b.state = StateQuit
			return nil, true
		}
	}
	return []game.Command{b.spawn()}, false
}

func (b *Bot) updateAlive(s Snapshot, self Contact, boatType game.EntityType, data *game.EntityData, contacts []Contact) []game.Command {
	healthPercent := game.HealthPercent(self.Damage(), data.MaxHealth)

	var movement steering
	movement.avoidTerrain(self.Transform().Position, data.Length, s.Terrain(), s.WorldRadius())

	var solution firingSolution
	var hasSolution bool
	if target, ok := scanContacts(&movement, s.PlayerID(), self, data, contacts); ok {
		solution, hasSolution = bestFiringSolution(self, data, target)
	}

	control := game.Control{
		Guidance: &game.Guidance{
			DirectionTarget: movement.sum.Angle(),
			VelocityTarget:  data.Speed * CruiseSpeedFraction,
		},
		Active: healthPercent >= ActiveHealthPercent,
	}
	if data.SubKind == game.EntitySubKindSubmarine {
		altitude := game.AltitudeMin
		if healthPercent > b.aggression {
			altitude = game.AltitudeZero
		}
		control.AltitudeTarget = &altitude
	}
	if hasSolution {
		aim := solution.target.Add(b.aimBias)
		control.AimTarget = &aim
	}

	commands := []game.Command{control}

	if b.rng.Float32() < b.aggression {
		if hasSolution {
			if solution.deviation < MaxFireDeviation {
				commands = append(commands, game.Fire{
					Index:          solution.index,
					PositionTarget: solution.target,
				})
			}
		} else if data.Level < b.levelAmbition {
			if options := upgradeOptions(boatType, s.Score(), true); len(options) > 0 {
				commands = append(commands, game.Upgrade{EntityType: options[b.rng.IntN(len(options))]})
			}
		}
	}
	return commands
}

func (b *Bot) spawn() game.Command {
	options := spawnOptions(true)
	if len(options) == 0 {
		panic(fmt.Errorf("bot spawn: %w", game.ErrNoSpawnOptions))
	}
	return game.Spawn{EntityType: options[b.rng.IntN(len(options))]}
}
