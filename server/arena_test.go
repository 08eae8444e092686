package server

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/lab1702/seabots/bot"
	"github.com/lab1702/seabots/game"
	"github.com/lab1702/seabots/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() config.ArenaConfig {
	return config.ArenaConfig{
		BotCount:    1,
		WorldRadius: 1000,
		TickRate:    10,
		Workers:     2,
		Seed:        42,
		SensorRange: 500,
	}
}

func newTestArena(t *testing.T, cfg config.ArenaConfig) *Arena {
	t.Helper()
	a, err := NewArena(cfg, zerolog.Nop(), game.FlatTerrain{})
	require.NoError(t, err)
	return a
}

// addTestBoat adds a player with a boat of type bt at pos, bypassing spawning.
func addTestBoat(t *testing.T, a *Arena, bt game.EntityType, pos game.Vec2) *player {
	t.Helper()
	id, err := a.AddBot()
	require.NoError(t, err)
	p := a.players[id]
	p.boat = a.newEntity(bt, p, game.Transform{Position: pos})
	p.boat.setType(bt)
	return p
}

func TestArenaBotSpawnsOnFirstTick(t *testing.T) {
	a := newTestArena(t, testConfig())
	id, err := a.AddBot()
	require.NoError(t, err)

	require.NoError(t, a.Tick(context.Background()))

	p := a.players[id]
	require.NotNil(t, p.boat, "bot should have spawned")
	assert.Equal(t, game.EntityKindBoat, p.boat.data().Kind)
	assert.Equal(t, uint8(1), p.boat.data().Level)
	assert.Same(t, p, p.boat.owner)
	assert.Equal(t, bot.StateNeverSpawned, p.bot.State())

	require.NoError(t, a.Tick(context.Background()))
	assert.Equal(t, bot.StateAlive, p.bot.State())
}

func TestArenaTickFillsBots(t *testing.T) {
	cfg := testConfig()
	cfg.BotCount = 5
	a := newTestArena(t, cfg)

	require.NoError(t, a.Tick(context.Background()))
	assert.Len(t, a.players, 5)
	assert.Equal(t, uint64(1), a.Stats().Tick)
}

func TestArenaTickCancelled(t *testing.T) {
	a := newTestArena(t, testConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := a.Tick(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, uint64(0), a.tick)
}

// addBrokenBot adds a session whose bot panics when updated.
func addBrokenBot(a *Arena) {
	a.players[999] = &player{id: 999}
}

func TestArenaTickRecoversBotPanic(t *testing.T) {
	a := newTestArena(t, testConfig())
	addBrokenBot(a)

	err := a.Tick(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bot 999 panicked")
	assert.Equal(t, uint64(0), a.tick)
}

func TestArenaRunStopsOnFailedTick(t *testing.T) {
	a := newTestArena(t, testConfig())
	addBrokenBot(a)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := a.Run(ctx)
	require.Error(t, err)
	assert.NotErrorIs(t, err, context.DeadlineExceeded)
	assert.Contains(t, err.Error(), "panicked")
	assert.Equal(t, uint64(0), a.Stats().Tick)
}

func TestArenaFrames(t *testing.T) {
	a := newTestArena(t, testConfig())
	id, err := a.AddBot()
	require.NoError(t, err)

	var frames []Frame
	a.OnFrame(func(f Frame) { frames = append(frames, f) })

	require.NoError(t, a.Tick(context.Background()))
	require.Len(t, frames, 1)
	f := frames[0]
	assert.Equal(t, uint64(0), f.Tick)
	require.Len(t, f.Commands, 1)
	assert.Equal(t, id, f.Commands[0].Player)
	require.Len(t, f.Commands[0].Commands, 1)

	cmd, err := game.UnmarshalCommand(f.Commands[0].Commands[0])
	require.NoError(t, err)
	assert.IsType(t, game.Spawn{}, cmd)
}

func TestArenaManyTicks(t *testing.T) {
	cfg := testConfig()
	cfg.BotCount = 12
	cfg.Workers = 3
	cfg.Collectibles = 10
	cfg.Islands = 4
	a, err := NewArena(cfg, zerolog.Nop(),
		game.GenerateIslands(rand.New(rand.NewPCG(7, 7)), cfg.WorldRadius, 25, 6))
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		require.NoError(t, a.Tick(context.Background()))
	}

	stats := a.Stats()
	assert.Equal(t, uint64(50), stats.Tick)
	assert.Len(t, stats.Bots, cfg.BotCount)
	for i := 1; i < len(stats.Bots); i++ {
		assert.Less(t, stats.Bots[i-1].Player, stats.Bots[i].Player)
	}
}

func TestArenaRemovePlayer(t *testing.T) {
	a := newTestArena(t, testConfig())
	p := addTestBoat(t, a, game.EntityTypeFairmile, game.Vec2{})
	boat := p.boat

	a.removePlayer(context.Background(), p)

	assert.Empty(t, a.players)
	assert.True(t, boat.removed)
	assert.True(t, p.quit)
	assert.Equal(t, 1, a.Stats().Quits)

	a.removeDead()
	assert.NotContains(t, a.entities, boat.id)

	a.fillBots()
	assert.Len(t, a.players, 1)
	assert.NotContains(t, a.players, p.id, "replacement should get a fresh id")
}

func TestArenaAddBotFull(t *testing.T) {
	a := newTestArena(t, testConfig())
	for i := 0; i < MaxPlayers; i++ {
		a.players[game.PlayerID(i+1000)] = &player{id: game.PlayerID(i + 1000)}
	}
	_, err := a.AddBot()
	assert.ErrorIs(t, err, ErrArenaFull)
}

func TestArenaStats(t *testing.T) {
	a := newTestArena(t, testConfig())
	p := addTestBoat(t, a, game.EntityTypeFairmile, game.Vec2{})
	p.score = 12
	_, err := a.AddBot()
	require.NoError(t, err)

	stats := a.Stats()
	require.Len(t, stats.Bots, 2)

	first := stats.Bots[0]
	assert.Equal(t, p.id, first.Player)
	assert.Equal(t, p.session, first.Session)
	assert.Equal(t, uint32(12), first.Score)
	require.NotNil(t, first.Boat)
	assert.Equal(t, game.EntityTypeFairmile, *first.Boat)
	assert.Equal(t, "never_spawned", first.State)

	assert.Nil(t, stats.Bots[1].Boat)
}

func TestApplyFireSetsReload(t *testing.T) {
	a := newTestArena(t, testConfig())
	p := addTestBoat(t, a, game.EntityTypeFairmile, game.Vec2{})
	a.grid.Index(a.entities)
	before := len(a.entities)

	fire := game.Fire{Index: 1, PositionTarget: game.Vec2{X: 200}}
	a.applyCommands(context.Background(), p, []game.Command{fire})

	reload := game.EntityTypeMark18.Data().Reload
	assert.Equal(t, reload, p.boat.reloads[1])
	assert.Equal(t, game.Ticks(0), p.boat.reloads[0])
	require.Len(t, a.entities, before+1)

	var torpedo *entity
	for _, e := range a.entities {
		if e.entityType == game.EntityTypeMark18 {
			torpedo = e
		}
	}
	require.NotNil(t, torpedo)
	assert.Same(t, p, torpedo.owner)
	assert.True(t, torpedo.altitude.IsSubmerged())
	assert.Equal(t, game.EntityTypeMark18.Data().Lifespan, torpedo.lifespan)

	// Reloading armaments cannot fire
	a.applyCommands(context.Background(), p, []game.Command{fire})
	assert.Len(t, a.entities, before+1)

	// The shooter sees its reload in the next snapshot
	a.grid.Index(a.entities)
	s := a.buildSnapshot(p)
	require.NotEmpty(t, s.Contacts())
	assert.Equal(t, []game.Ticks{0, reload}, s.Contacts()[0].Reloads())
}

func TestApplyCommandsRejects(t *testing.T) {
	a := newTestArena(t, testConfig())
	id, err := a.AddBot()
	require.NoError(t, err)
	p := a.players[id]

	tests := []struct {
		name string
		cmd  game.Command
		want string
	}{
		{"control while dead", game.Control{}, rejectDead},
		{"fire while dead", game.Fire{}, rejectDead},
		{"upgrade while dead", game.Upgrade{EntityType: game.EntityTypeTypeVIIC}, rejectDead},
		{"spawn weapon", game.Spawn{EntityType: game.EntityTypeMark18}, rejectType},
		{"spawn high level", game.Spawn{EntityType: game.EntityTypeIowa}, rejectType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			switch cmd := tt.cmd.(type) {
			case game.Control:
				got = a.applyControl(p, cmd)
			case game.Fire:
				got = a.applyFire(p, cmd)
			case game.Upgrade:
				got = a.applyUpgrade(p, cmd)
			case game.Spawn:
				got = a.applySpawn(p, cmd)
			}
			assert.Equal(t, tt.want, got)
		})
	}

	p = addTestBoat(t, a, game.EntityTypeFairmile, game.Vec2{})
	assert.Equal(t, rejectAlive, a.applySpawn(p, game.Spawn{EntityType: game.EntityTypeFairmile}))
	assert.Equal(t, rejectIndex, a.applyFire(p, game.Fire{Index: 2}))
	assert.Equal(t, rejectType, a.applyUpgrade(p, game.Upgrade{EntityType: game.EntityTypeTypeVIIC}))
}

func TestApplyControlClamps(t *testing.T) {
	a := newTestArena(t, testConfig())
	p := addTestBoat(t, a, game.EntityTypeTypeVIIC, game.Vec2{})
	speed := p.boat.data().Speed

	deep := game.Altitude(-5)
	aim := game.Vec2{X: 10, Y: 10}
	reason := a.applyControl(p, game.Control{
		Guidance:       &game.Guidance{DirectionTarget: 1, VelocityTarget: 1000},
		AltitudeTarget: &deep,
		AimTarget:      &aim,
		Active:         true,
	})
	require.Empty(t, reason)
	assert.Equal(t, speed, p.boat.guidance.VelocityTarget)
	assert.Equal(t, game.Angle(1), p.boat.guidance.DirectionTarget)
	assert.Equal(t, game.AltitudeMin, p.boat.altitudeTarget)
	require.NotNil(t, p.boat.aimTarget)
	assert.Equal(t, aim, *p.boat.aimTarget)
	assert.True(t, p.boat.active)

	a.applyControl(p, game.Control{})
	assert.Nil(t, p.boat.aimTarget)
	assert.Equal(t, speed, p.boat.guidance.VelocityTarget, "nil guidance keeps the previous target")
}

func TestApplyUpgrade(t *testing.T) {
	a := newTestArena(t, testConfig())
	p := addTestBoat(t, a, game.EntityTypeFairmile, game.Vec2{})
	p.boat.damage = 10
	p.score = game.LevelToScore(2)

	require.Empty(t, a.applyUpgrade(p, game.Upgrade{EntityType: game.EntityTypeTypeVIIC}))
	assert.Equal(t, game.EntityTypeTypeVIIC, p.boat.entityType)
	assert.Len(t, p.boat.reloads, 4)
	// Damage keeps the same fraction of health
	assert.Equal(t, game.Ticks(20), p.boat.damage)
}

func TestTorpedoHitSinksBoat(t *testing.T) {
	a := newTestArena(t, testConfig())
	shooter := addTestBoat(t, a, game.EntityTypeFairmile, game.Vec2{X: -300})
	victim := addTestBoat(t, a, game.EntityTypeFairmile, game.Vec2{X: 300})
	victim.score = 30

	hit := func() {
		torpedo := a.newEntity(game.EntityTypeMark18, shooter, victim.boat.transform)
		torpedo.lifespan = 10
		a.grid.Index(a.entities)
		a.resolveCollisions()
		assert.True(t, torpedo.removed)
	}

	hit()
	require.NotNil(t, victim.boat)
	assert.Equal(t, game.EntityTypeMark18.Data().Damage, victim.boat.damage)

	position := victim.boat.transform.Position
	hit()
	assert.Nil(t, victim.boat)
	assert.Equal(t, 1, victim.deaths)
	assert.Equal(t, uint32(15), victim.score)
	assert.Equal(t, 1, shooter.kills)
	assert.Equal(t, uint32(SinkingBounty), shooter.score)

	a.removeDead()
	scrap := 0
	for _, e := range a.entities {
		if e.entityType == game.EntityTypeScrap {
			scrap++
			assert.Less(t, e.transform.Position.Distance(position), game.EntityTypeFairmile.Data().Length)
		}
	}
	assert.Equal(t, 1, scrap)
}

func TestFriendlyTorpedoDoesNotHit(t *testing.T) {
	a := newTestArena(t, testConfig())
	p := addTestBoat(t, a, game.EntityTypeFairmile, game.Vec2{})

	torpedo := a.newEntity(game.EntityTypeMark18, p, p.boat.transform)
	torpedo.lifespan = 10
	a.grid.Index(a.entities)
	a.resolveCollisions()

	assert.False(t, torpedo.removed)
	assert.Equal(t, game.Ticks(0), p.boat.damage)
}

func TestCollectPickups(t *testing.T) {
	a := newTestArena(t, testConfig())
	p := addTestBoat(t, a, game.EntityTypeFairmile, game.Vec2{})
	p.boat.damage = 8

	a.newEntity(game.EntityTypeCoin, nil, game.Transform{Position: game.Vec2{X: 1}})
	a.newEntity(game.EntityTypeBarrel, nil, game.Transform{Position: game.Vec2{X: -1}})
	a.grid.Index(a.entities)
	a.resolveCollisions()

	assert.Equal(t, uint32(7), p.score)
	assert.Equal(t, 8-BarrelRepair, p.boat.damage)
}

func TestBoatPhysicsMoves(t *testing.T) {
	a := newTestArena(t, testConfig())
	p := addTestBoat(t, a, game.EntityTypeFairmile, game.Vec2{})
	p.boat.guidance = game.Guidance{VelocityTarget: 10}
	p.boat.reloads[0] = 3

	a.updateBoatPhysics(p.boat)

	assert.InDelta(t, BoatAcceleration*dt, p.boat.velocity, 1e-5)
	assert.Greater(t, p.boat.transform.Position.X, float32(0))
	assert.Equal(t, game.Ticks(2), p.boat.reloads[0])
}

func TestBoatStopsAtBorder(t *testing.T) {
	cfg := testConfig()
	a := newTestArena(t, cfg)
	p := addTestBoat(t, a, game.EntityTypeFairmile, game.Vec2{X: cfg.WorldRadius - 3})
	p.boat.velocity = 10
	p.boat.guidance = game.Guidance{VelocityTarget: 10}

	a.updateBoatPhysics(p.boat)

	assert.Equal(t, float32(0), p.boat.velocity)
	assert.Equal(t, cfg.WorldRadius-3, p.boat.transform.Position.X)
}

func TestBuildSnapshot(t *testing.T) {
	a := newTestArena(t, testConfig())
	p := addTestBoat(t, a, game.EntityTypeFairmile, game.Vec2{})
	near := addTestBoat(t, a, game.EntityTypeFairmile, game.Vec2{X: 100})
	far := addTestBoat(t, a, game.EntityTypeFairmile, game.Vec2{X: 700})
	sub := addTestBoat(t, a, game.EntityTypeTypeVIIC, game.Vec2{Y: 400})
	sub.boat.altitude = game.AltitudeMin
	near.boat.reloads[0] = 5
	a.grid.Index(a.entities)

	s := a.buildSnapshot(p)
	assert.Equal(t, p.id, s.PlayerID())
	assert.Equal(t, a.cfg.WorldRadius, s.WorldRadius())

	contacts := s.Contacts()
	require.Len(t, contacts, 3)
	assert.Equal(t, p.boat.id, contacts[0].ID())
	assert.Equal(t, near.boat.id, contacts[1].ID())
	assert.Equal(t, sub.boat.id, contacts[2].ID())
	for _, c := range contacts {
		assert.NotEqual(t, far.boat.id, c.ID())
	}

	assert.Nil(t, contacts[1].Reloads(), "reloads of other players are hidden")
	nearType, ok := contacts[1].EntityType()
	assert.True(t, ok)
	assert.Equal(t, game.EntityTypeFairmile, nearType)

	_, ok = contacts[2].EntityType()
	assert.False(t, ok, "distant submarines are unidentified")
	owner, ok := contacts[2].PlayerID()
	assert.True(t, ok)
	assert.Equal(t, sub.id, owner)
}

func TestBuildSnapshotDead(t *testing.T) {
	a := newTestArena(t, testConfig())
	id, err := a.AddBot()
	require.NoError(t, err)
	a.players[id].score = 9

	s := a.buildSnapshot(a.players[id])
	assert.Empty(t, s.Contacts())
	assert.Equal(t, uint32(9), s.Score())
	assert.NotNil(t, s.Terrain())
}
