// Package server runs an arena of bots: it owns the world, feeds each bot a
// snapshot every tick, applies their commands and streams them to spectators.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lab1702/seabots/bot"
	"github.com/lab1702/seabots/game"
	"github.com/lab1702/seabots/internal/config"
	"github.com/lab1702/seabots/internal/logging"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// MaxPlayers caps the number of concurrent sessions.
const MaxPlayers = 1024

// ErrArenaFull is returned by AddBot when no player slot is free.
var ErrArenaFull = errors.New("arena is full")

// Frame is what happened in one tick, sent to spectators.
type Frame struct {
	Tick     uint64           `json:"tick"`
	Commands []PlayerCommands `json:"commands"`
	Quits    []game.PlayerID  `json:"quits,omitempty"`
}

// PlayerCommands are the commands one player emitted in a tick.
type PlayerCommands struct {
	Player   game.PlayerID     `json:"player"`
	Commands []json.RawMessage `json:"commands"`
}

// Arena manages the world and the bots playing in it.
type Arena struct {
	cfg     config.ArenaConfig
	logger  zerolog.Logger
	sampled zerolog.Logger
	terrain game.Terrain
	metrics *metrics

	mu           sync.RWMutex
	rng          *rand.Rand
	tick         uint64
	nextEntityID game.EntityID
	nextPlayerID game.PlayerID
	entities     map[game.EntityID]*entity
	players      map[game.PlayerID]*player
	grid         *SpatialGrid
	quits        int

	frameListeners []func(Frame)
}

// NewArena creates an arena with obstacles and collectibles placed but no bots.
func NewArena(cfg config.ArenaConfig, logger zerolog.Logger, terrain game.Terrain) (*Arena, error) {
	if err := game.ValidateTables(); err != nil {
		return nil, fmt.Errorf("validating entity tables: %w", err)
	}
	m, err := newMetrics()
	if err != nil {
		return nil, fmt.Errorf("creating metrics: %w", err)
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}

	a := &Arena{
		cfg:          cfg,
		logger:       logger.With().Str("component", "arena").Logger(),
		terrain:      terrain,
		metrics:      m,
		rng:          rand.New(rand.NewPCG(cfg.Seed, 0x5eab075)),
		nextEntityID: 1,
		nextPlayerID: 1,
		entities:     make(map[game.EntityID]*entity),
		players:      make(map[game.PlayerID]*player),
		grid:         NewSpatialGrid(cfg.WorldRadius),
	}
	a.sampled = logging.Sampled(a.logger)

	a.placeObstacles()
	a.grid.Index(a.entities)
	a.replenishCollectibles()
	return a, nil
}

// OnFrame registers f to receive every tick's frame. f is called from the
// ticking goroutine and must not block.
func (a *Arena) OnFrame(f func(Frame)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.frameListeners = append(a.frameListeners, f)
}

func (a *Arena) placeObstacles() {
	for i := 0; i < a.cfg.Islands; i++ {
		t := game.EntityTypeBuoy
		if i%2 == 0 {
			t = game.EntityTypeOilPlatform
		}
		if pos, ok := a.findWater(t.Data().Radius); ok {
			a.newEntity(t, nil, game.Transform{Position: pos})
		}
	}
}

// newEntity adds an entity to the world. Caller holds a.mu.
func (a *Arena) newEntity(t game.EntityType, owner *player, transform game.Transform) *entity {
	e := &entity{
		id:         a.nextEntityID,
		entityType: t,
		owner:      owner,
		transform:  transform,
	}
	a.nextEntityID++
	a.entities[e.id] = e
	return e
}

// AddBot adds a new bot session and returns its player id.
func (a *Arena) AddBot() (game.PlayerID, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.addBotLocked()
}

func (a *Arena) addBotLocked() (game.PlayerID, error) {
	if len(a.players) >= MaxPlayers {
		return 0, ErrArenaFull
	}

	id := a.nextPlayerID
	a.nextPlayerID++
	p := &player{
		id:      id,
		session: uuid.New(),
		bot:     bot.New(rand.New(rand.NewPCG(a.cfg.Seed, uint64(id)))),
	}
	a.players[id] = p

	a.logger.Info().
		Uint32("player", uint32(id)).
		Str("session", p.session.String()).
		Float32("aggression", p.bot.Aggression()).
		Uint8("levelAmbition", p.bot.LevelAmbition()).
		Msg("Bot joined")
	return id, nil
}

// fillBots tops the arena up to the configured bot count.
func (a *Arena) fillBots() {
	for len(a.players) < a.cfg.BotCount {
		if _, err := a.addBotLocked(); err != nil {
			a.logger.Warn().Err(err).Msg("Could not add bot")
			return
		}
	}
}

type updateResult struct {
	commands []game.Command
	quit     bool
}

// Tick advances the arena by one tick: bots decide concurrently, then their
// commands are applied and the world is simulated sequentially.
func (a *Arena) Tick(ctx context.Context) error {
	start := time.Now()

	a.mu.Lock()
	defer a.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	a.grid.Index(a.entities)

	players := make([]*player, 0, len(a.players))
	for _, p := range a.players {
		players = append(players, p)
	}
	sort.Slice(players, func(i, j int) bool { return players[i].id < players[j].id })

	snapshots := make([]*snapshot, len(players))
	for i, p := range players {
		snapshots[i] = a.buildSnapshot(p)
	}

	// Each goroutine touches only its own bot and result slot
	results := make([]updateResult, len(players))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Workers)
	for i, p := range players {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() (err error) {
			if err := gctx.Err(); err != nil {
				return err
			}
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("bot %d panicked: %v", p.id, r)
				}
			}()
			cmds, quit := p.bot.Update(snapshots[i])
			results[i] = updateResult{commands: cmds, quit: quit}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("updating bots: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	frame := Frame{Tick: a.tick}
	for i, p := range players {
		res := results[i]
		if res.quit {
			a.removePlayer(ctx, p)
			frame.Quits = append(frame.Quits, p.id)
			continue
		}
		a.applyCommands(ctx, p, res.commands)
		frame.Commands = append(frame.Commands, PlayerCommands{
			Player:   p.id,
			Commands: a.encodeCommands(res.commands),
		})
	}

	a.updatePhysics()
	a.fillBots()
	a.tick++

	for _, f := range a.frameListeners {
		f(frame)
	}

	a.metrics.tickTime.Record(ctx, float64(time.Since(start).Microseconds())/1000)
	a.sampled.Debug().
		Uint64("tick", frame.Tick).
		Int("players", len(a.players)).
		Int("entities", len(a.entities)).
		Dur("took", time.Since(start)).
		Msg("Tick")
	return nil
}

func (a *Arena) encodeCommands(cmds []game.Command) []json.RawMessage {
	encoded := make([]json.RawMessage, 0, len(cmds))
	for _, c := range cmds {
		b, err := game.MarshalCommand(c)
		if err != nil {
			a.logger.Error().Err(err).Msg("Encoding command")
			continue
		}
		encoded = append(encoded, b)
	}
	return encoded
}

// removePlayer ends a session, scuttling its boat if any.
func (a *Arena) removePlayer(ctx context.Context, p *player) {
	if p.boat != nil {
		p.boat.removed = true
		p.boat = nil
	}
	p.quit = true
	delete(a.players, p.id)
	a.quits++
	a.metrics.rageQuits.Add(ctx, 1)

	a.logger.Info().
		Uint32("player", uint32(p.id)).
		Str("session", p.session.String()).
		Uint32("score", p.score).
		Int("kills", p.kills).
		Int("deaths", p.deaths).
		Msg("Bot rage quit")
}

// Run ticks the arena at the configured rate until ctx is cancelled or a
// tick fails. A failed tick means a bot panicked, which is not recoverable.
func (a *Arena) Run(ctx context.Context) error {
	a.mu.Lock()
	a.fillBots()
	a.mu.Unlock()

	ticker := time.NewTicker(a.cfg.TickPeriod())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := a.Tick(ctx); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				return fmt.Errorf("arena tick %d: %w", a.Stats().Tick, err)
			}
		}
	}
}

// BotStats describes one bot session
type BotStats struct {
	Player        game.PlayerID    `json:"player"`
	Session       uuid.UUID        `json:"session"`
	State         string           `json:"state"`
	Boat          *game.EntityType `json:"boat,omitempty"`
	Score         uint32           `json:"score"`
	Kills         int              `json:"kills"`
	Deaths        int              `json:"deaths"`
	Aggression    float32          `json:"aggression"`
	LevelAmbition uint8            `json:"levelAmbition"`
}

// Stats is a point-in-time summary of the arena
type Stats struct {
	Tick     uint64     `json:"tick"`
	Entities int        `json:"entities"`
	Quits    int        `json:"quits"`
	Bots     []BotStats `json:"bots"`
}

// Stats returns a summary of the arena.
func (a *Arena) Stats() Stats {
	a.mu.RLock()
	defer a.mu.RUnlock()

	s := Stats{
		Tick:     a.tick,
		Entities: len(a.entities),
		Quits:    a.quits,
		Bots:     make([]BotStats, 0, len(a.players)),
	}
	for _, p := range a.players {
		bs := BotStats{
			Player:        p.id,
			Session:       p.session,
			State:         p.bot.State().String(),
			Score:         p.score,
			Kills:         p.kills,
			Deaths:        p.deaths,
			Aggression:    p.bot.Aggression(),
			LevelAmbition: p.bot.LevelAmbition(),
		}
		if p.boat != nil {
			t := p.boat.entityType
			bs.Boat = &t
		}
		s.Bots = append(s.Bots, bs)
	}
	sort.Slice(s.Bots, func(i, j int) bool { return s.Bots[i].Player < s.Bots[j].Player })
	return s
}
