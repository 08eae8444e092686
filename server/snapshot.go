package server

import (
	"sort"

	"github.com/lab1702/seabots/bot"
	"github.com/lab1702/seabots/game"
)

// contact is a read-only view of an entity as sensed by a player. It is only
// valid while the world is not being mutated.
type contact struct {
	e          *entity
	own        bool
	identified bool
}

func (c contact) ID() game.EntityID { return c.e.id }

func (c contact) PlayerID() (game.PlayerID, bool) { return c.e.ownerID() }

func (c contact) EntityType() (game.EntityType, bool) {
	if !c.identified {
		return game.EntityTypeInvalid, false
	}
	return c.e.entityType, true
}

func (c contact) Transform() game.Transform { return c.e.transform }

func (c contact) Altitude() game.Altitude { return c.e.altitude }

func (c contact) Damage() game.Ticks { return c.e.damage }

// Reloads are only known for the player's own entities.
func (c contact) Reloads() []game.Ticks {
	if !c.own {
		return nil
	}
	return c.e.reloads
}

func (c contact) TurretAngles() []game.Angle { return c.e.turretAngles }

// snapshot implements bot.Snapshot for one player.
type snapshot struct {
	playerID    game.PlayerID
	contacts    []bot.Contact
	terrain     game.Terrain
	worldRadius float32
	score       uint32
}

func (s *snapshot) PlayerID() game.PlayerID { return s.playerID }
func (s *snapshot) Contacts() []bot.Contact { return s.contacts }
func (s *snapshot) Terrain() game.Terrain   { return s.terrain }
func (s *snapshot) WorldRadius() float32    { return s.worldRadius }
func (s *snapshot) Score() uint32           { return s.score }

// buildSnapshot collects the contacts p can sense. The player's boat comes
// first; other contacts are ordered by id so results do not depend on map
// iteration order.
func (a *Arena) buildSnapshot(p *player) *snapshot {
	s := &snapshot{
		playerID:    p.id,
		terrain:     a.terrain,
		worldRadius: a.cfg.WorldRadius,
		score:       p.score,
	}
	if p.boat == nil {
		return s
	}

	self := p.boat
	s.contacts = append(s.contacts, contact{e: self, own: true, identified: true})

	rangeSq := a.cfg.SensorRange * a.cfg.SensorRange
	var others []contact
	for _, e := range a.grid.Nearby(self.transform.Position, a.cfg.SensorRange) {
		if e == self || e.removed {
			continue
		}
		distSq := e.transform.Position.DistanceSquared(self.transform.Position)
		if distSq > rangeSq {
			continue
		}
		others = append(others, contact{
			e:          e,
			own:        e.owner == p,
			identified: e.owner == p || identifiable(e, distSq, rangeSq),
		})
	}
	sort.Slice(others, func(i, j int) bool { return others[i].e.id < others[j].e.id })
	for _, c := range others {
		s.contacts = append(s.contacts, c)
	}
	return s
}

// identifiable reports whether a sensed entity's type is known. Submerged
// entities are only identified within half of sensor range.
func identifiable(e *entity, distSq, rangeSq float32) bool {
	if e.altitude.IsSubmerged() {
		return distSq <= rangeSq/4
	}
	return true
}
