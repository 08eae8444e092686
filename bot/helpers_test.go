package bot

import (
	"math/rand/v2"

	"github.com/lab1702/seabots/game"
)

// testContact is a plain Contact for table tests.
type testContact struct {
	id           game.EntityID
	player       game.PlayerID
	owned        bool
	entityType   game.EntityType
	unknown      bool
	transform    game.Transform
	altitude     game.Altitude
	damage       game.Ticks
	reloads      []game.Ticks
	turretAngles []game.Angle
}

func (c *testContact) ID() game.EntityID                   { return c.id }
func (c *testContact) PlayerID() (game.PlayerID, bool)     { return c.player, c.owned }
func (c *testContact) EntityType() (game.EntityType, bool) { return c.entityType, !c.unknown }
func (c *testContact) Transform() game.Transform           { return c.transform }
func (c *testContact) Altitude() game.Altitude             { return c.altitude }
func (c *testContact) Damage() game.Ticks                  { return c.damage }
func (c *testContact) Reloads() []game.Ticks               { return c.reloads }
func (c *testContact) TurretAngles() []game.Angle          { return c.turretAngles }

// newBoatContact creates an owned boat with all armaments ready and turrets at rest.
func newBoatContact(id game.EntityID, player game.PlayerID, t game.EntityType, pos game.Vec2) *testContact {
	data := t.Data()
	angles := make([]game.Angle, len(data.Turrets))
	for i, turret := range data.Turrets {
		angles[i] = turret.Angle
	}
	return &testContact{
		id:           id,
		player:       player,
		owned:        true,
		entityType:   t,
		transform:    game.Transform{Position: pos},
		reloads:      make([]game.Ticks, len(data.Armaments)),
		turretAngles: angles,
	}
}

func newContact(id game.EntityID, t game.EntityType, pos game.Vec2) *testContact {
	return &testContact{id: id, entityType: t, transform: game.Transform{Position: pos}}
}

type terrainFunc func(pos game.Vec2) (game.Altitude, bool)

func (f terrainFunc) Sample(pos game.Vec2) (game.Altitude, bool) { return f(pos) }

type testSnapshot struct {
	player      game.PlayerID
	contacts    []Contact
	terrain     game.Terrain
	worldRadius float32
	score       uint32
}

func (s *testSnapshot) PlayerID() game.PlayerID { return s.player }
func (s *testSnapshot) Contacts() []Contact     { return s.contacts }
func (s *testSnapshot) Terrain() game.Terrain   { return s.terrain }
func (s *testSnapshot) WorldRadius() float32    { return s.worldRadius }
func (s *testSnapshot) Score() uint32           { return s.score }

func newSnapshot(player game.PlayerID, contacts ...Contact) *testSnapshot {
	return &testSnapshot{
		player:      player,
		contacts:    contacts,
		terrain:     game.FlatTerrain{},
		worldRadius: 1e6,
	}
}

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(42, 1024))
}

// commandsOf splits commands by type.
func commandsOf(cmds []game.Command) (control *game.Control, fire *game.Fire, spawn *game.Spawn, upgrade *game.Upgrade) {
	for _, c := range cmds {
		switch v := c.(type) {
		case game.Control:
			control = &v
		case game.Fire:
			fire = &v
		case game.Spawn:
			spawn = &v
		case game.Upgrade:
			upgrade = &v
		}
	}
	return
}
