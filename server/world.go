package server

import (
	"github.com/google/uuid"
	"github.com/lab1702/seabots/bot"
	"github.com/lab1702/seabots/game"
)

// entity is anything in the world: boats, weapons, aircraft, collectibles and obstacles.
type entity struct {
	id         game.EntityID
	entityType game.EntityType
	owner      *player // nil when unowned
	transform  game.Transform
	velocity   float32 // meters per second along transform.Direction
	altitude   game.Altitude
	damage     game.Ticks
	lifespan   game.Ticks // remaining ticks; zero means unlimited

	// Boats
	reloads        []game.Ticks
	turretAngles   []game.Angle
	guidance       game.Guidance
	altitudeTarget game.Altitude
	aimTarget      *game.Vec2
	active         bool

	// Weapons and aircraft
	target game.Vec2

	removed bool
}

func (e *entity) data() *game.EntityData {
	return e.entityType.Data()
}

func (e *entity) ownerID() (game.PlayerID, bool) {
	if e.owner == nil {
		return 0, false
	}
	return e.owner.id, true
}

// hostileTo reports whether e and o belong to different players. Unowned
// entities are hostile to everyone.
func (e *entity) hostileTo(o *entity) bool {
	return e.owner == nil || o.owner == nil || e.owner != o.owner
}

// setType changes a boat's type, resizing per-armament and per-turret state.
func (e *entity) setType(t game.EntityType) {
	data := t.Data()
	e.entityType = t
	e.reloads = make([]game.Ticks, len(data.Armaments))
	e.turretAngles = make([]game.Angle, len(data.Turrets))
	for i, turret := range data.Turrets {
		e.turretAngles[i] = turret.Angle
	}
}

// player is a bot session in the arena.
type player struct {
	id      game.PlayerID
	session uuid.UUID
	bot     *bot.Bot
	boat    *entity // nil while dead
	score   uint32

	kills  int
	deaths int
	quit   bool
}
