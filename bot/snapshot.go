package bot

import (
	"github.com/lab1702/seabots/game"
)

//go:generate go tool mockgen -destination=./mocks/snapshot_mock.go -package=mocks . Snapshot,Contact
//go:generate go tool mockgen -destination=./mocks/terrain_mock.go -package=mocks github.com/lab1702/seabots/game Terrain

// Snapshot is the read-only view of the world given to a bot each tick.
type Snapshot interface {
	// PlayerID is the id of the player the bot controls.
	PlayerID() game.PlayerID
	// Contacts lists visible entities. When the player's boat is alive it
	// comes first.
	Contacts() []Contact
	Terrain() game.Terrain
	WorldRadius() float32
	Score() uint32
}

// Contact is a sensed entity.
type Contact interface {
	ID() game.EntityID
	// PlayerID is the owner, if any.
	PlayerID() (game.PlayerID, bool)
	// EntityType is false when the sensor could not identify the entity.
	EntityType() (game.EntityType, bool)
	Transform() game.Transform
	Altitude() game.Altitude
	Damage() game.Ticks
	// Reloads is indexed like the entity's armaments. Zero means ready.
	Reloads() []game.Ticks
	// TurretAngles is indexed like the entity's turrets, relative to the hull.
	TurretAngles() []game.Angle
}

// contactData resolves the static data of c. Contacts of unknown type are
// skipped by callers.
func contactData(c Contact) (game.EntityType, *game.EntityData, bool) {
	t, ok := c.EntityType()
	if !ok || !t.Valid() {
		return game.EntityTypeInvalid, nil, false
	}
	return t, t.Data(), true
}
