package game

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
)

var (
	// ErrNoSpawnOptions means the entity table has no boat a bot could spawn as.
	ErrNoSpawnOptions = errors.New("there must be at least one entity type to spawn as")
	// ErrUnknownEntityType is returned when parsing an entity type name fails.
	ErrUnknownEntityType = errors.New("unknown entity type")
)

// EntityType indexes EntityTable.
type EntityType uint8

const (
	EntityTypeInvalid EntityType = iota

	// Boats
	EntityTypeDredger
	EntityTypeFairmile
	EntityTypeOlympias
	EntityTypeTypeVIIC
	EntityTypeFletcher
	EntityTypeYasen
	EntityTypeKirov
	EntityTypeIowa
	EntityTypeEssex

	// Weapons
	EntityTypeMark18
	EntityTypeMark9
	EntityTypeSeaSparrow
	EntityTypeRbu6000
	EntityTypeHarpoon
	EntityTypeShell127mm
	EntityTypeShell406mm

	// Aircraft
	EntityTypeAvenger
	EntityTypeSeahawk

	// Collectibles
	EntityTypeBarrel
	EntityTypeCoin
	EntityTypeScrap

	// Obstacles
	EntityTypeOilPlatform
	EntityTypeBuoy

	entityTypeCount
)

func fixed(t EntityType, x, y float32, deg float32) Armament {
	return Armament{Type: t, Turret: -1, Position: Vec2{X: x, Y: y}, Angle: FromDegrees(deg)}
}

func vertical(t EntityType, x, y float32) Armament {
	return Armament{Type: t, Turret: -1, Vertical: true, Position: Vec2{X: x, Y: y}}
}

func turreted(t EntityType, turret int, x, y float32) Armament {
	return Armament{Type: t, Turret: turret, Position: Vec2{X: x, Y: y}}
}

func mount(x float32, deg float32, azimuthDeg float32) Turret {
	azimuth := AngleMax
	if azimuthDeg < 180 {
		azimuth = FromDegrees(azimuthDeg)
	}
	return Turret{Position: Vec2{X: x}, Angle: FromDegrees(deg), Azimuth: azimuth}
}

// EntityTable is the static, read-only entity data. Index with EntityType.
var EntityTable = [entityTypeCount]EntityData{
	EntityTypeDredger: {
		Label: "Dredger", Kind: EntityKindBoat, SubKind: EntitySubKindDredger, Level: 1, NPCOnly: true,
		Length: 40, Width: 12, Speed: 8, MaxHealth: 30,
	},
	EntityTypeFairmile: {
		Label: "Fairmile", Kind: EntityKindBoat, SubKind: EntitySubKindMtb, Level: 1,
		Length: 34, Width: 5.5, Speed: 15, MaxHealth: 20,
		Armaments: []Armament{
			fixed(EntityTypeMark18, 4, 2, 0),
			fixed(EntityTypeMark18, 4, -2, 0),
		},
	},
	EntityTypeOlympias: {
		Label: "Olympias", Kind: EntityKindBoat, SubKind: EntitySubKindRam, Level: 1,
		Length: 37, Width: 5.5, Speed: 12, MaxHealth: 35,
	},
	EntityTypeTypeVIIC: {
		Label: "Type VIIC", Kind: EntityKindBoat, SubKind: EntitySubKindSubmarine, Level: 2,
		Length: 67, Width: 6.2, Speed: 9, MaxHealth: 40,
		Armaments: []Armament{
			fixed(EntityTypeMark18, 30, 1, 0),
			fixed(EntityTypeMark18, 30, -1, 0),
			fixed(EntityTypeMark18, 30, 0.5, 0),
			fixed(EntityTypeMark18, -30, 0, 180),
		},
	},
	EntityTypeFletcher: {
		Label: "Fletcher", Kind: EntityKindBoat, SubKind: EntitySubKindDestroyer, Level: 3,
		Length: 115, Width: 12, Speed: 18, MaxHealth: 60,
		Turrets: []Turret{
			mount(35, 0, 150),
			mount(-40, 180, 150),
			mount(0, 90, 60),
		},
		Armaments: []Armament{
			turreted(EntityTypeShell127mm, 0, 2, 0),
			turreted(EntityTypeShell127mm, 1, 2, 0),
			turreted(EntityTypeMark18, 2, 0, 1),
			turreted(EntityTypeMark18, 2, 0, -1),
			fixed(EntityTypeMark9, -55, 0, 180),
		},
	},
	EntityTypeYasen: {
		Label: "Yasen", Kind: EntityKindBoat, SubKind: EntitySubKindSubmarine, Level: 4,
		Length: 139, Width: 13, Speed: 16, MaxHealth: 80,
		Armaments: []Armament{
			fixed(EntityTypeMark18, 60, 2, 0),
			fixed(EntityTypeMark18, 60, -2, 0),
			vertical(EntityTypeHarpoon, 10, 0),
			vertical(EntityTypeHarpoon, 5, 0),
		},
	},
	EntityTypeKirov: {
		Label: "Kirov", Kind: EntityKindBoat, SubKind: EntitySubKindCruiser, Level: 4,
		Length: 252, Width: 28, Speed: 16, MaxHealth: 110,
		Turrets: []Turret{
			mount(-90, 180, 160),
		},
		Armaments: []Armament{
			turreted(EntityTypeShell127mm, 0, 4, 0),
			vertical(EntityTypeSeaSparrow, 60, 0),
			vertical(EntityTypeSeaSparrow, 55, 0),
			vertical(EntityTypeHarpoon, 30, 0),
			vertical(EntityTypeHarpoon, 25, 0),
			fixed(EntityTypeRbu6000, 90, 0, 0),
		},
	},
	EntityTypeIowa: {
		Label: "Iowa", Kind: EntityKindBoat, SubKind: EntitySubKindBattleship, Level: 5,
		Length: 270, Width: 33, Speed: 17, MaxHealth: 160,
		Turrets: []Turret{
			mount(70, 0, 150),
			mount(40, 0, 150),
			mount(-70, 180, 150),
		},
		Armaments: []Armament{
			turreted(EntityTypeShell406mm, 0, 10, 0),
			turreted(EntityTypeShell406mm, 1, 10, 0),
			turreted(EntityTypeShell406mm, 2, 10, 0),
			vertical(EntityTypeSeaSparrow, 0, 10),
			vertical(EntityTypeSeaSparrow, 0, -10),
		},
	},
	EntityTypeEssex: {
		Label: "Essex", Kind: EntityKindBoat, SubKind: EntitySubKindCarrier, Level: 5,
		Length: 250, Width: 45, Speed: 15, MaxHealth: 140,
		Armaments: []Armament{
			fixed(EntityTypeAvenger, 60, 0, 0),
			fixed(EntityTypeAvenger, 40, 0, 0),
			fixed(EntityTypeSeahawk, -60, 10, 0),
			vertical(EntityTypeSeaSparrow, -100, 15),
		},
	},

	EntityTypeMark18: {
		Label: "Mark 18", Kind: EntityKindWeapon, SubKind: EntitySubKindTorpedo,
		Length: 6.2, Width: 0.5, Speed: 15, Damage: 12, Reload: 80, Lifespan: 200,
	},
	EntityTypeMark9: {
		Label: "Mark 9", Kind: EntityKindWeapon, SubKind: EntitySubKindDepthCharge,
		Length: 1, Width: 1, Speed: 2, Damage: 20, Reload: 100, Lifespan: 40,
	},
	EntityTypeSeaSparrow: {
		Label: "Sea Sparrow", Kind: EntityKindWeapon, SubKind: EntitySubKindSam,
		Length: 3.6, Width: 0.2, Speed: 120, Damage: 8, Reload: 60, Lifespan: 40,
	},
	EntityTypeRbu6000: {
		Label: "RBU-6000", Kind: EntityKindWeapon, SubKind: EntitySubKindRocket,
		Length: 1.8, Width: 0.2, Speed: 60, Damage: 10, Reload: 70, Lifespan: 30,
	},
	EntityTypeHarpoon: {
		Label: "Harpoon", Kind: EntityKindWeapon, SubKind: EntitySubKindMissile,
		Length: 4.6, Width: 0.3, Speed: 80, Damage: 25, Reload: 150, Lifespan: 60,
	},
	EntityTypeShell127mm: {
		Label: "127mm", Kind: EntityKindWeapon, SubKind: EntitySubKindShell,
		Length: 0.6, Width: 0.13, Speed: 200, Damage: 6, Reload: 25, Lifespan: 12,
	},
	EntityTypeShell406mm: {
		Label: "406mm", Kind: EntityKindWeapon, SubKind: EntitySubKindShell,
		Length: 1.8, Width: 0.4, Speed: 250, Damage: 30, Reload: 90, Lifespan: 16,
	},

	EntityTypeAvenger: {
		Label: "Avenger", Kind: EntityKindAircraft, SubKind: EntitySubKindPlane,
		Length: 12, Width: 16, Speed: 75, Damage: 20, Reload: 200, Lifespan: 300,
	},
	EntityTypeSeahawk: {
		Label: "Seahawk", Kind: EntityKindAircraft, SubKind: EntitySubKindHeli,
		Length: 20, Width: 16, Speed: 45, Damage: 15, Reload: 250, Lifespan: 400,
	},

	EntityTypeBarrel: {
		Label: "Barrel", Kind: EntityKindCollectible, SubKind: EntitySubKindBarrel,
		Length: 2, Width: 2, Lifespan: 600,
	},
	EntityTypeCoin: {
		Label: "Coin", Kind: EntityKindCollectible, SubKind: EntitySubKindCoin,
		Length: 2, Width: 2, Lifespan: 600,
	},
	EntityTypeScrap: {
		Label: "Scrap", Kind: EntityKindCollectible, SubKind: EntitySubKindScrap,
		Length: 3, Width: 3, Lifespan: 300,
	},

	EntityTypeOilPlatform: {
		Label: "Oil Platform", Kind: EntityKindObstacle, SubKind: EntitySubKindPlatform,
		Length: 90, Width: 90,
	},
	EntityTypeBuoy: {
		Label: "Buoy", Kind: EntityKindObstacle, SubKind: EntitySubKindBuoy,
		Length: 3, Width: 3,
	},
}

var entityTypesByName = map[string]EntityType{}

func init() {
	for i := range EntityTable {
		d := &EntityTable[i]
		d.Radius = math32.Hypot(d.Length, d.Width) / 2
		if i != int(EntityTypeInvalid) {
			entityTypesByName[d.Label] = EntityType(i)
		}
	}
}

// Data returns the static data of t. Invalid types return the zero entry.
func (t EntityType) Data() *EntityData {
	if t >= entityTypeCount {
		return &EntityTable[EntityTypeInvalid]
	}
	return &EntityTable[t]
}

// Valid reports whether t refers to a real entry in EntityTable.
func (t EntityType) Valid() bool {
	return t > EntityTypeInvalid && t < entityTypeCount
}

func (t EntityType) String() string {
	if !t.Valid() {
		return "Invalid"
	}
	return EntityTable[t].Label
}

// MarshalText encodes t as its label.
func (t EntityType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText decodes a label produced by MarshalText.
func (t *EntityType) UnmarshalText(b []byte) error {
	parsed, err := ParseEntityType(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseEntityType looks up an entity type by label.
func ParseEntityType(label string) (EntityType, error) {
	if t, ok := entityTypesByName[label]; ok {
		return t, nil
	}
	return EntityTypeInvalid, fmt.Errorf("%w: %q", ErrUnknownEntityType, label)
}

// LevelToScore returns the score needed to upgrade to a boat of the given level.
func LevelToScore(level uint8) uint32 {
	if level <= 1 {
		return 0
	}
	l := uint32(level)
	return l * l * 10
}

// SpawnOptions returns the boat types a player may spawn as. NPC-only
// types are included only for bots.
func SpawnOptions(bot bool) []EntityType {
	var options []EntityType
	for t := EntityTypeInvalid + 1; t < entityTypeCount; t++ {
		d := &EntityTable[t]
		if d.Kind == EntityKindBoat && d.Level == 1 && (bot || !d.NPCOnly) {
			options = append(options, t)
		}
	}
	return options
}

// UpgradeOptions returns the boat types a boat of type t may upgrade into
// with the given score.
func (t EntityType) UpgradeOptions(score uint32, bot bool) []EntityType {
	current := t.Data()
	if current.Kind != EntityKindBoat {
		return nil
	}
	next := current.Level + 1
	if score < LevelToScore(next) {
		return nil
	}

	var options []EntityType
	for u := EntityTypeInvalid + 1; u < entityTypeCount; u++ {
		d := &EntityTable[u]
		if d.Kind == EntityKindBoat && d.Level == next && (bot || !d.NPCOnly) {
			options = append(options, u)
		}
	}
	return options
}

// CanUpgradeTo reports whether t may upgrade into u with the given score.
func (t EntityType) CanUpgradeTo(u EntityType, score uint32, bot bool) bool {
	for _, option := range t.UpgradeOptions(score, bot) {
		if option == u {
			return true
		}
	}
	return false
}

// ValidateTables checks the static data for misconfiguration that would
// otherwise surface mid-game.
func ValidateTables() error {
	if len(SpawnOptions(true)) == 0 {
		return ErrNoSpawnOptions
	}
	for t := EntityTypeInvalid + 1; t < entityTypeCount; t++ {
		d := &EntityTable[t]
		if d.Kind == EntityKindBoat && (d.Level < 1 || d.Level > MaxBoatLevel) {
			return fmt.Errorf("%s: level %d out of range [1, %d]", d.Label, d.Level, MaxBoatLevel)
		}
		for i, a := range d.Armaments {
			if !a.Type.Valid() {
				return fmt.Errorf("%s: armament %d has invalid type", d.Label, i)
			}
			if ti, ok := a.Turreted(); ok && ti >= len(d.Turrets) {
				return fmt.Errorf("%s: armament %d references missing turret %d", d.Label, i, ti)
			}
		}
	}
	return nil
}
