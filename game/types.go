package game

import (
	"time"
)

// Constants for the arena simulation
const (
	// Simulation timing
	TicksPerSecond = 10
	TickPeriod     = time.Second / TicksPerSecond

	// MaxBoatLevel is the highest boat level present in EntityTable.
	MaxBoatLevel = 5
)

// PlayerID identifies a player (human or bot) for the lifetime of their session.
type PlayerID uint32

// EntityID identifies an entity in the world. Zero is never assigned.
type EntityID uint32

const EntityIDInvalid EntityID = 0

// Ticks counts simulation ticks. Damage, reloads and lifespans are measured in ticks.
type Ticks uint16

// Seconds converts ticks to seconds.
func (t Ticks) Seconds() float32 {
	return float32(t) / TicksPerSecond
}

// TicksFromSeconds rounds seconds to the nearest whole tick.
func TicksFromSeconds(s float32) Ticks {
	return Ticks(s*TicksPerSecond + 0.5)
}

// Altitude is the vertical band of an entity: negative is underwater, positive is airborne.
type Altitude float32

const (
	AltitudeMin  Altitude = -1
	AltitudeZero Altitude = 0
	AltitudeMax  Altitude = 1

	// SandLevel is the terrain altitude at and above which a position counts as land.
	SandLevel Altitude = 0
)

func (a Altitude) IsSubmerged() bool { return a < AltitudeZero }

func (a Altitude) IsAirborne() bool { return a > AltitudeZero }

// EntityKind is the broad classification of an entity type.
type EntityKind uint8

const (
	EntityKindInvalid EntityKind = iota
	EntityKindBoat
	EntityKindWeapon
	EntityKindAircraft
	EntityKindCollectible
	EntityKindObstacle
)

var entityKindNames = [...]string{
	EntityKindInvalid:     "invalid",
	EntityKindBoat:        "boat",
	EntityKindWeapon:      "weapon",
	EntityKindAircraft:    "aircraft",
	EntityKindCollectible: "collectible",
	EntityKindObstacle:    "obstacle",
}

func (k EntityKind) String() string {
	if int(k) < len(entityKindNames) {
		return entityKindNames[k]
	}
	return "invalid"
}

// EntitySubKind refines EntityKind.
type EntitySubKind uint8

const (
	EntitySubKindInvalid EntitySubKind = iota

	// Boats
	EntitySubKindDredger
	EntitySubKindMtb
	EntitySubKindRam
	EntitySubKindSubmarine
	EntitySubKindDestroyer
	EntitySubKindCruiser
	EntitySubKindBattleship
	EntitySubKindCarrier

	// Weapons
	EntitySubKindTorpedo
	EntitySubKindDepthCharge
	EntitySubKindSam
	EntitySubKindRocket
	EntitySubKindMissile
	EntitySubKindShell

	// Aircraft
	EntitySubKindPlane
	EntitySubKindHeli

	// Collectibles
	EntitySubKindBarrel
	EntitySubKindCoin
	EntitySubKindScrap

	// Obstacles
	EntitySubKindPlatform
	EntitySubKindBuoy
)

var entitySubKindNames = [...]string{
	EntitySubKindInvalid:     "invalid",
	EntitySubKindDredger:     "dredger",
	EntitySubKindMtb:         "mtb",
	EntitySubKindRam:         "ram",
	EntitySubKindSubmarine:   "submarine",
	EntitySubKindDestroyer:   "destroyer",
	EntitySubKindCruiser:     "cruiser",
	EntitySubKindBattleship:  "battleship",
	EntitySubKindCarrier:     "carrier",
	EntitySubKindTorpedo:     "torpedo",
	EntitySubKindDepthCharge: "depthCharge",
	EntitySubKindSam:         "sam",
	EntitySubKindRocket:      "rocket",
	EntitySubKindMissile:     "missile",
	EntitySubKindShell:       "shell",
	EntitySubKindPlane:       "plane",
	EntitySubKindHeli:        "heli",
	EntitySubKindBarrel:      "barrel",
	EntitySubKindCoin:        "coin",
	EntitySubKindScrap:       "scrap",
	EntitySubKindPlatform:    "platform",
	EntitySubKindBuoy:        "buoy",
}

func (s EntitySubKind) String() string {
	if int(s) < len(entitySubKindNames) {
		return entitySubKindNames[s]
	}
	return "invalid"
}

// Armament is a weapon or aircraft slot on a boat.
type Armament struct {
	Type     EntityType
	Turret   int   // index into EntityData.Turrets, -1 if fixed to the hull
	Vertical bool  // launched vertically; needs no bearing alignment
	Position Vec2  // relative to the turret if turreted, else to the hull
	Angle    Angle // relative to the turret if turreted, else to the hull
}

// Turreted returns the turret index of a turret-mounted armament.
func (a Armament) Turreted() (int, bool) {
	return a.Turret, a.Turret >= 0
}

// Turret is a rotating mount on a boat.
type Turret struct {
	Position Vec2
	Angle    Angle // rest orientation relative to the hull
	Azimuth  Angle // half-width of the allowed arc around Angle; AngleMax means unrestricted
}

// WithinAzimuth reports whether a hull-relative angle lies inside the turret's arc.
func (t Turret) WithinAzimuth(a Angle) bool {
	if t.Azimuth >= AngleMax {
		return true
	}
	return a.Sub(t.Angle).Abs() <= t.Azimuth
}

// EntityData holds the static properties of each entity type
type EntityData struct {
	Label   string
	Kind    EntityKind
	SubKind EntitySubKind
	Level   uint8 // boats only
	NPCOnly bool  // only bots may spawn or upgrade into this type

	Length float32 // meters
	Width  float32 // meters
	Radius float32 // derived from Length and Width
	Speed  float32 // meters per second

	MaxHealth Ticks // boats: damage ticks survivable
	Damage    Ticks // weapons: damage dealt on hit
	Reload    Ticks // weapons and aircraft: reload time of the armament slot
	Lifespan  Ticks // weapons and aircraft: ticks before expiry

	Armaments []Armament
	Turrets   []Turret
}

// ArmamentTransform returns the transform of armament i relative to the hull,
// given the current turret angles.
func (d *EntityData) ArmamentTransform(turretAngles []Angle, i int) Transform {
	a := d.Armaments[i]
	t := Transform{Position: a.Position, Direction: a.Angle}
	if ti, ok := a.Turreted(); ok {
		turret := d.Turrets[ti]
		angle := turret.Angle
		if ti < len(turretAngles) {
			angle = turretAngles[ti]
		}
		t = Transform{Position: turret.Position, Direction: angle}.Add(t)
	}
	return t
}
