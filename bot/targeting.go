package bot

import (
	"github.com/lab1702/seabots/game"
)

// hostile is the nearest enemy found while scanning contacts.
type hostile struct {
	contact         Contact
	data            *game.EntityData
	distanceSquared float32
}

// firingSolution is the armament chosen to engage a hostile.
type firingSolution struct {
	index     uint8
	target    game.Vec2
	deviation game.Angle
}

// scanContacts steers relative to every contact and returns the nearest
// hostile worth engaging.
func scanContacts(s *steering, player game.PlayerID, self Contact, selfData *game.EntityData, contacts []Contact) (*hostile, bool) {
	var nearest *hostile
	selfPos := self.Transform().Position

	for _, contact := range contacts {
		if contact.ID() == self.ID() {
			continue
		}
		_, data, ok := contactData(contact)
		if !ok {
			continue
		}

		delta := contact.Transform().Position.Sub(selfPos)
		distanceSquared := delta.LengthSquared()
		owner, owned := contact.PlayerID()
		friendly := owned && owner == player

		if data.Kind == game.EntityKindCollectible {
			s.attract(delta, distanceSquared)
		} else if (!friendly || data.Kind == game.EntityKindBoat) && !ramsInto(friendly, data) {
			s.repel(delta, distanceSquared)
		}

		if friendly {
			if data.Kind == game.EntityKindBoat {
				s.spring(delta, selfData.Radius+data.Radius)
			}
			continue
		}

		if !isThreat(s, delta, distanceSquared, data) {
			continue
		}
		if nearest == nil || distanceSquared < nearest.distanceSquared {
			nearest = &hostile{contact: contact, data: data, distanceSquared: distanceSquared}
		}
	}
	return nearest, nearest != nil
}

// ramsInto reports whether an enemy boat should not be repelled from. Rams
// close in on their victims.
func ramsInto(friendly bool, data *game.EntityData) bool {
	return !friendly && data.Kind == game.EntityKindBoat && data.SubKind == game.EntitySubKindRam
}

// isThreat reports whether a non-friendly contact can be targeted. Obstacles
// are repelled a second time and never targeted.
func isThreat(s *steering, delta game.Vec2, distanceSquared float32, data *game.EntityData) bool {
	switch data.Kind {
	case game.EntityKindBoat, game.EntityKindAircraft:
		return true
	case game.EntityKindWeapon:
		return data.SubKind == game.EntitySubKindMissile
	case game.EntityKindObstacle:
		s.repel(delta, distanceSquared)
		return false
	default:
		return false
	}
}

// isRelevant reports whether an armament can harm a target of the given kind
// at the given altitude.
func isRelevant(armament *game.EntityData, target *game.EntityData, altitude game.Altitude) bool {
	switch target.Kind {
	case game.EntityKindAircraft, game.EntityKindWeapon:
		return altitude.IsAirborne() && armament.SubKind == game.EntitySubKindSam
	case game.EntityKindBoat:
		switch armament.SubKind {
		case game.EntitySubKindTorpedo, game.EntitySubKindPlane, game.EntitySubKindHeli, game.EntitySubKindDepthCharge:
			return true
		case game.EntitySubKindRocket, game.EntitySubKindMissile, game.EntitySubKindShell:
			return !altitude.IsSubmerged()
		}
		return false
	default:
		return false
	}
}

// bestFiringSolution picks the ready, relevant armament pointing most
// directly at the target. Ties go to the lowest index.
func bestFiringSolution(self Contact, data *game.EntityData, target *hostile) (firingSolution, bool) {
	reloads := self.Reloads()
	turretAngles := self.TurretAngles()
	selfTransform := self.Transform()
	targetPos := target.contact.Transform().Position
	targetAltitude := target.contact.Altitude()
	bearing := targetPos.Sub(selfTransform.Position).Angle().Sub(selfTransform.Direction)

	best := firingSolution{deviation: game.AngleMax}
	found := false

	for i, armament := range data.Armaments {
		if i >= len(reloads) || reloads[i] > 0 {
			continue
		}

		armamentData := armament.Type.Data()
		if armamentData.Kind != game.EntityKindWeapon && armamentData.Kind != game.EntityKindAircraft {
			continue
		}
		if !isRelevant(armamentData, target.data, targetAltitude) {
			continue
		}

		if ti, ok := armament.Turreted(); ok {
			turret := data.Turrets[ti]
			orientation := turret.Angle
			if ti < len(turretAngles) {
				orientation = turretAngles[ti]
			}
			if !turret.WithinAzimuth(bearing) || !turret.WithinAzimuth(orientation) {
				continue
			}
		}

		transform := selfTransform.Add(data.ArmamentTransform(turretAngles, i))
		deviation := targetPos.Sub(transform.Position).Angle().Sub(transform.Direction).Abs()
		if armament.Vertical || armamentData.Kind == game.EntityKindAircraft {
			deviation = game.AngleZero
		}

		if deviation < best.deviation {
			best = firingSolution{index: uint8(i), target: targetPos, deviation: deviation}
			found = true
		}
	}
	return best, found
}
