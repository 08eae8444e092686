package server

import (
	"context"

	"github.com/chewxy/math32"
	"github.com/lab1702/seabots/game"
)

// Reasons a command is dropped
const (
	rejectDead      = "dead"
	rejectAlive     = "alive"
	rejectType      = "type"
	rejectIndex     = "index"
	rejectReloading = "reloading"
	rejectAzimuth   = "azimuth"
	rejectNoWater   = "no_water"
)

// spawnAttempts bounds the search for open water when spawning.
const spawnAttempts = 32

// applyCommands executes a player's commands in order. Invalid commands are
// logged and dropped rather than failing the tick.
func (a *Arena) applyCommands(ctx context.Context, p *player, cmds []game.Command) {
	for _, c := range cmds {
		a.metrics.command(ctx, c.Type())

		var reason string
		switch cmd := c.(type) {
		case game.Spawn:
			reason = a.applySpawn(p, cmd)
		case game.Control:
			reason = a.applyControl(p, cmd)
		case game.Fire:
			reason = a.applyFire(p, cmd)
		case game.Upgrade:
			reason = a.applyUpgrade(p, cmd)
		}

		if reason != "" {
			a.metrics.reject(ctx, c.Type(), reason)
			a.logger.Debug().
				Uint32("player", uint32(p.id)).
				Str("command", c.Type()).
				Str("reason", reason).
				Msg("Dropping command")
		}
	}
}

func (a *Arena) applySpawn(p *player, cmd game.Spawn) string {
	if p.boat != nil {
		return rejectAlive
	}
	allowed := false
	for _, option := range game.SpawnOptions(true) {
		if option == cmd.EntityType {
			allowed = true
			break
		}
	}
	if !allowed {
		return rejectType
	}

	data := cmd.EntityType.Data()
	pos, ok := a.findWater(data.Radius)
	if !ok {
		return rejectNoWater
	}

	boat := a.newEntity(cmd.EntityType, p, game.Transform{
		Position:  pos,
		Direction: game.Angle((a.rng.Float32()*2 - 1) * math32.Pi),
	})
	boat.setType(cmd.EntityType)
	boat.active = true
	boat.guidance.DirectionTarget = boat.transform.Direction
	p.boat = boat

	a.logger.Debug().
		Uint32("player", uint32(p.id)).
		Stringer("boat", cmd.EntityType).
		Msg("Spawned")
	return ""
}

// findWater picks a random point at least clearance away from land and other boats.
func (a *Arena) findWater(clearance float32) (game.Vec2, bool) {
	for i := 0; i < spawnAttempts; i++ {
		pos := game.RandomInDisk(a.rng, a.cfg.WorldRadius*0.8)
		if !a.isWater(pos, clearance) {
			continue
		}
		crowded := false
		for _, e := range a.grid.Nearby(pos, clearance*4) {
			if e.data().Kind == game.EntityKindBoat && e.transform.Position.Distance(pos) < clearance*4 {
				crowded = true
				break
			}
		}
		if !crowded {
			return pos, true
		}
	}
	return game.Vec2{}, false
}

// isWater reports whether a circle around pos is inside the world and free of land.
func (a *Arena) isWater(pos game.Vec2, radius float32) bool {
	if pos.Length()+radius > a.cfg.WorldRadius {
		return false
	}
	for _, p := range []game.Vec2{pos, pos.Add(game.Vec2{X: radius}), pos.Add(game.Vec2{X: -radius}),
		pos.Add(game.Vec2{Y: radius}), pos.Add(game.Vec2{Y: -radius})} {
		if alt, ok := a.terrain.Sample(p); ok && game.IsLand(alt) {
			return false
		}
	}
	return true
}

func (a *Arena) applyControl(p *player, cmd game.Control) string {
	boat := p.boat
	if boat == nil {
		return rejectDead
	}
	data := boat.data()

	if cmd.Guidance != nil {
		boat.guidance = *cmd.Guidance
		boat.guidance.VelocityTarget = clamp32(boat.guidance.VelocityTarget, -data.Speed/3, data.Speed)
	}
	if cmd.AltitudeTarget != nil && data.SubKind == game.EntitySubKindSubmarine {
		boat.altitudeTarget = game.Altitude(clamp32(float32(*cmd.AltitudeTarget), float32(game.AltitudeMin), float32(game.AltitudeZero)))
	}
	if cmd.AimTarget != nil {
		aim := *cmd.AimTarget
		boat.aimTarget = &aim
	} else {
		boat.aimTarget = nil
	}
	boat.active = cmd.Active
	return ""
}

func (a *Arena) applyFire(p *player, cmd game.Fire) string {
	boat := p.boat
	if boat == nil {
		return rejectDead
	}
	data := boat.data()
	i := int(cmd.Index)
	if i >= len(data.Armaments) {
		return rejectIndex
	}
	armament := data.Armaments[i]
	weaponData := armament.Type.Data()

	transform := boat.transform.Add(data.ArmamentTransform(boat.turretAngles, i))
	dist := transform.Position.Distance(cmd.PositionTarget)

	if boat.reloads[i] > 0 {
		a.logFireDecision(p, armament.Type, "REJECT", rejectReloading, dist)
		return rejectReloading
	}
	if ti, ok := armament.Turreted(); ok && !data.Turrets[ti].WithinAzimuth(boat.turretAngles[ti]) {
		a.logFireDecision(p, armament.Type, "REJECT", rejectAzimuth, dist)
		return rejectAzimuth
	}
	direction := transform.Direction
	if !armament.Vertical && weaponData.Kind == game.EntityKindWeapon {
		// Unguided weapons lead the boat nearest the target position.
		if target := a.nearestBoat(cmd.PositionTarget, boat); target != nil {
			direction = leadDirection(transform.Position, target, weaponData.Speed)
		} else {
			direction = cmd.PositionTarget.Sub(transform.Position).Angle()
		}
	} else {
		direction = cmd.PositionTarget.Sub(transform.Position).Angle()
	}

	weapon := a.newEntity(armament.Type, p, game.Transform{Position: transform.Position, Direction: direction})
	weapon.velocity = weaponData.Speed
	weapon.altitude = launchAltitude(weaponData)
	weapon.lifespan = weaponData.Lifespan
	weapon.target = cmd.PositionTarget
	boat.reloads[i] = weaponData.Reload

	reason := "in range"
	if dist > game.EffectiveRangeDefault(weaponData) {
		reason = "beyond effective range"
	}
	a.logFireDecision(p, armament.Type, "FIRE", reason, dist)
	return ""
}

// nearestBoat returns the boat closest to pos, other than exclude, within
// 50 meters of pos.
func (a *Arena) nearestBoat(pos game.Vec2, exclude *entity) *entity {
	const radius = 50
	var best *entity
	bestDistSq := float32(radius * radius)
	for _, e := range a.grid.Nearby(pos, radius) {
		if e == exclude || e.removed || e.data().Kind != game.EntityKindBoat {
			continue
		}
		if d := e.transform.Position.DistanceSquared(pos); d < bestDistSq {
			best, bestDistSq = e, d
		}
	}
	return best
}

// launchAltitude is the altitude a weapon or aircraft travels at.
func launchAltitude(d *game.EntityData) game.Altitude {
	switch d.SubKind {
	case game.EntitySubKindTorpedo:
		return -0.1
	case game.EntitySubKindDepthCharge:
		return -0.5
	case game.EntitySubKindSam, game.EntitySubKindPlane, game.EntitySubKindHeli:
		return 0.5
	case game.EntitySubKindMissile:
		return 0.25
	default:
		return game.AltitudeZero
	}
}

func (a *Arena) applyUpgrade(p *player, cmd game.Upgrade) string {
	boat := p.boat
	if boat == nil {
		return rejectDead
	}
	if !boat.entityType.CanUpgradeTo(cmd.EntityType, p.score, true) {
		return rejectType
	}

	oldMax := boat.data().MaxHealth
	newMax := cmd.EntityType.Data().MaxHealth
	boat.damage = game.Ticks(uint32(boat.damage) * uint32(newMax) / uint32(oldMax))
	boat.setType(cmd.EntityType)

	a.logger.Info().
		Uint32("player", uint32(p.id)).
		Stringer("boat", cmd.EntityType).
		Uint32("score", p.score).
		Msg("Upgraded")
	return ""
}

func clamp32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
