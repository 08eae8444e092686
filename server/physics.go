package server

import (
	"context"
	"sort"

	"github.com/chewxy/math32"
	"github.com/lab1702/seabots/game"
)

// Physics constants
const (
	dt = 1.0 / game.TicksPerSecond // seconds per tick

	BoatAcceleration = 3.0  // m/s²
	TurretTurnRate   = 1.2  // rad/s
	GuidedTurnRate   = 1.5  // rad/s for Sams, missiles and aircraft
	DiveRate         = 0.5  // altitude units per second
	BoatTurnFactor   = 40.0 // turn rate in rad/s is this divided by boat length

	CollisionDamage game.Ticks = 1
	RamDamage       game.Ticks = 8
	BarrelRepair    game.Ticks = 5
	SinkingBounty              = 10 // score per level of the sunk boat
)

// collectibleValue is the score a collectible is worth
var collectibleValue = map[game.EntitySubKind]uint32{
	game.EntitySubKindCoin:   5,
	game.EntitySubKindBarrel: 2,
	game.EntitySubKindScrap:  1,
}

// sortedEntities returns live entities ordered by id
func (a *Arena) sortedEntities() []*entity {
	list := make([]*entity, 0, len(a.entities))
	for _, e := range a.entities {
		if !e.removed {
			list = append(list, e)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].id < list[j].id })
	return list
}

// updatePhysics advances every entity by one tick and resolves collisions
func (a *Arena) updatePhysics() {
	for _, e := range a.sortedEntities() {
		switch e.data().Kind {
		case game.EntityKindBoat:
			a.updateBoatPhysics(e)
		case game.EntityKindWeapon, game.EntityKindAircraft:
			a.updateProjectile(e)
		case game.EntityKindCollectible:
			if e.lifespan > 0 {
				e.lifespan--
				if e.lifespan == 0 {
					e.removed = true
				}
			}
		}
	}

	a.grid.Index(a.entities)
	a.resolveCollisions()
	a.removeDead()
	a.replenishCollectibles()
}

// updateBoatPhysics handles movement, diving, turrets and reloads for a single boat
func (a *Arena) updateBoatPhysics(e *entity) {
	data := e.data()

	for i := range e.reloads {
		if e.reloads[i] > 0 {
			e.reloads[i]--
		}
	}

	// Turn toward the desired direction, slower for longer hulls
	maxTurn := clamp32(BoatTurnFactor/data.Length, 0.1, 1.0) * dt
	turn := clamp32(float32(e.guidance.DirectionTarget.Sub(e.transform.Direction)), -maxTurn, maxTurn)
	e.transform.Direction = e.transform.Direction.Add(game.Angle(turn))

	// Accelerate toward the desired speed
	e.velocity += clamp32(e.guidance.VelocityTarget-e.velocity, -BoatAcceleration*dt, BoatAcceleration*dt)

	if data.SubKind == game.EntitySubKindSubmarine {
		e.altitude += game.Altitude(clamp32(float32(e.altitudeTarget-e.altitude), -DiveRate*dt, DiveRate*dt))
	}

	// Move, stopping at land and the world border
	next := e.transform.Position.Add(e.transform.Direction.Vec2().Mul(e.velocity * dt))
	if a.isWater(next, data.Width/2) {
		e.transform.Position = next
	} else {
		e.velocity = 0
	}

	a.aimTurrets(e)
}

// aimTurrets rotates turrets toward the aim target within their arcs,
// or back to rest when there is no target
func (a *Arena) aimTurrets(e *entity) {
	data := e.data()
	for i, turret := range data.Turrets {
		desired := game.AngleZero
		if e.aimTarget != nil {
			pos := e.transform.Add(game.Transform{Position: turret.Position}).Position
			bearing := e.aimTarget.Sub(pos).Angle().Sub(e.transform.Direction)
			desired = bearing.Sub(turret.Angle)
		}
		// Work relative to the rest angle so rotation never crosses the dead arc
		limit := float32(turret.Azimuth)
		target := clamp32(float32(desired), -limit, limit)
		current := float32(e.turretAngles[i].Sub(turret.Angle))
		step := clamp32(target-current, -TurretTurnRate*dt, TurretTurnRate*dt)
		e.turretAngles[i] = turret.Angle.Add(game.Angle(current + step))
	}
}

// isGuided reports whether a projectile steers toward its target after launch
func isGuided(d *game.EntityData) bool {
	switch d.SubKind {
	case game.EntitySubKindSam, game.EntitySubKindMissile, game.EntitySubKindPlane, game.EntitySubKindHeli:
		return true
	}
	return false
}

// updateProjectile moves weapons and aircraft and expires them
func (a *Arena) updateProjectile(e *entity) {
	data := e.data()

	if e.lifespan <= 1 {
		e.removed = true
		return
	}
	e.lifespan--

	if isGuided(data) && e.transform.Position.DistanceSquared(e.target) > 1 {
		maxTurn := float32(GuidedTurnRate * dt)
		turn := clamp32(float32(e.target.Sub(e.transform.Position).Angle().Sub(e.transform.Direction)), -maxTurn, maxTurn)
		e.transform.Direction = e.transform.Direction.Add(game.Angle(turn))
	}

	e.transform.Position = e.transform.Position.Add(e.transform.Direction.Vec2().Mul(e.velocity * dt))

	if e.transform.Position.LengthSquared() > a.cfg.WorldRadius*a.cfg.WorldRadius {
		e.removed = true
		return
	}
	if !e.altitude.IsAirborne() {
		if alt, ok := a.terrain.Sample(e.transform.Position); ok && game.IsLand(alt) {
			e.removed = true
		}
	}
}

// canHit reports whether a weapon or aircraft can damage the target
func canHit(w *game.EntityData, t *entity) bool {
	td := t.data()
	switch w.SubKind {
	case game.EntitySubKindSam:
		return td.Kind == game.EntityKindAircraft ||
			(td.Kind == game.EntityKindWeapon && td.SubKind == game.EntitySubKindMissile)
	case game.EntitySubKindTorpedo, game.EntitySubKindDepthCharge, game.EntitySubKindPlane, game.EntitySubKindHeli:
		return td.Kind == game.EntityKindBoat
	case game.EntitySubKindRocket, game.EntitySubKindMissile, game.EntitySubKindShell:
		return td.Kind == game.EntityKindBoat && !t.altitude.IsSubmerged()
	}
	return false
}

// resolveCollisions applies weapon hits, boat contact damage and pickups
func (a *Arena) resolveCollisions() {
	for _, e := range a.sortedEntities() {
		if e.removed {
			continue
		}
		switch e.data().Kind {
		case game.EntityKindWeapon, game.EntityKindAircraft:
			a.resolveHit(e)
		case game.EntityKindBoat:
			a.resolveBoatContacts(e)
		}
	}
}

func (a *Arena) resolveHit(w *entity) {
	wd := w.data()
	for _, t := range a.grid.Nearby(w.transform.Position, GridCellSize) {
		if t == w || t.removed || !w.hostileTo(t) || !canHit(wd, t) {
			continue
		}
		if t.transform.Position.Distance(w.transform.Position) > t.data().Radius {
			continue
		}

		w.removed = true
		if t.data().Kind == game.EntityKindBoat {
			a.damageBoat(t, wd.Damage, w.owner)
		} else {
			t.removed = true
		}
		return
	}
}

func (a *Arena) resolveBoatContacts(b *entity) {
	bd := b.data()
	for _, o := range a.grid.Nearby(b.transform.Position, GridCellSize) {
		if o == b || o.removed || b.removed {
			continue
		}
		od := o.data()
		dist := o.transform.Position.Distance(b.transform.Position)

		switch od.Kind {
		case game.EntityKindCollectible:
			if dist > bd.Radius {
				continue
			}
			o.removed = true
			if b.owner != nil {
				b.owner.score += collectibleValue[od.SubKind]
			}
			if od.SubKind == game.EntitySubKindBarrel {
				b.damage = game.Repair(b.damage, BarrelRepair)
			}

		case game.EntityKindObstacle:
			if dist < (bd.Width+od.Radius)/2 {
				b.velocity = 0
			}

		case game.EntityKindBoat:
			// Each pair is handled once, from the lower id
			if o.id < b.id || !b.hostileTo(o) || b.altitude.IsSubmerged() != o.altitude.IsSubmerged() {
				continue
			}
			if dist > (bd.Width+od.Width)/2+math32.Min(bd.Length, od.Length)/4 {
				continue
			}
			a.damageBoat(o, contactDamage(bd), b.owner)
			a.damageBoat(b, contactDamage(od), o.owner)
		}
	}
}

// contactDamage is the damage a boat deals by colliding
func contactDamage(d *game.EntityData) game.Ticks {
	if d.SubKind == game.EntitySubKindRam {
		return RamDamage
	}
	return CollisionDamage
}

// damageBoat applies damage and sinks the boat if destroyed
func (a *Arena) damageBoat(b *entity, damage game.Ticks, attacker *player) {
	if b.removed {
		return
	}
	var dead bool
	b.damage, dead = game.ApplyDamage(b.damage, damage, b.data().MaxHealth)
	if dead {
		a.sink(b, attacker)
	}
}

// sink removes a boat, awards the attacker and scatters scrap
func (a *Arena) sink(b *entity, attacker *player) {
	data := b.data()
	b.removed = true
	a.metrics.sinkings.Add(context.Background(), 1)

	victim := b.owner
	if victim != nil {
		victim.boat = nil
		victim.deaths++
		victim.score /= 2
	}
	if attacker != nil && attacker != victim {
		attacker.kills++
		attacker.score += SinkingBounty * uint32(data.Level)
	}

	for i := 0; i < int(data.Level); i++ {
		offset := game.RandomInDisk(a.rng, data.Length/2)
		scrap := a.newEntity(game.EntityTypeScrap, nil, game.Transform{Position: b.transform.Position.Add(offset)})
		scrap.lifespan = game.EntityTypeScrap.Data().Lifespan
	}

	ev := a.logger.Info().Stringer("boat", b.entityType)
	if victim != nil {
		ev = ev.Uint32("player", uint32(victim.id))
	}
	if attacker != nil {
		ev = ev.Uint32("attacker", uint32(attacker.id))
	}
	ev.Msg("Boat sunk")
}

// removeDead deletes removed entities from the world
func (a *Arena) removeDead() {
	for id, e := range a.entities {
		if e.removed {
			if e.owner != nil && e.owner.boat == e {
				e.owner.boat = nil
			}
			delete(a.entities, id)
		}
	}
}

// replenishCollectibles keeps the configured number of collectibles afloat
func (a *Arena) replenishCollectibles() {
	count := 0
	for _, e := range a.entities {
		if e.data().Kind == game.EntityKindCollectible {
			count++
		}
	}
	for ; count < a.cfg.Collectibles; count++ {
		t := game.EntityTypeBarrel
		if a.rng.IntN(2) == 0 {
			t = game.EntityTypeCoin
		}
		pos, ok := a.findWater(t.Data().Radius)
		if !ok {
			return
		}
		c := a.newEntity(t, nil, game.Transform{Position: pos})
		c.lifespan = t.Data().Lifespan
	}
}
