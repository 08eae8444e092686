package bot

import (
	"github.com/chewxy/math32"
	"github.com/lab1702/seabots/game"
)

// steering accumulates a weighted sum of direction vectors. The direction of
// the sum is the heading the bot will steer toward.
type steering struct {
	sum game.Vec2
}

// attract pulls toward delta, weaker with distance.
func (s *steering) attract(delta game.Vec2, distanceSquared float32) {
	s.sum = s.sum.Add(delta.Div(1 + distanceSquared))
}

// repel pushes away from delta.
func (s *steering) repel(delta game.Vec2, distanceSquared float32) {
	s.attract(delta.Neg(), distanceSquared)
}

// spring replaces the sum with a pull toward (or push away from) delta,
// settling at the desired distance.
func (s *steering) spring(delta game.Vec2, desired float32) {
	displacement := delta.Length() - desired
	s.sum = delta.Mul(displacement / (displacement*displacement + 1))
}

// avoidTerrain probes a ring around pos with the given radius and repels from
// every probe that hits land or the world border.
func (s *steering) avoidTerrain(pos game.Vec2, radius float32, terrain game.Terrain, worldRadius float32) {
	for i := 0; i < TerrainSamples; i++ {
		angle := game.ToAngle(float32(i) * (2 * math32.Pi / TerrainSamples))
		delta := angle.Vec2().Mul(radius)
		if isLandOrBorder(pos.Add(delta), terrain, worldRadius) {
			s.repel(delta, radius*radius)
		}
	}
}

// isLandOrBorder reports whether pos is outside the world or on land. Missing
// terrain data counts as deep water.
func isLandOrBorder(pos game.Vec2, terrain game.Terrain, worldRadius float32) bool {
	if pos.LengthSquared() > worldRadius*worldRadius {
		return true
	}
	alt, ok := terrain.Sample(pos)
	if !ok {
		alt = game.AltitudeMin
	}
	return game.IsLand(alt)
}
