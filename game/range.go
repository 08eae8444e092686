package game

// DefaultRangeSafety is the default safety margin for effective weapon range.
// Targets move and aim is imperfect, so weapons are only worth firing well
// inside their maximum reach.
const DefaultRangeSafety = 0.85

// MaxRange returns the distance a weapon or aircraft covers before its
// lifespan expires.
func MaxRange(d *EntityData) float32 {
	return d.Speed * d.Lifespan.Seconds()
}

// EffectiveRange returns MaxRange scaled by a safety margin.
func EffectiveRange(d *EntityData, safetyMargin float32) float32 {
	return MaxRange(d) * safetyMargin
}

// EffectiveRangeDefault returns the effective range using DefaultRangeSafety.
func EffectiveRangeDefault(d *EntityData) float32 {
	return EffectiveRange(d, DefaultRangeSafety)
}
