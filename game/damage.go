package game

// ApplyDamage adds damage to a boat's accumulated damage, saturating at
// maxHealth. Returns the new damage and whether the boat is destroyed.
func ApplyDamage(current, damage, maxHealth Ticks) (Ticks, bool) {
	if damage == 0 {
		return current, current >= maxHealth
	}
	total := uint32(current) + uint32(damage)
	if total >= uint32(maxHealth) {
		return maxHealth, true
	}
	return Ticks(total), false
}

// Repair reduces accumulated damage by amount, never below zero.
func Repair(current, amount Ticks) Ticks {
	if amount >= current {
		return 0
	}
	return current - amount
}

// HealthPercent returns the fraction of health remaining in [0, 1].
func HealthPercent(damage, maxHealth Ticks) float32 {
	if maxHealth == 0 {
		return 0
	}
	return 1 - damage.Seconds()/maxHealth.Seconds()
}
