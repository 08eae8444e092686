package server

import (
	"github.com/lab1702/seabots/game"
)

// logFireDecision logs weapon launch decisions at debug level
func (a *Arena) logFireDecision(p *player, weapon game.EntityType, decision, reason string, dist float32) {
	a.logger.Debug().
		Uint32("player", uint32(p.id)).
		Stringer("weapon", weapon).
		Str("decision", decision).
		Float32("dist", dist).
		Float32("effectiveRange", game.EffectiveRangeDefault(weapon.Data())).
		Str("reason", reason).
		Msg("fire decision")
}
