package ledger

import (
	"github.com/mjpad/mjledger/pkg/constant"
	"github.com/mjpad/mjledger/protocol"
)

// 港式计分: 查表折底分, 出铳全包, 自摸三家各付 base*倍数
func scoreHongkong(rules *Ruleset, out *protocol.RoundOutcome) Deltas {
	var deltas Deltas

	base := rules.BasePoints(aggregateUnit(out))

	if out.SelfDraw {
		per := roundHalfUp(float64(base) * rules.SelfDrawMultiplier)
		pot := 0
		for seat := 0; seat < constant.SeatCount; seat++ {
			if containsSeat(out.Winners, seat) {
				continue
			}
			deltas[seat] -= per
			pot += per
		}
		splitAmongWinners(&deltas, out.Winners, pot)
		return deltas
	}

	//一炮多响时输家只付一份, 赢家均分
	deltas[out.Loser] -= base
	splitAmongWinners(&deltas, out.Winners, base)
	return deltas
}
