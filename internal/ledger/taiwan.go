package ledger

import (
	"github.com/mjpad/mjledger/pkg/constant"
	"github.com/mjpad/mjledger/protocol"
)

// 台式计分: 台数*底分, 庄家加番, 连庄按次数拉庄
func scoreTaiwan(rules *Ruleset, out *protocol.RoundOutcome, dealer, repeat int) Deltas {
	var deltas Deltas

	unit := aggregateUnit(out)
	if containsSeat(out.Winners, dealer) {
		unit += rules.DealerBonus
	}
	unit += rules.DealerRepeatBonus * repeat

	points := rules.BasePoints(unit)

	if out.SelfDraw {
		//自摸三家各付全额
		per := points * len(out.Winners)
		payers := 0
		for seat := 0; seat < constant.SeatCount; seat++ {
			if containsSeat(out.Winners, seat) {
				continue
			}
			deltas[seat] -= per
			payers++
		}
		for _, w := range out.Winners {
			deltas[w] += points * payers
		}
		return deltas
	}

	deltas[out.Loser] -= points * len(out.Winners)
	for _, w := range out.Winners {
		deltas[w] += points
	}
	return deltas
}
