package ledger

import (
	"github.com/mjpad/mjledger/pkg/constant"
	"github.com/mjpad/mjledger/protocol"
)

const (
	defaultFu = 30

	riichiManganBase    = 2000
	riichiHanemanBase   = 3000
	riichiBaimanBase    = 4000
	riichiSanbaimanBase = 6000
	riichiYakumanBase   = 8000

	//本场: 荣和点炮者一次付300, 自摸每家付100
	honbaRonBonus   = 300
	honbaTsumoBonus = 100
)

func roundUp100(v int) int {
	return (v + 99) / 100 * 100
}

// riichiBase 符*2^(番+2)进百, 满贯以上直接取固定底
func riichiBase(han, fu int) int {
	if fu <= 0 {
		fu = defaultFu
	}
	if han < 0 {
		han = 0
	}

	switch {
	case han >= 13:
		return riichiYakumanBase
	case han >= 11:
		return riichiSanbaimanBase
	case han >= 8:
		return riichiBaimanBase
	case han >= 6:
		return riichiHanemanBase
	case han == 5:
		return riichiManganBase
	}

	base := fu * (1 << uint(2+han))
	if base > riichiManganBase { //切上满贯之前, 超过2000一律按满贯
		return riichiManganBase
	}
	return roundUp100(base)
}

// 日麻计分: 庄家荣和6倍/自摸每家2倍, 闲家荣和4倍/自摸庄2闲1
func scoreRiichi(out *protocol.RoundOutcome, dealer, repeat int) Deltas {
	var deltas Deltas

	base := riichiBase(aggregateUnit(out), out.Fu)

	if out.SelfDraw {
		winner := out.Winners[0]
		for seat := 0; seat < constant.SeatCount; seat++ {
			if seat == winner {
				continue
			}
			pay := roundUp100(base)
			if winner == dealer || seat == dealer {
				pay = roundUp100(base * 2)
			}
			pay += honbaTsumoBonus * repeat
			deltas[seat] -= pay
			deltas[winner] += pay
		}
		return deltas
	}

	//一炮双响各自计算, 本场只给座次最小的赢家
	first := out.Winners[0]
	for _, w := range out.Winners {
		if w < first {
			first = w
		}
	}
	for _, w := range out.Winners {
		total := base * 4
		if w == dealer {
			total = base * 6
		}
		if w == first {
			total += honbaRonBonus * repeat
		}
		deltas[out.Loser] -= total
		deltas[w] += total
	}
	return deltas
}
