package ledger

import (
	"math"

	"github.com/mjpad/mjledger/pkg/constant"
	"github.com/mjpad/mjledger/pkg/errutil"
	"github.com/mjpad/mjledger/protocol"
)

// Deltas 一局四家的分数变化, 非流局必定零和
type Deltas [constant.SeatCount]int

func (d Deltas) Sum() int {
	sum := 0
	for _, v := range d {
		sum += v
	}
	return sum
}

func validSeat(seat int) bool {
	return seat >= 0 && seat < constant.SeatCount
}

func containsSeat(seats []int, seat int) bool {
	for _, s := range seats {
		if s == seat {
			return true
		}
	}
	return false
}

// aggregateUnit 提供番种明细时以明细求和为准
func aggregateUnit(out *protocol.RoundOutcome) int {
	if len(out.Parts) == 0 {
		return out.Unit
	}
	sum := 0
	for _, p := range out.Parts {
		sum += p.Value
	}
	return sum
}

func validateOutcome(out *protocol.RoundOutcome) error {
	if out.Draw {
		if len(out.Winners) != 0 || out.SelfDraw {
			return errutil.ErrInvalidRoundOutcome
		}
		return nil
	}
	if len(out.Winners) == 0 {
		return errutil.ErrInvalidRoundOutcome
	}
	seen := map[int]bool{}
	for _, w := range out.Winners {
		if !validSeat(w) {
			return errutil.ErrIllegalSeat
		}
		if seen[w] {
			return errutil.ErrInvalidRoundOutcome
		}
		seen[w] = true
	}
	if out.SelfDraw {
		if out.Loser >= 0 {
			return errutil.ErrInvalidRoundOutcome
		}
		return nil
	}
	if !validSeat(out.Loser) {
		return errutil.ErrIllegalSeat
	}
	if seen[out.Loser] {
		return errutil.ErrInvalidRoundOutcome
	}
	return nil
}

// Score 按规则把一局结果折算成四家分数变化, 纯函数
func Score(rules *Ruleset, out *protocol.RoundOutcome, dealer, repeat int) (Deltas, error) {
	var deltas Deltas

	if err := validateOutcome(out); err != nil {
		return deltas, err
	}
	if out.Draw { //流局不动分
		return deltas, nil
	}

	switch rules.Kind {
	case KindTaiwan:
		deltas = scoreTaiwan(rules, out, dealer, repeat)
	case KindJapanese:
		deltas = scoreRiichi(out, dealer, repeat)
	default: //hongkong与custom都走查表
		deltas = scoreHongkong(rules, out)
	}
	return deltas, nil
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// 赢家均分, 除不尽的零头给座次最小的赢家
func splitAmongWinners(deltas *Deltas, winners []int, total int) {
	share := total / len(winners)
	rest := total - share*len(winners)

	first := winners[0]
	for _, w := range winners {
		if w < first {
			first = w
		}
	}
	for _, w := range winners {
		deltas[w] += share
		if w == first {
			deltas[w] += rest
		}
	}
}
