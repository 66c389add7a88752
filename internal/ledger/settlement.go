package ledger

import (
	"math"
	"sort"

	"github.com/mjpad/mjledger/pkg/constant"
	"github.com/mjpad/mjledger/protocol"
)

// 吸收货币换算的舍入残渣
const settleEpsilon = 1e-6

type SettleOptions struct {
	PointsPerUnit float64 //多少分折合1个货币单位
	Granularity   float64 //金额舍入粒度, 如0.01元或1元
}

func (o *SettleOptions) normalize() {
	if o.PointsPerUnit <= 0 {
		o.PointsPerUnit = 1
	}
	if o.Granularity <= 0 {
		o.Granularity = 0.01
	}
}

func roundTo(v, granularity float64) float64 {
	return math.Floor(v/granularity+0.5) * granularity
}

// Settle 终局结算: 折算货币, 排名, 贪心轧差出最少笔转账
func Settle(players [constant.SeatCount]Player, scores [constant.SeatCount]int, opt SettleOptions) *protocol.Settlement {
	opt.normalize()

	st := &protocol.Settlement{}
	for seat, p := range players {
		st.Rows[seat] = protocol.SettlementRow{
			Seat:     seat,
			Uid:      p.Uid,
			Nickname: p.Nickname,
			Points:   scores[seat],
			Money:    roundTo(float64(scores[seat])/opt.PointsPerUnit, opt.Granularity),
		}
	}

	//按分数降序排名, 同分按座次
	order := []int{0, 1, 2, 3}
	sort.Slice(order, func(i, j int) bool {
		a, b := order[i], order[j]
		if scores[a] != scores[b] {
			return scores[a] > scores[b]
		}
		return a < b
	})
	for rank, seat := range order {
		st.Rows[seat].Rank = rank + 1
	}

	st.Payments = net(st.Rows)
	return st
}

type remainder struct {
	seat   int
	amount float64 //始终为正
}

// 每轮取双方余额最大者对冲, 转账笔数不超过 赢家数+输家数-1
func net(rows [constant.SeatCount]protocol.SettlementRow) []protocol.Payment {
	var winners, losers []*remainder
	for _, row := range rows {
		switch {
		case row.Money > settleEpsilon:
			winners = append(winners, &remainder{seat: row.Seat, amount: row.Money})
		case row.Money < -settleEpsilon:
			losers = append(losers, &remainder{seat: row.Seat, amount: -row.Money})
		}
	}

	payments := make([]protocol.Payment, 0, len(winners)+len(losers))
	for len(winners) > 0 && len(losers) > 0 {
		w := largest(winners)
		l := largest(losers)

		amount := math.Min(winners[w].amount, losers[l].amount)
		payments = append(payments, protocol.Payment{
			From:   losers[l].seat,
			To:     winners[w].seat,
			Amount: amount,
		})

		winners[w].amount -= amount
		losers[l].amount -= amount
		if winners[w].amount < settleEpsilon {
			winners = append(winners[:w], winners[w+1:]...)
		}
		if losers[l].amount < settleEpsilon {
			losers = append(losers[:l], losers[l+1:]...)
		}
	}
	return payments
}

func largest(rs []*remainder) int {
	idx := 0
	for i, r := range rs {
		if r.amount > rs[idx].amount {
			idx = i
		}
	}
	return idx
}
