package ledger

import (
	"math"
	"testing"

	"github.com/mjpad/mjledger/pkg/constant"
)

func TestSettleGreedyNetting(t *testing.T) {
	players := testPlayers()
	scores := [constant.SeatCount]int{300, 100, -250, -150}

	st := Settle(players, scores, SettleOptions{PointsPerUnit: 1, Granularity: 1})

	if len(st.Payments) != 3 {
		t.Fatalf("payments = %d, want 3", len(st.Payments))
	}

	var total float64
	for _, p := range st.Payments {
		total += p.Amount
	}
	if math.Abs(total-400) > settleEpsilon {
		t.Fatalf("total transferred = %v, want 400", total)
	}

	//最大赢家对最大输家优先
	first := st.Payments[0]
	if first.From != 2 || first.To != 0 || first.Amount != 250 {
		t.Fatalf("first payment = %+v", first)
	}
}

func TestSettlePaymentsBalanceEachSeat(t *testing.T) {
	players := testPlayers()
	scores := [constant.SeatCount]int{300, 100, -250, -150}

	st := Settle(players, scores, SettleOptions{PointsPerUnit: 1, Granularity: 1})

	var balance [constant.SeatCount]float64
	for _, p := range st.Payments {
		balance[p.From] -= p.Amount
		balance[p.To] += p.Amount
	}
	for seat, row := range st.Rows {
		if math.Abs(balance[seat]-row.Money) > settleEpsilon {
			t.Fatalf("seat %d settled %v, owed %v", seat, balance[seat], row.Money)
		}
	}
}

func TestSettleRanking(t *testing.T) {
	players := testPlayers()
	scores := [constant.SeatCount]int{-10, 40, 40, -70}

	st := Settle(players, scores, SettleOptions{})

	//同分按座次取先
	wantRank := [constant.SeatCount]int{3, 1, 2, 4}
	for seat, row := range st.Rows {
		if row.Rank != wantRank[seat] {
			t.Fatalf("seat %d rank = %d, want %d", seat, row.Rank, wantRank[seat])
		}
	}
}

func TestSettleMoneyConversion(t *testing.T) {
	players := testPlayers()
	scores := [constant.SeatCount]int{125, -125, 0, 0}

	//100分折1元, 精确到分
	st := Settle(players, scores, SettleOptions{PointsPerUnit: 100, Granularity: 0.01})
	if math.Abs(st.Rows[0].Money-1.25) > settleEpsilon {
		t.Fatalf("money = %v, want 1.25", st.Rows[0].Money)
	}

	//粒度1元时四舍五入
	st = Settle(players, scores, SettleOptions{PointsPerUnit: 100, Granularity: 1})
	if math.Abs(st.Rows[0].Money-1) > settleEpsilon {
		t.Fatalf("money = %v, want 1", st.Rows[0].Money)
	}
}

func TestSettleAllEven(t *testing.T) {
	st := Settle(testPlayers(), [constant.SeatCount]int{}, SettleOptions{})
	if len(st.Payments) != 0 {
		t.Fatalf("payments = %v, want none", st.Payments)
	}
	for _, row := range st.Rows {
		if row.Money != 0 {
			t.Fatalf("row = %+v", row)
		}
	}
}

func TestSettlePaymentCountBound(t *testing.T) {
	players := testPlayers()
	cases := [][constant.SeatCount]int{
		{100, -100, 0, 0},
		{50, 50, -50, -50},
		{90, -30, -30, -30},
		{1, 2, 3, -6},
	}
	for _, scores := range cases {
		st := Settle(players, scores, SettleOptions{PointsPerUnit: 1, Granularity: 1})

		winners, losers := 0, 0
		for _, row := range st.Rows {
			if row.Money > 0 {
				winners++
			} else if row.Money < 0 {
				losers++
			}
		}
		if bound := winners + losers - 1; len(st.Payments) > bound {
			t.Fatalf("scores %v: %d payments exceeds bound %d", scores, len(st.Payments), bound)
		}
	}
}
