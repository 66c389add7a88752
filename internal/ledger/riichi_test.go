package ledger

import (
	"testing"

	"github.com/mjpad/mjledger/protocol"
)

func TestRiichiBase(t *testing.T) {
	tests := []struct {
		han, fu int
		want    int
	}{
		{1, 30, 300},   //30*8=240 进百
		{2, 30, 500},   //30*16=480
		{3, 30, 1000},  //30*32=960
		{4, 25, 1600},  //25*64=1600
		{4, 40, 2000},  //40*64=2560 超过2000按满贯
		{5, 30, 2000},  //满贯
		{6, 110, 3000}, //跳满, 符数无关
		{7, 20, 3000},
		{8, 30, 4000}, //倍满
		{10, 30, 4000},
		{11, 30, 6000}, //三倍满
		{13, 20, 8000}, //役满
		{26, 70, 8000}, //超过13番仍是役满
	}
	for _, tt := range tests {
		if got := riichiBase(tt.han, tt.fu); got != tt.want {
			t.Fatalf("riichiBase(%d, %d) = %d, want %d", tt.han, tt.fu, got, tt.want)
		}
	}
}

func TestRiichiDealerRon(t *testing.T) {
	//庄家满贯荣和: 2000*6
	out := &protocol.RoundOutcome{Winners: []int{0}, Loser: 2, Unit: 5, Fu: 30}
	deltas := scoreRiichi(out, 0, 0)
	if deltas[0] != 12000 || deltas[2] != -12000 {
		t.Fatalf("deltas = %v", deltas)
	}
}

func TestRiichiNonDealerRon(t *testing.T) {
	//闲家满贯荣和: 2000*4
	out := &protocol.RoundOutcome{Winners: []int{1}, Loser: 2, Unit: 5, Fu: 30}
	deltas := scoreRiichi(out, 0, 0)
	if deltas[1] != 8000 || deltas[2] != -8000 {
		t.Fatalf("deltas = %v", deltas)
	}
}

func TestRiichiDealerSelfDraw(t *testing.T) {
	//庄家满贯自摸: 每家4000
	out := &protocol.RoundOutcome{Winners: []int{0}, Loser: -1, SelfDraw: true, Unit: 5, Fu: 30}
	deltas := scoreRiichi(out, 0, 0)
	if deltas[0] != 12000 {
		t.Fatalf("winner delta = %d", deltas[0])
	}
	for _, seat := range []int{1, 2, 3} {
		if deltas[seat] != -4000 {
			t.Fatalf("seat %d delta = %d", seat, deltas[seat])
		}
	}
}

func TestRiichiNonDealerSelfDraw(t *testing.T) {
	//闲家满贯自摸: 庄4000闲2000
	out := &protocol.RoundOutcome{Winners: []int{2}, Loser: -1, SelfDraw: true, Unit: 5, Fu: 30}
	deltas := scoreRiichi(out, 0, 0)
	if deltas[2] != 8000 {
		t.Fatalf("winner delta = %d", deltas[2])
	}
	if deltas[0] != -4000 {
		t.Fatalf("dealer delta = %d", deltas[0])
	}
	if deltas[1] != -2000 || deltas[3] != -2000 {
		t.Fatalf("deltas = %v", deltas)
	}
}

func TestRiichiYakumanIgnoresFu(t *testing.T) {
	for _, fu := range []int{0, 20, 25, 110} {
		out := &protocol.RoundOutcome{Winners: []int{1}, Loser: 0, Unit: 13, Fu: fu}
		deltas := scoreRiichi(out, 0, 0)
		if deltas[1] != 32000 {
			t.Fatalf("fu=%d: winner delta = %d, want 32000", fu, deltas[1])
		}
	}
}

func TestRiichiHonba(t *testing.T) {
	//荣和: 点炮者每本场多付300
	out := &protocol.RoundOutcome{Winners: []int{1}, Loser: 2, Unit: 5, Fu: 30}
	deltas := scoreRiichi(out, 0, 2)
	if deltas[1] != 8600 || deltas[2] != -8600 {
		t.Fatalf("ron honba deltas = %v", deltas)
	}

	//自摸: 每家每本场多付100
	out = &protocol.RoundOutcome{Winners: []int{0}, Loser: -1, SelfDraw: true, Unit: 5, Fu: 30}
	deltas = scoreRiichi(out, 0, 2)
	if deltas[0] != 12600 {
		t.Fatalf("tsumo honba winner = %d", deltas[0])
	}
	for _, seat := range []int{1, 2, 3} {
		if deltas[seat] != -4200 {
			t.Fatalf("tsumo honba seat %d = %d", seat, deltas[seat])
		}
	}
}

func TestRiichiDefaultFu(t *testing.T) {
	//未报符数按30符
	out := &protocol.RoundOutcome{Winners: []int{1}, Loser: 0, Unit: 3}
	deltas := scoreRiichi(out, 0, 0)
	if deltas[1] != 4000 {
		t.Fatalf("winner delta = %d, want 4000", deltas[1])
	}
}

func TestRiichiDoubleRon(t *testing.T) {
	//一炮双响各自计算, 本场只给座次小的赢家
	out := &protocol.RoundOutcome{Winners: []int{3, 1}, Loser: 2, Unit: 5, Fu: 30}
	deltas := scoreRiichi(out, 0, 1)
	if deltas[1] != 8300 {
		t.Fatalf("first winner = %d", deltas[1])
	}
	if deltas[3] != 8000 {
		t.Fatalf("second winner = %d", deltas[3])
	}
	if deltas[2] != -16300 {
		t.Fatalf("loser = %d", deltas[2])
	}
}
