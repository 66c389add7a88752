package ledger

import (
	"testing"

	"github.com/mjpad/mjledger/protocol"
)

func TestHongkongDiscardWin(t *testing.T) {
	rules, _ := Preset("hongkong")

	//庄家(座0)3番和了座1点炮, 底分8
	out := &protocol.RoundOutcome{Winners: []int{0}, Loser: 1, Unit: 3}
	deltas, err := Score(rules, out, 0, 0)
	if err != nil {
		t.Fatal(err)
	}

	want := Deltas{8, -8, 0, 0}
	if deltas != want {
		t.Fatalf("deltas = %v, want %v", deltas, want)
	}
}

func TestHongkongSelfDraw(t *testing.T) {
	rules, _ := Preset("hongkong")

	//3番自摸, 底分8, 每家付 round(8*0.5)=4
	out := &protocol.RoundOutcome{Winners: []int{2}, Loser: -1, SelfDraw: true, Unit: 3}
	deltas, err := Score(rules, out, 0, 0)
	if err != nil {
		t.Fatal(err)
	}

	per := 4
	if deltas[2] != 3*per {
		t.Fatalf("winner delta = %d, want %d", deltas[2], 3*per)
	}
	for _, seat := range []int{0, 1, 3} {
		if deltas[seat] != -per {
			t.Fatalf("seat %d delta = %d, want %d", seat, deltas[seat], -per)
		}
	}
}

func TestHongkongSelfDrawRounding(t *testing.T) {
	r := &Ruleset{
		Name:               "odd",
		Kind:               KindCustom,
		SelfDrawMultiplier: 0.5,
		MinUnit:            1,
		MaxUnit:            3,
		PointTable:         map[int]int{1: 1, 2: 3, 3: 5},
	}

	//底分5, 每家 round(2.5)=3
	out := &protocol.RoundOutcome{Winners: []int{0}, Loser: -1, SelfDraw: true, Unit: 3}
	deltas, err := Score(r, out, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if deltas[0] != 9 || deltas[1] != -3 {
		t.Fatalf("deltas = %v", deltas)
	}
}

func TestHongkongMultiWinnerSplit(t *testing.T) {
	rules, _ := Preset("hongkong")

	//一炮双响, 底分共8, 均分后零头给座次小的
	out := &protocol.RoundOutcome{Winners: []int{3, 1}, Loser: 0, Unit: 3}
	deltas, err := Score(rules, out, 0, 0)
	if err != nil {
		t.Fatal(err)
	}

	if deltas[0] != -8 {
		t.Fatalf("loser delta = %d, want -8", deltas[0])
	}
	if deltas[1] != 4 || deltas[3] != 4 {
		t.Fatalf("winner deltas = %v", deltas)
	}

	//底分5番=24, 三响均分余数给首座
	out = &protocol.RoundOutcome{Winners: []int{1, 2, 3}, Loser: 0, Unit: 5}
	deltas, err = Score(rules, out, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if deltas[0] != -24 {
		t.Fatalf("loser delta = %d, want -24", deltas[0])
	}
	if deltas[1] != 8 || deltas[2] != 8 || deltas[3] != 8 {
		t.Fatalf("winner deltas = %v", deltas)
	}

	//除不尽: 底分4番=16, 三家分
	out = &protocol.RoundOutcome{Winners: []int{1, 2, 3}, Loser: 0, Unit: 4}
	deltas, err = Score(rules, out, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if deltas[1] != 6 || deltas[2] != 5 || deltas[3] != 5 {
		t.Fatalf("remainder split = %v", deltas)
	}
}
