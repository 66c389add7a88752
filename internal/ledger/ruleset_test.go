package ledger

import (
	"testing"
)

func TestBasePointsTableLookup(t *testing.T) {
	r, ok := Preset("hongkong")
	if !ok {
		t.Fatal("hongkong preset missing")
	}

	tests := []struct {
		unit int
		want int
	}{
		{0, 1}, //鸡糊算1底
		{3, 8},
		{10, 128},
		{-2, 1},   //低于表下界
		{15, 128}, //高于封顶
	}
	for _, tt := range tests {
		if got := r.BasePoints(tt.unit); got != tt.want {
			t.Fatalf("BasePoints(%d) = %d, want %d", tt.unit, got, tt.want)
		}
	}
}

func TestBasePointsTableGap(t *testing.T) {
	r := &Ruleset{
		Name:    "gap",
		Kind:    KindCustom,
		MinUnit: 1,
		MaxUnit: 5,
		PointTable: map[int]int{
			1: 2, 3: 8, 5: 32,
		},
	}

	//缺项取不大于unit的最近键
	if got := r.BasePoints(4); got != 8 {
		t.Fatalf("BasePoints(4) = %d, want 8", got)
	}
	if got := r.BasePoints(2); got != 2 {
		t.Fatalf("BasePoints(2) = %d, want 2", got)
	}
}

func TestBasePointsTaiwanFormula(t *testing.T) {
	r, _ := Preset("taiwan")
	if got := r.BasePoints(4); got != 400 {
		t.Fatalf("BasePoints(4) = %d, want 400", got)
	}
	//封顶16台
	if got := r.BasePoints(30); got != 1600 {
		t.Fatalf("BasePoints(30) = %d, want 1600", got)
	}
}

func TestValidate(t *testing.T) {
	ok := &Ruleset{
		Name:               "custom",
		Kind:               KindCustom,
		SelfDrawMultiplier: 1,
		MinUnit:            1,
		MaxUnit:            3,
		PointTable:         map[int]int{1: 1, 2: 2, 3: 4},
	}
	if v := Validate(ok); len(v) != 0 {
		t.Fatalf("expect valid, got %v", v)
	}

	bad := &Ruleset{
		Name:               "",
		Kind:               KindCustom,
		SelfDrawMultiplier: 0.2,
		MinUnit:            0,
		MaxUnit:            -1,
	}
	v := Validate(bad)
	if len(v) < 4 {
		t.Fatalf("expect at least 4 violations, got %v", v)
	}
}

func TestValidatePresets(t *testing.T) {
	for _, r := range Presets() {
		if v := Validate(r); len(v) != 0 {
			t.Fatalf("preset %s should validate, got %v", r.Name, v)
		}
	}
}

func TestPresetClone(t *testing.T) {
	a, _ := Preset("hongkong")
	b, _ := Preset("hongkong")

	a.PointTable[3] = 999
	if b.PointTable[3] == 999 {
		t.Fatal("preset table shared between clones")
	}
}

func TestKindFromName(t *testing.T) {
	for _, name := range []string{"hongkong", "taiwan", "japanese", "custom"} {
		k, ok := KindFromName(name)
		if !ok || k.String() != name {
			t.Fatalf("round trip failed for %s", name)
		}
	}
	if _, ok := KindFromName("gibberish"); ok {
		t.Fatal("unknown kind accepted")
	}
}
