package ledger

import (
	"fmt"

	"github.com/mjpad/mjledger/protocol"
)

type Kind int

const (
	KindHongKong Kind = iota
	KindTaiwan
	KindJapanese
	KindCustom
)

var kindDesc = [...]string{
	KindHongKong: "hongkong",
	KindTaiwan:   "taiwan",
	KindJapanese: "japanese",
	KindCustom:   "custom",
}

func (k Kind) String() string {
	if k < KindHongKong || k > KindCustom {
		return "unknown"
	}
	return kindDesc[k]
}

func KindFromName(name string) (Kind, bool) {
	for k, desc := range kindDesc {
		if desc == name {
			return Kind(k), true
		}
	}
	return KindCustom, false
}

// Ruleset 计分规则, 建桌时快照, 开局后不可变
type Ruleset struct {
	Name               string
	Kind               Kind
	BaseUnit           int         //底分(公式型规则)
	SelfDrawMultiplier float64     //自摸时每家付 base*multiplier
	DealerBonus        int         //庄家加番
	DealerRepeatBonus  int         //每连庄加番
	MinUnit            int         //起和番
	MaxUnit            int         //封顶番
	PointTable         map[int]int //番数 -> 底分(表驱动型规则)
	DrawRetainsDealer  bool        //流局连庄
}

// Clone 深拷贝, 开局时快照用
func (r *Ruleset) Clone() *Ruleset {
	c := *r
	if r.PointTable != nil {
		c.PointTable = make(map[int]int, len(r.PointTable))
		for k, v := range r.PointTable {
			c.PointTable[k] = v
		}
	}
	return &c
}

func (r *Ruleset) tableDriven() bool {
	return r.Kind == KindHongKong || r.Kind == KindCustom
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// BasePoints 番数折算底分, 越界一律往边界靠, 计分过程中永不失败
func (r *Ruleset) BasePoints(unit int) int {
	if r.tableDriven() {
		return r.lookupTable(unit)
	}

	unit = clamp(unit, r.MinUnit, r.MaxUnit)
	switch r.Kind {
	case KindTaiwan:
		return unit * r.BaseUnit
	case KindJapanese:
		// 查表入口只用于展示, 实际计分走符数公式
		return riichiBase(unit, defaultFu)
	}
	return r.BaseUnit
}

// 表中缺项时取不大于unit的最近键, 再不行取最小键
func (r *Ruleset) lookupTable(unit int) int {
	if v, ok := r.PointTable[unit]; ok {
		return v
	}

	low, high := 0, 0
	first := true
	for k := range r.PointTable {
		if first {
			low, high = k, k
			first = false
			continue
		}
		if k < low {
			low = k
		}
		if k > high {
			high = k
		}
	}
	if first { //空表
		return 1
	}

	if unit <= low {
		return r.PointTable[low]
	}
	if unit >= high {
		return r.PointTable[high]
	}
	for u := unit; u >= low; u-- {
		if v, ok := r.PointTable[u]; ok {
			return v
		}
	}
	return r.PointTable[low]
}

// Validate 规则编辑时校验, 计分过程中绝不调用
func Validate(r *Ruleset) []string {
	var violations []string

	if r.Name == "" {
		violations = append(violations, "规则名不可为空")
	}
	if r.MinUnit < 1 {
		violations = append(violations, "起和番不可小于1")
	}
	if r.MaxUnit < r.MinUnit {
		violations = append(violations, "封顶番不可小于起和番")
	}
	if r.SelfDrawMultiplier < 0.5 {
		violations = append(violations, "自摸倍数不可小于0.5")
	}
	if r.tableDriven() {
		if len(r.PointTable) == 0 {
			violations = append(violations, "表驱动规则必须配置番数表")
		}
		for u := r.MinUnit; u <= r.MaxUnit; u++ {
			if r.lookupTable(u) <= 0 {
				violations = append(violations, fmt.Sprintf("番数%d没有对应的正底分", u))
			}
		}
	} else if r.BaseUnit < 1 {
		violations = append(violations, "底分不可小于1")
	}

	return violations
}

var presets = []*Ruleset{
	{
		Name:               "hongkong",
		Kind:               KindHongKong,
		SelfDrawMultiplier: 0.5,
		MinUnit:            1,
		MaxUnit:            10,
		//0番鸡糊算1底
		PointTable: map[int]int{
			0: 1, 1: 2, 2: 4, 3: 8, 4: 16,
			5: 24, 6: 32, 7: 48, 8: 64, 9: 96, 10: 128,
		},
		DrawRetainsDealer: true,
	},
	{
		Name:               "taiwan",
		Kind:               KindTaiwan,
		BaseUnit:           100,
		SelfDrawMultiplier: 1,
		DealerBonus:        1,
		DealerRepeatBonus:  2, //连庄拉庄
		MinUnit:            1,
		MaxUnit:            16,
		DrawRetainsDealer:  true,
	},
	{
		Name:               "japanese",
		Kind:               KindJapanese,
		BaseUnit:           100,
		SelfDrawMultiplier: 1,
		MinUnit:            1,
		MaxUnit:            13,
		DrawRetainsDealer:  false,
	},
}

// Presets 内置规则列表
func Presets() []*Ruleset {
	rs := make([]*Ruleset, len(presets))
	for i, p := range presets {
		rs[i] = p.Clone()
	}
	return rs
}

// Preset 按名取内置规则
func Preset(name string) (*Ruleset, bool) {
	for _, p := range presets {
		if p.Name == name {
			return p.Clone(), true
		}
	}
	return nil, false
}

// FromProtocol 请求体转规则值
func FromProtocol(p *protocol.Ruleset) (*Ruleset, bool) {
	kind, ok := KindFromName(p.Kind)
	if !ok {
		return nil, false
	}
	r := &Ruleset{
		Name:               p.Name,
		Kind:               kind,
		BaseUnit:           p.BaseUnit,
		SelfDrawMultiplier: p.SelfDrawMultiplier,
		DealerBonus:        p.DealerBonus,
		DealerRepeatBonus:  p.DealerRepeatBonus,
		MinUnit:            p.MinUnit,
		MaxUnit:            p.MaxUnit,
		DrawRetainsDealer:  p.DrawRetainsDealer,
	}
	if p.PointTable != nil {
		r.PointTable = make(map[int]int, len(p.PointTable))
		for k, v := range p.PointTable {
			r.PointTable[k] = v
		}
	}
	return r, true
}

// ToProtocol 规则值转响应体
func (r *Ruleset) ToProtocol() protocol.Ruleset {
	p := protocol.Ruleset{
		Name:               r.Name,
		Kind:               r.Kind.String(),
		BaseUnit:           r.BaseUnit,
		SelfDrawMultiplier: r.SelfDrawMultiplier,
		DealerBonus:        r.DealerBonus,
		DealerRepeatBonus:  r.DealerRepeatBonus,
		MinUnit:            r.MinUnit,
		MaxUnit:            r.MaxUnit,
		DrawRetainsDealer:  r.DrawRetainsDealer,
	}
	if r.PointTable != nil {
		p.PointTable = make(map[int]int, len(r.PointTable))
		for k, v := range r.PointTable {
			p.PointTable[k] = v
		}
	}
	return p
}
