package protocol

// 规则集参数, 建桌时快照, 开局后不再修改
type Ruleset struct {
	Name               string      `json:"name"`
	Kind               string      `json:"kind"`                 //hongkong | taiwan | japanese | custom
	BaseUnit           int         `json:"baseUnit"`             //底分
	SelfDrawMultiplier float64     `json:"selfDrawMultiplier"`   //自摸倍数
	DealerBonus        int         `json:"dealerBonus"`          //庄家加番
	DealerRepeatBonus  int         `json:"dealerRepeatBonus"`    //连庄加番
	MinUnit            int         `json:"minUnit"`              //起和番
	MaxUnit            int         `json:"maxUnit"`              //封顶番
	PointTable         map[int]int `json:"pointTable,omitempty"` //番数 -> 底分(表驱动规则)
	DrawRetainsDealer  bool        `json:"drawRetainsDealer"`    //流局是否连庄
}

type RulesetListResponse struct {
	Code int       `json:"code"`
	Data []Ruleset `json:"data"`
}

type RulesetCheckRequest struct {
	Ruleset Ruleset `json:"ruleset"`
}

type RulesetCheckResponse struct {
	Code       int      `json:"code"`
	Violations []string `json:"violations"` //为空即合法
}
