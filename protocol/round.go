package protocol

// 单项番种, 多项求和得到本局番数
type UnitPart struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// 一局的结果声明, 由客户端提交, 引擎不校验牌型
type RoundOutcome struct {
	Winners  []int      `json:"winners"`         //和牌座位, 流局为空
	Loser    int        `json:"loser"`           //点炮座位, 自摸/流局为-1
	SelfDraw bool       `json:"selfDraw"`        //自摸
	Draw     bool       `json:"draw"`            //流局
	Unit     int        `json:"unit"`            //番/台/翻数合计
	Parts    []UnitPart `json:"parts,omitempty"` //番种明细, 提供时覆盖unit
	Fu       int        `json:"fu,omitempty"`    //符数(日麻)
}

type ApplyRoundRequest struct {
	Outcome RoundOutcome `json:"outcome"`
}

// 一局结算后的存档
type Round struct {
	RoundId      string       `json:"roundId"`
	SessionId    int64        `json:"sessionId"`
	Round        int          `json:"round"`
	HandInWind   int          `json:"handInWind"`
	Outcome      RoundOutcome `json:"outcome"`
	ScoreChanges [4]int       `json:"scoreChanges"`
	PrevDealer   int          `json:"prevDealer"`
	PrevWind     int          `json:"prevWind"`
	PrevRepeat   int          `json:"prevRepeat"`
	AppliedAt    int64        `json:"appliedAt"`
}

type ApplyRoundResponse struct {
	Code    int      `json:"code"`
	Round   *Round   `json:"round"`
	Session *Session `json:"session"`
}

type UndoResponse struct {
	Code    int      `json:"code"`
	RoundId string   `json:"roundId"` //被撤销的一局
	Session *Session `json:"session"`
}

type RoundListResponse struct {
	Code  int     `json:"code"`
	Total int64   `json:"total"`
	Data  []Round `json:"data"`
}
