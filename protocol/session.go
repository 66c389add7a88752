package protocol

type SeatInfo struct {
	Seat     int    `json:"seat"` //0-3
	Uid      int64  `json:"uid"`
	Nickname string `json:"nickname"`
	Score    int    `json:"score"`
}

type CreateSessionRequest struct {
	Players [4]SeatInfo `json:"players"`
	Preset  string      `json:"preset,omitempty"`  //内置规则名, 与ruleset二选一
	Ruleset *Ruleset    `json:"ruleset,omitempty"` //自定义规则
}

type CreateSessionResponse struct {
	Code      int    `json:"code"`
	SessionId int64  `json:"sessionId"`
	SerialNo  string `json:"serialNo"` //6位桌号
}

type Session struct {
	Id          int64       `json:"id"`
	SerialNo    string      `json:"serialNo"`
	Players     [4]SeatInfo `json:"players"`
	Ruleset     Ruleset     `json:"ruleset"`
	Round       int         `json:"round"` //从1开始
	Wind        int         `json:"wind"`  //0东 1南 2西 3北
	WindName    string      `json:"windName"`
	HandInWind  int         `json:"handInWind"`
	Dealer      int         `json:"dealer"` //庄家座位
	Repeat      int         `json:"repeat"` //连庄数
	Status      int         `json:"status"`
	CreatedAt   int64       `json:"createdAt"`
	CompletedAt int64       `json:"completedAt,omitempty"`
}

type SessionResponse struct {
	Code int      `json:"code"`
	Data *Session `json:"data"`
}

type SessionListResponse struct {
	Code  int       `json:"code"`
	Total int64     `json:"total"`
	Data  []Session `json:"data"`
}
