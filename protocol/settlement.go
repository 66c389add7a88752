package protocol

type SettlementRow struct {
	Seat     int     `json:"seat"`
	Uid      int64   `json:"uid"`
	Nickname string  `json:"nickname"`
	Points   int     `json:"points"`
	Money    float64 `json:"money"`
	Rank     int     `json:"rank"` //按分数降序, 1-4
}

type Payment struct {
	From   int     `json:"from"` //付款座位
	To     int     `json:"to"`   //收款座位
	Amount float64 `json:"amount"`
}

type Settlement struct {
	Rows     [4]SettlementRow `json:"rows"`
	Payments []Payment        `json:"payments"`
}

type SettlementResponse struct {
	Code int         `json:"code"`
	Data *Settlement `json:"data"`
}
