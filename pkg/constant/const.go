package constant

// SeatCount 固定四人桌
const SeatCount = 4

type Wind int

const (
	WindEast Wind = iota
	WindSouth
	WindWest
	WindNorth
)

var windDesc = [...]string{
	WindEast:  "东",
	WindSouth: "南",
	WindWest:  "西",
	WindNorth: "北",
}

func (w Wind) String() string {
	if w < WindEast || w > WindNorth {
		return "?"
	}
	return windDesc[w]
}

// Next 下一圈风, 北风之后回到东风
func (w Wind) Next() Wind {
	return (w + 1) % SeatCount
}

type SessionStatus int32

const (
	//进行中
	SessionStatusActive SessionStatus = iota
	//已结算
	SessionStatusCompleted
)

var statusDesc = [...]string{
	SessionStatusActive:    "进行中",
	SessionStatusCompleted: "已结算",
}

func (s SessionStatus) String() string {
	return statusDesc[s]
}
