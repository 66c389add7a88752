package model

type Session struct {
	Id          int64
	SerialNo    string `xorm:"not null index VARCHAR(6) default"`
	Variant     string `xorm:"not null VARCHAR(16) default"`
	Ruleset     string `xorm:"not null TEXT default"` //规则快照json
	Player0     int64  `xorm:"not null index BIGINT(20) default 0"`
	Player1     int64  `xorm:"not null index BIGINT(20) default 0"`
	Player2     int64  `xorm:"not null index BIGINT(20) default 0"`
	Player3     int64  `xorm:"not null index BIGINT(20) default 0"`
	PlayerName0 string `xorm:"not null VARCHAR(255) default"`
	PlayerName1 string `xorm:"not null VARCHAR(255) default"`
	PlayerName2 string `xorm:"not null VARCHAR(255) default"`
	PlayerName3 string `xorm:"not null VARCHAR(255) default"`
	Score0      int    `xorm:"not null INT(11) default 0"`
	Score1      int    `xorm:"not null INT(11) default 0"`
	Score2      int    `xorm:"not null INT(11) default 0"`
	Score3      int    `xorm:"not null INT(11) default 0"`
	Round       int    `xorm:"not null INT(11) default 1"`
	Wind        int    `xorm:"not null TINYINT(4) default 0"`
	HandInWind  int    `xorm:"not null TINYINT(4) default 0"`
	Dealer      int    `xorm:"not null TINYINT(4) default 0"`
	Repeat      int    `xorm:"not null INT(11) default 0"`
	Status      int    `xorm:"not null index TINYINT(4) default 0"`
	CreatedAt   int64  `xorm:"not null index BIGINT(20) default 0"`
	CompletedAt int64  `xorm:"not null BIGINT(20) default 0"`
}

// Settlement 终局结算存档, 每桌完结时每座位一行
type Settlement struct {
	Id        int64
	SessionId int64   `xorm:"not null index BIGINT(20) default 0"`
	Seat      int     `xorm:"not null TINYINT(4) default 0"`
	Uid       int64   `xorm:"not null index BIGINT(20) default 0"`
	Points    int     `xorm:"not null INT(11) default 0"`
	Money     float64 `xorm:"not null DOUBLE default 0"`
	Rank      int     `xorm:"not null TINYINT(4) default 0"`
	CreatedAt int64   `xorm:"not null BIGINT(20) default 0"`
}

type Round struct {
	Id           int64
	RoundId      string `xorm:"not null unique VARCHAR(32) default"`
	SessionId    int64  `xorm:"not null index BIGINT(20) default 0"`
	Round        int    `xorm:"not null INT(11) default 0"`
	HandInWind   int    `xorm:"not null TINYINT(4) default 0"`
	Outcome      string `xorm:"not null TEXT default"` //结果声明json
	ScoreChange0 int    `xorm:"not null INT(11) default 0"`
	ScoreChange1 int    `xorm:"not null INT(11) default 0"`
	ScoreChange2 int    `xorm:"not null INT(11) default 0"`
	ScoreChange3 int    `xorm:"not null INT(11) default 0"`
	PrevDealer   int    `xorm:"not null TINYINT(4) default 0"`
	PrevWind     int    `xorm:"not null TINYINT(4) default 0"`
	PrevRepeat   int    `xorm:"not null INT(11) default 0"`
	AppliedAt    int64  `xorm:"not null index BIGINT(20) default 0"`
}
