package db

const (
	defaultMaxConns = 10
)

// session表status字段的取值
const (
	SessionStatusActive    = 0 //进行中
	SessionStatusCompleted = 1 //已结算
)
