package serial

import (
	"math/rand"
	"sync"
	"time"
)

const serialNoLen = 6

// Number 6位数字桌号, 活跃桌内唯一
type Number string

// ExistsFunc 查重回调, 由调用方接数据库
type ExistsFunc func(no string) bool

type numberManager struct {
	lock sync.Mutex
}

var rn *numberManager
var numbers = [...]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9'}

func init() {
	rn = &numberManager{}

	rand.Seed(time.Now().Unix())
}

func (rn *numberManager) next(exists ExistsFunc) Number {
	no := make([]byte, serialNoLen)
	rn.lock.Lock()
	defer rn.lock.Unlock()

	for {
		for i := 0; i < serialNoLen; i++ {
			no[i] = numbers[rand.Intn(10)]
		}
		temp := Number(no)
		if exists == nil || !exists(string(no)) {
			return temp
		}
	}
}

func Next(exists ExistsFunc) Number {
	return rn.next(exists)
}

func (n Number) String() string {
	return string(n)
}
