package ledger

import (
	"strings"
	"time"

	"github.com/mjpad/mjledger/pkg/constant"
	"github.com/mjpad/mjledger/pkg/errutil"
	"github.com/mjpad/mjledger/protocol"

	"github.com/pborman/uuid"
)

type Player struct {
	Uid      int64
	Nickname string
}

// RoundRecord 一局的存档, 含撤销所需的局前状态
type RoundRecord struct {
	RoundId      string
	Round        int
	HandInWind   int
	Outcome      protocol.RoundOutcome
	ScoreChanges Deltas
	PrevDealer   int
	PrevWind     constant.Wind
	PrevRepeat   int
	AppliedAt    int64
}

// Session 一桌牌局, 所有变更全部同步完成, 并发控制由调用方负责
type Session struct {
	Id       int64
	SerialNo string
	Players  [constant.SeatCount]Player
	Rules    *Ruleset

	Scores     [constant.SeatCount]int
	Round      int //从1开始
	Wind       constant.Wind
	HandInWind int //本圈第几手, 庄家轮转时递增
	Dealer     int
	Repeat     int //连庄数

	Status      constant.SessionStatus
	CreatedAt   int64
	CompletedAt int64

	history *History
	records []*RoundRecord
}

func NewSession(id int64, serialNo string, players [constant.SeatCount]Player, rules *Ruleset) *Session {
	return &Session{
		Id:        id,
		SerialNo:  serialNo,
		Players:   players,
		Rules:     rules.Clone(), //快照, 规则源后续变更不影响本桌
		Round:     1,
		Wind:      constant.WindEast,
		Dealer:    0,
		Status:    constant.SessionStatusActive,
		CreatedAt: time.Now().Unix(),
		history:   NewHistory(),
	}
}

func newRoundId() string {
	return strings.Replace(uuid.New(), "-", "", -1)
}

// Apply 结算一局: 计分, 记档, 轮庄转风. 出错不产生任何变更
func (s *Session) Apply(out *protocol.RoundOutcome) (*RoundRecord, error) {
	if s.Status != constant.SessionStatusActive {
		return nil, errutil.ErrSessionCompleted
	}

	deltas, err := Score(s.Rules, out, s.Dealer, s.Repeat)
	if err != nil {
		return nil, err
	}

	record := &RoundRecord{
		RoundId:      newRoundId(),
		Round:        s.Round,
		HandInWind:   s.HandInWind,
		Outcome:      *out,
		ScoreChanges: deltas,
		PrevDealer:   s.Dealer,
		PrevWind:     s.Wind,
		PrevRepeat:   s.Repeat,
		AppliedAt:    time.Now().Unix(),
	}

	s.history.Push(&Entry{
		RoundId:        record.RoundId,
		ScoreChanges:   deltas,
		PrevDealer:     s.Dealer,
		PrevWind:       s.Wind,
		PrevRepeat:     s.Repeat,
		PrevHandInWind: s.HandInWind,
	})
	s.records = append(s.records, record)

	for seat, d := range deltas {
		s.Scores[seat] += d
	}
	s.advance(out)
	s.Round++

	return record, nil
}

// 庄家和牌或按规则流局连庄, 否则下家坐庄; 庄位轮满四家转风
func (s *Session) advance(out *protocol.RoundOutcome) {
	retain := false
	if out.Draw {
		retain = s.Rules.DrawRetainsDealer
	} else {
		retain = containsSeat(out.Winners, s.Dealer)
	}

	if retain {
		s.Repeat++
		return
	}

	s.Repeat = 0
	s.Dealer = (s.Dealer + 1) % constant.SeatCount
	s.HandInWind++
	if s.HandInWind == constant.SeatCount {
		s.HandInWind = 0
		s.Wind = s.Wind.Next()
	}
}

// Undo 撤销最近一局, 状态按入栈快照原样恢复
func (s *Session) Undo() (*RoundRecord, error) {
	if s.Status != constant.SessionStatusActive {
		return nil, errutil.ErrSessionCompleted
	}

	e, err := s.history.Pop()
	if err != nil {
		return nil, err
	}

	for seat, d := range e.ScoreChanges {
		s.Scores[seat] -= d
	}
	s.Dealer = e.PrevDealer
	s.Wind = e.PrevWind
	s.Repeat = e.PrevRepeat
	s.HandInWind = e.PrevHandInWind
	s.Round--

	removed := s.records[len(s.records)-1]
	s.records = s.records[:len(s.records)-1]
	return removed, nil
}

// Complete 终结本桌, 重复调用不报错
func (s *Session) Complete() error {
	if s.Status == constant.SessionStatusCompleted {
		return nil
	}
	s.Status = constant.SessionStatusCompleted
	s.CompletedAt = time.Now().Unix()
	return nil
}

// Attach 重放一局存档重建撤销栈, 只在从库加载时使用, 不动分数
func (s *Session) Attach(r *RoundRecord) {
	s.records = append(s.records, r)
	s.history.Push(&Entry{
		RoundId:        r.RoundId,
		ScoreChanges:   r.ScoreChanges,
		PrevDealer:     r.PrevDealer,
		PrevWind:       r.PrevWind,
		PrevRepeat:     r.PrevRepeat,
		PrevHandInWind: r.HandInWind,
	})
}

// Records 已结算各局, 按时间顺序
func (s *Session) Records() []*RoundRecord {
	return s.records
}

func (s *Session) HistoryLen() int {
	return s.history.Len()
}

// ToProtocol 当前快照
func (s *Session) ToProtocol() *protocol.Session {
	p := &protocol.Session{
		Id:          s.Id,
		SerialNo:    s.SerialNo,
		Ruleset:     s.Rules.ToProtocol(),
		Round:       s.Round,
		Wind:        int(s.Wind),
		WindName:    s.Wind.String(),
		HandInWind:  s.HandInWind,
		Dealer:      s.Dealer,
		Repeat:      s.Repeat,
		Status:      int(s.Status),
		CreatedAt:   s.CreatedAt,
		CompletedAt: s.CompletedAt,
	}
	for seat, player := range s.Players {
		p.Players[seat] = protocol.SeatInfo{
			Seat:     seat,
			Uid:      player.Uid,
			Nickname: player.Nickname,
			Score:    s.Scores[seat],
		}
	}
	return p
}
