package api

import (
	"encoding/json"
	"sync"

	"github.com/mjpad/mjledger/db"
	"github.com/mjpad/mjledger/db/model"
	"github.com/mjpad/mjledger/internal/ledger"
	"github.com/mjpad/mjledger/pkg/constant"
	"github.com/mjpad/mjledger/pkg/errutil"
	"github.com/mjpad/mjledger/pkg/serial"
	"github.com/mjpad/mjledger/protocol"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var logger = log.WithField("component", "api")

// liveSession 在内存中的一桌, 锁保证同桌的apply/undo/complete串行
type liveSession struct {
	sync.Mutex
	*ledger.Session
}

type sessionManager struct {
	mu    sync.Mutex
	alive map[int64]*liveSession
}

var defaultManager = &sessionManager{
	alive: map[int64]*liveSession{},
}

// create 建桌: 先落库拿自增id, 再入内存
func (m *sessionManager) create(players [constant.SeatCount]ledger.Player, rules *ledger.Ruleset) (*liveSession, error) {
	no := serial.Next(db.SessionNumberExists)
	s := ledger.NewSession(0, no.String(), players, rules)

	snapshot, err := json.Marshal(rules.ToProtocol())
	if err != nil {
		return nil, errors.Wrap(err, "marshal ruleset snapshot")
	}

	row := &model.Session{
		SerialNo:    no.String(),
		Variant:     rules.Kind.String(),
		Ruleset:     string(snapshot),
		Player0:     players[0].Uid,
		Player1:     players[1].Uid,
		Player2:     players[2].Uid,
		Player3:     players[3].Uid,
		PlayerName0: players[0].Nickname,
		PlayerName1: players[1].Nickname,
		PlayerName2: players[2].Nickname,
		PlayerName3: players[3].Nickname,
		Round:       1,
		CreatedAt:   s.CreatedAt,
	}
	if err := db.InsertSession(row); err != nil {
		return nil, err
	}
	s.Id = row.Id

	live := &liveSession{Session: s}
	m.mu.Lock()
	m.alive[s.Id] = live
	m.mu.Unlock()

	logger.Infof("建桌: Id=%d SerialNo=%s Variant=%s", s.Id, s.SerialNo, rules.Kind)
	return live, nil
}

// session 取一桌, 不在内存时从库里重建
func (m *sessionManager) session(id int64) (*liveSession, error) {
	m.mu.Lock()
	if live, ok := m.alive[id]; ok {
		m.mu.Unlock()
		return live, nil
	}
	m.mu.Unlock()

	s, err := loadSession(id)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	// 加载期间别的请求可能已经放进来了
	if live, ok := m.alive[id]; ok {
		return live, nil
	}
	live := &liveSession{Session: s}
	m.alive[id] = live
	return live, nil
}

func (m *sessionManager) evict(id int64) {
	m.mu.Lock()
	delete(m.alive, id)
	m.mu.Unlock()
}

// AliveSessionCount 内存中的活跃桌数
func AliveSessionCount() int {
	defaultManager.mu.Lock()
	defer defaultManager.mu.Unlock()
	return len(defaultManager.alive)
}

func loadSession(id int64) (*ledger.Session, error) {
	row, err := db.QuerySession(id)
	if err != nil {
		return nil, err
	}

	var snapshot protocol.Ruleset
	if err := json.Unmarshal([]byte(row.Ruleset), &snapshot); err != nil {
		logger.Error(errors.Wrapf(err, "会话%d规则快照损坏", id))
		return nil, errutil.ErrServerInternal
	}
	rules, ok := ledger.FromProtocol(&snapshot)
	if !ok {
		return nil, errutil.ErrServerInternal
	}

	players := [constant.SeatCount]ledger.Player{
		{Uid: row.Player0, Nickname: row.PlayerName0},
		{Uid: row.Player1, Nickname: row.PlayerName1},
		{Uid: row.Player2, Nickname: row.PlayerName2},
		{Uid: row.Player3, Nickname: row.PlayerName3},
	}

	s := ledger.NewSession(row.Id, row.SerialNo, players, rules)
	s.Scores = [constant.SeatCount]int{row.Score0, row.Score1, row.Score2, row.Score3}
	s.Round = row.Round
	s.Wind = constant.Wind(row.Wind)
	s.HandInWind = row.HandInWind
	s.Dealer = row.Dealer
	s.Repeat = row.Repeat
	s.Status = constant.SessionStatus(row.Status)
	s.CreatedAt = row.CreatedAt
	s.CompletedAt = row.CompletedAt

	rounds, _, err := db.QueryRoundsBySessionID(id)
	if err != nil {
		return nil, err
	}
	for i := range rounds {
		record, err := recordFromModel(&rounds[i])
		if err != nil {
			logger.Error(errors.Wrapf(err, "会话%d局档损坏", id))
			return nil, errutil.ErrServerInternal
		}
		s.Attach(record)
	}
	return s, nil
}

func recordFromModel(row *model.Round) (*ledger.RoundRecord, error) {
	var outcome protocol.RoundOutcome
	if err := json.Unmarshal([]byte(row.Outcome), &outcome); err != nil {
		return nil, err
	}
	return &ledger.RoundRecord{
		RoundId:    row.RoundId,
		Round:      row.Round,
		HandInWind: row.HandInWind,
		Outcome:    outcome,
		ScoreChanges: ledger.Deltas{
			row.ScoreChange0, row.ScoreChange1, row.ScoreChange2, row.ScoreChange3,
		},
		PrevDealer: row.PrevDealer,
		PrevWind:   constant.Wind(row.PrevWind),
		PrevRepeat: row.PrevRepeat,
		AppliedAt:  row.AppliedAt,
	}, nil
}

func recordToModel(sessionId int64, r *ledger.RoundRecord) (*model.Round, error) {
	data, err := json.Marshal(&r.Outcome)
	if err != nil {
		return nil, err
	}
	return &model.Round{
		RoundId:      r.RoundId,
		SessionId:    sessionId,
		Round:        r.Round,
		HandInWind:   r.HandInWind,
		Outcome:      string(data),
		ScoreChange0: r.ScoreChanges[0],
		ScoreChange1: r.ScoreChanges[1],
		ScoreChange2: r.ScoreChanges[2],
		ScoreChange3: r.ScoreChanges[3],
		PrevDealer:   r.PrevDealer,
		PrevWind:     int(r.PrevWind),
		PrevRepeat:   r.PrevRepeat,
		AppliedAt:    r.AppliedAt,
	}, nil
}

func sessionRowToProtocol(row *model.Session) *protocol.Session {
	p := &protocol.Session{
		Id:          row.Id,
		SerialNo:    row.SerialNo,
		Round:       row.Round,
		Wind:        row.Wind,
		WindName:    constant.Wind(row.Wind).String(),
		HandInWind:  row.HandInWind,
		Dealer:      row.Dealer,
		Repeat:      row.Repeat,
		Status:      row.Status,
		CreatedAt:   row.CreatedAt,
		CompletedAt: row.CompletedAt,
	}
	var snapshot protocol.Ruleset
	if err := json.Unmarshal([]byte(row.Ruleset), &snapshot); err == nil {
		p.Ruleset = snapshot
	}
	uids := [constant.SeatCount]int64{row.Player0, row.Player1, row.Player2, row.Player3}
	names := [constant.SeatCount]string{row.PlayerName0, row.PlayerName1, row.PlayerName2, row.PlayerName3}
	scores := [constant.SeatCount]int{row.Score0, row.Score1, row.Score2, row.Score3}
	for seat := 0; seat < constant.SeatCount; seat++ {
		p.Players[seat] = protocol.SeatInfo{
			Seat:     seat,
			Uid:      uids[seat],
			Nickname: names[seat],
			Score:    scores[seat],
		}
	}
	return p
}

func settlementRowToModel(sessionId int64, row protocol.SettlementRow, now int64) *model.Settlement {
	return &model.Settlement{
		SessionId: sessionId,
		Seat:      row.Seat,
		Uid:       row.Uid,
		Points:    row.Points,
		Money:     row.Money,
		Rank:      row.Rank,
		CreatedAt: now,
	}
}

// persist 把内存态回写session行, 走异步更新队列
func persist(s *ledger.Session) {
	db.AsyncUpdate(&model.Session{
		Id:          s.Id,
		Score0:      s.Scores[0],
		Score1:      s.Scores[1],
		Score2:      s.Scores[2],
		Score3:      s.Scores[3],
		Round:       s.Round,
		Wind:        int(s.Wind),
		HandInWind:  s.HandInWind,
		Dealer:      s.Dealer,
		Repeat:      s.Repeat,
		Status:      int(s.Status),
		CompletedAt: s.CompletedAt,
	})
}
