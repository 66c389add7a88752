package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/mjpad/mjledger/db"
	"github.com/mjpad/mjledger/internal/ledger"
	"github.com/mjpad/mjledger/pkg/constant"
	"github.com/mjpad/mjledger/pkg/errutil"
	"github.com/mjpad/mjledger/protocol"

	"github.com/gorilla/mux"
	"github.com/lonng/nex"
	"github.com/spf13/viper"
	"golang.org/x/net/context"
)

func MakeSessionService() http.Handler {
	router := mux.NewRouter()
	router.Handle("/v1/session/", nex.Handler(createSession)).Methods("POST")                //建桌
	router.Handle("/v1/session/player/{id}", nex.Handler(sessionList)).Methods("GET")        //玩家的牌局列表
	router.Handle("/v1/session/{id}", nex.Handler(sessionByID)).Methods("GET")               //牌局快照
	router.Handle("/v1/session/{id}/rounds", nex.Handler(roundList)).Methods("GET")          //已结算各局
	router.Handle("/v1/session/{id}/round", nex.Handler(applyRound)).Methods("POST")         //结算一局
	router.Handle("/v1/session/{id}/undo", nex.Handler(undoRound)).Methods("POST")           //撤销最近一局
	router.Handle("/v1/session/{id}/complete", nex.Handler(completeSession)).Methods("POST") //终局
	router.Handle("/v1/session/{id}/settlement", nex.Handler(settlementByID)).Methods("GET") //结算单
	return router
}

func sessionIdFromRequest(r *http.Request) (int64, error) {
	vars := mux.Vars(r)
	idStr, ok := vars["id"]
	if !ok || idStr == "" {
		return 0, errutil.ErrIllegalParameter
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return 0, errutil.ErrIllegalParameter
	}
	return id, nil
}

func createSession(req *protocol.CreateSessionRequest) (*protocol.CreateSessionResponse, error) {
	var rules *ledger.Ruleset
	switch {
	case req.Preset != "":
		preset, ok := ledger.Preset(req.Preset)
		if !ok {
			return nil, errutil.ErrRulesetNotFound
		}
		rules = preset
	case req.Ruleset != nil:
		custom, ok := ledger.FromProtocol(req.Ruleset)
		if !ok {
			return nil, errutil.ErrInvalidRuleset
		}
		if violations := ledger.Validate(custom); len(violations) > 0 {
			logger.Infof("自定义规则未通过校验: %v", violations)
			return nil, errutil.ErrInvalidRuleset
		}
		rules = custom
	default:
		return nil, errutil.ErrIllegalParameter
	}

	var players [constant.SeatCount]ledger.Player
	for i, seat := range req.Players {
		players[i] = ledger.Player{Uid: seat.Uid, Nickname: seat.Nickname}
	}

	live, err := defaultManager.create(players, rules)
	if err != nil {
		return nil, err
	}
	return &protocol.CreateSessionResponse{
		SessionId: live.Id,
		SerialNo:  live.SerialNo,
	}, nil
}

func sessionByID(r *http.Request) (*protocol.SessionResponse, error) {
	id, err := sessionIdFromRequest(r)
	if err != nil {
		return nil, err
	}
	live, err := defaultManager.session(id)
	if err != nil {
		return nil, err
	}

	live.Lock()
	defer live.Unlock()
	return &protocol.SessionResponse{Data: live.ToProtocol()}, nil
}

func applyRound(r *http.Request, req *protocol.ApplyRoundRequest) (*protocol.ApplyRoundResponse, error) {
	id, err := sessionIdFromRequest(r)
	if err != nil {
		return nil, err
	}
	live, err := defaultManager.session(id)
	if err != nil {
		return nil, err
	}

	live.Lock()
	defer live.Unlock()

	record, err := live.Apply(&req.Outcome)
	if err != nil {
		return nil, err
	}

	row, err := recordToModel(live.Id, record)
	if err != nil {
		return nil, errutil.ErrServerInternal
	}
	if err := db.InsertRound(row); err != nil {
		return nil, err
	}
	persist(live.Session)

	logger.Debugf("结算一局: Session=%d Round=%d Changes=%v", live.Id, record.Round, record.ScoreChanges)
	return &protocol.ApplyRoundResponse{
		Round:   recordToProtocol(live.Id, record),
		Session: live.ToProtocol(),
	}, nil
}

func undoRound(r *http.Request) (*protocol.UndoResponse, error) {
	id, err := sessionIdFromRequest(r)
	if err != nil {
		return nil, err
	}
	live, err := defaultManager.session(id)
	if err != nil {
		return nil, err
	}

	live.Lock()
	defer live.Unlock()

	removed, err := live.Undo()
	if err != nil {
		return nil, err
	}
	if err := db.DeleteRound(removed.RoundId); err != nil {
		return nil, err
	}
	persist(live.Session)

	logger.Debugf("撤销一局: Session=%d RoundId=%s", live.Id, removed.RoundId)
	return &protocol.UndoResponse{
		RoundId: removed.RoundId,
		Session: live.ToProtocol(),
	}, nil
}

func completeSession(r *http.Request) (*protocol.SettlementResponse, error) {
	id, err := sessionIdFromRequest(r)
	if err != nil {
		return nil, err
	}
	live, err := defaultManager.session(id)
	if err != nil {
		return nil, err
	}

	live.Lock()
	alreadyDone := live.Status == constant.SessionStatusCompleted
	live.Complete()
	st := ledger.Settle(live.Players, live.Scores, settleOptions())
	if !alreadyDone {
		persist(live.Session)
		now := time.Now().Unix()
		for _, row := range st.Rows {
			db.AsyncInsert(settlementRowToModel(live.Id, row, now))
		}
	}
	live.Unlock()

	defaultManager.evict(id)
	return &protocol.SettlementResponse{Data: st}, nil
}

func settlementByID(r *http.Request) (*protocol.SettlementResponse, error) {
	id, err := sessionIdFromRequest(r)
	if err != nil {
		return nil, err
	}
	live, err := defaultManager.session(id)
	if err != nil {
		return nil, err
	}

	live.Lock()
	defer live.Unlock()
	return &protocol.SettlementResponse{
		Data: ledger.Settle(live.Players, live.Scores, settleOptions()),
	}, nil
}

func roundList(_ context.Context, r *http.Request) (*protocol.RoundListResponse, error) {
	id, err := sessionIdFromRequest(r)
	if err != nil {
		return nil, err
	}

	rows, total, err := db.QueryRoundsBySessionID(id)
	if err != nil {
		return nil, err
	}
	list := make([]protocol.Round, len(rows))
	for i := range rows {
		record, err := recordFromModel(&rows[i])
		if err != nil {
			return nil, errutil.ErrServerInternal
		}
		list[i] = *recordToProtocol(id, record)
	}
	return &protocol.RoundListResponse{Total: total, Data: list}, nil
}

func sessionList(r *http.Request, form *nex.Form) (*protocol.SessionListResponse, error) {
	vars := mux.Vars(r)
	idStr, ok := vars["id"]
	if !ok || idStr == "" {
		return nil, errutil.ErrIllegalParameter
	}
	playerId, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return nil, errutil.ErrIllegalParameter
	}

	offset := int(form.Int64OrDefault("offset", 0))
	count := int(form.Int64OrDefault("count", 0))

	rows, total, err := db.SessionList(playerId, offset, count)
	if err != nil {
		return nil, err
	}
	list := make([]protocol.Session, len(rows))
	for i, row := range rows {
		list[i] = *sessionRowToProtocol(&row)
	}
	return &protocol.SessionListResponse{Total: total, Data: list}, nil
}

func settleOptions() ledger.SettleOptions {
	return ledger.SettleOptions{
		PointsPerUnit: viper.GetFloat64("settlement.points_per_unit"),
		Granularity:   viper.GetFloat64("settlement.granularity"),
	}
}

func recordToProtocol(sessionId int64, r *ledger.RoundRecord) *protocol.Round {
	return &protocol.Round{
		RoundId:    r.RoundId,
		SessionId:  sessionId,
		Round:      r.Round,
		HandInWind: r.HandInWind,
		Outcome:    r.Outcome,
		ScoreChanges: [constant.SeatCount]int{
			r.ScoreChanges[0], r.ScoreChanges[1], r.ScoreChanges[2], r.ScoreChanges[3],
		},
		PrevDealer: r.PrevDealer,
		PrevWind:   int(r.PrevWind),
		PrevRepeat: r.PrevRepeat,
		AppliedAt:  r.AppliedAt,
	}
}
