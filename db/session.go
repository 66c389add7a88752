package db

import (
	"github.com/mjpad/mjledger/db/model"
	"github.com/mjpad/mjledger/pkg/errutil"
)

func InsertSession(s *model.Session) error {
	if s == nil {
		return errutil.ErrInvalidParameter
	}
	_, err := database.Insert(s)
	if err != nil {
		logger.Error(err)
		return errutil.ErrDBOperation
	}
	return nil
}

func UpdateSession(s *model.Session) error {
	if s == nil {
		return errutil.ErrInvalidParameter
	}
	_, err := database.Exec("UPDATE `session` SET `score0`=?, `score1`=?, `score2`=?, `score3`=?, `round`=?, `wind`=?, `hand_in_wind`=?, `dealer`=?, `repeat`=?, `status`=?, `completed_at`=? WHERE `id`=?",
		s.Score0,
		s.Score1,
		s.Score2,
		s.Score3,
		s.Round,
		s.Wind,
		s.HandInWind,
		s.Dealer,
		s.Repeat,
		s.Status,
		s.CompletedAt,
		s.Id)
	if err != nil {
		logger.Error(err)
		return errutil.ErrDBOperation
	}
	return nil
}

func QuerySession(id int64) (*model.Session, error) {
	s := &model.Session{Id: id}
	has, err := database.Get(s)
	if err != nil {
		logger.Error(err)
		return nil, errutil.ErrDBOperation
	}
	if !has {
		return nil, errutil.ErrSessionNotFound
	}
	return s, nil
}

// 指定的桌号是否已被占用
func SessionNumberExists(no string) bool {
	s := &model.Session{
		SerialNo: no,
		Status:   SessionStatusActive,
	}

	has, err := database.Get(s)
	if err != nil {
		return true
	}
	return has
}

func SessionList(playerId int64, offset, count int) ([]model.Session, int64, error) {
	result := make([]model.Session, 0)
	session := database.Where("player0=? OR player1=? OR player2=? OR player3=?",
		playerId, playerId, playerId, playerId).Desc("created_at")
	if count > 0 {
		session = session.Limit(count, offset)
	}
	err := session.Find(&result)
	if err != nil {
		logger.Error(err)
		return nil, 0, errutil.ErrDBOperation
	}
	return result, int64(len(result)), nil
}

func ActiveSessionCount() (int64, error) {
	total, err := database.Where("status=?", SessionStatusActive).Count(new(model.Session))
	if err != nil {
		logger.Error(err)
		return 0, errutil.ErrDBOperation
	}
	return total, nil
}
