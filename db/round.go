package db

import (
	"github.com/mjpad/mjledger/db/model"
	"github.com/mjpad/mjledger/pkg/errutil"
)

func InsertRound(r *model.Round) error {
	if r == nil {
		return errutil.ErrInvalidParameter
	}
	_, err := database.Insert(r)
	if err != nil {
		logger.Error(err)
		return errutil.ErrDBOperation
	}
	return nil
}

func QueryRound(roundId string) (*model.Round, error) {
	r := &model.Round{RoundId: roundId}
	has, err := database.Get(r)
	if err != nil {
		logger.Error(err)
		return nil, errutil.ErrDBOperation
	}
	if !has {
		return nil, errutil.ErrRoundNotFound
	}
	return r, nil
}

// DeleteRound 撤销一局时删档
func DeleteRound(roundId string) error {
	_, err := database.Delete(&model.Round{RoundId: roundId})
	if err != nil {
		logger.Error(err)
		return errutil.ErrDBOperation
	}
	return nil
}

func QueryRoundsBySessionID(sessionId int64) ([]model.Round, int64, error) {
	result := make([]model.Round, 0)
	err := database.Where("session_id=?", sessionId).Asc("id").Find(&result)
	if err != nil {
		logger.Error(err)
		return nil, 0, errutil.ErrDBOperation
	}
	return result, int64(len(result)), nil
}
