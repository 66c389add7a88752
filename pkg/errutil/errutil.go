package errutil

import (
	"errors"
)

var (
	ErrBadRoute             = errors.New("bad route")
	ErrWrongType            = errors.New("wrong type")
	ErrNotFound             = errors.New("not found")
	ErrIllegalParameter     = errors.New("illegal parameter")
	ErrInvalidParameter     = errors.New("invalid parameter")
	ErrDBOperation          = errors.New("database opertaion failed")
	ErrServerInternal       = errors.New("server internal error")
	ErrPermissionDenied     = errors.New("permission denied")
	ErrNotImplemented       = errors.New("not implemented")
	ErrInvalidRuleset       = errors.New("invalid ruleset")
	ErrRulesetNotFound      = errors.New("ruleset not found")
	ErrInvalidRoundOutcome  = errors.New("invalid round outcome")
	ErrIllegalSeat          = errors.New("seat out of range")
	ErrIllegalTransition    = errors.New("illegal session state transition")
	ErrSessionCompleted     = errors.New("session already completed")
	ErrSessionNotFound      = errors.New("session not found")
	ErrRoundNotFound        = errors.New("round not found")
	ErrEmptyHistory         = errors.New("no round to undo")
	ErrSessionNumberExhaust = errors.New("session number exhausted")
)

// Code code for the error
func Code(err error) int {
	if c, ok := errs[err]; ok {
		return c
	}
	return Unknown
}
