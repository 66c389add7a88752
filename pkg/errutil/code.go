package errutil

const (
	codeBase = 1000
)

const (
	Unknown = codeBase + iota
	mjBadRoute
	mjNotFound
	mjWrongType
	mjIllegalParameter
	mjInvalidParameter
	mjDbOperation
	mjServerInternal
	mjPermissionDenied
	mjNotImplemented

	mjInvalidRuleset
	mjRulesetNotFound
	mjInvalidRoundOutcome
	mjIllegalSeat
	mjIllegalTransition
	mjSessionCompleted
	mjSessionNotFound
	mjRoundNotFound
	mjEmptyHistory
	mjSessionNumberExhaust
)

var errs = map[error]int{
	ErrBadRoute:             mjBadRoute,
	ErrNotFound:             mjNotFound,
	ErrWrongType:            mjWrongType,
	ErrIllegalParameter:     mjIllegalParameter,
	ErrInvalidParameter:     mjInvalidParameter,
	ErrDBOperation:          mjDbOperation,
	ErrServerInternal:       mjServerInternal,
	ErrPermissionDenied:     mjPermissionDenied,
	ErrNotImplemented:       mjNotImplemented,
	ErrInvalidRuleset:       mjInvalidRuleset,
	ErrRulesetNotFound:      mjRulesetNotFound,
	ErrInvalidRoundOutcome:  mjInvalidRoundOutcome,
	ErrIllegalSeat:          mjIllegalSeat,
	ErrIllegalTransition:    mjIllegalTransition,
	ErrSessionCompleted:     mjSessionCompleted,
	ErrSessionNotFound:      mjSessionNotFound,
	ErrRoundNotFound:        mjRoundNotFound,
	ErrEmptyHistory:         mjEmptyHistory,
	ErrSessionNumberExhaust: mjSessionNumberExhaust,
}
