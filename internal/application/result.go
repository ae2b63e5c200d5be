package application

import "github.com/peterpeppereater/ios-academy-homework-peterpeppereater/internal/domain/entity"

// Outcome discriminates a workflow Result.
type Outcome int

const (
	OutcomeSucceeded Outcome = iota + 1
	OutcomeValidationFailed
	OutcomeRequestFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSucceeded:
		return "succeeded"
	case OutcomeValidationFailed:
		return "validation_failed"
	case OutcomeRequestFailed:
		return "request_failed"
	default:
		return "unknown"
	}
}

// Result is what one login or registration attempt produces.
// Session is set only on success; Err carries either a validation error
// (ErrInvalidEmail, ErrEmptyPassword) or the request failure as returned by
// the transport.
type Result struct {
	Outcome Outcome
	Session *entity.Session
	Err     error
}

func succeeded(s *entity.Session) Result {
	return Result{Outcome: OutcomeSucceeded, Session: s}
}

func validationFailed(err error) Result {
	return Result{Outcome: OutcomeValidationFailed, Err: err}
}

func requestFailed(err error) Result {
	return Result{Outcome: OutcomeRequestFailed, Err: err}
}

// OK reports whether the attempt produced a session.
func (r Result) OK() bool { return r.Outcome == OutcomeSucceeded && r.Session != nil }

// Description returns the failure text, or "" on success.
func (r Result) Description() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}
