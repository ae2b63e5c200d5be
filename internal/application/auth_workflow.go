package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/peterpeppereater/ios-academy-homework-peterpeppereater/internal/domain/entity"
	repo "github.com/peterpeppereater/ios-academy-homework-peterpeppereater/internal/domain/repository"
)

// State is a step of a single workflow call.
type State string

const (
	StateStart            State = "start"
	StateValidating       State = "validating"
	StateCreatingAccount  State = "creating_account"
	StateCreatingSession  State = "creating_session"
	StateSucceeded        State = "succeeded"
	StateFailed           State = "failed"
	StateValidationFailed State = "validation_failed"
)

// Terminal reports whether no further transition follows s.
func (s State) Terminal() bool {
	return s == StateSucceeded || s == StateFailed || s == StateValidationFailed
}

// AuthWorkflow runs login and registration against a SessionAPI.
// It keeps no per-call state, so one value can serve concurrent callers.
type AuthWorkflow struct {
	API    repo.SessionAPI
	Logger *logrus.Logger
	// Observer, if set, is called on every state transition of every call.
	Observer func(State)
}

func NewAuthWorkflow(api repo.SessionAPI, logger *logrus.Logger) *AuthWorkflow {
	return &AuthWorkflow{API: api, Logger: logger}
}

func (w *AuthWorkflow) emit(s State) {
	if w.Observer != nil {
		w.Observer(s)
	}
}

// Validate is the pre-network credential check used by Register.
func (w *AuthWorkflow) Validate(creds entity.Credentials) error {
	return Validate(creds)
}

// Login opens a session for existing credentials. Only presence of both
// fields is checked locally; the API decides whether they are correct.
func (w *AuthWorkflow) Login(ctx context.Context, creds entity.Credentials) Result {
	w.emit(StateStart)
	w.emit(StateValidating)
	switch {
	case creds.Email == "":
		return w.rejected(ErrInvalidEmail, "login")
	case creds.Password == "":
		return w.rejected(ErrEmptyPassword, "login")
	}
	return w.openSession(ctx, creds, "login")
}

// Register validates the credentials, creates the account and then opens a
// session with the same credentials. The session request is only issued
// after account creation succeeded.
func (w *AuthWorkflow) Register(ctx context.Context, creds entity.Credentials) Result {
	w.emit(StateStart)
	w.emit(StateValidating)
	if err := Validate(creds); err != nil {
		return w.rejected(err, "register")
	}

	w.emit(StateCreatingAccount)
	w.debug("register", StateCreatingAccount, creds.Email)
	if _, err := w.API.CreateUser(ctx, creds.Email, creds.Password); err != nil {
		return w.failed(err, "register", StateCreatingAccount)
	}
	return w.openSession(ctx, creds, "register")
}

func (w *AuthWorkflow) openSession(ctx context.Context, creds entity.Credentials, flow string) Result {
	w.emit(StateCreatingSession)
	w.debug(flow, StateCreatingSession, creds.Email)
	session, err := w.API.CreateSession(ctx, creds.Email, creds.Password)
	if err != nil {
		return w.failed(err, flow, StateCreatingSession)
	}
	w.emit(StateSucceeded)
	if w.Logger != nil {
		w.Logger.WithField("flow", flow).Info("session created")
	}
	return succeeded(session)
}

func (w *AuthWorkflow) rejected(err error, flow string) Result {
	w.emit(StateValidationFailed)
	if w.Logger != nil {
		w.Logger.WithError(err).WithField("flow", flow).Info("credentials rejected before request")
	}
	return validationFailed(err)
}

func (w *AuthWorkflow) failed(err error, flow string, step State) Result {
	w.emit(StateFailed)
	if w.Logger != nil {
		w.Logger.WithError(err).WithFields(logrus.Fields{"flow": flow, "step": string(step)}).Warn("auth request failed")
	}
	return requestFailed(err)
}

func (w *AuthWorkflow) debug(flow string, step State, email string) {
	if w.Logger != nil {
		w.Logger.WithFields(logrus.Fields{"flow": flow, "step": string(step), "email": email}).Debug("issuing request")
	}
}
