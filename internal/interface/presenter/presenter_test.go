package presenter

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"

	"github.com/peterpeppereater/ios-academy-homework-peterpeppereater/internal/application"
	"github.com/peterpeppereater/ios-academy-homework-peterpeppereater/internal/domain/entity"
)

func TestAlertFor(t *testing.T) {
	tests := []struct {
		name   string
		res    application.Result
		want   Alert
		wantOK bool
	}{
		{
			name: "success",
			res:  application.Result{Outcome: application.OutcomeSucceeded, Session: &entity.Session{Token: "t"}},
		},
		{
			name:   "invalid email",
			res:    application.Result{Outcome: application.OutcomeValidationFailed, Err: application.ErrInvalidEmail},
			want:   Alert{Title: "Invalid username", Message: "You must enter a valid e-mail"},
			wantOK: true,
		},
		{
			name:   "empty password",
			res:    application.Result{Outcome: application.OutcomeValidationFailed, Err: application.ErrEmptyPassword},
			want:   Alert{Title: "Password empty", Message: "You must enter a password"},
			wantOK: true,
		},
		{
			name:   "request failed",
			res:    application.Result{Outcome: application.OutcomeRequestFailed, Err: errors.New("timeout")},
			want:   Alert{Title: "Login error", Message: "timeout"},
			wantOK: true,
		},
		{
			name:   "request failed without cause",
			res:    application.Result{Outcome: application.OutcomeRequestFailed},
			want:   Alert{Title: "Login error", Message: "Something went wrong"},
			wantOK: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AlertFor(tt.res)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPresent_WriterNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := WriterNotifier{W: &buf}

	shown := Present(n, application.Result{Outcome: application.OutcomeValidationFailed, Err: application.ErrEmptyPassword})

	assert.True(t, shown)
	assert.Equal(t, "Password empty: You must enter a password\n", buf.String())
}

func TestPresent_SuccessIsSilent(t *testing.T) {
	var calls int
	n := NotifierFunc(func(Alert) { calls++ })

	shown := Present(n, application.Result{Outcome: application.OutcomeSucceeded, Session: &entity.Session{}})

	assert.False(t, shown)
	assert.Zero(t, calls)
}

func TestLogNotifier(t *testing.T) {
	logger, hook := test.NewNullLogger()

	LogNotifier{Logger: logger}.Notify(Alert{Title: "Login error", Message: "boom"})

	entry := hook.LastEntry()
	if assert.NotNil(t, entry) {
		assert.Equal(t, logrus.WarnLevel, entry.Level)
		assert.Equal(t, "boom", entry.Message)
		assert.Equal(t, "Login error", entry.Data["title"])
	}
}
