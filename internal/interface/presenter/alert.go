package presenter

import (
	"errors"

	"github.com/peterpeppereater/ios-academy-homework-peterpeppereater/internal/application"
)

// Alert is what a caller shows the user after a failed attempt.
type Alert struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

const (
	TitleInvalidEmail  = "Invalid username"
	TitleEmptyPassword = "Password empty"
	TitleRequestFailed = "Login error"

	MessageInvalidEmail  = "You must enter a valid e-mail"
	MessageEmptyPassword = "You must enter a password"
	// MessageRequestFallback is used when a failure carries no description.
	MessageRequestFallback = "Something went wrong"
)

// AlertFor renders a workflow result. It returns false for successful
// results, which need no alert. Every request failure, whichever step it
// came from, gets the same title.
func AlertFor(res application.Result) (Alert, bool) {
	switch res.Outcome {
	case application.OutcomeSucceeded:
		return Alert{}, false
	case application.OutcomeValidationFailed:
		switch {
		case errors.Is(res.Err, application.ErrInvalidEmail):
			return Alert{Title: TitleInvalidEmail, Message: MessageInvalidEmail}, true
		case errors.Is(res.Err, application.ErrEmptyPassword):
			return Alert{Title: TitleEmptyPassword, Message: MessageEmptyPassword}, true
		}
	}
	msg := res.Description()
	if msg == "" {
		msg = MessageRequestFallback
	}
	return Alert{Title: TitleRequestFailed, Message: msg}, true
}
