package presenter

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/peterpeppereater/ios-academy-homework-peterpeppereater/internal/application"
)

// Notifier presents alerts to the user.
type Notifier interface {
	Notify(a Alert)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Alert)

func (f NotifierFunc) Notify(a Alert) { f(a) }

// WriterNotifier prints "Title: Message" lines.
type WriterNotifier struct {
	W io.Writer
}

func (n WriterNotifier) Notify(a Alert) {
	_, _ = fmt.Fprintf(n.W, "%s: %s\n", a.Title, a.Message)
}

// LogNotifier reports alerts as warnings.
type LogNotifier struct {
	Logger *logrus.Logger
}

func (n LogNotifier) Notify(a Alert) {
	n.Logger.WithField("title", a.Title).Warn(a.Message)
}

// Present notifies n when res needs an alert and reports whether it did.
func Present(n Notifier, res application.Result) bool {
	a, ok := AlertFor(res)
	if ok {
		n.Notify(a)
	}
	return ok
}
