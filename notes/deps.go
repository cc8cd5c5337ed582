package notes

import (
	"time"

	"github.com/google/uuid"
)

// Clock supplies the timestamps stamped on notes.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a plain function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the wall clock.
var SystemClock Clock = ClockFunc(time.Now)

// IDSource hands out note identifiers.
type IDSource interface {
	NewID() string
}

// IDFunc adapts a plain function to IDSource.
type IDFunc func() string

func (f IDFunc) NewID() string { return f() }

// UUIDSource generates time-ordered UUIDv7 identifiers.
var UUIDSource IDSource = IDFunc(func() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
})

// Confirmer answers a yes/no prompt. Delete goes through one.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a plain function to Confirmer.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// Confirmed approves every prompt. Used once the caller has already asked.
var Confirmed Confirmer = ConfirmFunc(func(string) bool { return true })

// Notifier shows a blocking message to the user.
type Notifier interface {
	Notify(msg string)
}

// NotifyFunc adapts a plain function to Notifier.
type NotifyFunc func(msg string)

func (f NotifyFunc) Notify(msg string) { f(msg) }

var discardNotifier Notifier = NotifyFunc(func(string) {})
