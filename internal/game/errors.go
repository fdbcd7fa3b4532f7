package game

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration signals a programmer error such as an
// out-of-range period passed to a content provider. It aborts prompt
// generation instead of silently leaving the round with stale state.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// ErrNotAcceptingInput is returned when an interaction or submit arrives
// while the session is not awaiting input (loading a new round, or inside
// the post-correct delay).
var ErrNotAcceptingInput = errors.New("session is not accepting input")

// MalformedInputError reports free-text input that cannot be parsed into
// the expected type. It is distinct from an incorrect answer: the submit
// is not counted and the student is asked to fix the input.
type MalformedInputError struct {
	Slot    string
	Input   string
	Message string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed input %q for slot %s", e.Input, e.Slot)
}
