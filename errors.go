package pulsenet

import (
	"errors"
	"fmt"
)

var (
	// ErrNoBroadcaster is returned when no declaration names the broadcaster.
	ErrNoBroadcaster = errors.New("no broadcaster declared")
	// ErrDuplicate is returned when a label is declared twice.
	ErrDuplicate = errors.New("duplicate module")
)

// ParseError describes a declaration line that could not be parsed.
type ParseError struct {
	Line   int    // 1-based line number
	Text   string // the offending line
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Text)
}
