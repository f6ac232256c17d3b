package ramp

import (
	"fmt"
	"strings"

	"github.com/go-drift/ramp/pkg/errors"
)

// LoopMode selects the initial direction of a session and what happens each
// time a cycle completes.
type LoopMode int

const (
	// OnceForward plays origin to target once, then finishes on target.
	OnceForward LoopMode = iota
	// LoopForward plays origin to target, restarting from origin every cycle.
	LoopForward
	// ForthAndBack plays origin to target, then target to origin, and so on.
	ForthAndBack
	// OnceBackward plays target to origin once, then finishes on origin.
	OnceBackward
	// LoopBackward plays target to origin, restarting from target every cycle.
	LoopBackward
	// BackAndForth plays target to origin, then origin to target, and so on.
	BackAndForth
)

var loopModeNames = [...]string{
	OnceForward:  "once-forward",
	LoopForward:  "loop-forward",
	ForthAndBack: "forth-and-back",
	OnceBackward: "once-backward",
	LoopBackward: "loop-backward",
	BackAndForth: "back-and-forth",
}

// String returns the kebab-case name used in preset files.
func (m LoopMode) String() string {
	if m.Valid() {
		return loopModeNames[m]
	}
	return fmt.Sprintf("LoopMode(%d)", int(m))
}

// Valid reports whether m is one of the six defined modes.
func (m LoopMode) Valid() bool {
	return m >= OnceForward && m <= BackAndForth
}

// Backward reports whether sessions in this mode start reversed.
func (m LoopMode) Backward() bool {
	return m == OnceBackward || m == LoopBackward || m == BackAndForth
}

// Looping reports whether sessions in this mode continue past one cycle.
func (m LoopMode) Looping() bool {
	return m != OnceForward && m != OnceBackward
}

// PingPong reports whether the direction flips at every cycle boundary.
func (m LoopMode) PingPong() bool {
	return m == ForthAndBack || m == BackAndForth
}

// ParseLoopMode converts a name such as "forth-and-back" to a LoopMode.
// Underscores and case differences are tolerated.
func ParseLoopMode(s string) (LoopMode, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	for m, name := range loopModeNames {
		if name == key {
			return LoopMode(m), nil
		}
	}
	return OnceForward, errors.Invalid("ramp.ParseLoopMode", fmt.Errorf("%w %q", errors.ErrInvalidLoopMode, s))
}

// MarshalText implements encoding.TextMarshaler.
func (m LoopMode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, errors.Invalid("ramp.LoopMode.MarshalText", errors.ErrInvalidLoopMode)
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *LoopMode) UnmarshalText(text []byte) error {
	parsed, err := ParseLoopMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
