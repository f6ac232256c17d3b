// Package errors provides structured error handling for the ramp packages.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindInvalidArgument indicates a caller passed an unusable value.
	KindInvalidArgument
	// KindConfig indicates a malformed preset or environment setting.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid-argument"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Sentinel causes carried in RampError.Err. Match them with errors.Is.
var (
	ErrNilCurve        = stderrors.New("easing curve is nil")
	ErrUnknownCurve    = stderrors.New("unknown easing curve")
	ErrInvalidLoopMode = stderrors.New("invalid loop mode")
	ErrNegativeGrain   = stderrors.New("grain must be a non-negative number")
	ErrInvalidPreset   = stderrors.New("invalid preset")
)

// RampError represents a structured error raised by a ramp operation.
type RampError struct {
	// Op is the operation that failed (e.g., "ramp.Go").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

// New returns a RampError stamped with the current time.
func New(op string, kind ErrorKind, err error) *RampError {
	return &RampError{Op: op, Kind: kind, Err: err, Timestamp: time.Now()}
}

// Invalid is shorthand for New(op, KindInvalidArgument, err).
func Invalid(op string, err error) *RampError {
	return New(op, KindInvalidArgument, err)
}

func (e *RampError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *RampError) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is, or wraps, a RampError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var re *RampError
	if stderrors.As(err, &re) {
		return re.Kind == kind
	}
	return false
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "cmd.watch").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives what Report and Recover collect.
type ErrorHandler interface {
	// HandleError is called when an error is reported.
	HandleError(err *RampError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
