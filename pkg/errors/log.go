package errors

import (
	"github.com/rs/zerolog/log"
)

// LogHandler is an ErrorHandler that writes to the global zerolog logger.
// The CLI turns Verbose on in DEV mode.
type LogHandler struct {
	// Verbose adds the error kind, timestamp and panic stacks.
	Verbose bool
}

// HandleError logs a RampError at error level.
func (h *LogHandler) HandleError(err *RampError) {
	if err == nil {
		return
	}
	event := log.Error().Str("op", err.Op).Err(err.Err)
	if h.Verbose {
		event = event.Str("kind", err.Kind.String()).Time("at", err.Timestamp)
	}
	event.Msg("ramp_error")
}

// HandlePanic logs a PanicError at error level.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	event := log.Error().Interface("value", err.Value)
	if err.Op != "" {
		event = event.Str("op", err.Op)
	}
	if h.Verbose && err.StackTrace != "" {
		event = event.Str("stack", err.StackTrace)
	}
	event.Msg("ramp_panic")
}
