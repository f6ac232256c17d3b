package errors

import (
	stderrors "errors"
	"fmt"
	"runtime"
	"strings"
	"sync/atomic"
	"time"
)

// handlerBox lets atomic.Value hold handlers of different concrete types.
type handlerBox struct{ h ErrorHandler }

var current atomic.Value

func init() {
	current.Store(handlerBox{&LogHandler{}})
}

// SetHandler installs h as the process-wide handler and returns the one it
// replaced. A nil h restores a quiet LogHandler.
func SetHandler(h ErrorHandler) ErrorHandler {
	if h == nil {
		h = &LogHandler{}
	}
	return current.Swap(handlerBox{h}).(handlerBox).h
}

// Handler returns the process-wide handler.
func Handler() ErrorHandler {
	return current.Load().(handlerBox).h
}

// Report hands err to the current handler. A *RampError anywhere in the
// chain is passed through as is; any other error is wrapped as KindUnknown
// under op. Nil errors are ignored.
func Report(op string, err error) {
	if err == nil {
		return
	}
	var re *RampError
	if !stderrors.As(err, &re) {
		re = New(op, KindUnknown, err)
	}
	if re.Timestamp.IsZero() {
		re.Timestamp = time.Now()
	}
	Handler().HandleError(re)
}

// Recover stops a panic in the calling goroutine, reports it and, when
// onPanic is non-nil, passes it on so the caller can turn it into an error
// return. It must be deferred directly:
//
//	defer errors.Recover("watch.Run", func(p *errors.PanicError) { err = p })
func Recover(op string, onPanic func(*PanicError)) {
	r := recover()
	if r == nil {
		return
	}
	p := &PanicError{
		Op:         op,
		Value:      r,
		StackTrace: panicStack(),
		Timestamp:  time.Now(),
	}
	Handler().HandlePanic(p)
	if onPanic != nil {
		onPanic(p)
	}
}

// panicStack lists the frames of the panicking goroutine as "func file:line"
// lines, leaving out Recover itself and the runtime's panic machinery.
func panicStack() string {
	var pcs [48]uintptr
	n := runtime.Callers(3, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])

	var lines []string
	for {
		f, more := frames.Next()
		if !strings.HasPrefix(f.Function, "runtime.") {
			lines = append(lines, fmt.Sprintf("%s %s:%d", f.Function, f.File, f.Line))
		}
		if !more {
			break
		}
	}
	return strings.Join(lines, "\n")
}
