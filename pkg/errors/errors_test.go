package errors

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestRampErrorString(t *testing.T) {
	err := &RampError{
		Op:   "ramp.Go",
		Kind: KindInvalidArgument,
		Err:  ErrNilCurve,
	}
	got := err.Error()
	want := "ramp.Go [invalid-argument]: easing curve is nil"
	if got != want {
		t.Errorf("RampError.Error() = %q, want %q", got, want)
	}
}

func TestRampErrorUnwrap(t *testing.T) {
	err := fmt.Errorf("starting fade: %w", Invalid("ramp.SetGrain", ErrNegativeGrain))
	if !stderrors.Is(err, ErrNegativeGrain) {
		t.Error("expected wrapped error to match ErrNegativeGrain")
	}
	if !IsKind(err, KindInvalidArgument) {
		t.Error("expected IsKind to see through fmt wrapping")
	}
	if IsKind(err, KindConfig) {
		t.Error("IsKind matched the wrong kind")
	}
	if IsKind(stderrors.New("plain"), KindUnknown) {
		t.Error("IsKind should be false for non-RampError values")
	}
}

func TestNewSetsTimestamp(t *testing.T) {
	err := New("preset.Parse", KindConfig, ErrInvalidPreset)
	if err.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindInvalidArgument, "invalid-argument"},
		{KindConfig, "config"},
		{KindPanic, "panic"},
		{ErrorKind(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{
		Value:     "test panic",
		Timestamp: time.Now(),
	}
	if got, want := err.Error(), "panic: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}

	err.Op = "cmd.watch"
	if got, want := err.Error(), "panic in cmd.watch: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func useHandler(t *testing.T, h ErrorHandler) {
	t.Helper()
	prev := SetHandler(h)
	t.Cleanup(func() { SetHandler(prev) })
}

func TestReport(t *testing.T) {
	var captured []*RampError
	useHandler(t, &testHandler{onError: func(err *RampError) {
		captured = append(captured, err)
	}})

	Report("cmd.Execute", &RampError{Op: "preset.Load", Kind: KindConfig, Err: ErrInvalidPreset})
	Report("cmd.Execute", fmt.Errorf("while plotting: %w", Invalid("trace.Record", stderrors.New("tick must be positive"))))
	Report("cmd.Execute", stderrors.New("--preset is required"))
	Report("cmd.Execute", nil)

	if len(captured) != 3 {
		t.Fatalf("handler saw %d errors, want 3", len(captured))
	}
	tests := []struct {
		op   string
		kind ErrorKind
	}{
		{"preset.Load", KindConfig},
		{"trace.Record", KindInvalidArgument},
		{"cmd.Execute", KindUnknown},
	}
	for i, tt := range tests {
		if captured[i].Op != tt.op || captured[i].Kind != tt.kind {
			t.Errorf("report %d = %s/%s, want %s/%s", i, captured[i].Op, captured[i].Kind, tt.op, tt.kind)
		}
		if captured[i].Timestamp.IsZero() {
			t.Errorf("report %d has no timestamp", i)
		}
	}
}

func TestRecover(t *testing.T) {
	var handled, returned *PanicError
	useHandler(t, &testHandler{onPanic: func(err *PanicError) { handled = err }})

	err := func() (err error) {
		defer Recover("watch.Run", func(p *PanicError) {
			returned = p
			err = p
		})
		panicInWatch()
		return nil
	}()

	if handled == nil || handled != returned {
		t.Fatal("panic should reach both the handler and the callback")
	}
	if err == nil || err.Error() != "panic in watch.Run: wobble" {
		t.Errorf("err = %v", err)
	}
	if !strings.Contains(handled.StackTrace, "panicInWatch") {
		t.Errorf("stack should start at the panicking function, got:\n%s", handled.StackTrace)
	}
	if strings.Contains(handled.StackTrace, "runtime.gopanic") || strings.Contains(handled.StackTrace, "errors.Recover") {
		t.Errorf("stack should leave out panic machinery, got:\n%s", handled.StackTrace)
	}
}

func panicInWatch() { panic("wobble") }

func TestRecoverWithoutCallback(t *testing.T) {
	calls := 0
	useHandler(t, &testHandler{onPanic: func(*PanicError) { calls++ }})

	func() {
		defer Recover("cmd.Execute", nil)
		panic(7)
	}()
	func() {
		defer Recover("cmd.Execute", nil)
	}()
	if calls != 1 {
		t.Errorf("handler called %d times, want 1", calls)
	}
}

func TestSetHandler(t *testing.T) {
	custom := &testHandler{}
	prev := SetHandler(custom)
	t.Cleanup(func() { SetHandler(prev) })

	if Handler() != custom {
		t.Fatalf("Handler() = %T, want the installed handler", Handler())
	}
	if got := SetHandler(nil); got != custom {
		t.Errorf("SetHandler should return the replaced handler")
	}
	if h, ok := Handler().(*LogHandler); !ok || h.Verbose {
		t.Errorf("SetHandler(nil) should restore a quiet LogHandler, got %#v", Handler())
	}
}

func TestLogHandlerWritesStructuredFields(t *testing.T) {
	var buf bytes.Buffer
	old := log.Logger
	log.Logger = zerolog.New(&buf)
	defer func() { log.Logger = old }()

	h := &LogHandler{Verbose: true}
	h.HandleError(Invalid("ramp.Go", ErrNilCurve))
	h.HandlePanic(&PanicError{Op: "cmd.watch", Value: "boom", StackTrace: "frame"})

	out := buf.String()
	for _, want := range []string{`"op":"ramp.Go"`, `"kind":"invalid-argument"`, `"message":"ramp_error"`, `"message":"ramp_panic"`, `"stack":"frame"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q missing %q", out, want)
		}
	}
}

type testHandler struct {
	onError func(*RampError)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *RampError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
