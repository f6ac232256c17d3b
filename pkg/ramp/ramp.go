package ramp

import (
	"fmt"
	"math"
	"time"

	"github.com/go-drift/ramp/pkg/easing"
	"github.com/go-drift/ramp/pkg/errors"
)

// Status represents the lifecycle state of a Ramp.
//
// The status follows this state machine:
//
//	         Go()               Pause()
//	Idle ──────────► Running ◄──────────► Paused
//	                  │  ▲     Resume()     │
//	  cycle ends      │  │ Go()             │ Stop()
//	  (once modes)    ▼  │                  │
//	               Finished ◄───────────────┘
//
// Looping modes stay Running until Stop or a new Go.
type Status int

const (
	// StatusIdle means no session has been started yet.
	StatusIdle Status = iota
	// StatusRunning means a session is advancing with time.
	StatusRunning
	// StatusPaused means a session is running but its logical clock is frozen.
	StatusPaused
	// StatusFinished means the last session completed or was stopped.
	StatusFinished
)

// String returns a human-readable representation of the status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusFinished:
		return "finished"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Ramp interpolates a value from an origin to a target over time.
//
// A Ramp does no work on its own: the caller starts a session with Go and
// then calls Update from its control loop, at whatever cadence it likes.
// Update measures elapsed time on the ramp's clock, so irregular polling
// only affects how often the value is refreshed, never where it lands.
//
// Each Go starts from the current value, so re-targeting mid-flight is
// seamless. Pause and Resume freeze only the logical clock.
//
// A Ramp is not safe for concurrent use.
type Ramp struct {
	clock Clock

	value  float64
	origin float64
	target float64

	duration   time.Duration
	start      time.Time
	pauseStart time.Time
	pauseTotal time.Duration

	grain   float64
	mode    LoopMode
	reverse bool
	cycles  int
	curve   easing.Curve

	started    bool
	running    bool
	paused     bool
	finished   bool
	automation bool

	statusListeners map[int]func(Status)
	cycleListeners  map[int]func(int)
	nextListenerID  int
}

// New returns an idle ramp at value 0 that reads time from the package clock.
// Grain starts at 0, so values are not quantized until SetGrain is called.
// Drivers written against unit-step hardware used to get a grain of 1 by
// default and must now ask for it.
func New() *Ramp {
	return &Ramp{
		finished:   true,
		automation: true,
		curve:      easing.Linear,
	}
}

// NewWithClock returns an idle ramp bound to the given clock.
func NewWithClock(c Clock) *Ramp {
	r := New()
	r.clock = c
	return r
}

// Go starts a new session from the current value toward target.
//
// A non-positive duration completes the session on the next Update, jumping
// straight to its end value. A nil curve or an undefined mode is rejected
// and leaves the ramp untouched.
func (r *Ramp) Go(target float64, duration time.Duration, mode LoopMode, curve easing.Curve) (*Ramp, error) {
	if curve == nil {
		return r, errors.Invalid("ramp.Go", errors.ErrNilCurve)
	}
	if !mode.Valid() {
		return r, errors.Invalid("ramp.Go", fmt.Errorf("%w: %d", errors.ErrInvalidLoopMode, int(mode)))
	}
	if duration < 0 {
		duration = 0
	}

	prev := r.Status()
	r.origin = r.value
	r.target = target
	r.duration = duration
	r.start = r.now()
	r.pauseTotal = 0
	r.pauseStart = time.Time{}
	r.mode = mode
	r.reverse = mode.Backward()
	r.cycles = 0
	r.curve = curve
	r.started = true
	r.running = true
	r.paused = false
	r.finished = false
	r.notifyStatus(prev)
	return r, nil
}

// GoMillis is Go with the duration given in milliseconds. NaN and infinite
// durations are rejected; finite durations too long for time.Duration
// saturate at its maximum.
func (r *Ramp) GoMillis(target, durationMS float64, mode LoopMode, curve easing.Curve) (*Ramp, error) {
	if math.IsNaN(durationMS) || math.IsInf(durationMS, 0) {
		return r, errors.Invalid("ramp.GoMillis", fmt.Errorf("duration must be finite, got %v ms", durationMS))
	}
	return r.Go(target, millis(durationMS), mode, curve)
}

func millis(ms float64) time.Duration {
	ns := ms * float64(time.Millisecond)
	switch {
	case ns >= math.MaxInt64:
		return time.Duration(math.MaxInt64)
	case ns <= math.MinInt64:
		return time.Duration(math.MinInt64)
	}
	return time.Duration(ns)
}

// Update recomputes the value from the time elapsed on the ramp's clock.
// It does nothing when automation is off, when no session is running, or
// while paused. Calling it twice at the same instant yields the same value.
func (r *Ramp) Update() *Ramp {
	if !r.automation || !r.running || r.paused {
		return r
	}

	pos := r.position(r.now())
	if pos.done {
		prev := r.Status()
		r.running = false
		r.finished = true
		if pos.reverse {
			r.value = r.origin
		} else {
			r.value = r.target
		}
		r.notifyStatus(prev)
		return r
	}

	if pos.cycles > 0 {
		// Keep the remainder so late polls do not push later cycles back.
		r.start = r.start.Add(time.Duration(pos.cycles) * r.duration)
		r.reverse = pos.reverse
		r.cycles += pos.cycles
		r.notifyCycle()
	}

	r.value = r.interpolate(pos.elapsed, pos.reverse)
	return r
}

// Pause freezes the logical clock. It has no effect unless a session is
// running and not already paused.
func (r *Ramp) Pause() *Ramp {
	if !r.running || r.paused {
		return r
	}
	prev := r.Status()
	r.paused = true
	r.pauseStart = r.now()
	r.notifyStatus(prev)
	return r
}

// Resume restarts the logical clock, excluding the paused interval from
// elapsed time. It has no effect unless paused.
func (r *Ramp) Resume() *Ramp {
	if !r.paused {
		return r
	}
	prev := r.Status()
	if d := r.now().Sub(r.pauseStart); d > 0 {
		r.pauseTotal += d
	}
	r.paused = false
	r.pauseStart = time.Time{}
	r.notifyStatus(prev)
	return r
}

// Stop ends the running session where it is. The value is left unchanged.
func (r *Ramp) Stop() *Ramp {
	if !r.running {
		return r
	}
	prev := r.Status()
	r.running = false
	r.paused = false
	r.finished = true
	r.notifyStatus(prev)
	return r
}

// SetGrain sets the quantization step applied to interpolated values.
// Zero disables quantization; negative or NaN steps are rejected.
func (r *Ramp) SetGrain(grain float64) (*Ramp, error) {
	if grain < 0 || math.IsNaN(grain) || math.IsInf(grain, 0) {
		return r, errors.Invalid("ramp.SetGrain", fmt.Errorf("%w: %v", errors.ErrNegativeGrain, grain))
	}
	r.grain = grain
	return r, nil
}

// SetAutomation enables or disables Update. While disabled the value stays
// where it is no matter how much time passes.
func (r *Ramp) SetAutomation(enabled bool) *Ramp {
	r.automation = enabled
	return r
}

// SetValue overwrites the current value. It becomes the origin of the next
// Go. While a session is running with automation on, the next Update
// replaces it again.
func (r *Ramp) SetValue(v float64) *Ramp {
	r.value = v
	return r
}

// Value returns the last computed value.
func (r *Ramp) Value() float64 { return r.value }

// Origin returns the start value of the current session.
func (r *Ramp) Origin() float64 { return r.origin }

// Target returns the end value of the current session.
func (r *Ramp) Target() float64 { return r.target }

// Duration returns the length of one cycle.
func (r *Ramp) Duration() time.Duration { return r.duration }

// DurationMillis returns the length of one cycle in milliseconds.
func (r *Ramp) DurationMillis() float64 {
	return float64(r.duration) / float64(time.Millisecond)
}

// Grain returns the quantization step.
func (r *Ramp) Grain() float64 { return r.grain }

// Automation reports whether Update is enabled.
func (r *Ramp) Automation() bool { return r.automation }

// IsPaused reports whether the session is paused.
func (r *Ramp) IsPaused() bool { return r.paused }

// IsRunning reports whether a session is in progress (paused or not).
func (r *Ramp) IsRunning() bool { return r.running }

// IsFinished reports whether no session is in progress. A new ramp is
// finished.
func (r *Ramp) IsFinished() bool { return r.finished }

// CycleCount returns how many cycles completed since the last Go.
func (r *Ramp) CycleCount() int { return r.cycles }

// LoopMode returns the loop mode of the current session.
func (r *Ramp) LoopMode() LoopMode { return r.mode }

// Reversed reports whether the current cycle plays from target to origin.
func (r *Ramp) Reversed() bool { return r.reverse }

// Status returns the lifecycle state.
func (r *Ramp) Status() Status {
	switch {
	case r.paused:
		return StatusPaused
	case r.running:
		return StatusRunning
	case r.started:
		return StatusFinished
	default:
		return StatusIdle
	}
}

// Completion returns how far the current cycle has progressed, from 0 to
// 100. Reversed cycles count down. A ramp that never started reports 0 and
// a finished one reports 100. The result reflects the clock, not the last
// Update, and stays frozen while paused.
func (r *Ramp) Completion() float64 {
	if !r.started {
		return 0
	}
	if r.finished {
		return 100
	}
	if !r.running {
		return 0
	}

	now := r.now()
	if r.paused {
		now = r.pauseStart
	}
	pos := r.position(now)
	if pos.done {
		return 100
	}
	c := float64(pos.elapsed) / float64(r.duration) * 100
	if pos.reverse {
		c = 100 - c
	}
	return math.Min(100, math.Max(0, c))
}

// AddStatusListener registers fn to be called whenever the status changes.
// Returns an unsubscribe function.
func (r *Ramp) AddStatusListener(fn func(Status)) func() {
	if r.statusListeners == nil {
		r.statusListeners = make(map[int]func(Status))
	}
	id := r.nextListenerID
	r.nextListenerID++
	r.statusListeners[id] = fn
	return func() {
		delete(r.statusListeners, id)
	}
}

// AddCycleListener registers fn to be called with the new cycle count each
// time Update observes completed cycles. Returns an unsubscribe function.
func (r *Ramp) AddCycleListener(fn func(int)) func() {
	if r.cycleListeners == nil {
		r.cycleListeners = make(map[int]func(int))
	}
	id := r.nextListenerID
	r.nextListenerID++
	r.cycleListeners[id] = fn
	return func() {
		delete(r.cycleListeners, id)
	}
}

// String summarizes the ramp for logs.
func (r *Ramp) String() string {
	return fmt.Sprintf("ramp{%s %s value=%g origin=%g target=%g duration=%s cycles=%d}",
		r.Status(), r.mode, r.value, r.origin, r.target, r.duration, r.cycles)
}

// position is where a session stands at a given instant, with any cycles
// completed since start folded in.
type position struct {
	cycles  int
	elapsed time.Duration
	reverse bool
	done    bool
}

func (r *Ramp) position(now time.Time) position {
	elapsed := now.Sub(r.start) - r.pauseTotal
	if elapsed < 0 {
		elapsed = 0
	}
	pos := position{elapsed: elapsed, reverse: r.reverse}
	if elapsed < r.duration {
		return pos
	}
	if r.duration <= 0 || !r.mode.Looping() {
		pos.done = true
		return pos
	}

	n := elapsed / r.duration
	pos.cycles = int(n)
	pos.elapsed = elapsed - n*r.duration
	if r.mode.PingPong() && n%2 == 1 {
		pos.reverse = !pos.reverse
	}
	return pos
}

func (r *Ramp) interpolate(elapsed time.Duration, reverse bool) float64 {
	progress := float64(elapsed) / float64(r.duration)
	if reverse {
		progress = 1 - progress
	}
	v := r.origin + (r.target-r.origin)*r.curve(progress)
	if r.grain > 0 {
		v = math.Round(v/r.grain) * r.grain
	}
	return v
}

func (r *Ramp) now() time.Time {
	if r.clock != nil {
		return r.clock.Now()
	}
	return Now()
}

func (r *Ramp) notifyStatus(prev Status) {
	status := r.Status()
	if status == prev {
		return
	}
	for _, listener := range r.statusListeners {
		listener(status)
	}
}

func (r *Ramp) notifyCycle() {
	for _, listener := range r.cycleListeners {
		listener(r.cycles)
	}
}
