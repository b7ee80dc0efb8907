// Package timer implements the work/break state machine. It has no storage
// dependency: a completed work interval is returned to the caller, which
// decides where to persist it.
package timer

import (
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/pocketflow/internal/domain"
)

// ErrInvalidTransition is returned when an operation is not allowed from the
// current state. State is left untouched.
var ErrInvalidTransition = errors.New("invalid timer transition")

// Durations are the configured interval lengths in seconds.
type Durations struct {
	Work  uint
	Break uint
}

// DefaultDurations returns 25-minute work and 5-minute break intervals.
func DefaultDurations() Durations {
	return Durations{Work: 25 * 60, Break: 5 * 60}
}

// Snapshot is a read-only view of the timer state.
type Snapshot struct {
	Mode           domain.Mode
	RunState       domain.RunState
	Remaining      uint
	Total          uint
	WorkStartedAt  *time.Time
	BreakMinimized bool
}

// Running reports whether the countdown is advancing.
func (s Snapshot) Running() bool { return s.RunState == domain.RunRunning }

// BreakActive reports whether a break is in progress (running or not) with
// time left on it.
func (s Snapshot) BreakActive() bool {
	return s.Mode == domain.ModeBreak && s.Remaining > 0
}

// BreakElapsed reports whether the break ran out and the timer waits for the
// next work interval.
func (s Snapshot) BreakElapsed() bool {
	return s.Mode == domain.ModeBreak && s.RunState == domain.RunStopped && s.Remaining == 0
}

// TickResult is what a Tick produced. Completed is set only on the tick that
// finished a tracked work interval.
type TickResult struct {
	Signals   Signals
	Completed *domain.WorkSession
	Advanced  bool
}

// Timer is the work/break state machine. It is not safe for concurrent use;
// the host drives it from a single loop.
type Timer struct {
	durations Durations

	mode      domain.Mode
	runState  domain.RunState
	remaining uint

	lastTick       time.Time
	workStart      time.Time
	breakMinimized bool
}

// New returns a stopped timer at the start of a work interval.
func New(d Durations) *Timer {
	return &Timer{
		durations: d,
		mode:      domain.ModeWork,
		runState:  domain.RunStopped,
		remaining: d.Work,
	}
}

// Snapshot returns the current state.
func (t *Timer) Snapshot() Snapshot {
	s := Snapshot{
		Mode:           t.mode,
		RunState:       t.runState,
		Remaining:      t.remaining,
		Total:          t.durationFor(t.mode),
		BreakMinimized: t.breakMinimized,
	}
	if !t.workStart.IsZero() {
		ws := t.workStart
		s.WorkStartedAt = &ws
	}
	return s
}

// Start begins or resumes the countdown. The first start of a work interval
// records its start instant and asks the host to minimize.
func (t *Timer) Start(now time.Time) (Signals, error) {
	if t.runState == domain.RunRunning {
		return 0, t.invalid("start")
	}
	if t.mode == domain.ModeBreak && t.remaining == 0 {
		return 0, t.invalid("start")
	}

	t.runState = domain.RunRunning
	t.lastTick = now

	if t.mode == domain.ModeWork && t.workStart.IsZero() {
		t.workStart = now.UTC()
		return SignalMinimize, nil
	}
	return 0, nil
}

// Pause freezes the countdown. Remaining time and the work start survive.
func (t *Timer) Pause() error {
	if t.runState != domain.RunRunning {
		return t.invalid("pause")
	}
	t.runState = domain.RunPaused
	t.lastTick = time.Time{}
	return nil
}

// Restart stops the timer and refills the current interval. A work interval
// restarted before completion is abandoned.
func (t *Timer) Restart() error {
	if t.runState == domain.RunStopped {
		return t.invalid("restart")
	}
	t.runState = domain.RunStopped
	t.remaining = t.durationFor(t.mode)
	t.lastTick = time.Time{}
	t.workStart = time.Time{}
	return nil
}

// Tick consumes at most one second of elapsed time. Seconds missed between
// calls are not caught up.
func (t *Timer) Tick(now time.Time) TickResult {
	if t.runState != domain.RunRunning || t.lastTick.IsZero() {
		return TickResult{}
	}
	if now.Sub(t.lastTick) < time.Second {
		return TickResult{}
	}

	t.lastTick = now
	if t.remaining > 0 {
		t.remaining--
	}
	res := TickResult{Advanced: true}
	if t.remaining > 0 {
		return res
	}

	switch t.mode {
	case domain.ModeWork:
		if !t.workStart.IsZero() {
			s := domain.NewWorkSession(t.workStart, now)
			res.Completed = &s
		}
		res.Signals = t.startBreak(now)
	case domain.ModeBreak:
		t.runState = domain.RunStopped
		t.lastTick = time.Time{}
		if !t.breakMinimized {
			res.Signals = SignalExitFullscreen
		}
	}
	return res
}

// StartWork leaves an elapsed break and sets up a stopped work interval.
func (t *Timer) StartWork() (Signals, error) {
	if !t.Snapshot().BreakElapsed() {
		return 0, t.invalid("start work")
	}
	t.mode = domain.ModeWork
	t.remaining = t.durations.Work
	t.runState = domain.RunStopped
	t.lastTick = time.Time{}
	return SignalExitFullscreen, nil
}

// SkipBreak abandons the rest of the break and immediately starts a fresh
// work interval.
func (t *Timer) SkipBreak(now time.Time) (Signals, error) {
	if !t.Snapshot().BreakActive() {
		return 0, t.invalid("skip break")
	}
	t.mode = domain.ModeWork
	t.remaining = t.durations.Work
	t.runState = domain.RunRunning
	t.lastTick = now
	t.workStart = now.UTC()
	return SignalExitFullscreen | SignalMinimize, nil
}

// MinimizeBreak drops the fullscreen break presentation while the break keeps
// counting down. It holds until the next break starts.
func (t *Timer) MinimizeBreak() (Signals, error) {
	if !t.Snapshot().BreakActive() || t.breakMinimized {
		return 0, t.invalid("minimize break")
	}
	t.breakMinimized = true
	return SignalExitFullscreen, nil
}

func (t *Timer) startBreak(now time.Time) Signals {
	t.mode = domain.ModeBreak
	t.remaining = t.durations.Break
	t.runState = domain.RunRunning
	t.lastTick = now
	t.workStart = time.Time{}
	t.breakMinimized = false
	return SignalEnterFullscreen
}

func (t *Timer) durationFor(m domain.Mode) uint {
	if m == domain.ModeBreak {
		return t.durations.Break
	}
	return t.durations.Work
}

func (t *Timer) invalid(op string) error {
	return fmt.Errorf("%w: %s from %s/%s", ErrInvalidTransition, op, t.mode, t.runState)
}
