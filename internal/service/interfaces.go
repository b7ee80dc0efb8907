package service

import (
	"context"

	"github.com/alexanderramin/pocketflow/internal/timer"
)

// FocusStatus is the timer state plus the number of work sessions completed
// since local midnight.
type FocusStatus struct {
	timer.Snapshot
	TodayCount int
}

// FocusService drives the work/break timer and records completed work
// sessions. Callers invoke it from a single loop.
type FocusService interface {
	Status() FocusStatus
	Start() (timer.Signals, error)
	Pause() error
	Restart() error
	StartWork() (timer.Signals, error)
	SkipBreak() (timer.Signals, error)
	MinimizeBreak() (timer.Signals, error)
	// Tick advances the countdown and persists a completed work interval.
	Tick(ctx context.Context) timer.Signals
}

// TodayService answers the daily count outside the interactive timer. A
// failed query counts as zero.
type TodayService interface {
	CountToday(ctx context.Context) int
}
