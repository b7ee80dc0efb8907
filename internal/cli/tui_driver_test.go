package cli

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/pocketflow/internal/teatest"
	"github.com/alexanderramin/pocketflow/internal/testutil"
)

// TestDriver wraps teatest.Driver with access to the timer model and the
// fake clock behind it.
type TestDriver struct {
	*teatest.Driver
	clock *testutil.FakeClock
}

func NewTestDriver(t *testing.T, app *App, clock *testutil.FakeClock) *TestDriver {
	t.Helper()
	m := newTimerModel(context.Background(), app.Focus)
	d := teatest.New(t, m, teatest.WithSize(100, 30))
	d.DrainInit()
	return &TestDriver{Driver: d, clock: clock}
}

// Seconds advances the clock one second at a time, delivering a frame after
// each step.
func (d *TestDriver) Seconds(n int) {
	d.T.Helper()
	for i := 0; i < n; i++ {
		d.clock.Advance(time.Second)
		d.Send(frameMsg(d.clock.Now()))
	}
}

func (d *TestDriver) timerModel() timerModel {
	return d.Model.(timerModel)
}

func (d *TestDriver) Fullscreen() bool { return d.timerModel().fullscreen }
func (d *TestDriver) Compact() bool    { return d.timerModel().compact }
