package timer

import (
	"testing"
	"time"

	"github.com/alexanderramin/pocketflow/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 2, 3, 9, 0, 0, 0, time.UTC)

func at(sec int) time.Time { return t0.Add(time.Duration(sec) * time.Second) }

func shortTimer() *Timer {
	return New(Durations{Work: 5, Break: 3})
}

func TestNew_InitialState(t *testing.T) {
	s := New(DefaultDurations()).Snapshot()

	assert.Equal(t, domain.ModeWork, s.Mode)
	assert.Equal(t, domain.RunStopped, s.RunState)
	assert.Equal(t, uint(1500), s.Remaining)
	assert.Equal(t, uint(1500), s.Total)
	assert.Nil(t, s.WorkStartedAt)
}

func TestStart_FreshWorkIntervalRecordsStartAndMinimizes(t *testing.T) {
	tm := shortTimer()

	sig, err := tm.Start(at(0))
	require.NoError(t, err)

	assert.True(t, sig.Has(SignalMinimize))
	s := tm.Snapshot()
	assert.Equal(t, domain.RunRunning, s.RunState)
	require.NotNil(t, s.WorkStartedAt)
	assert.Equal(t, at(0), *s.WorkStartedAt)
}

func TestStart_WhileRunningIsInvalid(t *testing.T) {
	tm := shortTimer()
	_, err := tm.Start(at(0))
	require.NoError(t, err)

	_, err = tm.Start(at(1))
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, at(0), *tm.Snapshot().WorkStartedAt)
}

func TestTick_DecrementsOncePerElapsedSecond(t *testing.T) {
	tm := New(Durations{Work: 10, Break: 3})
	_, err := tm.Start(at(0))
	require.NoError(t, err)

	for i := 1; i <= 9; i++ {
		res := tm.Tick(at(i))
		assert.True(t, res.Advanced)
		assert.Equal(t, uint(10-i), tm.Snapshot().Remaining)
	}
}

func TestTick_SubSecondIsNoOp(t *testing.T) {
	tm := shortTimer()
	_, err := tm.Start(at(0))
	require.NoError(t, err)

	res := tm.Tick(t0.Add(999 * time.Millisecond))

	assert.False(t, res.Advanced)
	assert.Equal(t, uint(5), tm.Snapshot().Remaining)

	res = tm.Tick(t0.Add(time.Second))
	assert.True(t, res.Advanced)
	assert.Equal(t, uint(4), tm.Snapshot().Remaining)
}

func TestTick_LongGapConsumesOnlyOneSecond(t *testing.T) {
	tm := New(Durations{Work: 60, Break: 3})
	_, err := tm.Start(at(0))
	require.NoError(t, err)

	tm.Tick(at(10))
	assert.Equal(t, uint(59), tm.Snapshot().Remaining)

	// The anchor moved to the late tick, so half a second later is a no-op.
	res := tm.Tick(t0.Add(10*time.Second + 500*time.Millisecond))
	assert.False(t, res.Advanced)
}

func TestTick_IgnoredWhenNotRunning(t *testing.T) {
	tm := shortTimer()

	assert.False(t, tm.Tick(at(5)).Advanced)
	assert.Equal(t, uint(5), tm.Snapshot().Remaining)
}

func TestWorkCompletion_EmitsRecordAndStartsBreak(t *testing.T) {
	tm := New(Durations{Work: 5, Break: 300})
	_, err := tm.Start(at(0))
	require.NoError(t, err)

	var completed *domain.WorkSession
	var sig Signals
	for i := 1; i <= 5; i++ {
		res := tm.Tick(at(i))
		if res.Completed != nil {
			completed = res.Completed
			sig = res.Signals
			assert.Equal(t, 5, i)
		}
	}

	require.NotNil(t, completed)
	assert.Equal(t, at(0), completed.StartedAt)
	assert.Equal(t, at(5), completed.CompletedAt)
	assert.Equal(t, int64(5), completed.DurationSeconds)
	assert.True(t, sig.Has(SignalEnterFullscreen))

	s := tm.Snapshot()
	assert.Equal(t, domain.ModeBreak, s.Mode)
	assert.Equal(t, domain.RunRunning, s.RunState)
	assert.Equal(t, uint(300), s.Remaining)
	assert.Nil(t, s.WorkStartedAt)

	res := tm.Tick(at(6))
	assert.Nil(t, res.Completed)
	assert.Equal(t, uint(299), tm.Snapshot().Remaining)
}

func TestPauseResume_PreservesRemainingAndStart(t *testing.T) {
	tm := shortTimer()
	_, err := tm.Start(at(0))
	require.NoError(t, err)
	tm.Tick(at(1))
	tm.Tick(at(2))

	require.NoError(t, tm.Pause())
	paused := tm.Snapshot()
	assert.Equal(t, domain.RunPaused, paused.RunState)
	assert.Equal(t, uint(3), paused.Remaining)

	// Time passing while paused is not counted.
	assert.False(t, tm.Tick(at(100)).Advanced)

	sig, err := tm.Start(at(100))
	require.NoError(t, err)
	assert.False(t, sig.Has(SignalMinimize), "resume is not a fresh start")

	resumed := tm.Snapshot()
	assert.Equal(t, uint(3), resumed.Remaining)
	assert.Equal(t, *paused.WorkStartedAt, *resumed.WorkStartedAt)

	assert.False(t, tm.Tick(at(100)).Advanced)
	assert.True(t, tm.Tick(at(101)).Advanced)
	assert.Equal(t, uint(2), tm.Snapshot().Remaining)
}

func TestPause_WhenStoppedIsInvalid(t *testing.T) {
	assert.ErrorIs(t, shortTimer().Pause(), ErrInvalidTransition)
}

func TestRestart_AbandonsWorkInterval(t *testing.T) {
	tm := shortTimer()
	_, err := tm.Start(at(0))
	require.NoError(t, err)
	tm.Tick(at(1))
	tm.Tick(at(2))
	require.NoError(t, tm.Pause())

	require.NoError(t, tm.Restart())

	s := tm.Snapshot()
	assert.Equal(t, domain.ModeWork, s.Mode)
	assert.Equal(t, domain.RunStopped, s.RunState)
	assert.Equal(t, uint(5), s.Remaining)
	assert.Nil(t, s.WorkStartedAt)

	// A later full run starts its own interval; nothing from the abandoned one leaks.
	_, err = tm.Start(at(50))
	require.NoError(t, err)
	var completed *domain.WorkSession
	for i := 51; i <= 55; i++ {
		if res := tm.Tick(at(i)); res.Completed != nil {
			completed = res.Completed
		}
	}
	require.NotNil(t, completed)
	assert.Equal(t, at(50), completed.StartedAt)
}

func TestRestart_NeverEmitsRecord(t *testing.T) {
	tm := shortTimer()
	_, err := tm.Start(at(0))
	require.NoError(t, err)
	for i := 1; i <= 4; i++ {
		assert.Nil(t, tm.Tick(at(i)).Completed)
	}
	require.NoError(t, tm.Restart())

	for i := 5; i <= 20; i++ {
		assert.Nil(t, tm.Tick(at(i)).Completed)
	}
}

func TestRestart_WhenStoppedIsInvalid(t *testing.T) {
	assert.ErrorIs(t, shortTimer().Restart(), ErrInvalidTransition)
}

func TestRestart_DuringBreakRefillsBreak(t *testing.T) {
	tm := runToBreak(t)
	tm.Tick(at(6))

	require.NoError(t, tm.Restart())

	s := tm.Snapshot()
	assert.Equal(t, domain.ModeBreak, s.Mode)
	assert.Equal(t, domain.RunStopped, s.RunState)
	assert.Equal(t, uint(3), s.Remaining)
}

// runToBreak completes a 5-second work interval started at t0; the break
// begins at at(5).
func runToBreak(t *testing.T) *Timer {
	t.Helper()
	tm := shortTimer()
	_, err := tm.Start(at(0))
	require.NoError(t, err)
	for i := 1; i <= 5; i++ {
		tm.Tick(at(i))
	}
	require.Equal(t, domain.ModeBreak, tm.Snapshot().Mode)
	return tm
}

func TestBreakCompletion_StopsAndExitsFullscreen(t *testing.T) {
	tm := runToBreak(t)

	tm.Tick(at(6))
	tm.Tick(at(7))
	res := tm.Tick(at(8))

	assert.True(t, res.Signals.Has(SignalExitFullscreen))
	assert.Nil(t, res.Completed)
	s := tm.Snapshot()
	assert.Equal(t, domain.ModeBreak, s.Mode)
	assert.Equal(t, domain.RunStopped, s.RunState)
	assert.Equal(t, uint(0), s.Remaining)
	assert.True(t, s.BreakElapsed())

	assert.False(t, tm.Tick(at(9)).Advanced)
}

func TestBreakCompletion_AfterMinimizeSendsNoSignal(t *testing.T) {
	tm := runToBreak(t)

	sig, err := tm.MinimizeBreak()
	require.NoError(t, err)
	assert.Equal(t, SignalExitFullscreen, sig)
	assert.Equal(t, domain.RunRunning, tm.Snapshot().RunState, "break keeps running")

	tm.Tick(at(6))
	tm.Tick(at(7))
	res := tm.Tick(at(8))

	assert.Equal(t, Signals(0), res.Signals)
	assert.True(t, tm.Snapshot().BreakElapsed())
}

func TestMinimizeBreak_OnlyOnce(t *testing.T) {
	tm := runToBreak(t)
	_, err := tm.MinimizeBreak()
	require.NoError(t, err)

	_, err = tm.MinimizeBreak()
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestMinimizeBreak_ClearedByNextBreak(t *testing.T) {
	tm := runToBreak(t)
	_, err := tm.MinimizeBreak()
	require.NoError(t, err)

	_, err = tm.SkipBreak(at(5))
	require.NoError(t, err)
	for i := 6; i <= 10; i++ {
		tm.Tick(at(i))
	}

	s := tm.Snapshot()
	assert.Equal(t, domain.ModeBreak, s.Mode)
	assert.False(t, s.BreakMinimized)
}

func TestMinimizeBreak_DuringWorkIsInvalid(t *testing.T) {
	_, err := shortTimer().MinimizeBreak()
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestStartWork_AfterElapsedBreak(t *testing.T) {
	tm := runToBreak(t)
	for i := 6; i <= 8; i++ {
		tm.Tick(at(i))
	}

	sig, err := tm.StartWork()
	require.NoError(t, err)

	assert.True(t, sig.Has(SignalExitFullscreen))
	s := tm.Snapshot()
	assert.Equal(t, domain.ModeWork, s.Mode)
	assert.Equal(t, domain.RunStopped, s.RunState, "does not auto-start")
	assert.Equal(t, uint(5), s.Remaining)
}

func TestStartWork_DuringActiveBreakIsInvalid(t *testing.T) {
	tm := runToBreak(t)

	_, err := tm.StartWork()
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, domain.ModeBreak, tm.Snapshot().Mode)
}

func TestStart_OnElapsedBreakIsInvalid(t *testing.T) {
	tm := runToBreak(t)
	for i := 6; i <= 8; i++ {
		tm.Tick(at(i))
	}

	_, err := tm.Start(at(9))
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestSkipBreak_StartsFreshWorkInterval(t *testing.T) {
	tm := runToBreak(t)
	tm.Tick(at(6))

	sig, err := tm.SkipBreak(at(7))
	require.NoError(t, err)

	assert.True(t, sig.Has(SignalExitFullscreen|SignalMinimize))
	s := tm.Snapshot()
	assert.Equal(t, domain.ModeWork, s.Mode)
	assert.Equal(t, domain.RunRunning, s.RunState)
	assert.Equal(t, uint(5), s.Remaining)
	require.NotNil(t, s.WorkStartedAt)
	assert.Equal(t, at(7), *s.WorkStartedAt)

	var completed *domain.WorkSession
	for i := 8; i <= 12; i++ {
		if res := tm.Tick(at(i)); res.Completed != nil {
			completed = res.Completed
		}
	}
	require.NotNil(t, completed)
	assert.Equal(t, int64(5), completed.DurationSeconds)
}

func TestSkipBreak_AfterBreakElapsedIsInvalid(t *testing.T) {
	tm := runToBreak(t)
	for i := 6; i <= 8; i++ {
		tm.Tick(at(i))
	}

	_, err := tm.SkipBreak(at(9))
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestStart_StoresUTCStart(t *testing.T) {
	tm := shortTimer()
	zone := time.FixedZone("UTC+9", 9*60*60)

	_, err := tm.Start(t0.In(zone))
	require.NoError(t, err)

	assert.Equal(t, time.UTC, tm.Snapshot().WorkStartedAt.Location())
}

func TestSignals_String(t *testing.T) {
	assert.Equal(t, "none", Signals(0).String())
	assert.Equal(t, "minimize|exit-fullscreen", (SignalMinimize | SignalExitFullscreen).String())
	assert.False(t, Signals(0).Has(0))
}

func TestFormatClock(t *testing.T) {
	cases := map[uint]string{
		0:    "00:00",
		5:    "00:05",
		65:   "01:05",
		1500: "25:00",
		6000: "100:00",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatClock(in), "FormatClock(%d)", in)
	}
}
