package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pocketflow/internal/domain"
	"github.com/alexanderramin/pocketflow/internal/timer"
)

const sessionDot = "•"

// SessionDots renders one dot per completed session, space separated.
func SessionDots(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSpace(strings.Repeat(sessionDot+" ", n))
}

// ModeTitle is the heading shown above the clock.
func ModeTitle(m domain.Mode) string {
	if m == domain.ModeBreak {
		return "Break Time!"
	}
	return "Pomodoro Timer"
}

// Clock renders the remaining time colored by mode.
func Clock(s timer.Snapshot) string {
	return ModeColor(s.Mode).Bold(true).Render(timer.FormatClock(s.Remaining))
}

// StatusLine renders a one-line summary: mode, run state, clock and today's
// count.
func StatusLine(s timer.Snapshot, today int) string {
	return fmt.Sprintf("%s %s %s %s",
		ModeColor(s.Mode).Render(string(s.Mode)),
		RunStateColor(s.RunState).Render(string(s.RunState)),
		Clock(s),
		Dim(TodayLabel(today)),
	)
}

// TodayLabel renders the daily count as text.
func TodayLabel(n int) string {
	if n == 1 {
		return "today: 1 session"
	}
	return fmt.Sprintf("today: %d sessions", n)
}

// Elapsed returns the fraction of the current interval already used.
func Elapsed(s timer.Snapshot) float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Total-s.Remaining) / float64(s.Total)
}
