package cli

import (
	"strings"

	"github.com/alexanderramin/pocketflow/internal/cli/formatter"
	"github.com/alexanderramin/pocketflow/internal/service"
	"github.com/charmbracelet/lipgloss"
)

const breakHint = "Press Enter to stay in the pocket and keep your flow"

func (m timerModel) View() string {
	if m.quitting {
		return ""
	}
	st := m.focus.Status()

	switch {
	case m.compact:
		return m.compactView(st)
	case m.fullscreen && st.BreakActive():
		return m.breakView(st)
	default:
		return m.windowView(st)
	}
}

func (m timerModel) compactView(st service.FocusStatus) string {
	return formatter.StatusLine(st.Snapshot, st.TodayCount) + "  " + formatter.Dim("v expand · q quit") + "\n"
}

func (m timerModel) windowView(st service.FocusStatus) string {
	var b strings.Builder

	if dots := formatter.SessionDots(st.TodayCount); dots != "" {
		b.WriteString(formatter.StyleRed.Render(dots) + "\n\n")
	}
	b.WriteString(formatter.Header(formatter.ModeTitle(st.Mode)) + "\n\n")
	b.WriteString("  " + lipgloss.NewStyle().Padding(0, 1).Render(formatter.Clock(st.Snapshot)))
	b.WriteString("  " + formatter.RunStateColor(st.RunState).Render(string(st.RunState)) + "\n\n")
	b.WriteString("  " + m.progress.ViewAs(formatter.Elapsed(st.Snapshot)) + "\n\n")
	if st.BreakActive() {
		b.WriteString("  " + formatter.StyleBlue.Render(breakHint) + "\n\n")
	}
	b.WriteString(m.help.View(m.keys.forState(st.Snapshot)) + "\n")

	return b.String()
}

// breakView fills the alternate screen while a break is running.
func (m timerModel) breakView(st service.FocusStatus) string {
	clock := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(formatter.ColorGreen).
		Padding(1, 6).
		Render(formatter.Clock(st.Snapshot))

	body := lipgloss.JoinVertical(lipgloss.Center,
		formatter.StyleHeader.Render(strings.ToUpper(formatter.ModeTitle(st.Mode))),
		"",
		clock,
		"",
		m.progress.ViewAs(formatter.Elapsed(st.Snapshot)),
		"",
		formatter.StyleBlue.Render(breakHint),
		"",
		m.help.View(m.keys.forState(st.Snapshot)),
	)

	if m.width == 0 || m.height == 0 {
		return body + "\n"
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}
