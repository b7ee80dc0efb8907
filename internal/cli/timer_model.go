package cli

import (
	"context"
	"time"

	"github.com/alexanderramin/pocketflow/internal/cli/formatter"
	"github.com/alexanderramin/pocketflow/internal/service"
	"github.com/alexanderramin/pocketflow/internal/timer"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// frameInterval is how often the timer is ticked and redrawn. It must stay
// well under a second so no second goes unconsumed.
const frameInterval = 200 * time.Millisecond

// frameMsg drives one Tick of the focus service.
type frameMsg time.Time

func nextFrame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// timerModel hosts the focus service in the terminal. Fullscreen maps to the
// alternate screen and minimize to the compact one-line view.
type timerModel struct {
	ctx   context.Context
	focus service.FocusService

	keys     timerKeyMap
	help     help.Model
	progress progress.Model

	fullscreen bool
	compact    bool
	quitting   bool
	width      int
	height     int
}

func newTimerModel(ctx context.Context, focus service.FocusService) timerModel {
	bar := progress.New(progress.WithSolidFill(string(formatter.ColorHeader)), progress.WithoutPercentage())
	bar.Width = 40
	return timerModel{
		ctx:      ctx,
		focus:    focus,
		keys:     defaultTimerKeys(),
		help:     help.New(),
		progress: bar,
	}
}

func (m timerModel) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle("pocketflow"), nextFrame())
}

func (m timerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.progress.Width = min(max(msg.Width-8, 10), 60)
		return m, nil

	case frameMsg:
		sig := m.focus.Tick(m.ctx)
		return m, tea.Batch(m.apply(sig), nextFrame())

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m timerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	st := m.focus.Status()
	keys := m.keys.forState(st.Snapshot)

	var (
		sig timer.Signals
		err error
	)
	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, keys.Compact):
		m.compact = !m.compact
		return m, nil
	case key.Matches(msg, keys.Toggle):
		if st.Running() {
			err = m.focus.Pause()
		} else {
			sig, err = m.focus.Start()
		}
	case key.Matches(msg, keys.Restart):
		err = m.focus.Restart()
	case key.Matches(msg, keys.Continue):
		if st.BreakActive() {
			sig, err = m.focus.SkipBreak()
		} else {
			sig, err = m.focus.StartWork()
		}
	case key.Matches(msg, keys.Minimize):
		sig, err = m.focus.MinimizeBreak()
	default:
		return m, nil
	}

	// Keys are gated by state; a rejected transition changes nothing.
	if err != nil {
		return m, nil
	}
	return m, m.apply(sig)
}

// apply carries out host signals and returns the terminal commands for them.
func (m *timerModel) apply(sig timer.Signals) tea.Cmd {
	var cmds []tea.Cmd
	if sig.Has(timer.SignalEnterFullscreen) {
		m.fullscreen = true
		m.compact = false
		cmds = append(cmds, tea.EnterAltScreen)
	}
	if sig.Has(timer.SignalExitFullscreen) {
		if m.fullscreen {
			cmds = append(cmds, tea.ExitAltScreen)
		}
		m.fullscreen = false
	}
	if sig.Has(timer.SignalMinimize) {
		m.compact = true
	}
	return tea.Batch(cmds...)
}
