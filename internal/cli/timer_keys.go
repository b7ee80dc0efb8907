package cli

import (
	"github.com/alexanderramin/pocketflow/internal/domain"
	"github.com/alexanderramin/pocketflow/internal/timer"
	"github.com/charmbracelet/bubbles/key"
)

type timerKeyMap struct {
	Toggle   key.Binding
	Restart  key.Binding
	Continue key.Binding
	Minimize key.Binding
	Compact  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultTimerKeys() timerKeyMap {
	return timerKeyMap{
		Toggle:   key.NewBinding(key.WithKeys(" ", "space", "s"), key.WithHelp("space", "start")),
		Restart:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Continue: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "skip break")),
		Minimize: key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "hide break")),
		Compact:  key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "compact")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// forState enables only the bindings that do something in s and relabels
// the ones whose action depends on it.
func (k timerKeyMap) forState(s timer.Snapshot) timerKeyMap {
	switch {
	case s.Running():
		k.Toggle.SetHelp("space", "pause")
	case s.RunState == domain.RunPaused:
		k.Toggle.SetHelp("space", "resume")
	default:
		k.Toggle.SetHelp("space", "start")
	}
	k.Toggle.SetEnabled(!s.BreakElapsed())
	k.Restart.SetEnabled(s.RunState != domain.RunStopped)

	switch {
	case s.BreakActive():
		k.Continue.SetHelp("enter", "skip break")
		k.Continue.SetEnabled(true)
	case s.BreakElapsed():
		k.Continue.SetHelp("enter", "start new timer")
		k.Continue.SetEnabled(true)
	default:
		k.Continue.SetEnabled(false)
	}
	k.Minimize.SetEnabled(s.BreakActive() && !s.BreakMinimized)
	return k
}

func (k timerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Restart, k.Continue, k.Minimize, k.Help, k.Quit}
}

func (k timerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Restart},
		{k.Continue, k.Minimize},
		{k.Compact, k.Help, k.Quit},
	}
}
