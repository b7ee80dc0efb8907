package cli

import (
	"fmt"

	"github.com/alexanderramin/pocketflow/internal/cli/formatter"
	"github.com/alexanderramin/pocketflow/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// App holds the services CLI commands use. Fields may be filled in by a
// PersistentPreRunE hook after flags are parsed.
type App struct {
	Focus service.FocusService
	Today service.TodayService

	// IsInteractive reports whether stdin is a terminal. Nil means no.
	IsInteractive func() bool

	// ProgramOptions are passed to tea.NewProgram when the timer UI starts.
	ProgramOptions []tea.ProgramOption
}

// NewRootCmd creates the top-level "pocketflow" command. Run bare in a
// terminal it opens the interactive timer; otherwise it prints one status
// line.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "pocketflow",
		Short:         "Pomodoro timer that keeps a log of finished work sessions",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Focus == nil {
				return fmt.Errorf("timer is not configured")
			}
			if app.IsInteractive == nil || !app.IsInteractive() {
				st := app.Focus.Status()
				fmt.Fprintln(cmd.OutOrStdout(), formatter.StatusLine(st.Snapshot, st.TodayCount))
				return nil
			}
			return runTimerUI(cmd, app)
		},
	}

	root.AddCommand(newTodayCmd(app))

	return root
}

func runTimerUI(cmd *cobra.Command, app *App) error {
	opts := append([]tea.ProgramOption{
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	}, app.ProgramOptions...)

	p := tea.NewProgram(newTimerModel(cmd.Context(), app.Focus), opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running timer: %w", err)
	}
	return nil
}
