package cli

import (
	"fmt"

	"github.com/alexanderramin/pocketflow/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newTodayCmd(app *App) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show how many work sessions were completed since midnight",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Today == nil {
				return fmt.Errorf("session store is not configured")
			}
			n := app.Today.CountToday(cmd.Context())
			out := cmd.OutOrStdout()

			if plain {
				fmt.Fprintln(out, n)
				return nil
			}

			body := formatter.Bold(formatter.TodayLabel(n))
			if dots := formatter.SessionDots(n); dots != "" {
				body += "\n" + formatter.StyleRed.Render(dots)
			}
			fmt.Fprintln(out, formatter.RenderBox("today", body))
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print only the number")

	return cmd
}
