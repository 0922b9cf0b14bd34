package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"taskcal/internal/config"
	"taskcal/internal/exitcode"
	"taskcal/internal/service"
	"taskcal/internal/tasklist"
	"taskcal/internal/tui"
)

func init() {
	Register(&TuiCmd{})
}

// TuiCmd implements the tui command: the interactive calendar.
type TuiCmd struct{}

func (c *TuiCmd) Name() string      { return "tui" }
func (c *TuiCmd) Aliases() []string { return []string{"ui"} }
func (c *TuiCmd) Synopsis() string  { return "Browse the calendar interactively" }
func (c *TuiCmd) Usage() string     { return "taskcal tui [common flags]" }
func (c *TuiCmd) NeedsStore() bool  { return true }

func (c *TuiCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *TuiCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	snap, code := loadLists(ctx, svc, errOut)
	if code != exitcode.Success {
		return code
	}

	model := tui.New(ctx, tui.Options{
		WeekStart: cfg.Settings.WeekStartDay(),
		Lists:     snap.Lists(),
		Load: func(ctx context.Context) ([]tasklist.TaskList, error) {
			snap, err := svc.Lists(ctx)
			return snap.Lists(), err
		},
		Output: out,
	})

	p := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.BackendError
	}
	return exitcode.Success
}
