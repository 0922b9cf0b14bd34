package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"time"

	"taskcal/internal/calendar"
	"taskcal/internal/config"
	"taskcal/internal/exitcode"
	"taskcal/internal/output"
	"taskcal/internal/overlay"
	"taskcal/internal/service"
	"taskcal/internal/tasklist"
)

func init() {
	Register(&DayCmd{})
}

// DayCmd implements the day command: the day detail for one date.
type DayCmd struct {
	now func() time.Time
}

// SetNow sets the clock (for testing). Dates are read in its location.
func (c *DayCmd) SetNow(now func() time.Time) {
	c.now = now
}

func (c *DayCmd) Name() string      { return "day" }
func (c *DayCmd) Aliases() []string { return nil }
func (c *DayCmd) Synopsis() string  { return "Print the tasks due on a day" }
func (c *DayCmd) Usage() string     { return "taskcal day [common flags] [YYYY-MM-DD]" }
func (c *DayCmd) NeedsStore() bool  { return true }

func (c *DayCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DayCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	now := clock(c.now)
	y, m, d := now.Date()
	date := calendar.StartOfDay(y, m, d, now.Location())

	switch len(args) {
	case 0:
	case 1:
		parsed, err := tasklist.ParseDate(args[0], now.Location())
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
		date = parsed
	default:
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[1])
		return exitcode.UserError
	}

	snap, code := loadLists(ctx, svc, errOut)
	if code != exitcode.Success {
		return code
	}

	output.FormatDayDetail(out, overlay.For(date, snap.Lists()))
	return exitcode.Success
}
