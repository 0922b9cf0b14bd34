package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"taskcal/internal/config"
	"taskcal/internal/controller"
	"taskcal/internal/exitcode"
	"taskcal/internal/output"
	"taskcal/internal/service"
)

// MonthFlagLayout is the layout of the --month flag.
const MonthFlagLayout = "2006-01"

func init() {
	Register(&CalendarCmd{})
}

// CalendarCmd implements the calendar command.
// Handles both `taskcal` (no args) and `taskcal calendar [--month YYYY-MM]`.
type CalendarCmd struct {
	month string
	now   func() time.Time
}

// SetNow sets the clock (for testing).
func (c *CalendarCmd) SetNow(now func() time.Time) {
	c.now = now
}

// SetMonth sets the month to show (for testing).
func (c *CalendarCmd) SetMonth(month string) {
	c.month = month
}

func (c *CalendarCmd) Name() string      { return "calendar" }
func (c *CalendarCmd) Aliases() []string { return []string{"cal"} }
func (c *CalendarCmd) Synopsis() string  { return "Print a month with days that have tasks marked" }
func (c *CalendarCmd) Usage() string     { return "taskcal calendar [common flags] [--month YYYY-MM]" }
func (c *CalendarCmd) NeedsStore() bool  { return true }

func (c *CalendarCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.month, "month", "", "")
	fs.StringVar(&c.month, "m", "", "")
}

func (c *CalendarCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	anchor := clock(c.now)
	if c.month != "" {
		m, err := time.ParseInLocation(MonthFlagLayout, c.month, anchor.Location())
		if err != nil {
			fmt.Fprintf(errOut, "error: invalid month: %s\n", c.month)
			return exitcode.UserError
		}
		anchor = m
	}

	snap, code := loadLists(ctx, svc, errOut)
	if code != exitcode.Success {
		return code
	}

	weekStart := cfg.Settings.WeekStartDay()
	ctl := controller.New(anchor, weekStart, snap.Lists())
	cfg.Logger().Debug("rendering calendar",
		zap.Time("anchor", ctl.Anchor()),
		zap.Int("cells", len(ctl.Grid())),
		zap.Int("lists", len(ctl.Lists())))

	output.FormatCalendar(out, output.NewStyles(out), ctl.Anchor(), weekStart, ctl.Grid(), ctl.Marked)
	return exitcode.Success
}

// clock returns now() or the wall clock when now is nil.
func clock(now func() time.Time) time.Time {
	if now == nil {
		return time.Now()
	}
	return now()
}
