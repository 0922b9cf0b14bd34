package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"taskcal/internal/config"
	"taskcal/internal/exitcode"
	"taskcal/internal/service"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "taskcal help [command]" }
func (c *HelpCmd) NeedsStore() bool  { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		cmd, ok := DefaultRegistry.Find(args[0])
		if !ok {
			fmt.Fprintf(errOut, "error: unknown command: %s\n", args[0])
			return exitcode.UserError
		}
		describe(out, cmd)
		return exitcode.Success
	}

	fmt.Fprint(out, helpText)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Commands:")
	for _, cmd := range DefaultRegistry.All() {
		fmt.Fprintf(out, "  %-12s %s\n", cmd.Name(), cmd.Synopsis())
	}
	return exitcode.Success
}

// describe prints the usage of one command.
func describe(out io.Writer, d Describer) {
	fmt.Fprintf(out, "%s\n\nUsage:\n  %s\n", d.Synopsis(), d.Usage())
	if aliases := d.Aliases(); len(aliases) > 0 {
		fmt.Fprintf(out, "\nAliases: %s\n", strings.Join(aliases, ", "))
	}
}

const helpText = `Usage:
  taskcal                                            Print this month's calendar
  taskcal calendar [common flags] [--month YYYY-MM]  Print a month, days with tasks marked *
  taskcal day [common flags] [YYYY-MM-DD]            Print the tasks due on a day
  taskcal tui [common flags]                         Browse the calendar interactively
  taskcal lists [common flags]
  taskcal list [common flags] <list-name>
  taskcal createlist [common flags] <list-name>
  taskcal addlist [common flags] <list-name>
  taskcal rmlist [common flags] [--force] <list-name>
  taskcal add [common flags] --list <list-name> --due <date> <description...>
  taskcal rm [common flags] [--list <list-name>] <ref>
  taskcal pull [common flags]                        Import dated tasks from Google Tasks
  taskcal login [common flags]
  taskcal logout [common flags]
  taskcal help [command]
  taskcal version

Dates are YYYY-MM-DD, YYYY-MM-DDTHH:MM or RFC 3339.
A <ref> is a task number with --list, or a list letter from 'lists' and a
task number, e.g. b2.

Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
