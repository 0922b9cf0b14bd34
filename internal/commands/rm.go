package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strconv"

	"taskcal/internal/config"
	"taskcal/internal/exitcode"
	"taskcal/internal/service"
	"taskcal/internal/tasklist"
)

func init() {
	Register(&RmCmd{})
}

// RmCmd implements the rm command.
type RmCmd struct {
	listName string
}

// SetListName sets the list name (for testing).
func (c *RmCmd) SetListName(name string) {
	c.listName = name
}

func (c *RmCmd) Name() string      { return "rm" }
func (c *RmCmd) Aliases() []string { return nil }
func (c *RmCmd) Synopsis() string  { return "Delete a task" }
func (c *RmCmd) Usage() string     { return "taskcal rm [common flags] [--list <list-name>] <ref>" }
func (c *RmCmd) NeedsStore() bool  { return true }

func (c *RmCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.listName, "list", "", "")
	fs.StringVar(&c.listName, "l", "", "")
}

func (c *RmCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	ref, err := ParseTaskRef(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	// Check mutual exclusivity: --list flag and list letter cannot both be used
	if c.listName != "" && ref.HasLetter {
		fmt.Fprintln(errOut, "error: cannot use both --list and list letter")
		return exitcode.UserError
	}
	if c.listName == "" && !ref.HasLetter {
		fmt.Fprintln(errOut, "error: list name required")
		return exitcode.UserError
	}

	var list tasklist.TaskList
	if ref.HasLetter {
		snap, code := loadLists(ctx, svc, errOut)
		if code != exitcode.Success {
			return code
		}
		list, err = ListByLetter(snap.Lists(), ref.Letter)
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
	} else {
		var code int
		list, code = resolveList(ctx, svc, c.listName, errOut)
		if code != exitcode.Success {
			return code
		}
	}

	if err := svc.DeleteTask(ctx, list.ID, ref.TaskNum); err != nil {
		return reportError(errOut, strconv.Itoa(ref.TaskNum), err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
