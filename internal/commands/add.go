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
	"taskcal/internal/tasklist"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct {
	listName string
	due      string
}

// SetListName sets the list name (for testing).
func (c *AddCmd) SetListName(name string) {
	c.listName = name
}

// SetDue sets the due date (for testing).
func (c *AddCmd) SetDue(due string) {
	c.due = due
}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"create"} }
func (c *AddCmd) Synopsis() string  { return "Add a dated task to a list" }
func (c *AddCmd) Usage() string {
	return "taskcal add [common flags] --list <list-name> --due <date> <description...>"
}
func (c *AddCmd) NeedsStore() bool { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.listName, "list", "", "")
	fs.StringVar(&c.listName, "l", "", "")
	fs.StringVar(&c.due, "due", "", "")
	fs.StringVar(&c.due, "d", "", "")
}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	description := strings.TrimSpace(strings.Join(args, " "))
	if description == "" {
		fmt.Fprintln(errOut, "error: description required")
		return exitcode.UserError
	}
	if strings.TrimSpace(c.due) == "" {
		fmt.Fprintln(errOut, "error: due date required")
		return exitcode.UserError
	}

	list, code := resolveList(ctx, svc, c.listName, errOut)
	if code != exitcode.Success {
		return code
	}

	task := tasklist.Task{Description: description, DueDate: strings.TrimSpace(c.due)}
	if err := svc.AddTask(ctx, list.ID, task); err != nil {
		return reportError(errOut, task.DueDate, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
