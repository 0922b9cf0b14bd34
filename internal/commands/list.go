package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"taskcal/internal/config"
	"taskcal/internal/exitcode"
	"taskcal/internal/output"
	"taskcal/internal/service"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
type ListCmd struct{}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"show"} }
func (c *ListCmd) Synopsis() string  { return "Print the tasks of a list" }
func (c *ListCmd) Usage() string     { return "taskcal list [common flags] <list-name>" }
func (c *ListCmd) NeedsStore() bool  { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	list, code := resolveList(ctx, svc, strings.Join(args, " "), errOut)
	if code != exitcode.Success {
		return code
	}

	// Print list section (even if empty)
	output.FormatListHeader(out, list.Title)
	for i, task := range list.Elements {
		output.FormatTask(out, i+1, task)
	}
	if len(list.Elements) == 0 && !cfg.Quiet {
		fmt.Fprintln(out, "no tasks found")
	}

	return exitcode.Success
}
