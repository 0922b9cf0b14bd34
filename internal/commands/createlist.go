package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"taskcal/internal/config"
	"taskcal/internal/exitcode"
	"taskcal/internal/logging"
	"taskcal/internal/service"
	"taskcal/internal/tasklist"
)

func init() {
	Register(&CreateListCmd{})
	Register(&AddListCmd{})
}

// CreateListCmd implements the createlist command.
type CreateListCmd struct{}

func (c *CreateListCmd) Name() string      { return "createlist" }
func (c *CreateListCmd) Aliases() []string { return nil }
func (c *CreateListCmd) Synopsis() string  { return "Create a new list" }
func (c *CreateListCmd) Usage() string     { return "taskcal createlist [common flags] <list-name>" }
func (c *CreateListCmd) NeedsStore() bool  { return true }

func (c *CreateListCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *CreateListCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	return runCreateList(ctx, cfg, svc, args, out, errOut)
}

// AddListCmd is an alias for CreateListCmd.
type AddListCmd struct{}

func (c *AddListCmd) Name() string      { return "addlist" }
func (c *AddListCmd) Aliases() []string { return nil }
func (c *AddListCmd) Synopsis() string  { return "Create a new list (alias for createlist)" }
func (c *AddListCmd) Usage() string     { return "taskcal addlist [common flags] <list-name>" }
func (c *AddListCmd) NeedsStore() bool  { return true }

func (c *AddListCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *AddListCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	return runCreateList(ctx, cfg, svc, args, out, errOut)
}

// runCreateList is the shared implementation for createlist and addlist commands.
// The title is validated by the service: 3 to 20 characters, unique. An empty
// name creates nothing and prints nothing.
func runCreateList(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	name := strings.TrimSpace(strings.Join(args, " "))

	list, err := svc.CreateList(ctx, name)
	if errors.Is(err, tasklist.ErrEmptyTitle) {
		cfg.Logger().Debug("empty list name ignored")
		return exitcode.Success
	}
	if err != nil {
		return reportError(errOut, name, err)
	}
	cfg.Logger().Debug("list created", zap.String(logging.KeyList, list.Title), zap.Int("id", list.ID))

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
