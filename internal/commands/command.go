// Package commands implements the taskcal subcommands. Each command registers
// itself with DefaultRegistry from an init function.
package commands

import (
	"context"
	"flag"
	"io"

	"taskcal/internal/config"
	"taskcal/internal/service"
)

// Describer is the part of a command shown by help.
type Describer interface {
	// Name is the primary command name.
	Name() string
	Aliases() []string
	// Synopsis is the one-line summary in the command listing.
	Synopsis() string
	// Usage is the invocation line shown by "help <command>".
	Usage() string
}

// Command is a subcommand run by the dispatcher.
//
// The dispatcher parses the common flags plus those added by RegisterFlags,
// loads config.yaml, and opens the store only for commands whose NeedsStore
// reports true; svc is nil otherwise. Run receives the remaining positional
// arguments and returns an exitcode value.
type Command interface {
	Describer
	NeedsStore() bool
	RegisterFlags(fs *flag.FlagSet)
	Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int
}
