package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"runtime"

	"taskcal/internal/config"
	"taskcal/internal/exitcode"
	"taskcal/internal/service"
)

// Version is the application version, overridden with
// -ldflags "-X taskcal/internal/commands.Version=...".
var Version = "0.1.0"

func init() {
	Register(&VersionCmd{})
}

// VersionCmd implements the version command.
type VersionCmd struct {
	verbose bool
}

// SetVerbose sets the verbose flag (for testing).
func (c *VersionCmd) SetVerbose(verbose bool) {
	c.verbose = verbose
}

func (c *VersionCmd) Name() string      { return "version" }
func (c *VersionCmd) Aliases() []string { return nil }
func (c *VersionCmd) Synopsis() string  { return "Print version" }
func (c *VersionCmd) Usage() string     { return "taskcal version [--verbose]" }
func (c *VersionCmd) NeedsStore() bool  { return false }

func (c *VersionCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.verbose, "verbose", false, "")
	fs.BoolVar(&c.verbose, "v", false, "")
}

func (c *VersionCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	fmt.Fprintf(out, "taskcal %s\n", Version)
	if c.verbose {
		fmt.Fprintf(out, "go:         %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
		fmt.Fprintf(out, "config:     %s\n", cfg.Dir)
		fmt.Fprintf(out, "store:      %s\n", cfg.Settings.Store.Driver)
		fmt.Fprintf(out, "week start: %s\n", cfg.Settings.WeekStartDay())
	}
	return exitcode.Success
}
