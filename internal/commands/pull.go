package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskcal/internal/backend/googletasks"
	"taskcal/internal/config"
	"taskcal/internal/exitcode"
	"taskcal/internal/importer"
	"taskcal/internal/service"
)

func init() {
	Register(&PullCmd{})
}

// PullCmd implements the pull command: a one-shot import from Google Tasks.
type PullCmd struct {
	source importer.Source
}

// SetSource replaces the Google Tasks source (for testing).
func (c *PullCmd) SetSource(src importer.Source) {
	c.source = src
}

func (c *PullCmd) Name() string      { return "pull" }
func (c *PullCmd) Aliases() []string { return []string{"import"} }
func (c *PullCmd) Synopsis() string  { return "Import dated tasks from Google Tasks" }
func (c *PullCmd) Usage() string     { return "taskcal pull [common flags]" }
func (c *PullCmd) NeedsStore() bool  { return true }

func (c *PullCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *PullCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	src := c.source
	if src == nil {
		if !cfg.HasOAuthClient() {
			fmt.Fprintf(errOut, "error: oauth_client.json not found in %s\n", cfg.Dir)
			return exitcode.AuthError
		}
		if !cfg.HasToken() {
			fmt.Fprintln(errOut, "error: not logged in (run: taskcal login)")
			return exitcode.AuthError
		}
		client, err := googletasks.New(ctx, cfg)
		if err != nil {
			fmt.Fprintf(errOut, "error: auth error: %v\n", err)
			return exitcode.AuthError
		}
		src = client
	}

	report, err := importer.Import(ctx, svc, src, cfg.Logger())
	if err != nil {
		fmt.Fprintf(errOut, "error: import failed: %v\n", err)
		return exitcode.BackendError
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "imported %s, created %s", plural(report.Tasks, "task"), plural(len(report.Created), "list"))
		if report.Skipped > 0 {
			fmt.Fprintf(out, " (%d skipped)", report.Skipped)
		}
		fmt.Fprintln(out)
	}
	return exitcode.Success
}

// plural returns "1 task", "2 tasks".
func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
