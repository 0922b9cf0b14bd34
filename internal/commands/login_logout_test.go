package commands_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"taskcal/internal/commands"
	"taskcal/internal/config"
	"taskcal/internal/exitcode"
	"taskcal/internal/testutil"
)

const testOAuthClient = `{"installed":{"client_id":"test","client_secret":"test","redirect_uris":["http://localhost"]}}`

// authDir returns a config directory holding the given files.
func authDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0600); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	return dir
}

func runIn(ctx context.Context, dir string, quiet bool, cmd commands.Command) (stdout, stderr string, code int) {
	var outBuf, errBuf bytes.Buffer
	cfg := &config.Config{Dir: dir, Quiet: quiet, Settings: config.DefaultSettings()}
	code = cmd.Run(ctx, cfg, testutil.NewFakeService(), nil, &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

func TestLoginCommand_NoOAuthClient(t *testing.T) {
	dir := t.TempDir()
	stdout, stderr, code := runIn(context.Background(), dir, false, &commands.LoginCmd{})

	if code != exitcode.AuthError {
		t.Errorf("expected exit code %d, got %d", exitcode.AuthError, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout, got %q", stdout)
	}
	if !strings.HasPrefix(stderr, "error: oauth_client.json not found in "+dir) {
		t.Errorf("unexpected stderr %q", stderr)
	}
	if !strings.Contains(stderr, "Then run 'taskcal login' again.") {
		t.Error("expected setup instructions")
	}
}

// A stored token that cannot be refreshed must not short-circuit login.
func TestLoginCommand_UnusableTokenStartsFlow(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"corrupt", `{not json`},
		{"no refresh token", `{"access_token":"test","token_type":"Bearer","expiry":"2020-01-01T00:00:00Z"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := authDir(t, map[string]string{
				config.OAuthClientFile: testOAuthClient,
				config.TokenFile:       tt.token,
			})

			// Cancelled so the callback wait returns at once.
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			stdout, stderr, code := runIn(ctx, dir, false, &commands.LoginCmd{})

			if stdout == "already logged in\n" {
				t.Error("should not say 'already logged in' with an unusable token")
			}
			if code == exitcode.Success {
				t.Errorf("expected failure after cancellation, got success (stderr %q)", stderr)
			}
		})
	}
}

func TestLogoutCommand_OnlyRemovesToken(t *testing.T) {
	dir := authDir(t, map[string]string{
		config.OAuthClientFile: testOAuthClient,
		config.TokenFile:       `{"access_token":"test","refresh_token":"test"}`,
		config.DatabaseFile:    "lists",
	})

	stdout, stderr, code := runIn(context.Background(), dir, false, &commands.LogoutCmd{})

	assertResult(t, code, exitcode.Success, stdout, "ok\n", stderr, "")
	if _, err := os.Stat(filepath.Join(dir, config.TokenFile)); !os.IsNotExist(err) {
		t.Error("token.json should have been deleted")
	}
	for _, keep := range []string{config.OAuthClientFile, config.DatabaseFile} {
		if _, err := os.Stat(filepath.Join(dir, keep)); err != nil {
			t.Errorf("%s should NOT have been deleted", keep)
		}
	}
}

func TestLogoutCommand_NotLoggedIn(t *testing.T) {
	stdout, stderr, code := runIn(context.Background(), t.TempDir(), false, &commands.LogoutCmd{})
	assertResult(t, code, exitcode.Success, stdout, "not logged in\n", stderr, "")

	stdout, stderr, code = runIn(context.Background(), t.TempDir(), true, &commands.LogoutCmd{})
	assertResult(t, code, exitcode.Success, stdout, "", stderr, "")
}

func TestPullCommand_NoToken(t *testing.T) {
	dir := authDir(t, map[string]string{config.OAuthClientFile: testOAuthClient})

	stdout, stderr, code := runIn(context.Background(), dir, false, &commands.PullCmd{})

	assertResult(t, code, exitcode.AuthError, stdout, "", stderr, "error: not logged in (run: taskcal login)\n")
}
