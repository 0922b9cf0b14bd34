// Package googletasks reads task lists from the Google Tasks API for import.
package googletasks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	tasks "google.golang.org/api/tasks/v1"

	"taskcal/internal/config"
	"taskcal/internal/importer"
	"taskcal/internal/tasklist"
)

const (
	// PageSize is the number of items requested per page.
	PageSize = 100

	// APITimeout is the timeout for a whole fetch.
	APITimeout = 30 * time.Second

	// Scope is the OAuth scope requested at login. Import only reads.
	Scope = tasks.TasksReadonlyScope
)

// Client fetches lists and dated tasks from Google Tasks.
type Client struct {
	svc *tasks.Service
}

// New creates a new Google Tasks client.
// Requires oauth_client.json and token.json to exist.
func New(ctx context.Context, cfg *config.Config) (*Client, error) {
	clientJSON, err := os.ReadFile(cfg.OAuthClientPath())
	if err != nil {
		return nil, fmt.Errorf("failed to read oauth_client.json: %w", err)
	}

	oauthConfig, err := google.ConfigFromJSON(clientJSON, Scope)
	if err != nil {
		return nil, fmt.Errorf("invalid oauth_client.json: %w", err)
	}

	tokenData, err := os.ReadFile(cfg.TokenPath())
	if err != nil {
		return nil, fmt.Errorf("failed to read token.json: %w", err)
	}

	var token oauth2.Token
	if err := json.Unmarshal(tokenData, &token); err != nil {
		return nil, fmt.Errorf("invalid token.json: %w", err)
	}

	// Create token source that auto-refreshes
	tokenSource := oauthConfig.TokenSource(ctx, &token)
	httpClient := oauth2.NewClient(ctx, tokenSource)

	return NewWithHTTPClient(ctx, httpClient)
}

// NewWithHTTPClient creates a client with a custom HTTP client (for testing).
func NewWithHTTPClient(ctx context.Context, httpClient *http.Client, opts ...option.ClientOption) (*Client, error) {
	opts = append([]option.ClientOption{option.WithHTTPClient(httpClient)}, opts...)
	svc, err := tasks.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create tasks service: %w", err)
	}
	return &Client{svc: svc}, nil
}

// Fetch implements importer.Source. Lists come in API order; completed,
// deleted and undated tasks are left out.
func (c *Client) Fetch(ctx context.Context) ([]importer.RemoteList, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	var lists []*tasks.TaskList
	err := c.svc.Tasklists.List().MaxResults(PageSize).Pages(ctx, func(resp *tasks.TaskLists) error {
		lists = append(lists, resp.Items...)
		return nil
	})
	if err != nil {
		return nil, wrapError(err)
	}

	result := make([]importer.RemoteList, 0, len(lists))
	for _, l := range lists {
		items, err := c.openTasks(ctx, l.Id)
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", l.Title, err)
		}
		result = append(result, importer.RemoteList{Title: l.Title, Tasks: items})
	}
	return result, nil
}

func (c *Client) openTasks(ctx context.Context, listID string) ([]tasklist.Task, error) {
	var result []tasklist.Task
	err := c.svc.Tasks.List(listID).
		MaxResults(PageSize).
		ShowCompleted(false).
		ShowDeleted(false).
		ShowHidden(false).
		Pages(ctx, func(resp *tasks.Tasks) error {
			for _, t := range resp.Items {
				due, ok := dueDate(t.Due)
				if !ok {
					continue
				}
				result = append(result, tasklist.Task{
					Description: strings.TrimSpace(t.Title),
					DueDate:     due,
				})
			}
			return nil
		})
	if err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// dueDate keeps the date part of an API due timestamp. The API stores only
// a date and always reports midnight UTC, so converting the instant to local
// time would shift the day west of UTC.
func dueDate(due string) (string, bool) {
	if len(due) < len(tasklist.DateLayout) {
		return "", false
	}
	d := due[:len(tasklist.DateLayout)]
	if _, err := time.Parse(tasklist.DateLayout, d); err != nil {
		return "", false
	}
	return d, true
}

// wrapError wraps API errors with user-friendly messages.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	errStr := err.Error()

	if strings.Contains(errStr, "context deadline exceeded") {
		return fmt.Errorf("request timed out")
	}

	if strings.Contains(errStr, "401") || strings.Contains(errStr, "403") {
		return fmt.Errorf("token expired or revoked (run: taskcal login)")
	}

	if strings.Contains(errStr, "404") {
		return fmt.Errorf("not found")
	}

	return err
}
