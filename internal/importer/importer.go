// Package importer copies lists from a remote source into the local store.
//
// An import is a one-shot pull. Remote lists are matched to local lists by
// exact title; unmatched lists are created with a fresh id. Tasks already
// present in the local list, by description and due date, are not added
// again, so running an import twice is harmless.
package importer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"taskcal/internal/logging"
	"taskcal/internal/service"
	"taskcal/internal/tasklist"
)

// RemoteList is a list as fetched from a source.
type RemoteList struct {
	Title string
	Tasks []tasklist.Task
}

// Source fetches remote lists.
type Source interface {
	Fetch(ctx context.Context) ([]RemoteList, error)
}

// Report summarises an import.
type Report struct {
	// Created is the titles of the lists created, in source order.
	Created []string

	// Tasks is the number of tasks added.
	Tasks int

	// Duplicates is the number of tasks already present locally.
	Duplicates int

	// Skipped is the number of remote lists or tasks that could not be
	// imported.
	Skipped int
}

// Import fetches every list from src and merges it into svc.
func Import(ctx context.Context, svc service.Service, src Source, log *zap.Logger) (Report, error) {
	var report Report

	remote, err := src.Fetch(ctx)
	if err != nil {
		return report, fmt.Errorf("fetch: %w", err)
	}

	for _, rl := range remote {
		title := fitTitle(rl.Title)

		list, err := svc.ResolveList(ctx, title)
		switch {
		case err == nil:
		case errors.Is(err, service.ErrListNotFound):
			list, err = svc.CreateList(ctx, title)
			var titleErr *tasklist.TitleError
			if errors.Is(err, tasklist.ErrEmptyTitle) || errors.As(err, &titleErr) {
				log.Warn("skipping remote list", zap.String(logging.KeyList, rl.Title), zap.Error(err))
				report.Skipped++
				continue
			}
			if err != nil {
				return report, err
			}
			report.Created = append(report.Created, list.Title)
		default:
			return report, err
		}

		seen := make(map[tasklist.Task]bool, len(list.Elements))
		for _, t := range list.Elements {
			seen[t] = true
		}

		for _, t := range rl.Tasks {
			if seen[t] {
				report.Duplicates++
				continue
			}
			if err := svc.AddTask(ctx, list.ID, t); err != nil {
				if errors.Is(err, service.ErrEmptyDescription) || errors.Is(err, service.ErrInvalidDueDate) {
					log.Warn("skipping remote task", zap.String(logging.KeyList, list.Title), zap.Error(err))
					report.Skipped++
					continue
				}
				return report, err
			}
			seen[t] = true
			report.Tasks++
		}
		log.Debug("imported list", zap.String(logging.KeyList, list.Title), zap.Int("tasks", len(rl.Tasks)))
	}

	return report, nil
}

// fitTitle trims a remote title and cuts it to the longest title a local
// list accepts.
func fitTitle(title string) string {
	title = strings.TrimSpace(title)
	if utf8.RuneCountInString(title) <= tasklist.MaxTitleLen {
		return title
	}
	runes := []rune(title)
	return strings.TrimSpace(string(runes[:tasklist.MaxTitleLen]))
}
