package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"taskcal/internal/logging"
	"taskcal/internal/store"
	"taskcal/internal/tasklist"
)

// Local implements Service over a store.Repository. Each call reads the full
// store; nothing is cached between calls.
type Local struct {
	repo *store.Repository
	ids  tasklist.IDSource
	loc  *time.Location
	log  *zap.Logger
}

// Option configures a Local.
type Option func(*Local)

// WithIDSource replaces the random id source.
func WithIDSource(ids tasklist.IDSource) Option {
	return func(l *Local) { l.ids = ids }
}

// WithLocation sets the location due dates are validated in.
func WithLocation(loc *time.Location) Option {
	return func(l *Local) { l.loc = loc }
}

// WithLogger sets the diagnostics logger.
func WithLogger(log *zap.Logger) Option {
	return func(l *Local) { l.log = log }
}

// NewLocal returns a Local backed by repo.
func NewLocal(repo *store.Repository, opts ...Option) *Local {
	l := &Local{
		repo: repo,
		ids:  tasklist.RandomID,
		loc:  time.Local,
		log:  logging.Nop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Close closes the underlying store.
func (l *Local) Close() error {
	return l.repo.Close()
}

// Lists implements Service.
func (l *Local) Lists(ctx context.Context) (store.Snapshot, error) {
	snap, err := l.repo.Enumerate(ctx)
	if err != nil {
		return store.Snapshot{}, err
	}
	for _, m := range snap.Malformed {
		l.log.Debug("skipping malformed record", zap.String(logging.KeyKey, m.Key), zap.Error(m.Err))
	}
	l.log.Debug("enumerated lists", zap.Int("lists", len(snap.Records)), zap.Int("malformed", len(snap.Malformed)))
	return snap, nil
}

// ResolveList implements Service.
func (l *Local) ResolveList(ctx context.Context, title string) (tasklist.TaskList, error) {
	snap, err := l.Lists(ctx)
	if err != nil {
		return tasklist.TaskList{}, err
	}
	rec, err := findByTitle(snap, title)
	if err != nil {
		return tasklist.TaskList{}, err
	}
	return rec.List, nil
}

// CreateList implements Service.
func (l *Local) CreateList(ctx context.Context, title string) (tasklist.TaskList, error) {
	snap, err := l.Lists(ctx)
	if err != nil {
		return tasklist.TaskList{}, err
	}

	list, err := tasklist.Create(title, snap.Lists(), l.ids)
	if err != nil {
		return tasklist.TaskList{}, err
	}

	key, err := l.repo.NextKey(ctx)
	if err != nil {
		return tasklist.TaskList{}, err
	}
	if err := l.repo.Put(ctx, key, list); err != nil {
		return tasklist.TaskList{}, err
	}

	l.log.Debug("created list", zap.String(logging.KeyKey, key), zap.String(logging.KeyList, list.Title), zap.Int("id", list.ID))
	return list, nil
}

// DeleteList implements Service.
func (l *Local) DeleteList(ctx context.Context, listID int) error {
	rec, err := l.find(ctx, listID)
	if err != nil {
		return err
	}
	return l.repo.Delete(ctx, rec.Key)
}

// AddTask implements Service.
func (l *Local) AddTask(ctx context.Context, listID int, task tasklist.Task) error {
	if strings.TrimSpace(task.Description) == "" {
		return ErrEmptyDescription
	}
	if _, ok := task.Due(l.loc); !ok {
		return fmt.Errorf("%w: %s", ErrInvalidDueDate, task.DueDate)
	}

	rec, err := l.find(ctx, listID)
	if err != nil {
		return err
	}
	rec.List.Elements = append(rec.List.Elements, task)
	return l.repo.Put(ctx, rec.Key, rec.List)
}

// DeleteTask implements Service.
func (l *Local) DeleteTask(ctx context.Context, listID int, num int) error {
	rec, err := l.find(ctx, listID)
	if err != nil {
		return err
	}
	if num < 1 || num > len(rec.List.Elements) {
		return fmt.Errorf("%w: %d", ErrTaskOutOfRange, num)
	}
	elems := rec.List.Elements
	rec.List.Elements = append(elems[:num-1:num-1], elems[num:]...)
	return l.repo.Put(ctx, rec.Key, rec.List)
}

func (l *Local) find(ctx context.Context, listID int) (store.Record, error) {
	snap, err := l.repo.Enumerate(ctx)
	if err != nil {
		return store.Record{}, err
	}
	rec, ok := snap.Find(listID)
	if !ok {
		return store.Record{}, fmt.Errorf("%w: %d", ErrListNotFound, listID)
	}
	return rec, nil
}

func findByTitle(snap store.Snapshot, title string) (store.Record, error) {
	for _, r := range snap.Records {
		if r.List.Title == title {
			return r, nil
		}
	}
	return store.Record{}, fmt.Errorf("%w: %s", ErrListNotFound, title)
}
