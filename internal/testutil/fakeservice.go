// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"taskcal/internal/service"
	"taskcal/internal/store"
	"taskcal/internal/tasklist"
)

// FakeService is an in-memory implementation of service.Service for testing.
// Lists are kept in creation order and keyed "list N" like the real store.
type FakeService struct {
	mu        sync.RWMutex
	records   []store.Record
	malformed []*tasklist.MalformedRecordError
	nextKey   int
	nextID    int

	// Error injection for testing
	ListsErr       error
	ResolveListErr error
	CreateListErr  error
	DeleteListErr  error
	AddTaskErr     error
	DeleteTaskErr  error
}

// NewFakeService creates an empty FakeService.
func NewFakeService() *FakeService {
	return &FakeService{nextKey: 1, nextID: tasklist.MinID}
}

// AddList adds a list with the given id and title.
func (f *FakeService) AddList(id int, title string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records = append(f.records, store.Record{
		Key:  fmt.Sprintf("%s%d", store.KeyPrefix, f.nextKey),
		List: tasklist.TaskList{ID: id, Title: title, Elements: []tasklist.Task{}},
	})
	f.nextKey++
}

// PutTask appends a task to the list with id.
func (f *FakeService) PutTask(listID int, description, due string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.records {
		if f.records[i].List.ID == listID {
			f.records[i].List.Elements = append(f.records[i].List.Elements, tasklist.Task{
				Description: description,
				DueDate:     due,
			})
			return
		}
	}
}

// AddMalformed records a stored entry that failed to decode.
func (f *FakeService) AddMalformed(key string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.malformed = append(f.malformed, &tasklist.MalformedRecordError{Key: key, Err: err})
}

// Snapshot returns a copy of the stored lists.
func (f *FakeService) Snapshot() []tasklist.TaskList {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.snapshot().Lists()
}

func (f *FakeService) snapshot() store.Snapshot {
	records := make([]store.Record, len(f.records))
	for i, r := range f.records {
		r.List.Elements = append([]tasklist.Task{}, r.List.Elements...)
		records[i] = r
	}
	return store.Snapshot{
		Records:   records,
		Malformed: append([]*tasklist.MalformedRecordError(nil), f.malformed...),
	}
}

// Lists implements service.Service.
func (f *FakeService) Lists(ctx context.Context) (store.Snapshot, error) {
	if f.ListsErr != nil {
		return store.Snapshot{}, f.ListsErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.snapshot(), nil
}

// ResolveList implements service.Service.
func (f *FakeService) ResolveList(ctx context.Context, title string) (tasklist.TaskList, error) {
	if f.ResolveListErr != nil {
		return tasklist.TaskList{}, f.ResolveListErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()

	for _, r := range f.snapshot().Records {
		if r.List.Title == title {
			return r.List, nil
		}
	}
	return tasklist.TaskList{}, fmt.Errorf("%w: %s", service.ErrListNotFound, title)
}

// CreateList implements service.Service. Ids are handed out sequentially.
func (f *FakeService) CreateList(ctx context.Context, title string) (tasklist.TaskList, error) {
	if f.CreateListErr != nil {
		return tasklist.TaskList{}, f.CreateListErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	list, err := tasklist.Create(title, f.snapshot().Lists(), func() int {
		id := f.nextID
		f.nextID++
		return id
	})
	if err != nil {
		return tasklist.TaskList{}, err
	}
	f.records = append(f.records, store.Record{
		Key:  fmt.Sprintf("%s%d", store.KeyPrefix, f.nextKey),
		List: list,
	})
	f.nextKey++
	return list, nil
}

// DeleteList implements service.Service.
func (f *FakeService) DeleteList(ctx context.Context, listID int) error {
	if f.DeleteListErr != nil {
		return f.DeleteListErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, r := range f.records {
		if r.List.ID == listID {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %d", service.ErrListNotFound, listID)
}

// AddTask implements service.Service. Validation matches service.Local.
func (f *FakeService) AddTask(ctx context.Context, listID int, task tasklist.Task) error {
	if f.AddTaskErr != nil {
		return f.AddTaskErr
	}
	if strings.TrimSpace(task.Description) == "" {
		return service.ErrEmptyDescription
	}
	if _, ok := task.Due(time.UTC); !ok {
		return fmt.Errorf("%w: %s", service.ErrInvalidDueDate, task.DueDate)
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.records {
		if f.records[i].List.ID == listID {
			f.records[i].List.Elements = append(f.records[i].List.Elements, task)
			return nil
		}
	}
	return fmt.Errorf("%w: %d", service.ErrListNotFound, listID)
}

// DeleteTask implements service.Service.
func (f *FakeService) DeleteTask(ctx context.Context, listID int, num int) error {
	if f.DeleteTaskErr != nil {
		return f.DeleteTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.records {
		if f.records[i].List.ID != listID {
			continue
		}
		elems := f.records[i].List.Elements
		if num < 1 || num > len(elems) {
			return fmt.Errorf("%w: %d", service.ErrTaskOutOfRange, num)
		}
		f.records[i].List.Elements = append(elems[:num-1:num-1], elems[num:]...)
		return nil
	}
	return fmt.Errorf("%w: %d", service.ErrListNotFound, listID)
}
