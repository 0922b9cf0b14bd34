package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"taskcal/internal/tasklist"
)

// KeyPrefix starts every list record key.
const KeyPrefix = "list "

// Record is a decoded list together with the key it is stored under.
type Record struct {
	Key  string
	List tasklist.TaskList
}

// Snapshot is the full content of the store at one read.
type Snapshot struct {
	// Records holds the well-formed lists in key order.
	Records []Record

	// Malformed holds one error per record or task that failed to decode.
	Malformed []*tasklist.MalformedRecordError
}

// Lists returns the lists of s in key order.
func (s Snapshot) Lists() []tasklist.TaskList {
	lists := make([]tasklist.TaskList, len(s.Records))
	for i, r := range s.Records {
		lists[i] = r.List
	}
	return lists
}

// Find returns the record holding the list with id.
func (s Snapshot) Find(id int) (Record, bool) {
	for _, r := range s.Records {
		if r.List.ID == id {
			return r, true
		}
	}
	return Record{}, false
}

// Repository reads and writes list records in a KV.
type Repository struct {
	kv KV
}

// NewRepository wraps kv.
func NewRepository(kv KV) *Repository {
	return &Repository{kv: kv}
}

// Enumerate reads every list record. Records that fail to decode are
// reported in Snapshot.Malformed and do not fail the call; an error is only
// returned when the backend itself fails. A record with some undecodable
// tasks keeps its other tasks, and each skipped task is reported.
func (r *Repository) Enumerate(ctx context.Context) (Snapshot, error) {
	keys, err := r.kv.Keys(ctx, KeyPrefix)
	if err != nil {
		return Snapshot{}, fmt.Errorf("list keys: %w", err)
	}
	sortKeys(keys)

	var snap Snapshot
	for _, key := range keys {
		data, err := r.kv.Get(ctx, key)
		if errors.Is(err, ErrNotFound) {
			// Deleted between Keys and Get.
			continue
		}
		if err != nil {
			return Snapshot{}, fmt.Errorf("read %s: %w", key, err)
		}

		l, skipped, err := Decode(data)
		if err != nil {
			snap.Malformed = append(snap.Malformed, &tasklist.MalformedRecordError{Key: key, Err: err})
			continue
		}
		for _, e := range skipped {
			snap.Malformed = append(snap.Malformed, &tasklist.MalformedRecordError{Key: key, Err: e})
		}
		snap.Records = append(snap.Records, Record{Key: key, List: l})
	}
	return snap, nil
}

// Put writes l under key.
func (r *Repository) Put(ctx context.Context, key string, l tasklist.TaskList) error {
	data, err := Encode(l)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := r.kv.Put(ctx, key, data); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// Delete removes the record under key.
func (r *Repository) Delete(ctx context.Context, key string) error {
	if err := r.kv.Delete(ctx, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// NextKey returns an unused key numbered one past the highest existing one.
func (r *Repository) NextKey(ctx context.Context) (string, error) {
	keys, err := r.kv.Keys(ctx, KeyPrefix)
	if err != nil {
		return "", fmt.Errorf("list keys: %w", err)
	}
	highest := 0
	for _, k := range keys {
		if n, ok := keyNumber(k); ok && n > highest {
			highest = n
		}
	}
	return KeyPrefix + strconv.Itoa(highest+1), nil
}

// Close closes the underlying KV.
func (r *Repository) Close() error {
	return r.kv.Close()
}

func keyNumber(key string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimPrefix(key, KeyPrefix))
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// sortKeys orders numbered keys numerically, then any others by name.
func sortKeys(keys []string) {
	sort.Slice(keys, func(i, j int) bool {
		ni, iok := keyNumber(keys[i])
		nj, jok := keyNumber(keys[j])
		switch {
		case iok && jok:
			return ni < nj
		case iok != jok:
			return iok
		default:
			return keys[i] < keys[j]
		}
	})
}
