package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bytedance/sonic"

	"taskcal/internal/tasklist"
)

var api = sonic.ConfigStd

// Encode serializes a list as a JSON record.
func Encode(l tasklist.TaskList) ([]byte, error) {
	if l.Elements == nil {
		l.Elements = []tasklist.Task{}
	}
	return api.Marshal(l)
}

// ElementError reports one task of a record that does not decode.
type ElementError struct {
	Index int
	Err   error
}

func (e *ElementError) Error() string {
	return fmt.Sprintf("element %d: %v", e.Index, e.Err)
}

func (e *ElementError) Unwrap() error { return e.Err }

// record mirrors tasklist.TaskList with elements left undecoded.
type record struct {
	ID       int               `json:"id"`
	Title    string            `json:"title"`
	Elements []json.RawMessage `json:"elements"`
}

// Decode parses a JSON record. Records without a title are rejected. Tasks
// that do not decode are left out of the list and returned as ElementErrors;
// the rest of the record is kept.
func Decode(data []byte) (tasklist.TaskList, []error, error) {
	var r record
	if err := api.Unmarshal(data, &r); err != nil {
		return tasklist.TaskList{}, nil, err
	}
	if r.Title == "" {
		return tasklist.TaskList{}, nil, errors.New("missing title")
	}

	l := tasklist.TaskList{ID: r.ID, Title: r.Title, Elements: make([]tasklist.Task, 0, len(r.Elements))}
	var skipped []error
	for i, raw := range r.Elements {
		var t tasklist.Task
		if err := api.Unmarshal(raw, &t); err != nil {
			skipped = append(skipped, &ElementError{Index: i, Err: err})
			continue
		}
		l.Elements = append(l.Elements, t)
	}
	return l, skipped, nil
}
