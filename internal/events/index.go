package events

import (
	"slices"
	"time"

	"taskcal/internal/tasklist"
)

type dayKey struct {
	year  int
	month time.Month
	day   int
}

func keyOf(t time.Time) dayKey {
	y, m, d := t.Date()
	return dayKey{y, m, d}
}

// Index is a day lookup over one snapshot of lists, built once so that a
// month render does not rescan every list for each cell. Its answers equal
// HasEvents and EventsOn for dates in the location it was built with.
type Index struct {
	loc  *time.Location
	days map[dayKey][]Group
}

// NewIndex indexes lists by due day in loc.
func NewIndex(lists []tasklist.TaskList, loc *time.Location) *Index {
	if loc == nil {
		loc = time.Local
	}
	idx := &Index{loc: loc, days: make(map[dayKey][]Group)}
	// owner records which list position the last group of each day came from.
	owner := make(map[dayKey]int)
	for pos, l := range lists {
		for _, t := range l.Elements {
			due, ok := t.Due(loc)
			if !ok {
				continue
			}
			k := keyOf(due)
			groups := idx.days[k]
			if last, seen := owner[k]; seen && last == pos {
				groups[len(groups)-1].Tasks = append(groups[len(groups)-1].Tasks, t)
			} else {
				groups = append(groups, Group{ListID: l.ID, ListTitle: l.Title, Tasks: []tasklist.Task{t}})
				owner[k] = pos
			}
			idx.days[k] = groups
		}
	}
	return idx
}

// Has reports whether any task is due on date's day.
func (idx *Index) Has(date time.Time) bool {
	return len(idx.days[keyOf(date.In(idx.loc))]) > 0
}

// On returns the groups due on date's day. The result is a copy; changing it
// does not affect later lookups.
func (idx *Index) On(date time.Time) []Group {
	groups := idx.days[keyOf(date.In(idx.loc))]
	if len(groups) == 0 {
		return nil
	}
	out := make([]Group, len(groups))
	for i, g := range groups {
		g.Tasks = slices.Clone(g.Tasks)
		out[i] = g
	}
	return out
}

// Days returns the number of distinct days with at least one task.
func (idx *Index) Days() int {
	return len(idx.days)
}
