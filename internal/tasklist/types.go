// Package tasklist defines task lists, their tasks, and the rules for creating
// a new list.
package tasklist

import (
	"fmt"
	"time"

	"taskcal/internal/calendar"
)

// Due date layouts accepted in stored records, tried in order.
const (
	DateLayout      = "2006-01-02"
	localDateTime   = "2006-01-02T15:04"
	localDateTimeSS = "2006-01-02T15:04:05"
)

// Task is a single dated entry of a TaskList.
type Task struct {
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
}

// TaskList is a named, ordered collection of tasks.
type TaskList struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Elements []Task `json:"elements"`
}

// Due parses the task's due date in loc.
// Date-only and local date-time values are interpreted in loc; RFC3339
// instants are converted to loc. A wall time that loc skips for a
// daylight-saving change resolves to the start of the same day, never the
// day before. ok is false when the value is unparseable.
func (t Task) Due(loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.Local
	}
	if t.DueDate == "" {
		return time.Time{}, false
	}
	if ts, err := time.Parse(time.RFC3339, t.DueDate); err == nil {
		return ts.In(loc), true
	}
	for _, layout := range []string{DateLayout, localDateTime, localDateTimeSS} {
		if wall, err := time.Parse(layout, t.DueDate); err == nil {
			return inLocation(wall, loc), true
		}
	}
	return time.Time{}, false
}

// inLocation rebuilds the wall clock of a UTC-parsed time in loc, keeping
// its calendar day.
func inLocation(wall time.Time, loc *time.Location) time.Time {
	y, m, d := wall.Date()
	ts := time.Date(y, m, d, wall.Hour(), wall.Minute(), wall.Second(), 0, loc)
	if wy, wm, wd := ts.Date(); wy != y || wm != m || wd != d {
		return calendar.StartOfDay(y, m, d, loc)
	}
	return ts
}

// ParseDate parses a YYYY-MM-DD date in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date: %s", s)
	}
	return calendar.StartOfDay(d.Year(), d.Month(), d.Day(), loc), nil
}

// SameDay reports whether a and b fall on the same calendar day in loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	if loc != nil {
		a, b = a.In(loc), b.In(loc)
	}
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
