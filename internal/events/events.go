// Package events answers which tasks fall on a given calendar day.
//
// Matching compares (year, month, day) in the query date's location; the time
// of day is ignored. Tasks with an unparseable due date never match and do not
// stop the remaining tasks from being considered.
package events

import (
	"time"

	"taskcal/internal/tasklist"
)

// Group is the tasks of one list that fall on a queried day.
type Group struct {
	ListID    int
	ListTitle string
	Tasks     []tasklist.Task
}

// HasEvents reports whether any task in lists is due on date's day.
func HasEvents(date time.Time, lists []tasklist.TaskList) bool {
	loc := date.Location()
	for _, l := range lists {
		for _, t := range l.Elements {
			if matches(t, date, loc) {
				return true
			}
		}
	}
	return false
}

// EventsOn returns, in list order, the tasks due on date's day grouped by
// list. Lists without a matching task are omitted; task order within a list
// is preserved.
func EventsOn(date time.Time, lists []tasklist.TaskList) []Group {
	loc := date.Location()
	var groups []Group
	for _, l := range lists {
		var due []tasklist.Task
		for _, t := range l.Elements {
			if matches(t, date, loc) {
				due = append(due, t)
			}
		}
		if len(due) > 0 {
			groups = append(groups, Group{ListID: l.ID, ListTitle: l.Title, Tasks: due})
		}
	}
	return groups
}

func matches(t tasklist.Task, date time.Time, loc *time.Location) bool {
	due, ok := t.Due(loc)
	return ok && tasklist.SameDay(due, date, loc)
}
