// Package overlay holds the day detail selection: at most one selected day
// whose tasks are shown grouped by list.
package overlay

import (
	"time"

	"taskcal/internal/calendar"
	"taskcal/internal/events"
	"taskcal/internal/tasklist"
)

// Overlay is the day detail state. The zero value is closed.
type Overlay struct {
	selected *calendar.Cell
}

// Open selects cell, replacing any current selection.
func (o *Overlay) Open(cell calendar.Cell) {
	o.selected = &cell
}

// Close clears the selection.
func (o *Overlay) Close() {
	o.selected = nil
}

// IsOpen reports whether a day is selected.
func (o *Overlay) IsOpen() bool {
	return o.selected != nil
}

// Selected returns the selected cell.
func (o *Overlay) Selected() (calendar.Cell, bool) {
	if o.selected == nil {
		return calendar.Cell{}, false
	}
	return *o.selected, true
}

// Detail is the rendered content of an open overlay.
type Detail struct {
	Date   time.Time
	Groups []events.Group
}

// Empty reports whether no task falls on the day.
func (d Detail) Empty() bool {
	return len(d.Groups) == 0
}

// Detail computes the content for the selected day. ok is false when the
// overlay is closed.
func (o *Overlay) Detail(lists []tasklist.TaskList) (Detail, bool) {
	cell, ok := o.Selected()
	if !ok {
		return Detail{}, false
	}
	return For(cell.Date, lists), true
}

// For computes the detail for date without touching any selection state.
func For(date time.Time, lists []tasklist.TaskList) Detail {
	return Detail{Date: date, Groups: events.EventsOn(date, lists)}
}
