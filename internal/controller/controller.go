// Package controller keeps the calendar view state and recomputes derived
// state explicitly after every transition.
//
// The displayed month, the selected day and the list snapshot are the only
// inputs. Every method that changes one of them recomputes what depends on
// it before returning: the grid and its highlights for month or list changes,
// the day detail for selection or list changes.
package controller

import (
	"time"

	"taskcal/internal/calendar"
	"taskcal/internal/events"
	"taskcal/internal/overlay"
	"taskcal/internal/tasklist"
)

// Controller is the state behind a calendar screen.
type Controller struct {
	weekStart time.Weekday
	loc       *time.Location

	nav     *calendar.Navigator
	overlay overlay.Overlay
	lists   []tasklist.TaskList

	index  *events.Index
	grid   []calendar.Cell
	marked []bool
	detail overlay.Detail
}

// New shows the month containing now with the given lists.
func New(now time.Time, weekStart time.Weekday, lists []tasklist.TaskList) *Controller {
	c := &Controller{
		weekStart: weekStart,
		loc:       now.Location(),
		nav:       calendar.NewNavigator(now),
	}
	c.SetLists(lists)
	return c
}

// Anchor returns day 1 of the displayed month.
func (c *Controller) Anchor() time.Time { return c.nav.Anchor() }

// WeekStart returns the first weekday of each grid row.
func (c *Controller) WeekStart() time.Weekday { return c.weekStart }

// Grid returns the cells of the displayed month.
func (c *Controller) Grid() []calendar.Cell { return c.grid }

// Marked reports whether grid cell i has at least one task.
func (c *Controller) Marked(i int) bool {
	return i >= 0 && i < len(c.marked) && c.marked[i]
}

// Lists returns the current list snapshot.
func (c *Controller) Lists() []tasklist.TaskList { return c.lists }

// Next shows the following month.
func (c *Controller) Next() {
	c.nav.Next()
	c.rebuild()
}

// Previous shows the preceding month.
func (c *Controller) Previous() {
	c.nav.Previous()
	c.rebuild()
}

// Jump shows the month containing t.
func (c *Controller) Jump(t time.Time) {
	c.nav.Jump(t.In(c.loc))
	c.rebuild()
}

// SetLists replaces the list snapshot.
func (c *Controller) SetLists(lists []tasklist.TaskList) {
	c.lists = lists
	c.index = events.NewIndex(lists, c.loc)
	c.rebuild()
	c.refreshDetail()
}

// Select opens the day detail for cell, replacing any open one.
func (c *Controller) Select(cell calendar.Cell) {
	c.overlay.Open(cell)
	c.refreshDetail()
}

// Close closes the day detail.
func (c *Controller) Close() {
	c.overlay.Close()
	c.detail = overlay.Detail{}
}

// Selected returns the selected cell, if the detail is open.
func (c *Controller) Selected() (calendar.Cell, bool) {
	return c.overlay.Selected()
}

// Detail returns the open day detail.
func (c *Controller) Detail() (overlay.Detail, bool) {
	if !c.overlay.IsOpen() {
		return overlay.Detail{}, false
	}
	return c.detail, true
}

func (c *Controller) rebuild() {
	c.grid = calendar.BuildGrid(c.nav.Anchor(), c.weekStart)
	c.marked = make([]bool, len(c.grid))
	for i, cell := range c.grid {
		c.marked[i] = c.index.Has(cell.Date)
	}
}

func (c *Controller) refreshDetail() {
	if d, ok := c.overlay.Detail(c.lists); ok {
		c.detail = d
	}
}
