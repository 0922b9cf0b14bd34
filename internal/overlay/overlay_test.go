package overlay_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskcal/internal/calendar"
	"taskcal/internal/overlay"
	"taskcal/internal/tasklist"
)

var lists = []tasklist.TaskList{
	{ID: 1, Title: "Work", Elements: []tasklist.Task{{Description: "Ship", DueDate: "2024-03-15"}}},
}

func cell(d int) calendar.Cell {
	return calendar.Cell{Day: d, Date: time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC), InMonth: true}
}

func TestOverlay_ZeroValueIsClosed(t *testing.T) {
	var o overlay.Overlay

	assert.False(t, o.IsOpen())
	_, ok := o.Detail(lists)
	assert.False(t, ok)
}

func TestOverlay_OpenShowsTasks(t *testing.T) {
	var o overlay.Overlay
	o.Open(cell(15))

	d, ok := o.Detail(lists)

	require.True(t, ok)
	assert.False(t, d.Empty())
	require.Len(t, d.Groups, 1)
	assert.Equal(t, "Work", d.Groups[0].ListTitle)
	assert.Equal(t, "Ship", d.Groups[0].Tasks[0].Description)
}

func TestOverlay_EmptyDay(t *testing.T) {
	var o overlay.Overlay
	o.Open(cell(14))

	d, ok := o.Detail(lists)

	require.True(t, ok)
	assert.True(t, d.Empty())
}

func TestOverlay_SelectingAnotherDayReplaces(t *testing.T) {
	var o overlay.Overlay
	o.Open(cell(15))
	o.Open(cell(14))

	sel, ok := o.Selected()
	require.True(t, ok)
	assert.Equal(t, 14, sel.Day)

	d, _ := o.Detail(lists)
	assert.True(t, d.Empty())
}

func TestOverlay_Close(t *testing.T) {
	var o overlay.Overlay
	o.Open(cell(15))
	o.Close()

	assert.False(t, o.IsOpen())
	_, ok := o.Selected()
	assert.False(t, ok)
}

func TestOverlay_WithNoLists(t *testing.T) {
	var o overlay.Overlay
	o.Open(cell(15))

	d, ok := o.Detail(nil)

	require.True(t, ok)
	assert.True(t, d.Empty())
}
