package tasklist_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskcal/internal/tasklist"
)

// seq returns an IDSource yielding ids in order, then repeating the last one.
func seq(ids ...int) tasklist.IDSource {
	i := 0
	return func() int {
		id := ids[i]
		if i < len(ids)-1 {
			i++
		}
		return id
	}
}

func TestCreate_TooShort(t *testing.T) {
	_, err := tasklist.Create("ab", nil, nil)

	var titleErr *tasklist.TitleError
	require.ErrorAs(t, err, &titleErr)
	assert.Equal(t, 2, titleErr.Length)
}

func TestCreate_TooLong(t *testing.T) {
	_, err := tasklist.Create("abcdefghijklmnopqrstu", nil, nil)

	var titleErr *tasklist.TitleError
	require.ErrorAs(t, err, &titleErr)
	assert.Equal(t, 21, titleErr.Length)
}

func TestCreate_LengthBoundsInclusive(t *testing.T) {
	for _, title := range []string{"abc", "abcdefghijklmnopqrst"} {
		l, err := tasklist.Create(title, nil, seq(123456))
		require.NoError(t, err, title)
		assert.Equal(t, title, l.Title)
	}
}

func TestCreate_LengthCountsRunes(t *testing.T) {
	// Three runes, six bytes.
	_, err := tasklist.Create("źść", nil, seq(123456))
	assert.NoError(t, err)
}

func TestCreate_EmptyTitle(t *testing.T) {
	_, err := tasklist.Create("", nil, nil)

	assert.ErrorIs(t, err, tasklist.ErrEmptyTitle)
	var titleErr *tasklist.TitleError
	assert.False(t, errors.As(err, &titleErr), "empty title must not be a length violation")
}

func TestCreate_Duplicate(t *testing.T) {
	existing := []tasklist.TaskList{{ID: 100001, Title: "Groceries"}}

	_, err := tasklist.Create("Groceries", existing, nil)

	var dupErr *tasklist.DuplicateError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, "Groceries", dupErr.Title)
}

func TestCreate_DuplicateIsCaseSensitive(t *testing.T) {
	existing := []tasklist.TaskList{{ID: 100001, Title: "Groceries"}}

	l, err := tasklist.Create("groceries", existing, seq(200000))

	require.NoError(t, err)
	assert.Equal(t, "groceries", l.Title)
}

func TestCreate_LengthCheckedBeforeDuplicate(t *testing.T) {
	existing := []tasklist.TaskList{{ID: 100001, Title: "ab"}}

	_, err := tasklist.Create("ab", existing, nil)

	var titleErr *tasklist.TitleError
	assert.ErrorAs(t, err, &titleErr)
}

func TestCreate_Success(t *testing.T) {
	l, err := tasklist.Create("Groceries", nil, nil)

	require.NoError(t, err)
	assert.Equal(t, "Groceries", l.Title)
	assert.NotNil(t, l.Elements)
	assert.Empty(t, l.Elements)
	assert.GreaterOrEqual(t, l.ID, tasklist.MinID)
	assert.LessOrEqual(t, l.ID, tasklist.MaxID)
}

func TestCreate_RejectsUsedIDs(t *testing.T) {
	existing := []tasklist.TaskList{
		{ID: 100001, Title: "Work"},
		{ID: 100002, Title: "Home"},
	}

	l, err := tasklist.Create("Garden", existing, seq(100001, 100002, 100001, 555555))

	require.NoError(t, err)
	assert.Equal(t, 555555, l.ID)
}

func TestRandomIDInRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		id := tasklist.RandomID()
		if id < tasklist.MinID || id > tasklist.MaxID {
			t.Fatalf("id out of range: %d", id)
		}
	}
}

func TestTaskDue(t *testing.T) {
	loc := time.FixedZone("CET", 3600)

	tests := []struct {
		name    string
		due     string
		wantOK  bool
		wantDay string
	}{
		{name: "date only", due: "2024-03-15", wantOK: true, wantDay: "2024-03-15"},
		{name: "datetime-local", due: "2024-03-15T23:30", wantOK: true, wantDay: "2024-03-15"},
		{name: "datetime-local seconds", due: "2024-03-15T08:00:10", wantOK: true, wantDay: "2024-03-15"},
		{name: "rfc3339 converted to location", due: "2024-03-15T23:30:00Z", wantOK: true, wantDay: "2024-03-16"},
		{name: "empty", due: "", wantOK: false},
		{name: "garbage", due: "next tuesday", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tasklist.Task{DueDate: tt.due}.Due(loc)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.wantDay, got.Format(tasklist.DateLayout))
			}
		})
	}
}

func TestSameDayIgnoresClock(t *testing.T) {
	morning := time.Date(2024, time.March, 15, 0, 0, 1, 0, time.UTC)
	night := time.Date(2024, time.March, 15, 23, 59, 59, 0, time.UTC)
	next := time.Date(2024, time.March, 16, 0, 0, 0, 0, time.UTC)

	assert.True(t, tasklist.SameDay(morning, night, time.UTC))
	assert.False(t, tasklist.SameDay(night, next, time.UTC))
}

func TestParseDate(t *testing.T) {
	d, err := tasklist.ParseDate("2024-02-29", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, 29, d.Day())

	_, err = tasklist.ParseDate("2023-02-29", time.UTC)
	assert.EqualError(t, err, "invalid date: 2023-02-29")
}

func TestDueKeepsDayWhenMidnightIsSkipped(t *testing.T) {
	loc, err := time.LoadLocation("America/Santiago")
	if err != nil {
		t.Skipf("zone data unavailable: %v", err)
	}

	for _, due := range []string{"2024-09-08", "2024-09-08T00:30", "2024-09-08T00:00:00"} {
		got, ok := tasklist.Task{DueDate: due}.Due(loc)
		require.True(t, ok, due)
		assert.Equal(t, "2024-09-08", got.Format(tasklist.DateLayout), due)
	}

	got, ok := tasklist.Task{DueDate: "2024-09-07T23:30"}.Due(loc)
	require.True(t, ok)
	assert.Equal(t, "2024-09-07 23:30", got.Format("2006-01-02 15:04"))

	d, err := tasklist.ParseDate("2024-09-08", loc)
	require.NoError(t, err)
	assert.Equal(t, 8, d.Day())
}
