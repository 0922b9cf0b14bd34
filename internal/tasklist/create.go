package tasklist

import (
	"math/rand/v2"
	"unicode/utf8"
)

const (
	// MinTitleLen and MaxTitleLen bound a list title, inclusive, in runes.
	MinTitleLen = 3
	MaxTitleLen = 20

	// MinID and MaxID bound generated list ids, inclusive.
	MinID = 100000
	MaxID = 999999
)

// IDSource returns a candidate id in [MinID, MaxID].
type IDSource func() int

// RandomID draws ids uniformly from [MinID, MaxID].
func RandomID() int {
	return MinID + rand.IntN(MaxID-MinID+1)
}

// Create validates title against existing and returns a new empty list.
//
// Checks run in order: empty title (ErrEmptyTitle), length (*TitleError),
// exact title collision (*DuplicateError). The id is drawn from ids until it
// is not used by any existing list. A nil ids uses RandomID.
func Create(title string, existing []TaskList, ids IDSource) (TaskList, error) {
	if title == "" {
		return TaskList{}, ErrEmptyTitle
	}

	n := utf8.RuneCountInString(title)
	if n < MinTitleLen || n > MaxTitleLen {
		return TaskList{}, &TitleError{Title: title, Length: n}
	}

	for _, l := range existing {
		if l.Title == title {
			return TaskList{}, &DuplicateError{Title: title}
		}
	}

	if ids == nil {
		ids = RandomID
	}

	return TaskList{
		ID:       uniqueID(existing, ids),
		Title:    title,
		Elements: []Task{},
	}, nil
}

// uniqueID rejection-samples ids until one is unused. Expected draws grow as
// the number of lists approaches the size of the id range.
func uniqueID(existing []TaskList, ids IDSource) int {
	used := make(map[int]struct{}, len(existing))
	for _, l := range existing {
		used[l.ID] = struct{}{}
	}
	for {
		id := ids()
		if _, taken := used[id]; !taken {
			return id
		}
	}
}
