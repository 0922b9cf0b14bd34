package tasklist

import (
	"errors"
	"fmt"
)

// ErrEmptyTitle is returned by Create for an empty title. It is not a
// validation failure; callers ignore the request.
var ErrEmptyTitle = errors.New("empty title")

// TitleError reports a title whose length is outside MinTitleLen..MaxTitleLen.
type TitleError struct {
	Title  string
	Length int
}

func (e *TitleError) Error() string {
	return fmt.Sprintf("title must be between %d and %d characters (got %d)", MinTitleLen, MaxTitleLen, e.Length)
}

// DuplicateError reports a title already used by an existing list.
type DuplicateError struct {
	Title string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("list already exists: %s", e.Title)
}

// MalformedRecordError reports a stored record that does not decode as a
// TaskList.
type MalformedRecordError struct {
	Key string
	Err error
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record %s: %v", e.Key, e.Err)
}

func (e *MalformedRecordError) Unwrap() error { return e.Err }
