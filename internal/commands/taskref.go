package commands

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"

	"taskcal/internal/tasklist"
)

// MaxLetters is the number of lists addressable by letter.
const MaxLetters = 26

// TaskRef represents a parsed task reference.
type TaskRef struct {
	Letter    rune // 0 if no letter, 'a'-'z' otherwise
	TaskNum   int  // 1-based task number
	HasLetter bool // true if a list letter was provided
}

// ErrTaskRefRequired indicates no task reference was provided.
var ErrTaskRefRequired = errors.New("task reference required")

// ParseTaskRef parses a task reference from args.
//
// Accepted forms:
//   - "3": task 3 of the list named with --list
//   - "b3": task 3 of the second list as numbered by the lists command
//
// Anything else, including a letter without a number, is rejected.
func ParseTaskRef(args []string) (TaskRef, error) {
	if len(args) == 0 {
		return TaskRef{}, ErrTaskRefRequired
	}

	ref := args[0]
	if isAllDigits(ref) {
		num, err := strconv.Atoi(ref)
		if err != nil {
			return TaskRef{}, fmt.Errorf("invalid task reference: %s", ref)
		}
		return TaskRef{TaskNum: num}, nil
	}

	if len(ref) > 1 && isLetter(rune(ref[0])) && isAllDigits(ref[1:]) {
		num, err := strconv.Atoi(ref[1:])
		if err != nil {
			return TaskRef{}, fmt.Errorf("invalid task reference: %s", ref)
		}
		return TaskRef{Letter: rune(ref[0]), TaskNum: num, HasLetter: true}, nil
	}

	if len(ref) == 1 && isLetter(rune(ref[0])) {
		return TaskRef{}, ErrTaskRefRequired
	}
	return TaskRef{}, fmt.Errorf("invalid task reference: %s", ref)
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// isLetter returns true if r is a lowercase letter a-z.
func isLetter(r rune) bool {
	return r >= 'a' && r <= 'z'
}

// listLetter returns the letter of the i-th list in store order.
func listLetter(i int) rune {
	return 'a' + rune(i)
}

// ListByLetter returns the list the lists command prints under letter.
func ListByLetter(lists []tasklist.TaskList, letter rune) (tasklist.TaskList, error) {
	i := int(letter - 'a')
	if !isLetter(letter) || i >= len(lists) {
		return tasklist.TaskList{}, fmt.Errorf("list letter not found: %c", letter)
	}
	return lists[i], nil
}
