package commands

import (
	"testing"

	"taskcal/internal/tasklist"
)

func TestParseTaskRef_NumericOnly(t *testing.T) {
	ref, err := ParseTaskRef([]string{"5"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref.HasLetter {
		t.Error("expected HasLetter to be false")
	}
	if ref.TaskNum != 5 {
		t.Errorf("expected TaskNum 5, got %d", ref.TaskNum)
	}
}

func TestParseTaskRef_CombinedRef(t *testing.T) {
	ref, err := ParseTaskRef([]string{"b12"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ref.HasLetter {
		t.Error("expected HasLetter to be true")
	}
	if ref.Letter != 'b' {
		t.Errorf("expected Letter 'b', got %c", ref.Letter)
	}
	if ref.TaskNum != 12 {
		t.Errorf("expected TaskNum 12, got %d", ref.TaskNum)
	}
}

func TestParseTaskRef_Required(t *testing.T) {
	for _, args := range [][]string{nil, {"c"}} {
		_, err := ParseTaskRef(args)
		if err != ErrTaskRefRequired {
			t.Errorf("args %q: expected ErrTaskRefRequired, got %v", args, err)
		}
	}
}

func TestParseTaskRef_Invalid(t *testing.T) {
	tests := []string{"A1", "1a", "ab", "-1", "b-2", "٣"}
	for _, in := range tests {
		_, err := ParseTaskRef([]string{in})
		if err == nil {
			t.Errorf("%q: expected error", in)
			continue
		}
		expected := "invalid task reference: " + in
		if err.Error() != expected {
			t.Errorf("expected %q, got %q", expected, err.Error())
		}
	}
}

func TestListByLetter(t *testing.T) {
	lists := []tasklist.TaskList{{ID: 100001, Title: "Work"}, {ID: 100002, Title: "Home"}}

	got, err := ListByLetter(lists, 'b')
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Title != "Home" {
		t.Errorf("expected Home, got %q", got.Title)
	}

	_, err = ListByLetter(lists, 'c')
	if err == nil || err.Error() != "list letter not found: c" {
		t.Errorf("expected letter not found, got %v", err)
	}
}

func TestListLetter(t *testing.T) {
	if listLetter(0) != 'a' || listLetter(25) != 'z' {
		t.Error("unexpected list letters")
	}
}
