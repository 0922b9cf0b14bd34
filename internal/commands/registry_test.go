package commands_test

import (
	"testing"

	"taskcal/internal/commands"
)

func TestRegistry_FindByAliasIgnoresCase(t *testing.T) {
	for _, name := range []string{"calendar", "cal", "CAL", "import", "ui"} {
		if _, ok := commands.DefaultRegistry.Find(name); !ok {
			t.Errorf("expected %q to resolve", name)
		}
	}
	if _, ok := commands.DefaultRegistry.Find("nope"); ok {
		t.Error("unexpected command for \"nope\"")
	}
}

func TestRegistry_RejectsDuplicates(t *testing.T) {
	r := commands.NewRegistry()
	if err := r.Register(&commands.CalendarCmd{}); err != nil {
		t.Fatalf("first register: %v", err)
	}

	err := r.Register(&commands.CalendarCmd{})
	if err == nil || err.Error() != "command already registered: calendar" {
		t.Errorf("unexpected error %v", err)
	}
}

func TestRegistry_AllIsSortedAndUnique(t *testing.T) {
	all := commands.DefaultRegistry.All()
	seen := make(map[string]bool)
	for i, cmd := range all {
		if seen[cmd.Name()] {
			t.Errorf("%s listed twice", cmd.Name())
		}
		seen[cmd.Name()] = true
		if i > 0 && all[i-1].Name() > cmd.Name() {
			t.Errorf("%s listed before %s", all[i-1].Name(), cmd.Name())
		}
	}
	if !seen["calendar"] || !seen["tui"] {
		t.Error("expected calendar and tui to be registered")
	}
}
