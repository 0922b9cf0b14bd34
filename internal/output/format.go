// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"taskcal/internal/calendar"
	"taskcal/internal/events"
	"taskcal/internal/overlay"
	"taskcal/internal/tasklist"
)

const (
	// ListSeparator is the separator line for list sections.
	ListSeparator = "------------"

	// MonthLayout formats a month heading, e.g. "March 2024".
	MonthLayout = "January 2006"

	// DayLayout formats a day detail heading, e.g. "15 March 2024".
	DayLayout = "2 January 2006"

	// EmptyDay is shown for a day without tasks.
	EmptyDay = "no tasks scheduled for this day"

	// cellWidth is the width of one grid column: a right-aligned day number
	// followed by a one-character mark.
	cellWidth = 4

	mark = "*"
)

// Styles holds the lipgloss styles for calendar output. A renderer bound to a
// non-terminal writer strips all colour, so redirected output is plain text.
type Styles struct {
	Heading lipgloss.Style
	Weekday lipgloss.Style
	Day     lipgloss.Style
	Outside lipgloss.Style
	Marked  lipgloss.Style
}

// NewStyles returns the calendar styles for the terminal behind w.
func NewStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	return Styles{
		Heading: r.NewStyle().Bold(true),
		Weekday: r.NewStyle().Faint(true),
		Day:     r.NewStyle(),
		Outside: r.NewStyle().Faint(true),
		Marked:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
	}
}

// MonthHeading returns the heading for the month of anchor.
func MonthHeading(anchor time.Time) string {
	return anchor.Format(MonthLayout)
}

// WeekdayHeader returns the two-letter weekday names in column order.
func WeekdayHeader(weekStart time.Weekday) []string {
	names := make([]string, 0, calendar.DaysPerWeek)
	for _, d := range calendar.Weekdays(weekStart) {
		names = append(names, d.String()[:2])
	}
	return names
}

// FormatCalendar prints a month grid.
// Format: centred month heading, weekday header, then one row per week.
// Each cell is the day number right-aligned in three columns followed by "*"
// when marked(i) is true. Days of adjacent months use the Outside style.
func FormatCalendar(w io.Writer, st Styles, anchor time.Time, weekStart time.Weekday, grid []calendar.Cell, marked func(i int) bool) {
	width := calendar.DaysPerWeek * cellWidth
	heading := MonthHeading(anchor)
	pad := (width - len(heading)) / 2
	if pad < 0 {
		pad = 0
	}
	fmt.Fprintln(w, strings.Repeat(" ", pad)+st.Heading.Render(heading))

	var header strings.Builder
	for _, name := range WeekdayHeader(weekStart) {
		header.WriteString(fmt.Sprintf("%3s ", name))
	}
	fmt.Fprintln(w, st.Weekday.Render(strings.TrimRight(header.String(), " ")))

	for r, week := range calendar.Weeks(grid) {
		var row strings.Builder
		for c, cell := range week {
			row.WriteString(formatCell(st, cell, marked(r*calendar.DaysPerWeek+c)))
		}
		fmt.Fprintln(w, strings.TrimRight(row.String(), " "))
	}
}

func formatCell(st Styles, cell calendar.Cell, isMarked bool) string {
	num := fmt.Sprintf("%3d", cell.Day)
	suffix := " "
	if isMarked {
		suffix = st.Marked.Render(mark)
	}
	if !cell.InMonth {
		return st.Outside.Render(num) + suffix
	}
	return st.Day.Render(num) + suffix
}

// FormatDayDetail prints the tasks of one day grouped by list.
// Format: "15 March 2024", then per list a header section and one
// "    - {DESCRIPTION}" line per task, or EmptyDay when nothing is due.
func FormatDayDetail(w io.Writer, d overlay.Detail) {
	fmt.Fprintln(w, d.Date.Format(DayLayout))
	if d.Empty() {
		fmt.Fprintln(w, EmptyDay)
		return
	}
	for _, g := range d.Groups {
		FormatGroup(w, g)
	}
}

// FormatGroup prints one list's tasks for a day.
func FormatGroup(w io.Writer, g events.Group) {
	FormatListHeader(w, g.ListTitle)
	for _, t := range g.Tasks {
		fmt.Fprintf(w, "    - %s\n", normalizeTitle(t.Description))
	}
}

// FormatTask formats a numbered task line with its due date.
// Format: "    {N:>4}  {DUE}  {DESCRIPTION}\n"
func FormatTask(w io.Writer, num int, task tasklist.Task) {
	fmt.Fprintf(w, "    %4d  %s  %s\n", num, task.DueDate, normalizeTitle(task.Description))
}

// FormatListHeader formats a list section header.
func FormatListHeader(w io.Writer, title string) {
	fmt.Fprintln(w, ListSeparator)
	fmt.Fprintln(w, normalizeListTitle(title))
	fmt.Fprintln(w, ListSeparator)
}

// FormatListName formats a list name for the lists command.
// Format: "{LETTER}  {TITLE}  ({N} tasks)\n"
func FormatListName(w io.Writer, letter rune, list tasklist.TaskList) {
	noun := "tasks"
	if len(list.Elements) == 1 {
		noun = "task"
	}
	fmt.Fprintf(w, "%c  %s  (%d %s)\n", letter, normalizeListTitle(list.Title), len(list.Elements), noun)
}

// FormatMalformed prints a warning for a stored record, or a task within one,
// that was skipped.
func FormatMalformed(w io.Writer, m *tasklist.MalformedRecordError) {
	fmt.Fprintf(w, "warning: skipping malformed record %s: %v\n", m.Key, m.Err)
}

// normalizeTitle normalizes a task description for display.
// - Empty or whitespace-only descriptions become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")

	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}

// normalizeListTitle normalizes a list title for display.
// Empty or whitespace-only titles become "(untitled)".
func normalizeListTitle(title string) string {
	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
