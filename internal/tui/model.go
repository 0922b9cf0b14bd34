// Package tui is the interactive month calendar.
//
// The model keeps a focused date and hands every state change to a
// controller.Controller, which rebuilds the grid, the highlights and the day
// detail. Moving the focus past either edge of the month shows the adjacent
// month.
package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"taskcal/internal/calendar"
	"taskcal/internal/controller"
	"taskcal/internal/output"
	"taskcal/internal/tasklist"
)

// Loader reads the current list snapshot.
type Loader func(ctx context.Context) ([]tasklist.TaskList, error)

// Options configures a Model.
type Options struct {
	Now       func() time.Time
	WeekStart time.Weekday
	Lists     []tasklist.TaskList
	Load      Loader

	// Output is the terminal the program draws on. Styles are resolved
	// against it; nil means stdout.
	Output io.Writer
}

// Model is the bubbletea model of the calendar screen.
type Model struct {
	ctx    context.Context
	ctl    *controller.Controller
	focus  time.Time
	now    func() time.Time
	load   Loader
	keys   keyMap
	help   help.Model
	styles styles
	status string
	width  int
}

type listsMsg struct {
	lists []tasklist.TaskList
	err   error
}

type styles struct {
	plain   lipgloss.Style
	heading lipgloss.Style
	weekday lipgloss.Style
	outside lipgloss.Style
	marked  lipgloss.Style
	today   lipgloss.Style
	cursor  lipgloss.Style
	panel   lipgloss.Style
	status  lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		plain:   r.NewStyle(),
		heading: r.NewStyle().Bold(true),
		weekday: r.NewStyle().Faint(true),
		outside: r.NewStyle().Faint(true),
		marked:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
		today:   r.NewStyle().Underline(true),
		cursor:  r.NewStyle().Reverse(true),
		panel: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1),
		status: r.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

// New returns a model showing the month of opts.Now() with the focus on today.
func New(ctx context.Context, opts Options) Model {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	today := dayOf(now())
	renderer := lipgloss.DefaultRenderer()
	if opts.Output != nil {
		renderer = lipgloss.NewRenderer(opts.Output)
	}
	return Model{
		ctx:    ctx,
		ctl:    controller.New(today, opts.WeekStart, opts.Lists),
		focus:  today,
		now:    now,
		load:   opts.Load,
		keys:   newKeyMap(),
		help:   help.New(),
		styles: newStyles(renderer),
	}
}

// Controller returns the view state.
func (m Model) Controller() *controller.Controller { return m.ctl }

// Focus returns the focused date.
func (m Model) Focus() time.Time { return m.focus }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case listsMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("reload failed: %v", msg.err)
			return m, nil
		}
		m.status = ""
		m.ctl.SetLists(msg.lists)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Left):
		m.moveFocus(m.focus.AddDate(0, 0, -1))
	case key.Matches(msg, m.keys.Right):
		m.moveFocus(m.focus.AddDate(0, 0, 1))
	case key.Matches(msg, m.keys.Up):
		m.moveFocus(m.focus.AddDate(0, 0, -calendar.DaysPerWeek))
	case key.Matches(msg, m.keys.Down):
		m.moveFocus(m.focus.AddDate(0, 0, calendar.DaysPerWeek))
	case key.Matches(msg, m.keys.Next):
		m.ctl.Next()
		m.focus = sameDayIn(m.focus, m.ctl.Anchor())
	case key.Matches(msg, m.keys.Prev):
		m.ctl.Previous()
		m.focus = sameDayIn(m.focus, m.ctl.Anchor())
	case key.Matches(msg, m.keys.Today):
		m.moveFocus(dayOf(m.now()))
	case key.Matches(msg, m.keys.Open):
		if i := m.cursor(); i >= 0 {
			m.ctl.Select(m.ctl.Grid()[i])
		}
	case key.Matches(msg, m.keys.Close):
		m.ctl.Close()
	case key.Matches(msg, m.keys.Reload):
		return m, m.reload()
	}
	return m, nil
}

// moveFocus focuses day, showing its month if it is not the displayed one.
func (m *Model) moveFocus(day time.Time) {
	m.focus = day
	anchor := m.ctl.Anchor()
	if day.Year() != anchor.Year() || day.Month() != anchor.Month() {
		m.ctl.Jump(day)
	}
}

// cursor returns the grid index of the focused date, or -1.
func (m Model) cursor() int {
	for i, cell := range m.ctl.Grid() {
		if cell.InMonth && tasklist.SameDay(cell.Date, m.focus, nil) {
			return i
		}
	}
	return -1
}

func (m Model) reload() tea.Cmd {
	if m.load == nil {
		return nil
	}
	ctx, load := m.ctx, m.load
	return func() tea.Msg {
		lists, err := load(ctx)
		return listsMsg{lists: lists, err: err}
	}
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.calendarView())

	if detail, ok := m.ctl.Detail(); ok {
		var d strings.Builder
		output.FormatDayDetail(&d, detail)
		b.WriteString("\n")
		b.WriteString(m.styles.panel.Render(strings.TrimRight(d.String(), "\n")))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.status.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

func (m Model) calendarView() string {
	var b strings.Builder
	st := m.styles
	anchor := m.ctl.Anchor()
	width := calendar.DaysPerWeek * 4

	heading := output.MonthHeading(anchor)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, st.heading.Render(heading)))
	b.WriteString("\n")

	var header strings.Builder
	for _, name := range output.WeekdayHeader(m.ctl.WeekStart()) {
		header.WriteString(fmt.Sprintf("%3s ", name))
	}
	b.WriteString(st.weekday.Render(header.String()))
	b.WriteString("\n")

	cursor := m.cursor()
	today := dayOf(m.now())
	for r, week := range calendar.Weeks(m.ctl.Grid()) {
		for c, cell := range week {
			i := r*calendar.DaysPerWeek + c
			num := fmt.Sprintf("%3d", cell.Day)
			style := st.plain
			switch {
			case i == cursor:
				style = st.cursor
			case !cell.InMonth:
				style = st.outside
			case tasklist.SameDay(cell.Date, today, nil):
				style = st.today
			}
			b.WriteString(style.Render(num))
			if m.ctl.Marked(i) {
				b.WriteString(st.marked.Render("*"))
			} else {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// dayOf returns the start of t's day in t's location.
func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return calendar.StartOfDay(y, m, d, t.Location())
}

// sameDayIn returns the day of month of focus within anchor's month, clamped
// to the month's length.
func sameDayIn(focus, anchor time.Time) time.Time {
	y, m, _ := anchor.Date()
	day := min(focus.Day(), calendar.DaysInMonth(y, m, anchor.Location()))
	return calendar.StartOfDay(y, m, day, anchor.Location())
}
