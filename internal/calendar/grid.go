// Package calendar builds month grids and steps between months.
//
// All month arithmetic goes through time.Date normalization: a month value of
// 0 or 13 resolves to December of the previous year or January of the next,
// and day 0 of a month is the last day of the month before it. Month lengths
// and leap years are never tabulated.
package calendar

import "time"

// DaysPerWeek is the number of grid columns.
const DaysPerWeek = 7

// Cell is one day in a month grid.
type Cell struct {
	// Day is the day of month, 1-31.
	Day int

	// Date is the start of the day in the anchor's location.
	Date time.Time

	// InMonth is true for days of the displayed month and false for the
	// leading and trailing days borrowed from adjacent months.
	InMonth bool
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 12, 0, 0, 0, loc).Day()
}

// FirstWeekday returns the column of day 1 of the anchor's month for a week
// starting on weekStart. With a Monday start, Monday is 0 and Sunday is 6.
func FirstWeekday(anchor time.Time, weekStart time.Weekday) int {
	first := MonthStart(anchor)
	return Column(first.Weekday(), weekStart)
}

// Column maps a weekday to its grid column for a week starting on weekStart.
func Column(day, weekStart time.Weekday) int {
	return (int(day) - int(weekStart) + DaysPerWeek) % DaysPerWeek
}

// Weekdays returns the seven weekdays in column order.
func Weekdays(weekStart time.Weekday) []time.Weekday {
	days := make([]time.Weekday, DaysPerWeek)
	for i := range days {
		days[i] = time.Weekday((int(weekStart) + i) % DaysPerWeek)
	}
	return days
}

// BuildGrid returns the cells covering the anchor's month in whole weeks.
//
// The grid opens with the tail of the previous month so that day 1 lands in
// its weekday column, lists every day of the month, and closes with the head
// of the next month up to the next multiple of seven cells.
func BuildGrid(anchor time.Time, weekStart time.Weekday) []Cell {
	year, month, _ := anchor.Date()
	loc := anchor.Location()

	daysInMonth := DaysInMonth(year, month, loc)
	leading := FirstWeekday(anchor, weekStart)
	total := (leading + daysInMonth + DaysPerWeek - 1) / DaysPerWeek * DaysPerWeek

	grid := make([]Cell, 0, total)

	// Previous month, counting back from its last day.
	prevDays := DaysInMonth(year, month-1, loc)
	for day := prevDays - leading + 1; day <= prevDays; day++ {
		grid = append(grid, Cell{
			Day:  day,
			Date: StartOfDay(year, month-1, day, loc),
		})
	}

	for day := 1; day <= daysInMonth; day++ {
		grid = append(grid, Cell{
			Day:     day,
			Date:    StartOfDay(year, month, day, loc),
			InMonth: true,
		})
	}

	for day := 1; len(grid) < total; day++ {
		grid = append(grid, Cell{
			Day:  day,
			Date: StartOfDay(year, month+1, day, loc),
		})
	}

	return grid
}

// Weeks splits a grid into rows of seven cells.
func Weeks(grid []Cell) [][]Cell {
	rows := make([][]Cell, 0, len(grid)/DaysPerWeek)
	for i := 0; i+DaysPerWeek <= len(grid); i += DaysPerWeek {
		rows = append(rows, grid[i:i+DaysPerWeek])
	}
	return rows
}
