package calendar

import "time"

// MonthStart returns the start of day 1 of t's month, in t's location.
func MonthStart(t time.Time) time.Time {
	year, month, _ := t.Date()
	return StartOfDay(year, month, 1, t.Location())
}

// StartOfDay returns the first instant of the given day in loc. Out-of-range
// months and days are normalized as by time.Date. Where a daylight-saving
// change skips midnight, the day starts at the end of the gap rather than
// on the evening before.
func StartOfDay(year int, month time.Month, day int, loc *time.Location) time.Time {
	y, m, d := time.Date(year, month, day, 12, 0, 0, 0, loc).Date()
	t := time.Date(y, m, d, 0, 0, 0, 0, loc)
	for t.Day() != d {
		t = t.Add(time.Hour)
	}
	return t
}

// Next returns the first day of the month after anchor's.
func Next(anchor time.Time) time.Time {
	return step(anchor, 1)
}

// Previous returns the first day of the month before anchor's.
func Previous(anchor time.Time) time.Time {
	return step(anchor, -1)
}

// step moves by whole months from day 1, so a 31st never overflows into the
// month after the target.
func step(anchor time.Time, months int) time.Time {
	year, month, _ := anchor.Date()
	return StartOfDay(year, month+time.Month(months), 1, anchor.Location())
}

// Navigator holds the displayed month.
type Navigator struct {
	anchor time.Time
}

// NewNavigator starts at the month containing t.
func NewNavigator(t time.Time) *Navigator {
	return &Navigator{anchor: MonthStart(t)}
}

// Anchor returns day 1 of the displayed month.
func (n *Navigator) Anchor() time.Time { return n.anchor }

// Next advances one month and returns the new anchor.
func (n *Navigator) Next() time.Time {
	n.anchor = Next(n.anchor)
	return n.anchor
}

// Previous goes back one month and returns the new anchor.
func (n *Navigator) Previous() time.Time {
	n.anchor = Previous(n.anchor)
	return n.anchor
}

// Jump displays the month containing t.
func (n *Navigator) Jump(t time.Time) time.Time {
	n.anchor = MonthStart(t)
	return n.anchor
}
