package calendar

import "time"

// Field names one of the three pickers.
type Field int

const (
	FieldDay Field = iota
	FieldMonth
	FieldYear
)

func (f Field) String() string {
	switch f {
	case FieldDay:
		return "Day"
	case FieldMonth:
		return "Month"
	case FieldYear:
		return "Year"
	}
	return "Unknown"
}

// Selection is the date chosen in the pickers. It is a plain value: every
// update returns a new Selection and the weekday is recomputed from it.
type Selection struct {
	Year  int
	Month int
	Day   int
}

// Today returns the selection for now's calendar date.
func Today(now time.Time) Selection {
	y, m, d := now.Date()
	return Selection{Year: y, Month: int(m), Day: d}.Clamp()
}

// Clamp keeps the year within the picker range, the month within 1..12 and
// the day within the bounds of the selected month.
func (s Selection) Clamp() Selection {
	s.Year = clamp(s.Year, MinYear, MaxYear)
	s.Month = clamp(s.Month, 1, 12)
	s.Day = clamp(s.Day, 1, DaysInMonth(s.Year, s.Month))
	return s
}

// WithYear returns the selection moved to year, re-bounding the day.
func (s Selection) WithYear(year int) Selection {
	s.Year = year
	return s.Clamp()
}

// WithMonth returns the selection moved to month, re-bounding the day.
func (s Selection) WithMonth(month int) Selection {
	s.Month = month
	return s.Clamp()
}

// WithDay returns the selection with day clamped to the month.
func (s Selection) WithDay(day int) Selection {
	s.Day = day
	return s.Clamp()
}

// Step moves one picker by delta, wrapping around that picker's range the
// way a wheel picker does.
func (s Selection) Step(f Field, delta int) Selection {
	switch f {
	case FieldDay:
		s.Day = wrap(s.Day+delta, 1, s.DayRange())
	case FieldMonth:
		s.Month = wrap(s.Month+delta, 1, 12)
	case FieldYear:
		s.Year = wrap(s.Year+delta, MinYear, MaxYear)
	}
	return s.Clamp()
}

// DayRange is the upper bound of the day picker.
func (s Selection) DayRange() int {
	return DaysInMonth(s.Year, s.Month)
}

// Resolve returns the weekday for the selection.
func (s Selection) Resolve() WeekdayResult {
	return ResolveWeekday(s.Year, s.Month, s.Day)
}

// Value returns the picker value for f.
func (s Selection) Value(f Field) int {
	switch f {
	case FieldDay:
		return s.Day
	case FieldMonth:
		return s.Month
	case FieldYear:
		return s.Year
	}
	return 0
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func wrap(v, lo, hi int) int {
	n := hi - lo + 1
	v = (v - lo) % n
	if v < 0 {
		v += n
	}
	return v + lo
}
