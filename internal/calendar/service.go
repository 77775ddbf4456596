package calendar

import (
	"fmt"
	"time"
)

// Day is a single cell of a month grid.
type Day struct {
	Date       time.Time
	InMonth    bool
	IsSelected bool
	IsToday    bool
}

// MonthView describes a month laid out into Sunday-first weeks.
type MonthView struct {
	Year  int
	Month time.Month
	Title string
	Weeks [][]Day
}

// Service builds month grids around a selection.
type Service struct {
	now func() time.Time
}

// Option configures the Service.
type Option func(*Service)

// WithNow overrides the clock, which is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService constructs a Service.
func NewService(opts ...Option) *Service {
	s := &Service{
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Today returns the current date as a selection.
func (s *Service) Today() Selection {
	return Today(s.now())
}

// Month builds the grid for the selection's month with the selected day
// flagged. The selection's day may be out of range, in which case no cell is
// flagged.
func (s *Service) Month(sel Selection) (MonthView, error) {
	if sel.Year < MinYear || sel.Year > MaxYear {
		return MonthView{}, ErrYearOutOfRange
	}
	if sel.Month < 1 || sel.Month > 12 {
		return MonthView{}, ErrInvalidMonth
	}

	// Dates are calendar values, so every cell lives in UTC.
	first := time.Date(sel.Year, time.Month(sel.Month), 1, 0, 0, 0, 0, time.UTC)
	cursor := first.AddDate(0, 0, -int(first.Weekday()))
	days := DaysInMonth(sel.Year, sel.Month)
	today := Today(s.now())

	weeks := make([][]Day, 0, 6)
	for len(weeks) == 0 || cursor.Month() == first.Month() {
		week := make([]Day, 7)
		for i := range week {
			y, m, d := cursor.Date()
			inMonth := m == first.Month()
			week[i] = Day{
				Date:       cursor,
				InMonth:    inMonth,
				IsSelected: inMonth && d == sel.Day && sel.Day <= days,
				IsToday:    y == today.Year && int(m) == today.Month && d == today.Day,
			}
			cursor = cursor.AddDate(0, 0, 1)
		}
		weeks = append(weeks, week)
	}

	return MonthView{
		Year:  sel.Year,
		Month: first.Month(),
		Title: fmt.Sprintf("%s %04d", first.Month(), sel.Year),
		Weeks: weeks,
	}, nil
}
