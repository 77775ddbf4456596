package calendar

import (
	"errors"
	"fmt"
	"time"

	"cloudeng.io/datetime"
)

// Year range offered by the year picker.
const (
	MinYear = 1800
	MaxYear = 2300
)

// InvalidDateText is displayed whenever a selection does not name a real date.
const InvalidDateText = "Invalid date"

// fallbackDaysInMonth is returned by DaysInMonth when the month cannot be
// placed on the calendar. It keeps the day picker renderable.
const fallbackDaysInMonth = 30

var (
	// ErrInvalidDate indicates that a (year, month, day) triple is not a
	// real proleptic Gregorian date.
	ErrInvalidDate = errors.New("invalid date")
	// ErrYearOutOfRange indicates the year is outside the picker range.
	ErrYearOutOfRange = fmt.Errorf("year must be between %d and %d", MinYear, MaxYear)
	// ErrInvalidMonth indicates the month is not in the 1..12 range.
	ErrInvalidMonth = errors.New("month must be between 1 and 12")
)

// DaysInMonth returns the number of days in the given Gregorian month.
// Months outside 1..12 yield 30 rather than an error.
func DaysInMonth(year, month int) int {
	if month < 1 || month > 12 {
		return fallbackDaysInMonth
	}
	return int(datetime.DaysInMonth(year, datetime.Month(month)))
}

// IsLeapYear reports whether year has a February 29th.
func IsLeapYear(year int) bool {
	return datetime.IsLeap(year)
}

// WeekdayResult is the outcome of resolving a date. The zero value is the
// invalid result.
type WeekdayResult struct {
	Valid         bool
	Weekday       time.Weekday
	WeekdayName   string
	FormattedDate string
}

// Display returns the text shown for the result.
func (r WeekdayResult) Display() string {
	if !r.Valid {
		return InvalidDateText
	}
	return r.FormattedDate
}

// Validate returns nil when the triple names a real date and an error
// wrapping ErrInvalidDate otherwise.
func Validate(year, month, day int) error {
	if month < 1 || month > 12 || day < 1 || day > DaysInMonth(year, month) {
		return fmt.Errorf("%w: %02d-%02d-%04d", ErrInvalidDate, day, month, year)
	}
	return nil
}

// ResolveWeekday maps a date to its weekday using the proleptic Gregorian
// calendar. Out of range days and months produce the invalid result.
func ResolveWeekday(year, month, day int) WeekdayResult {
	if Validate(year, month, day) != nil {
		return WeekdayResult{}
	}
	// time.Date normalises overflow, so a round trip must land on the same
	// date for the triple to be real.
	t := time.Date(year, time.Month(month), day, 12, 0, 0, 0, time.UTC)
	if y, m, d := t.Date(); y != year || int(m) != month || d != day {
		return WeekdayResult{}
	}
	wd := t.Weekday()
	return WeekdayResult{
		Valid:         true,
		Weekday:       wd,
		WeekdayName:   wd.String(),
		FormattedDate: fmt.Sprintf("%02d-%02d-%04d %s", day, month, year, wd),
	}
}
