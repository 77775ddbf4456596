package calendar

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestDaysInMonthLeapYears(t *testing.T) {
	tests := []struct {
		year, month, want int
	}{
		{2000, 2, 29},
		{1900, 2, 28},
		{2024, 2, 29},
		{2023, 2, 28},
		{1800, 2, 28},
		{2300, 2, 28},
		{2400, 2, 29},
		{2024, 1, 31},
		{2024, 4, 30},
		{2024, 6, 30},
		{2024, 7, 31},
		{2024, 9, 30},
		{2024, 11, 30},
		{2024, 12, 31},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d-%02d", tt.year, tt.month), func(t *testing.T) {
			if got := DaysInMonth(tt.year, tt.month); got != tt.want {
				t.Fatalf("DaysInMonth(%d, %d)=%d want %d", tt.year, tt.month, got, tt.want)
			}
		})
	}
}

func TestDaysInMonthMatchesGregorianRule(t *testing.T) {
	for year := 1500; year <= 2500; year++ {
		leap := year%4 == 0 && (year%100 != 0 || year%400 == 0)
		if IsLeapYear(year) != leap {
			t.Fatalf("IsLeapYear(%d)=%v want %v", year, !leap, leap)
		}
		for month := 1; month <= 12; month++ {
			got := DaysInMonth(year, month)
			if got < 28 || got > 31 {
				t.Fatalf("DaysInMonth(%d, %d)=%d out of range", year, month, got)
			}
			// Day zero of the following month is the last day of this one.
			want := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
			if got != want {
				t.Fatalf("DaysInMonth(%d, %d)=%d want %d", year, month, got, want)
			}
		}
	}
}

func TestDaysInMonthFallback(t *testing.T) {
	for _, month := range []int{0, -1, 13, 100} {
		if got := DaysInMonth(2024, month); got != 30 {
			t.Fatalf("DaysInMonth(2024, %d)=%d want fallback 30", month, got)
		}
	}
}

func TestResolveWeekdayKnownDates(t *testing.T) {
	tests := []struct {
		year, month, day int
		weekday          string
		formatted        string
	}{
		{2024, 5, 14, "Tuesday", "14-05-2024 Tuesday"},
		{2024, 3, 15, "Friday", "15-03-2024 Friday"},
		{2024, 2, 29, "Thursday", "29-02-2024 Thursday"},
		{2000, 2, 29, "Tuesday", "29-02-2000 Tuesday"},
		{1800, 1, 1, "Wednesday", "01-01-1800 Wednesday"},
		{2300, 12, 31, "Monday", "31-12-2300 Monday"},
	}
	for _, tt := range tests {
		t.Run(tt.formatted, func(t *testing.T) {
			got := ResolveWeekday(tt.year, tt.month, tt.day)
			if !got.Valid {
				t.Fatalf("expected valid result")
			}
			if got.WeekdayName != tt.weekday {
				t.Fatalf("WeekdayName=%q want %q", got.WeekdayName, tt.weekday)
			}
			if got.FormattedDate != tt.formatted {
				t.Fatalf("FormattedDate=%q want %q", got.FormattedDate, tt.formatted)
			}
			if got.Display() != tt.formatted {
				t.Fatalf("Display()=%q want %q", got.Display(), tt.formatted)
			}
		})
	}
}

func TestResolveWeekdayInvalid(t *testing.T) {
	tests := []struct {
		name             string
		year, month, day int
	}{
		{"april 31", 2024, 4, 31},
		{"feb 29 common year", 2023, 2, 29},
		{"feb 29 century", 1900, 2, 29},
		{"day zero", 2024, 1, 0},
		{"negative day", 2024, 1, -3},
		{"day 32", 2024, 1, 32},
		{"month zero", 2024, 0, 10},
		{"month 13", 2024, 13, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveWeekday(tt.year, tt.month, tt.day)
			if got.Valid {
				t.Fatalf("expected invalid result, got %+v", got)
			}
			if got != (WeekdayResult{}) {
				t.Fatalf("invalid result should carry no partial state, got %+v", got)
			}
			if got.Display() != InvalidDateText {
				t.Fatalf("Display()=%q want %q", got.Display(), InvalidDateText)
			}
			if err := Validate(tt.year, tt.month, tt.day); !errors.Is(err, ErrInvalidDate) {
				t.Fatalf("Validate error=%v want ErrInvalidDate", err)
			}
		})
	}
}

func TestResolveWeekdayRoundTrip(t *testing.T) {
	prev := ResolveWeekday(MinYear-1, 12, 31).Weekday
	for year := MinYear; year <= MaxYear; year++ {
		for month := 1; month <= 12; month++ {
			for day := 1; day <= DaysInMonth(year, month); day++ {
				got := ResolveWeekday(year, month, day)
				if !got.Valid {
					t.Fatalf("%d-%d-%d should be valid", year, month, day)
				}
				prefix := fmt.Sprintf("%02d-%02d-%04d ", day, month, year)
				if !strings.HasPrefix(got.FormattedDate, prefix) {
					t.Fatalf("FormattedDate=%q should start with %q", got.FormattedDate, prefix)
				}
				if got.Weekday != (prev+1)%7 {
					t.Fatalf("%s does not follow %v", got.FormattedDate, prev)
				}
				if err := Validate(year, month, day); err != nil {
					t.Fatalf("Validate(%d, %d, %d)=%v", year, month, day, err)
				}
				prev = got.Weekday
			}
		}
	}
}
