package calendar

import (
	"fmt"
	"strconv"
	"strings"

	"cloudeng.io/datetime"
)

// ParseDate parses a date typed by the user. Accepted forms are
// DD-MM-YYYY, DD/MM/YYYY, DD.MM.YYYY, YYYY-MM-DD and "D Month YYYY" where
// the month may be a number or any prefix of its English name.
//
// The returned Selection is not checked against the calendar, so
// "31-04-2024" parses and later resolves to the invalid result.
func ParseDate(s string) (Selection, error) {
	fields := strings.FieldsFunc(strings.TrimSpace(s), func(r rune) bool {
		switch r {
		case '-', '/', '.', ',', ' ', '\t':
			return true
		}
		return false
	})
	if len(fields) != 3 {
		return Selection{}, fmt.Errorf("expected day, month and year, got %q", s)
	}
	dayField, monthField, yearField := fields[0], fields[1], fields[2]
	if isYearField(fields[0]) && !isYearField(fields[2]) {
		yearField, dayField = fields[0], fields[2]
	}

	year, err := strconv.Atoi(yearField)
	if err != nil {
		return Selection{}, fmt.Errorf("cannot parse %q as year", yearField)
	}
	month, err := ParseMonth(monthField)
	if err != nil {
		return Selection{}, err
	}
	day, err := strconv.Atoi(dayField)
	if err != nil {
		return Selection{}, fmt.Errorf("cannot parse %q as day", dayField)
	}
	return Selection{Year: year, Month: month, Day: day}, nil
}

// ParseMonth parses a month given as a number in 1..12 or as a prefix of
// its English name, in any case.
func ParseMonth(s string) (int, error) {
	var month datetime.Month
	if s == "" || month.Parse(s) != nil {
		return 0, fmt.Errorf("cannot parse %q as month", s)
	}
	return int(month), nil
}

func isYearField(s string) bool {
	if len(s) != 4 {
		return false
	}
	_, err := strconv.Atoi(s)
	return err == nil
}
