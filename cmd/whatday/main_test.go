package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/lululau/whatday/internal/calendar"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("WHATDAY_LOG_LEVEL", "")
	t.Setenv("WHATDAY_LOG_FORMAT", "")
	t.Setenv("WHATDAY_LOG_FILE", "")
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(append([]string{"--no-color"}, args...))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

func TestPlainKnownDate(t *testing.T) {
	out, err := execute(t, "-n", "--no-grid", "14", "5", "2024")
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if out != "14-05-2024 Tuesday\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestPlainDateString(t *testing.T) {
	tests := []struct {
		arg  string
		want string
	}{
		{"2024-05-14", "14-05-2024 Tuesday"},
		{"14 May 2024", "14-05-2024 Tuesday"},
		{"1-1-1800", "01-01-1800 Wednesday"},
		{"31/12/2300", "31-12-2300 Monday"},
	}
	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			out, err := execute(t, "-n", "--no-grid", tt.arg)
			if err != nil {
				t.Fatalf("execute failed: %v", err)
			}
			if strings.TrimSpace(out) != tt.want {
				t.Fatalf("got %q want %q", out, tt.want)
			}
		})
	}
}

func TestPlainWithGrid(t *testing.T) {
	out, err := execute(t, "-n", "15", "mar", "2024")
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !strings.HasPrefix(out, "15-03-2024 Friday\n") || !strings.Contains(out, "March 2024") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestPlainInvalidDate(t *testing.T) {
	out, err := execute(t, "-n", "31", "4", "2024")
	if !errors.Is(err, errInvalidDate) {
		t.Fatalf("expected errInvalidDate, got %v", err)
	}
	if out != "Invalid date\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestBadArguments(t *testing.T) {
	for _, args := range [][]string{
		{"-n", "14", "5"},
		{"-n", "x", "5", "2024"},
		{"-n", "14", "13", "2024"},
		{"-n", "not-a-date"},
		{"--log-level", "loud", "-n", "2024-05-14"},
	} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			if _, err := execute(t, args...); err == nil {
				t.Fatalf("expected error for %v", args)
			}
		})
	}
}

func TestDaysCommand(t *testing.T) {
	tests := map[string]string{
		"2000 2": "29",
		"1900 2": "28",
		"2024 4": "30",
	}
	for in, want := range tests {
		out, err := execute(t, append([]string{"days"}, strings.Fields(in)...)...)
		if err != nil {
			t.Fatalf("days %s failed: %v", in, err)
		}
		if strings.TrimSpace(out) != want {
			t.Fatalf("days %s = %q want %q", in, out, want)
		}
	}
	if _, err := execute(t, "days", "2024", "13"); !errors.Is(err, calendar.ErrInvalidMonth) {
		t.Fatalf("expected ErrInvalidMonth, got %v", err)
	}
}

func TestInfo(t *testing.T) {
	out, err := execute(t, "--info")
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !strings.Contains(out, "App Functionality") || !strings.Contains(out, "SOS Light") {
		t.Fatalf("info output missing content:\n%s", out)
	}
}
