package calendar

import "testing"

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want Selection
	}{
		{"14-05-2024", Selection{2024, 5, 14}},
		{"14/05/2024", Selection{2024, 5, 14}},
		{"14.5.2024", Selection{2024, 5, 14}},
		{"2024-05-14", Selection{2024, 5, 14}},
		{"14 May 2024", Selection{2024, 5, 14}},
		{"14 sep 1800", Selection{1800, 9, 14}},
		{"  1 1 2300 ", Selection{2300, 1, 1}},
		{"31-04-2024", Selection{2024, 4, 31}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			if err != nil {
				t.Fatalf("ParseDate(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("ParseDate(%q)=%+v want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseDateErrors(t *testing.T) {
	for _, in := range []string{"", "2024", "14-05", "14-13-2024", "xx-05-2024", "14-05-20x4", "1 2 3 4"} {
		t.Run(in, func(t *testing.T) {
			if _, err := ParseDate(in); err == nil {
				t.Fatalf("ParseDate(%q) should fail", in)
			}
		})
	}
}
