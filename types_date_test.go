package finboard

import (
	"testing"
	"time"
)

// TestTime asserts that time() is canonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := NewDate(2026, 1, 25)
	d2 := NewDate(2026, 1, 25)
	if d1.time() != d2.time() {
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"2026-01-15", NewDate(2026, time.January, 15), false},
		{"2026-1-5", NewDate(2026, time.January, 5), false},
		{" 2026-01-15 ", NewDate(2026, time.January, 15), false},
		{"2026-01-15T10:30:00Z", NewDate(2026, time.January, 15), false},
		{"invalid-date", Date{}, true},
		{"", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if (err != nil) != tt.err {
				t.Errorf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.err)
				return
			}
			if !tt.err && got != tt.expected {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDateSub(t *testing.T) {
	today := NewDate(2026, time.January, 25)

	tests := []struct {
		name   string
		target Date
		want   int
	}{
		{"same day", today, 0},
		{"tomorrow", today.Add(1), 1},
		{"yesterday", today.Add(-1), -1},
		{"next week", today.Add(7), 7},
		{"across month end", NewDate(2026, time.February, 1), 7},
		{"across a year", NewDate(2027, time.January, 25), 365},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.target.Sub(today); got != tt.want {
				t.Errorf("Sub() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestStartEndOfPeriod(t *testing.T) {
	d := NewDate(2026, time.January, 25) // a Sunday

	if got := d.StartOf(Monthly); got != NewDate(2026, time.January, 1) {
		t.Errorf("StartOf(Monthly) = %v", got)
	}
	if got := d.EndOf(Monthly); got != NewDate(2026, time.January, 31) {
		t.Errorf("EndOf(Monthly) = %v", got)
	}
	if got := d.StartOf(Yearly); got != NewDate(2026, time.January, 1) {
		t.Errorf("StartOf(Yearly) = %v", got)
	}
	if got := d.EndOf(Yearly); got != NewDate(2026, time.December, 31) {
		t.Errorf("EndOf(Yearly) = %v", got)
	}

	// February of a leap-less year.
	feb := NewDate(2026, time.February, 10)
	if got := feb.EndOf(Monthly); got != NewDate(2026, time.February, 28) {
		t.Errorf("EndOf(Monthly) in February = %v", got)
	}
}

func TestMonthlyRange(t *testing.T) {
	r := Monthly.Range(NewDate(2026, time.January, 25))
	if r.From != NewDate(2026, time.January, 1) || r.To != NewDate(2026, time.January, 31) {
		t.Errorf("Monthly.Range = %v", r)
	}
	if r.Identifier() != "2026-01" {
		t.Errorf("Identifier = %q, want %q", r.Identifier(), "2026-01")
	}
	if !r.Contains(NewDate(2026, time.January, 1)) || !r.Contains(NewDate(2026, time.January, 31)) {
		t.Error("month range must contain its bounds")
	}
	if r.Contains(NewDate(2026, time.February, 1)) {
		t.Error("month range must not contain the next month")
	}
}
