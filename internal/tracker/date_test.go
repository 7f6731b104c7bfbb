package tracker

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{
			name:  "valid date",
			input: "2026-02-01",
			want:  NewDate(2026, time.February, 1),
		},
		{
			name:  "end of month",
			input: "2026-01-31",
			want:  NewDate(2026, time.January, 31),
		},
		{
			name:    "time component rejected",
			input:   "2026-02-01T10:00:00Z",
			wantErr: true,
		},
		{
			name:    "wrong separator",
			input:   "2026/02/01",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseDate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDateAddDays(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		date Date
		days int
		want Date
	}{
		{
			name: "forward within month",
			date: NewDate(2026, time.February, 10),
			days: 5,
			want: NewDate(2026, time.February, 15),
		},
		{
			name: "backward across month boundary",
			date: NewDate(2026, time.March, 2),
			days: -6,
			want: NewDate(2026, time.February, 24),
		},
		{
			name: "backward across year boundary",
			date: NewDate(2026, time.January, 1),
			days: -1,
			want: NewDate(2025, time.December, 31),
		},
		{
			name: "leap day",
			date: NewDate(2024, time.February, 28),
			days: 1,
			want: NewDate(2024, time.February, 29),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.date.AddDays(tt.days); got != tt.want {
				t.Errorf("%v.AddDays(%d) = %v, want %v", tt.date, tt.days, got, tt.want)
			}
		})
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	t.Parallel()

	d := NewDate(2026, time.February, 7)
	data, err := d.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}
	if string(data) != `"2026-02-07"` {
		t.Fatalf("MarshalJSON() = %s, want %q", data, `"2026-02-07"`)
	}

	var got Date
	if err := got.UnmarshalJSON(data); err != nil {
		t.Fatalf("UnmarshalJSON(%s) error = %v", data, err)
	}
	if got != d {
		t.Errorf("round trip = %v, want %v", got, d)
	}
}

func TestSortDates(t *testing.T) {
	t.Parallel()

	dates := []Date{
		NewDate(2026, time.February, 3),
		NewDate(2026, time.January, 30),
		NewDate(2026, time.February, 1),
	}
	SortDates(dates)

	want := []Date{
		NewDate(2026, time.January, 30),
		NewDate(2026, time.February, 1),
		NewDate(2026, time.February, 3),
	}
	for i := range want {
		if dates[i] != want[i] {
			t.Fatalf("SortDates() = %v, want %v", dates, want)
		}
	}
}
