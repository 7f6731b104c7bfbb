package tracker

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func ptr[T any](v T) *T { return &v }

func TestIsRestDay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		entry *WorkoutEntry
		want  bool
	}{
		{
			name:  "no entry defaults to rest day",
			entry: nil,
			want:  true,
		},
		{
			name:  "explicit rest day flag",
			entry: &WorkoutEntry{RestDay: true, Cardio: true},
			want:  true,
		},
		{
			name:  "nothing logged",
			entry: &WorkoutEntry{},
			want:  true,
		},
		{
			name:  "cardio only",
			entry: &WorkoutEntry{Cardio: true},
			want:  false,
		},
		{
			name:  "strength only",
			entry: &WorkoutEntry{Strength: true},
			want:  false,
		},
		{
			name:  "both",
			entry: &WorkoutEntry{Cardio: true, Strength: true},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsRestDay(tt.entry); got != tt.want {
				t.Errorf("IsRestDay() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCaloriePatchApply(t *testing.T) {
	t.Parallel()

	date := NewDate(2026, time.February, 5)
	existing := CalorieEntry{Date: date, Eaten: 2100, Burnt: 400}

	tests := []struct {
		name  string
		patch CaloriePatch
		want  CalorieEntry
	}{
		{
			name:  "burnt only leaves eaten unchanged",
			patch: CaloriePatch{Date: date, Burnt: ptr(650.0)},
			want:  CalorieEntry{Date: date, Eaten: 2100, Burnt: 650},
		},
		{
			name:  "eaten only leaves burnt unchanged",
			patch: CaloriePatch{Date: date, Eaten: ptr(1800.0)},
			want:  CalorieEntry{Date: date, Eaten: 1800, Burnt: 400},
		},
		{
			name:  "both fields overwrite",
			patch: CaloriePatch{Date: date, Eaten: ptr(1500.0), Burnt: ptr(700.0)},
			want:  CalorieEntry{Date: date, Eaten: 1500, Burnt: 700},
		},
		{
			name:  "empty patch is a no-op",
			patch: CaloriePatch{Date: date},
			want:  existing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := tt.patch.Apply(existing)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Apply() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWorkoutPatchApply(t *testing.T) {
	t.Parallel()

	date := NewDate(2026, time.February, 5)
	existing := WorkoutEntry{
		Date:          date,
		Cardio:        true,
		CardioMinutes: 45,
		Notes:         "easy run",
	}

	tests := []struct {
		name  string
		patch WorkoutPatch
		want  WorkoutEntry
	}{
		{
			name:  "add strength keeps cardio",
			patch: WorkoutPatch{Date: date, Strength: ptr(true), StrengthMinutes: ptr(30)},
			want: WorkoutEntry{
				Date:            date,
				Cardio:          true,
				Strength:        true,
				CardioMinutes:   45,
				StrengthMinutes: 30,
				Notes:           "easy run",
			},
		},
		{
			name:  "clear cardio flag",
			patch: WorkoutPatch{Date: date, Cardio: ptr(false)},
			want: WorkoutEntry{
				Date:          date,
				CardioMinutes: 45,
				Notes:         "easy run",
			},
		},
		{
			name:  "rest day flag keeps activity fields",
			patch: WorkoutPatch{Date: date, RestDay: ptr(true)},
			want: WorkoutEntry{
				Date:          date,
				Cardio:        true,
				CardioMinutes: 45,
				RestDay:       true,
				Notes:         "easy run",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := tt.patch.Apply(existing)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Apply() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseBool(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    bool
		wantErr bool
	}{
		{input: "true", want: true},
		{input: "TRUE", want: true},
		{input: "1", want: true},
		{input: "false", want: false},
		{input: "0", want: false},
		{input: "", want: false},
		{input: " true ", want: true},
		{input: "maybe", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := ParseBool(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseBool(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseBool(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
