package tracker

// WeightEntry is one morning weigh-in. One entry per date; upserting the
// same date overwrites.
type WeightEntry struct {
	Date   Date    `json:"date"`
	Weight float64 `json:"weight"`
}

// CalorieEntry records intake and expenditure for one date.
type CalorieEntry struct {
	Date  Date    `json:"date"`
	Eaten float64 `json:"caloriesEaten"`
	Burnt float64 `json:"caloriesBurnt"`
}

// Net is eaten minus burnt; negative means a deficit.
func (e CalorieEntry) Net() float64 {
	return e.Eaten - e.Burnt
}

// WorkoutEntry records training activity for one date. RestDay is an
// explicit flag, independent of the cardio/strength booleans.
type WorkoutEntry struct {
	Date            Date   `json:"date"`
	Cardio          bool   `json:"cardio"`
	Strength        bool   `json:"strength"`
	RestDay         bool   `json:"restDay"`
	CardioMinutes   int    `json:"cardioMinutes"`
	StrengthMinutes int    `json:"strengthMinutes"`
	Notes           string `json:"notes"`
}

func (e WorkoutEntry) HasExercise() bool {
	return e.Cardio || e.Strength
}

// IsRestDay classifies a date given its workout entry, nil meaning no entry
// exists. A date is a rest day when explicitly flagged, when nothing was
// logged for it, or when the entry carries neither cardio nor strength.
func IsRestDay(e *WorkoutEntry) bool {
	if e == nil {
		return true
	}
	return e.RestDay || !e.HasExercise()
}

// CaloriePatch is a partial upsert: nil fields keep their stored value.
type CaloriePatch struct {
	Date  Date     `json:"date"`
	Eaten *float64 `json:"caloriesEaten"`
	Burnt *float64 `json:"caloriesBurnt"`
}

// Apply merges the patch over an existing entry (zero-valued for creates).
func (p CaloriePatch) Apply(existing CalorieEntry) CalorieEntry {
	entry := CalorieEntry{Date: p.Date, Eaten: existing.Eaten, Burnt: existing.Burnt}
	if p.Eaten != nil {
		entry.Eaten = *p.Eaten
	}
	if p.Burnt != nil {
		entry.Burnt = *p.Burnt
	}
	return entry
}

// WorkoutPatch is a partial upsert: nil fields keep their stored value.
// Booleans default to false only on first creation.
type WorkoutPatch struct {
	Date            Date    `json:"date"`
	Cardio          *bool   `json:"cardio"`
	Strength        *bool   `json:"strength"`
	RestDay         *bool   `json:"restDay"`
	CardioMinutes   *int    `json:"cardioMinutes"`
	StrengthMinutes *int    `json:"strengthMinutes"`
	Notes           *string `json:"notes"`
}

func (p WorkoutPatch) Apply(existing WorkoutEntry) WorkoutEntry {
	entry := existing
	entry.Date = p.Date
	if p.Cardio != nil {
		entry.Cardio = *p.Cardio
	}
	if p.Strength != nil {
		entry.Strength = *p.Strength
	}
	if p.RestDay != nil {
		entry.RestDay = *p.RestDay
	}
	if p.CardioMinutes != nil {
		entry.CardioMinutes = *p.CardioMinutes
	}
	if p.StrengthMinutes != nil {
		entry.StrengthMinutes = *p.StrengthMinutes
	}
	if p.Notes != nil {
		entry.Notes = *p.Notes
	}
	return entry
}
