package game

// LevelFor scans thresholds descending and returns the highest level whose
// requirement is at or below totalXP, never below the first level.
func (c Config) LevelFor(totalXP int) LevelThreshold {
	for i := len(c.Levels) - 1; i >= 0; i-- {
		if totalXP >= c.Levels[i].XPRequired {
			return c.Levels[i]
		}
	}
	return c.Levels[0]
}

// ArenaFor follows the same descending-scan rule over deficit-streak days.
func (c Config) ArenaFor(streakDays int) ArenaStage {
	for i := len(c.Arenas) - 1; i >= 0; i-- {
		if streakDays >= c.Arenas[i].RequiredDays {
			return c.Arenas[i]
		}
	}
	return c.Arenas[0]
}

// NextArena returns the stage following current, or nil at the last stage.
func (c Config) NextArena(current ArenaStage) *ArenaStage {
	for i := range c.Arenas {
		if c.Arenas[i].ID == current.ID+1 {
			next := c.Arenas[i]
			return &next
		}
	}
	return nil
}

// Progress describes position within the current level band.
type Progress struct {
	Current  int     `json:"current"`
	Next     int     `json:"next"`
	Percent  float64 `json:"progress"`
	XPNeeded int     `json:"xpNeeded"`
}

// ProgressFor reports progress from level toward the one above it. At the
// maximum defined level it saturates: 100%, nothing further needed.
func (c Config) ProgressFor(totalXP int, level LevelThreshold) Progress {
	var next *LevelThreshold
	for i := range c.Levels {
		if c.Levels[i].Level == level.Level+1 {
			next = &c.Levels[i]
			break
		}
	}
	if next == nil {
		return Progress{
			Current:  totalXP,
			Next:     totalXP,
			Percent:  100,
			XPNeeded: 0,
		}
	}

	inLevel := totalXP - level.XPRequired
	span := next.XPRequired - level.XPRequired
	percent := float64(inLevel) / float64(span) * 100
	if percent > 100 {
		percent = 100
	}
	if percent < 0 {
		percent = 0
	}

	return Progress{
		Current:  inLevel,
		Next:     span,
		Percent:  percent,
		XPNeeded: next.XPRequired - totalXP,
	}
}
