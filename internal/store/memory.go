package store

import (
	"context"
	"sync"

	"fitarena/internal/tracker"
)

// NewMemory returns a Store backed by in-process maps. Used by tests and by
// the server when no database is configured.
func NewMemory() *Store {
	return &Store{
		Weights:  &memoryWeights{entries: make(map[tracker.Date]tracker.WeightEntry)},
		Calories: &memoryCalories{entries: make(map[tracker.Date]tracker.CalorieEntry)},
		Workouts: &memoryWorkouts{entries: make(map[tracker.Date]tracker.WorkoutEntry)},
	}
}

type memoryWeights struct {
	mu      sync.RWMutex
	entries map[tracker.Date]tracker.WeightEntry
}

func (s *memoryWeights) List(_ context.Context) ([]tracker.WeightEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]tracker.WeightEntry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e)
	}
	return out, nil
}

func (s *memoryWeights) Upsert(_ context.Context, entry tracker.WeightEntry) (tracker.WeightEntry, error) {
	s.mu.Lock()
	s.entries[entry.Date] = entry
	s.mu.Unlock()
	return entry, nil
}

func (s *memoryWeights) Delete(_ context.Context, date tracker.Date) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[date]; !ok {
		return ErrNotFound
	}
	delete(s.entries, date)
	return nil
}

type memoryCalories struct {
	mu      sync.RWMutex
	entries map[tracker.Date]tracker.CalorieEntry
}

func (s *memoryCalories) List(_ context.Context) ([]tracker.CalorieEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]tracker.CalorieEntry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e)
	}
	return out, nil
}

func (s *memoryCalories) Upsert(_ context.Context, patch tracker.CaloriePatch) (tracker.CalorieEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry := patch.Apply(s.entries[patch.Date])
	s.entries[patch.Date] = entry
	return entry, nil
}

func (s *memoryCalories) Delete(_ context.Context, date tracker.Date) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[date]; !ok {
		return ErrNotFound
	}
	delete(s.entries, date)
	return nil
}

type memoryWorkouts struct {
	mu      sync.RWMutex
	entries map[tracker.Date]tracker.WorkoutEntry
}

func (s *memoryWorkouts) List(_ context.Context) ([]tracker.WorkoutEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]tracker.WorkoutEntry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e)
	}
	return out, nil
}

func (s *memoryWorkouts) Upsert(_ context.Context, patch tracker.WorkoutPatch) (tracker.WorkoutEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry := patch.Apply(s.entries[patch.Date])
	s.entries[patch.Date] = entry
	return entry, nil
}

func (s *memoryWorkouts) Delete(_ context.Context, date tracker.Date) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[date]; !ok {
		return ErrNotFound
	}
	delete(s.entries, date)
	return nil
}
