package checklist

import (
	"fmt"
	"time"

	"tableflip.dev/noesis/pkg/badges"
	"tableflip.dev/noesis/pkg/entry"
)

// Store is the persistence the sync needs for a day's checklist state.
type Store interface {
	ChecklistDay(dayKey string) (Day, bool, error)
	SaveChecklistDay(day Day) error
	SetDayCompleted(dayKey string, completed bool) error
}

// Awarder re-evaluates badges after the day's completion flag moves.
type Awarder interface {
	Award(anchor time.Time) ([]badges.Badge, error)
}

// Sync applies checklist mutations, persists the derived completion flag,
// and triggers badge evaluation anchored at the touched day.
type Sync struct {
	Store  Store
	Badges Awarder
}

// load returns the day's checklist, seeding it from the template when none
// has been persisted yet.
func (s *Sync) load(dayKey string) (Day, error) {
	day, ok, err := s.Store.ChecklistDay(dayKey)
	if err != nil {
		return Day{}, fmt.Errorf("checklist: load %s: %w", dayKey, err)
	}
	if !ok {
		day = NewDay(dayKey)
	}
	return day, nil
}

// Toggle flips one item for the day and runs the persist/evaluate cycle.
func (s *Sync) Toggle(on time.Time, itemID string) (Day, []badges.Badge, error) {
	day, err := s.load(entry.DayKey(on))
	if err != nil {
		return Day{}, nil, err
	}
	if !day.Toggle(itemID) {
		return day, nil, fmt.Errorf("checklist: no item %q", itemID)
	}
	newly, err := s.commit(on, day)
	return day, newly, err
}

// ApplyDetections merges analysis-detected completions for the day the
// entry was authored on and runs the persist/evaluate cycle. A nil or
// empty detection list is a no-op.
func (s *Sync) ApplyDetections(on time.Time, ids []string) (Day, []badges.Badge, error) {
	day, err := s.load(entry.DayKey(on))
	if err != nil {
		return Day{}, nil, err
	}
	if len(ids) == 0 {
		return day, nil, nil
	}
	day.ApplyDetections(ids)
	newly, err := s.commit(on, day)
	return day, newly, err
}

func (s *Sync) commit(on time.Time, day Day) ([]badges.Badge, error) {
	if err := s.Store.SaveChecklistDay(day); err != nil {
		return nil, fmt.Errorf("checklist: save %s: %w", day.DayKey, err)
	}
	if err := s.Store.SetDayCompleted(day.DayKey, day.AllCompleted()); err != nil {
		return nil, fmt.Errorf("checklist: flag %s: %w", day.DayKey, err)
	}
	if s.Badges == nil {
		return nil, nil
	}
	return s.Badges.Award(on)
}
