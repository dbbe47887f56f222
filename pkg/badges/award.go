package badges

import (
	"time"
)

// Store is the persistence the awarder needs: the completion and activity
// record plus the earned set.
type Store interface {
	CompletionSource
	ActivitySource
	EarnedBadges() ([]string, error)
	SaveEarnedBadges(ids []string) error
}

// Awarder runs the evaluator against a store and appends any new grants.
type Awarder struct {
	Store Store
}

// Award evaluates badges anchored at the given day, persists newly earned
// ids, and returns the new badges in catalog order. Earned ids are
// append-only; re-running with no record changes grants nothing.
func (a *Awarder) Award(anchor time.Time) ([]Badge, error) {
	earnedIDs, err := a.Store.EarnedBadges()
	if err != nil {
		return nil, err
	}

	ev := &Evaluator{Completion: a.Store, Activity: a.Store}
	newly := ev.Evaluate(anchor, EarnedSet(earnedIDs))
	if len(newly) == 0 {
		return nil, nil
	}

	for _, b := range newly {
		earnedIDs = append(earnedIDs, b.ID)
	}
	if err := a.Store.SaveEarnedBadges(earnedIDs); err != nil {
		return nil, err
	}
	return newly, nil
}
