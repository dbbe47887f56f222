package badges

import (
	"time"

	"tableflip.dev/noesis/pkg/entry"
)

// unboundedPeriodDays caps the backward scan for requirements with no
// stated period.
const unboundedPeriodDays = 365 * 5

// CompletionSource reads the persisted per-day "fully completed" flag. A
// day with no recorded checklist reads as false.
type CompletionSource interface {
	DayCompleted(dayKey string) bool
}

// ActivitySource reads the journaling and wellness activity consumed by
// the non-checklist requirement kinds.
type ActivitySource interface {
	// JournalDay reports whether any entry was authored on the day.
	JournalDay(dayKey string) bool
	// WellnessUsed reports whether any wellness tool has ever been used.
	WellnessUsed() bool
}

// Evaluator checks badge requirements against the persisted day record.
// It is pure with respect to its sources: same flags plus same earned set
// in, same grants out.
type Evaluator struct {
	Completion CompletionSource
	Activity   ActivitySource
	Catalog    []Badge
}

// Evaluate walks the catalog anchored at the given day and returns the
// badges newly earned, in catalog order, for the caller to persist and
// surface one at a time. Already-earned ids are never re-granted, so a
// second call with the updated earned set returns nothing.
//
// Checklist-driven requirements are only considered when the anchor day
// itself is fully completed; an edit that left the day incomplete cannot
// start a grant.
func (ev *Evaluator) Evaluate(anchor time.Time, earned map[string]bool) []Badge {
	catalog := ev.Catalog
	if catalog == nil {
		catalog = Catalog()
	}
	anchorDone := ev.Completion != nil && ev.Completion.DayCompleted(entry.DayKey(anchor))

	var newly []Badge
	for _, b := range catalog {
		if earned[b.ID] {
			continue
		}

		achieved := false
		switch b.Requirement.Kind {
		case Consecutive:
			achieved = anchorDone && ev.consecutive(anchor, b.Requirement.Days)
		case TotalInPeriod:
			achieved = anchorDone && ev.totalInPeriod(anchor, b.Requirement)
		case JournalStreak:
			achieved = ev.journalStreak(anchor, b.Requirement.Days)
		case WellnessUse:
			achieved = ev.Activity != nil && ev.Activity.WellnessUsed()
		}

		if achieved {
			newly = append(newly, b)
		}
	}
	return newly
}

// consecutive walks backward from the anchor day; the run breaks at the
// first day whose flag is false or absent.
func (ev *Evaluator) consecutive(anchor time.Time, days int) bool {
	if ev.Completion == nil {
		return false
	}
	run := 0
	for i := 0; i < days; i++ {
		key := entry.DayKey(anchor.AddDate(0, 0, -i))
		if !ev.Completion.DayCompleted(key) {
			break
		}
		run++
	}
	return run >= days
}

// totalInPeriod counts completed days in the trailing period; gaps do not
// reset the count.
func (ev *Evaluator) totalInPeriod(anchor time.Time, req Requirement) bool {
	if ev.Completion == nil {
		return false
	}
	period := req.PeriodDays
	if period <= 0 || period > unboundedPeriodDays {
		period = unboundedPeriodDays
	}
	total := 0
	for i := 0; i < period; i++ {
		key := entry.DayKey(anchor.AddDate(0, 0, -i))
		if ev.Completion.DayCompleted(key) {
			total++
			if total >= req.Days {
				return true
			}
		}
	}
	return false
}

func (ev *Evaluator) journalStreak(anchor time.Time, days int) bool {
	if ev.Activity == nil {
		return false
	}
	run := 0
	for i := 0; i < days; i++ {
		key := entry.DayKey(anchor.AddDate(0, 0, -i))
		if !ev.Activity.JournalDay(key) {
			break
		}
		run++
	}
	return run >= days
}

// EarnedSet builds the membership map the evaluator consumes from the
// persisted id list.
func EarnedSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
