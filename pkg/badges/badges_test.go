package badges

import (
	"testing"
	"time"

	"tableflip.dev/noesis/pkg/entry"
)

type memoryRecord struct {
	completed map[string]bool
	journaled map[string]bool
	wellness  bool
	earned    []string
}

func newMemoryRecord() *memoryRecord {
	return &memoryRecord{
		completed: make(map[string]bool),
		journaled: make(map[string]bool),
	}
}

func (m *memoryRecord) DayCompleted(dayKey string) bool { return m.completed[dayKey] }
func (m *memoryRecord) JournalDay(dayKey string) bool   { return m.journaled[dayKey] }
func (m *memoryRecord) WellnessUsed() bool              { return m.wellness }
func (m *memoryRecord) EarnedBadges() ([]string, error) { return m.earned, nil }
func (m *memoryRecord) SaveEarnedBadges(ids []string) error {
	m.earned = ids
	return nil
}

func (m *memoryRecord) completeDays(anchor time.Time, offsets ...int) {
	for _, off := range offsets {
		m.completed[entry.DayKey(anchor.AddDate(0, 0, -off))] = true
	}
}

func ids(badges []Badge) []string {
	out := make([]string, 0, len(badges))
	for _, b := range badges {
		out = append(out, b.ID)
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestEvaluateFirstCompletedDay(t *testing.T) {
	anchor := time.Date(2020, 2, 28, 12, 0, 0, 0, time.Local)
	rec := newMemoryRecord()
	rec.completeDays(anchor, 0)

	ev := &Evaluator{Completion: rec, Activity: rec}
	newly := ev.Evaluate(anchor, nil)

	if got := ids(newly); !equal(got, []string{"empathy_expert_1"}) {
		t.Errorf("Evaluate() = %v, want just empathy_expert_1", got)
	}
}

func TestEvaluateAnchorIncomplete(t *testing.T) {
	anchor := time.Date(2020, 2, 28, 12, 0, 0, 0, time.Local)
	rec := newMemoryRecord()
	// Plenty of history, but the anchor day itself is not completed.
	rec.completeDays(anchor, 1, 2, 3, 4, 5, 6, 7)

	ev := &Evaluator{Completion: rec, Activity: rec}
	if newly := ev.Evaluate(anchor, nil); len(newly) != 0 {
		t.Errorf("Evaluate() = %v, want nothing while the anchor day is incomplete", ids(newly))
	}
}

func TestEvaluateConsecutive(t *testing.T) {
	anchor := time.Date(2020, 2, 28, 12, 0, 0, 0, time.Local)

	tests := map[string]struct {
		offsets []int
		want    bool
	}{
		"seven in a row":      {offsets: []int{0, 1, 2, 3, 4, 5, 6}, want: true},
		"gap breaks the run":  {offsets: []int{0, 1, 2, 4, 5, 6, 7}, want: false},
		"six is not enough":   {offsets: []int{0, 1, 2, 3, 4, 5}, want: false},
		"eight days also win": {offsets: []int{0, 1, 2, 3, 4, 5, 6, 7}, want: true},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			rec := newMemoryRecord()
			rec.completeDays(anchor, tc.offsets...)
			ev := &Evaluator{Completion: rec, Activity: rec}
			if got := ev.consecutive(anchor, 7); got != tc.want {
				t.Errorf("consecutive() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestEvaluateTotalInPeriod(t *testing.T) {
	anchor := time.Date(2020, 2, 28, 12, 0, 0, 0, time.Local)

	rec := newMemoryRecord()
	// Three scattered days inside the month; gaps must not reset the count.
	rec.completeDays(anchor, 0, 10, 25)

	ev := &Evaluator{Completion: rec, Activity: rec}
	newly := ev.Evaluate(anchor, EarnedSet([]string{"empathy_expert_1"}))

	if got := ids(newly); !equal(got, []string{"social_advocate_3"}) {
		t.Errorf("Evaluate() = %v, want social_advocate_3", got)
	}
}

func TestEvaluateTotalInPeriodOutsideWindow(t *testing.T) {
	anchor := time.Date(2020, 2, 28, 12, 0, 0, 0, time.Local)

	rec := newMemoryRecord()
	rec.completeDays(anchor, 0, 10, 31)

	ev := &Evaluator{Completion: rec, Activity: rec}
	newly := ev.Evaluate(anchor, EarnedSet([]string{"empathy_expert_1"}))

	if len(newly) != 0 {
		t.Errorf("Evaluate() = %v, want nothing with only 2 days in the month", ids(newly))
	}
}

func TestEvaluateJournalStreakIgnoresChecklist(t *testing.T) {
	anchor := time.Date(2020, 2, 28, 12, 0, 0, 0, time.Local)

	rec := newMemoryRecord()
	for i := 0; i < 3; i++ {
		rec.journaled[entry.DayKey(anchor.AddDate(0, 0, -i))] = true
	}
	// No checklist day completed at all.

	ev := &Evaluator{Completion: rec, Activity: rec}
	newly := ev.Evaluate(anchor, nil)

	if got := ids(newly); !equal(got, []string{"journal_streak_3"}) {
		t.Errorf("Evaluate() = %v, want journal_streak_3", got)
	}
}

func TestEvaluateWellnessUse(t *testing.T) {
	anchor := time.Date(2020, 2, 28, 12, 0, 0, 0, time.Local)

	rec := newMemoryRecord()
	rec.wellness = true

	ev := &Evaluator{Completion: rec, Activity: rec}
	newly := ev.Evaluate(anchor, nil)

	if got := ids(newly); !equal(got, []string{"wellness_explorer_1"}) {
		t.Errorf("Evaluate() = %v, want wellness_explorer_1", got)
	}
}

func TestEvaluateCatalogOrder(t *testing.T) {
	anchor := time.Date(2020, 2, 28, 12, 0, 0, 0, time.Local)

	rec := newMemoryRecord()
	rec.completeDays(anchor, 0, 1, 2, 3, 4, 5, 6)
	rec.wellness = true

	ev := &Evaluator{Completion: rec, Activity: rec}
	newly := ev.Evaluate(anchor, nil)

	want := []string{"empathy_expert_1", "social_advocate_3", "kindness_streak_7", "wellness_explorer_1"}
	if got := ids(newly); !equal(got, want) {
		t.Errorf("Evaluate() = %v, want %v", got, want)
	}
}

func TestAwardIsIdempotent(t *testing.T) {
	anchor := time.Date(2020, 2, 28, 12, 0, 0, 0, time.Local)

	rec := newMemoryRecord()
	rec.completeDays(anchor, 0)

	a := &Awarder{Store: rec}
	first, err := a.Award(anchor)
	if err != nil {
		t.Fatalf("Award() returned error: %v", err)
	}
	if got := ids(first); !equal(got, []string{"empathy_expert_1"}) {
		t.Fatalf("first Award() = %v", got)
	}

	second, err := a.Award(anchor)
	if err != nil {
		t.Fatalf("second Award() returned error: %v", err)
	}
	if len(second) != 0 {
		t.Errorf("second Award() = %v, want nothing", ids(second))
	}
	if !equal(rec.earned, []string{"empathy_expert_1"}) {
		t.Errorf("persisted earned = %v", rec.earned)
	}
}
