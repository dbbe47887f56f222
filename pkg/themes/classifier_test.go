package themes

import (
	"testing"
	"time"

	"tableflip.dev/noesis/pkg/entry"
)

func TestMatchEntry(t *testing.T) {
	tests := map[string]struct {
		analysis *entry.Analysis
		want     []string
	}{
		"nil analysis": {
			analysis: nil,
			want:     nil,
		},
		"theme keyword, case insensitive": {
			analysis: &entry.Analysis{Themes: []string{"Work Deadline Stress"}},
			want:     []string{"anxiety_stress", "work_school"},
		},
		"category counted once across labels": {
			analysis: &entry.Analysis{Themes: []string{"work", "school", "career"}},
			want:     []string{"work_school"},
		},
		"emotion above the floor contributes": {
			analysis: &entry.Analysis{
				Emotions: []entry.EmotionScore{{Emotion: "Anxiety", Score: 0.5}},
			},
			want: []string{"anxiety_stress"},
		},
		"emotion at the floor is excluded": {
			analysis: &entry.Analysis{
				Emotions: []entry.EmotionScore{{Emotion: "Anxiety", Score: 0.4}},
			},
			want: []string{},
		},
		"results come back in catalog order": {
			analysis: &entry.Analysis{Themes: []string{"volunteering", "gratitude"}},
			want:     []string{"positive_wellbeing", "community_contribution"},
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := MatchEntry(tc.analysis)
			if len(got) != len(tc.want) {
				t.Fatalf("MatchEntry() = %v, want %v", got, tc.want)
			}
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Fatalf("MatchEntry() = %v, want %v", got, tc.want)
				}
			}
		})
	}
}

func themed(id string, at time.Time, themes ...string) *entry.Entry {
	return &entry.Entry{
		ID:      id,
		Created: entry.Timestamp{Time: at},
		Analysis: &entry.Analysis{
			Sentiment: entry.Neutral,
			Themes:    themes,
		},
	}
}

func TestTop(t *testing.T) {
	ref := time.Date(2020, 2, 28, 12, 0, 0, 0, time.Local)

	entries := []*entry.Entry{
		themed("a", ref, "work stress"),
		themed("b", ref.AddDate(0, 0, -1), "deadline at work"),
		themed("c", ref.AddDate(0, 0, -2), "gratitude"),
		themed("out", ref.AddDate(0, 0, -40), "work"),
	}

	got := Top(entries, ref, 30, 10)
	if len(got) != 3 {
		t.Fatalf("Top() = %+v, want 3 categories", got)
	}
	if got[0].Category.ID != "work_school" || got[0].Count != 2 {
		t.Errorf("got[0] = %s/%d, want work_school/2", got[0].Category.ID, got[0].Count)
	}
	// anxiety_stress and positive_wellbeing both count 1; ties keep
	// catalog order.
	if got[1].Category.ID != "anxiety_stress" || got[2].Category.ID != "positive_wellbeing" {
		t.Errorf("tie order = %s, %s", got[1].Category.ID, got[2].Category.ID)
	}
}

func TestTopTruncates(t *testing.T) {
	ref := time.Date(2020, 2, 28, 12, 0, 0, 0, time.Local)

	// One label per category so every catalog entry matches once.
	labels := []string{
		"anxiety", "sadness", "family", "confidence", "resilience",
		"grief", "transition", "anger", "habit", "joy", "work",
		"health", "equality", "community",
	}
	entries := make([]*entry.Entry, 0, len(labels))
	for i, label := range labels {
		entries = append(entries, themed(label, ref.Add(time.Duration(i)*time.Minute), label))
	}

	got := Top(entries, ref, 30, 10)
	if len(got) != 10 {
		t.Fatalf("Top() returned %d categories, want the cap of 10", len(got))
	}
	if got[0].Category.ID != "anxiety_stress" {
		t.Errorf("got[0] = %s, want catalog-first anxiety_stress", got[0].Category.ID)
	}
}
