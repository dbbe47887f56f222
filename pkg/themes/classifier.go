package themes

import (
	"sort"
	"strings"
	"time"

	"tableflip.dev/noesis/pkg/entry"
	"tableflip.dev/noesis/pkg/mood"
)

// emotionScoreFloor filters weak emotions out of the label set; only
// emotions scoring strictly above this join the entry's themes for
// classification.
const emotionScoreFloor = 0.4

// TopLimit caps the rollup at the ten most frequent categories.
const TopLimit = 10

// Count is a category with its entry-match frequency over a window.
type Count struct {
	Category Category
	Count    int
}

// MatchEntry classifies one entry's analysis into category ids, each
// category at most once however many of its keywords hit. Returned in
// catalog order.
func MatchEntry(a *entry.Analysis) []string {
	if a == nil {
		return nil
	}
	labels := make([]string, 0, len(a.Themes)+len(a.Emotions))
	labels = append(labels, a.Themes...)
	for _, em := range a.Emotions {
		if em.Score > emotionScoreFloor {
			labels = append(labels, em.Emotion)
		}
	}

	matched := make(map[string]bool)
	for _, label := range labels {
		lower := strings.ToLower(label)
		for _, cat := range Categories() {
			if matched[cat.ID] {
				continue
			}
			for _, kw := range cat.Keywords {
				if strings.Contains(lower, kw) {
					matched[cat.ID] = true
					break
				}
			}
		}
	}

	ids := make([]string, 0, len(matched))
	for _, cat := range Categories() {
		if matched[cat.ID] {
			ids = append(ids, cat.ID)
		}
	}
	return ids
}

// Top rolls category frequencies up across entries authored in the window
// ending at ref, sorted by count descending with ties kept in catalog
// order, truncated to limit.
func Top(entries []*entry.Entry, ref time.Time, windowDays, limit int) []Count {
	if windowDays <= 0 {
		windowDays = mood.DefaultWindowDays
	}
	if limit <= 0 {
		limit = TopLimit
	}

	counts := make(map[string]int)
	for _, e := range entries {
		if e == nil || e.Analysis == nil {
			continue
		}
		if !mood.InWindow(e.DayKey(), ref, windowDays) {
			continue
		}
		for _, id := range MatchEntry(e.Analysis) {
			counts[id]++
		}
	}

	out := make([]Count, 0, len(counts))
	for _, cat := range Categories() {
		if n := counts[cat.ID]; n > 0 {
			out = append(out, Count{Category: cat, Count: n})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
