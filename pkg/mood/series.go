package mood

import (
	"time"

	"tableflip.dev/noesis/pkg/entry"
)

// DefaultWindowDays is the dashboard trend window, today inclusive.
const DefaultWindowDays = 30

// GraphPoint is one plotted day on the mood trend.
type GraphPoint struct {
	DayKey    string          `json:"date"`
	MoodValue int             `json:"moodValue"`
	Sentiment entry.Sentiment `json:"sentiment"`
}

// Series builds the mood time series over [ref-(windowDays-1), ref],
// ordered by date. Days without an analyzed representative are omitted, not
// zero-filled: a reader must be able to tell "no data" from "neutral".
func Series(entries []*entry.Entry, ref time.Time, windowDays int) []GraphPoint {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	buckets := BucketByDay(entries)

	points := make([]GraphPoint, 0, windowDays)
	start := ref.AddDate(0, 0, -(windowDays - 1))
	for i := 0; i < windowDays; i++ {
		day := start.AddDate(0, 0, i)
		key := entry.DayKey(day)
		rep := buckets[key].Representative()
		if rep == nil {
			continue
		}
		s := rep.Analysis.Sentiment
		points = append(points, GraphPoint{
			DayKey:    key,
			MoodValue: s.MoodValue(),
			Sentiment: s,
		})
	}
	return points
}

// InWindow reports whether an authored day key falls inside the window
// ending at ref. Shared by the series and theme rollups so they agree on
// what "last N days" means.
func InWindow(dayKey string, ref time.Time, windowDays int) bool {
	start := entry.DayKey(ref.AddDate(0, 0, -(windowDays - 1)))
	end := entry.DayKey(ref)
	return dayKey >= start && dayKey <= end
}
