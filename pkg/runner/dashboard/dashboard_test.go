package dashboard

import (
	"testing"
	"time"

	"tableflip.dev/noesis/pkg/entry"
	"tableflip.dev/noesis/pkg/glyph"
)

func TestCalendarMoods(t *testing.T) {
	at := func(day int) time.Time {
		return time.Date(2020, 2, day, 12, 0, 0, 0, time.Local)
	}

	moods := CalendarMoods([]*entry.Entry{
		{
			ID: "a", Created: entry.Timestamp{Time: at(1)},
			Analysis: &entry.Analysis{Sentiment: entry.Positive},
		},
		{
			ID: "b", Created: entry.Timestamp{Time: at(2)},
		},
		{
			ID: "c", Created: entry.Timestamp{Time: at(3)},
			Analysis: &entry.Analysis{Sentiment: entry.Negative},
		},
		{
			// Unanalyzed but newer than c on the same day; the analyzed
			// entry still represents the day.
			ID: "d", Created: entry.Timestamp{Time: at(3).Add(time.Hour)},
		},
	})

	if got := moods["2020-02-01"]; got != glyph.Positive {
		t.Errorf("2020-02-01 = %v, want positive", got)
	}
	if got := moods["2020-02-02"]; got != glyph.Unanalyzed {
		t.Errorf("2020-02-02 = %v, want unanalyzed", got)
	}
	if got := moods["2020-02-03"]; got != glyph.Negative {
		t.Errorf("2020-02-03 = %v, want negative", got)
	}
	if _, ok := moods["2020-02-04"]; ok {
		t.Error("day with no entries got a mood")
	}
}
