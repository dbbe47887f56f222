package dashboard

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/noesis/pkg/badges"
	"tableflip.dev/noesis/pkg/entry"
	"tableflip.dev/noesis/pkg/glyph"
	"tableflip.dev/noesis/pkg/mood"
	"tableflip.dev/noesis/pkg/printers"
	"tableflip.dev/noesis/pkg/store"
	"tableflip.dev/noesis/pkg/themes"
)

// Dashboard renders the analytics views: mood calendar for the month,
// 30-day trend, theme rollup, and earned badges. Everything is recomputed
// from the full entry collection on each run.
type Dashboard struct {
	Reference  time.Time // zero means now
	WindowDays int
	Month      *time.Time

	Persistence store.Persistence
}

func (n *Dashboard) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not show dashboard, no persistence")
	}
	ref := n.Reference
	if ref.IsZero() {
		ref = time.Now()
	}

	all := n.Persistence.ListEntries(ctx)
	pp := printers.PrettyPrint{}

	month := ref
	if n.Month != nil {
		month = *n.Month
	}
	pp.Title("Mood Calendar")
	pp.MoodCalendar(month, CalendarMoods(all))
	pp.MoodLegend()

	pp.Title("Mood Trend (Last 30 Days)")
	pp.MoodTrend(mood.Series(all, ref, n.WindowDays), ref, n.WindowDays)

	pp.Title("Recurring Themes (Last 30 Days)")
	pp.Themes(themes.Top(all, ref, n.WindowDays, themes.TopLimit))

	earnedIDs, err := n.Persistence.EarnedBadges()
	if err != nil {
		return err
	}
	pp.Title("Badges")
	pp.Badges(badges.Catalog(), badges.EarnedSet(earnedIDs))

	return nil
}

// CalendarMoods classifies every bucketed day for the calendar: analyzed
// days take their representative's sentiment, days with entries but no
// analysis stay visibly distinct from days with nothing at all.
func CalendarMoods(all []*entry.Entry) map[string]glyph.Mood {
	moods := make(map[string]glyph.Mood)
	for key, bucket := range mood.BucketByDay(all) {
		if rep := bucket.Representative(); rep != nil {
			moods[key] = glyph.ForSentiment(rep.Analysis.Sentiment)
		} else if len(bucket.Entries) > 0 {
			moods[key] = glyph.Unanalyzed
		}
	}
	return moods
}
