package summary

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/noesis/pkg/affect"
	"tableflip.dev/noesis/pkg/ai"
	"tableflip.dev/noesis/pkg/entry"
	"tableflip.dev/noesis/pkg/glyph"
	"tableflip.dev/noesis/pkg/printers"
	"tableflip.dev/noesis/pkg/store"
)

// Summary runs the whole-day analysis over one day's entries and plots the
// dominant emotions on the circumplex.
type Summary struct {
	On *time.Time

	Persistence store.Persistence
	Analyzer    ai.Analyzer
}

func (n *Summary) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not summarize, no persistence")
	}
	if n.Analyzer == nil {
		return errors.New("can not summarize, no analyzer configured")
	}

	on := time.Now()
	if n.On != nil {
		on = *n.On
	}

	day := n.Persistence.EntriesOn(ctx, entry.DayKey(on))
	if len(day) == 0 {
		return fmt.Errorf("no entries on %s", entry.DayKey(on))
	}
	texts := make([]string, 0, len(day))
	for _, e := range day {
		texts = append(texts, e.Text)
	}

	daily, err := n.Analyzer.AnalyzeDailyLog(ctx, texts)
	if err != nil {
		return err
	}
	if daily == nil {
		return fmt.Errorf("no entries on %s", entry.DayKey(on))
	}

	pp := printers.PrettyPrint{}
	pp.TitleWithCount(on.Format("January 2, 2006"), len(day))
	fmt.Println("")

	t := color.New()
	s := color.New(color.Bold)
	_, _ = t.Print("overall  ")
	_, _ = s.Printf("%s %s\n", glyph.ForSentiment(daily.OverallSentiment), daily.OverallSentiment)

	if len(daily.DominantEmotions) > 0 {
		parts := make([]string, 0, len(daily.DominantEmotions))
		for _, em := range daily.DominantEmotions {
			parts = append(parts, fmt.Sprintf("%s %.0f%%", em.Emotion, em.Score*100))
		}
		_, _ = t.Printf("emotions %s\n", strings.Join(parts, ", "))
	}
	if len(daily.DailyThemes) > 0 {
		_, _ = t.Printf("themes   %s\n", strings.Join(daily.DailyThemes, ", "))
	}
	if daily.DailySummaryText != "" {
		_, _ = t.Printf("\n%s\n\n", daily.DailySummaryText)
	}

	pp.Title("Emotional Landscape")
	pp.Circumplex(affect.ProjectAll(daily.DominantEmotions))
	return nil
}
