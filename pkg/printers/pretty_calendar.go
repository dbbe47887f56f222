package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/noesis/pkg/glyph"
)

const width = len("11 12 13 14 15 16 17") // an example week

// MoodCalendar prints a month grid with each day colored by its mood
// state. Days with entries but no analysis render distinctly from empty
// days; that distinction is load-bearing, not cosmetic.
func (pp *PrettyPrint) MoodCalendar(then time.Time, moods map[string]glyph.Mood) {
	d := StartDay(then)

	tf := color.New(color.FgWhite, color.Italic)

	m := fmt.Sprintf("%s %d", then.Month().String(), then.Year())
	mid := (width - len(m)) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = tf.Printf("%s%s\n", strings.Repeat(" ", mid), m)

	days := DaysIn(then)

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		fmt.Print("   ")
	}

	for i := 0; i < days; i++ {
		key := fmt.Sprintf("%04d-%02d-%02d", then.Year(), int(then.Month()), i+1)
		mood, ok := moods[key]
		if !ok {
			mood = glyph.NoEntry
		}
		_, _ = moodPrinter(mood).Printf("%2d ", i+1)

		d++
		if d > time.Saturday {
			d = time.Sunday
			fmt.Print("\n")
		}
	}
	fmt.Print("\n\n")
}

// MoodLegend prints the glyph meanings beneath a calendar.
func (pp *PrettyPrint) MoodLegend() {
	f := color.New(color.Faint)
	for _, m := range []glyph.Mood{glyph.Positive, glyph.Neutral, glyph.Negative, glyph.Unanalyzed, glyph.NoEntry} {
		g := m.Glyph()
		_, _ = moodPrinter(m).Printf("%s ", g.Symbol)
		_, _ = f.Printf("%s   ", g.Meaning)
	}
	fmt.Print("\n\n")
}

func moodPrinter(m glyph.Mood) *color.Color {
	switch m {
	case glyph.Positive:
		return color.New(color.Bold, color.FgGreen)
	case glyph.Negative:
		return color.New(color.Bold, color.FgRed)
	case glyph.Neutral:
		return color.New(color.Bold, color.FgBlue)
	case glyph.Unanalyzed:
		return color.New(color.FgHiWhite)
	}
	return color.New(color.Faint, color.FgWhite)
}

func DaysIn(then time.Time) int {
	return time.Date(then.UTC().Year(), then.UTC().Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func StartDay(then time.Time) time.Weekday {
	return time.Date(then.UTC().Year(), then.UTC().Month(), 1, 1, 0, 0, 0, time.UTC).Weekday()
}
