package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/noesis/pkg/badges"
	"tableflip.dev/noesis/pkg/checklist"
	"tableflip.dev/noesis/pkg/entry"
	"tableflip.dev/noesis/pkg/glyph"
	"tableflip.dev/noesis/pkg/themes"
	"tableflip.dev/noesis/pkg/wellness"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("171dff69f8b99dca  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" entry")
	default:
		_, _ = c.Println(" entries")
	}
}

func sentimentPrinter(s entry.Sentiment) *color.Color {
	switch s {
	case entry.Positive:
		return color.New(color.FgGreen)
	case entry.Negative:
		return color.New(color.FgRed)
	case entry.Neutral:
		return color.New(color.FgBlue)
	}
	return color.New(color.Faint)
}

// Entries prints journal entries newest first, one line each: the mood
// glyph, authored time, and text. Unanalyzed entries get the pending glyph.
func (pp *PrettyPrint) Entries(entries ...*entry.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	t := color.New()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	for _, e := range entries {
		if pp.ShowID {
			_, _ = y.Print(e.ID)
			_, _ = y.Print(strings.Repeat(" ", len(spacing)-len(e.ID)))
		}
		m := glyph.Unanalyzed
		if e.Analyzed() {
			m = glyph.ForSentiment(e.Analysis.Sentiment)
		}
		_, _ = sentimentPrinter(sentimentOf(e)).Printf("%s ", m)
		_, _ = t.Printf("%s  %s\n", e.Created.Local().Format("Jan 2 15:04"), e.Text)
	}
	_, _ = t.Println("")
}

func sentimentOf(e *entry.Entry) entry.Sentiment {
	if e.Analyzed() {
		return e.Analysis.Sentiment
	}
	return ""
}

// EntryDetail prints one entry with its full analysis, or the pending
// notice when analysis has not arrived.
func (pp *PrettyPrint) EntryDetail(e *entry.Entry) {
	t := color.New()
	f := color.New(color.Faint)
	i := color.New(color.Italic)

	_, _ = t.Printf("%s\n\n", e.Text)
	_, _ = f.Printf("written %s\n", e.Created.Local().Format("January 2, 2006 15:04"))

	if !e.Analyzed() {
		_, _ = i.Println("analysis pending")
		return
	}
	a := e.Analysis

	s := sentimentPrinter(a.Sentiment)
	_, _ = t.Print("sentiment  ")
	_, _ = s.Printf("%s %s\n", glyph.ForSentiment(a.Sentiment), a.Sentiment)

	if len(a.Emotions) > 0 {
		_, _ = t.Print("emotions   ")
		parts := make([]string, 0, len(a.Emotions))
		for _, em := range a.Emotions {
			parts = append(parts, fmt.Sprintf("%s %.0f%%", em.Emotion, em.Score*100))
		}
		_, _ = t.Println(strings.Join(parts, ", "))
	}
	if len(a.Themes) > 0 {
		_, _ = t.Printf("themes     %s\n", strings.Join(a.Themes, ", "))
	}
	if a.Summary != "" {
		_, _ = t.Printf("summary    %s\n", a.Summary)
	}
	for _, d := range a.CognitiveDistortions {
		_, _ = color.New(color.FgYellow).Printf("%s %s", glyph.Distortion, d.Distortion)
		if d.Snippet != "" {
			_, _ = f.Printf("  %q", d.Snippet)
		}
		_, _ = t.Println("")
		if d.Explanation != "" {
			_, _ = f.Printf("  %s\n", d.Explanation)
		}
	}
	if a.FriendlyFeedback != "" {
		_, _ = i.Printf("\n%s\n", a.FriendlyFeedback)
	}
}

// Checklist prints the day's items with completion and AI provenance.
func (pp *PrettyPrint) Checklist(day checklist.Day) {
	done := color.New(color.FgGreen)
	open := color.New(color.Faint)
	ai := color.New(color.FgCyan, color.Faint)

	for _, it := range day.Items {
		if it.Completed {
			_, _ = done.Printf("✘ %-4s %s", it.ID, it.Text)
			if it.AICompleted {
				_, _ = ai.Print("  (detected)")
			}
			fmt.Println("")
		} else {
			_, _ = open.Printf("● %-4s %s\n", it.ID, it.Text)
		}
	}
	if day.AllCompleted() {
		_, _ = done.Println("\nall items completed for the day")
	}
	fmt.Println("")
}

// Badges prints the badge catalog with earned state.
func (pp *PrettyPrint) Badges(catalog []badges.Badge, earned map[string]bool) {
	table := uitable.New()
	table.MaxColWidth = 60
	table.Wrap = true
	table.AddRow("", "BADGE", "DESCRIPTION")
	for _, b := range catalog {
		mark := " "
		if earned[b.ID] {
			mark = "✘"
		}
		table.AddRow(mark, b.Name, b.Description)
	}
	fmt.Println(table)
	fmt.Println("")
}

// Themes prints the windowed category rollup.
func (pp *PrettyPrint) Themes(counts []themes.Count) {
	if len(counts) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}
	table := uitable.New()
	table.MaxColWidth = 50
	table.AddRow("THEME", "ENTRIES")
	for _, c := range counts {
		table.AddRow(c.Category.DisplayName, fmt.Sprintf("%d", c.Count))
	}
	fmt.Println(table)
	fmt.Println("")
}

// Wellness prints the wellness toolkit with the day each tool was first tried.
func (pp *PrettyPrint) Wellness(suggestions []wellness.Suggestion, used map[string]string) {
	table := uitable.New()
	table.MaxColWidth = 50
	table.Wrap = true
	table.AddRow("ID", "TOOL", "TYPE", "TRIED ON")
	for _, s := range suggestions {
		last := used[s.ID]
		if last == "" {
			last = "-"
		}
		table.AddRow(s.ID, s.Title, s.Type, last)
	}
	fmt.Println(table)
	fmt.Println("")
}
