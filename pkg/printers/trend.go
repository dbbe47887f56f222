package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/noesis/pkg/affect"
	"tableflip.dev/noesis/pkg/entry"
	"tableflip.dev/noesis/pkg/mood"
)

// MoodTrend prints the sparse mood series as three labeled rows, one
// column per window day. Days with no analyzed entry stay blank; blank
// means no data, never neutral.
func (pp *PrettyPrint) MoodTrend(points []mood.GraphPoint, ref time.Time, windowDays int) {
	if windowDays <= 0 {
		windowDays = mood.DefaultWindowDays
	}
	f := color.New(color.Faint)
	if len(points) < 2 {
		i := color.New(color.Faint, color.Italic)
		if len(points) == 1 {
			_, _ = i.Println("Only one day of data. Need more for a trend.")
		} else {
			_, _ = i.Println("Not enough mood data to display a trend.")
		}
		return
	}

	byKey := make(map[string]mood.GraphPoint, len(points))
	for _, p := range points {
		byKey[p.DayKey] = p
	}
	start := ref.AddDate(0, 0, -(windowDays - 1))

	rows := []struct {
		label string
		value int
	}{
		{"Positive", 1},
		{"Neutral ", 0},
		{"Negative", -1},
	}
	for _, row := range rows {
		_, _ = f.Printf("%s ", row.label)
		for i := 0; i < windowDays; i++ {
			key := entry.DayKey(start.AddDate(0, 0, i))
			p, ok := byKey[key]
			if ok && p.MoodValue == row.value {
				_, _ = sentimentPrinter(p.Sentiment).Print("●")
			} else {
				fmt.Print(" ")
			}
		}
		fmt.Println("")
	}
	_, _ = f.Printf("%s %s%s\n\n",
		strings.Repeat(" ", len("Positive")),
		start.Format("01/02"),
		fmt.Sprintf("%*s", windowDays-len("01/02"), ref.Format("01/02")))
}

const (
	circumplexCols = 41
	circumplexRows = 17
)

// Circumplex prints projected affect points on a terminal grid: valence
// left to right, arousal top to bottom.
func (pp *PrettyPrint) Circumplex(points []affect.Point) {
	f := color.New(color.Faint)
	if len(points) == 0 {
		i := color.New(color.Faint, color.Italic)
		_, _ = i.Println("No emotions with known valence/arousal values to plot.")
		return
	}

	grid := make([][]rune, circumplexRows)
	for r := range grid {
		grid[r] = make([]rune, circumplexCols)
		for c := range grid[r] {
			switch {
			case r == circumplexRows/2 && c == circumplexCols/2:
				grid[r][c] = '+'
			case r == circumplexRows/2:
				grid[r][c] = '─'
			case c == circumplexCols/2:
				grid[r][c] = '│'
			default:
				grid[r][c] = ' '
			}
		}
	}

	marks := "abcdefghijklmnopqrstuvwxyz"
	legend := make([]string, 0, len(points))
	for i, p := range points {
		col := int((p.Valence + 1) / 2 * float64(circumplexCols-1))
		row := int((1 - p.Arousal) / 2 * float64(circumplexRows-1))
		mark := rune(marks[i%len(marks)])
		grid[row][col] = mark
		legend = append(legend, fmt.Sprintf("%c %s %.0f%%", mark, p.Emotion, p.Score*100))
	}

	_, _ = f.Printf("%*s\n", circumplexCols/2+len("high arousal")/2+1, "high arousal")
	for r, line := range grid {
		if r == circumplexRows/2 {
			_, _ = f.Print("unpleasant ")
		} else {
			fmt.Print(strings.Repeat(" ", len("unpleasant ")))
		}
		fmt.Print(string(line))
		if r == circumplexRows/2 {
			_, _ = f.Print(" pleasant")
		}
		fmt.Println("")
	}
	_, _ = f.Printf("%*s\n\n", circumplexCols/2+len("unpleasant ")+len("low arousal")/2+1, "low arousal")

	fmt.Println(strings.Join(legend, "   "))
	fmt.Println("")
}
