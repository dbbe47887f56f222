// Package glyph defines the terminal symbols for moods and day states.
package glyph

import "tableflip.dev/noesis/pkg/entry"

type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
}

func DefaultGlyphs() []Glyph {
	g := make([]Glyph, 0, 6)

	g = append(g, Glyph{
		Key:     "+",
		Symbol:  "●",
		Meaning: "positive day",
	}, Glyph{
		Key:     "o",
		Symbol:  "◐",
		Meaning: "neutral day",
	}, Glyph{
		Key:     "-",
		Symbol:  "○",
		Meaning: "negative day",
	}, Glyph{
		Key:     "?",
		Symbol:  "◌",
		Meaning: "entries awaiting analysis",
	}, Glyph{
		Key:     "!",
		Symbol:  "▲",
		Meaning: "cognitive distortion flagged",
	}, Glyph{
		Key:     " ",
		Symbol:  "·",
		Meaning: "no entries",
	})

	return g
}

type Mood int

const (
	Positive Mood = iota
	Neutral
	Negative
	Unanalyzed
	Distortion
	NoEntry
)

func (m Mood) Glyph() Glyph {
	return DefaultGlyphs()[m]
}

func (m Mood) String() string {
	return m.Glyph().Symbol
}

// ForSentiment maps an analyzed sentiment to its day glyph.
func ForSentiment(s entry.Sentiment) Mood {
	switch s {
	case entry.Positive:
		return Positive
	case entry.Negative:
		return Negative
	case entry.Neutral:
		return Neutral
	}
	return Unanalyzed
}

func (g Glyph) String() string {
	return g.Symbol
}
