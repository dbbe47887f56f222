// Package affect projects named emotions onto the valence/arousal plane of
// the circumplex model for plotting.
package affect

import (
	"tableflip.dev/noesis/pkg/entry"
)

// VA is a point in circumplex coordinates: valence -1 (unpleasant) to +1
// (pleasant), arousal -1 (low energy) to +1 (high energy).
type VA struct {
	Valence float64 `json:"valence"`
	Arousal float64 `json:"arousal"`
}

// DefaultName is the sentinel catalog entry. It sits at the origin and is
// the only origin point that still renders.
const DefaultName = "Default"

var catalog = map[string]VA{
	// positive valence, high arousal
	"Joy":        {Valence: 0.8, Arousal: 0.6},
	"Excitement": {Valence: 0.7, Arousal: 0.8},
	"Surprise":   {Valence: 0.4, Arousal: 0.7},
	"Optimism":   {Valence: 0.6, Arousal: 0.4},
	"Hope":       {Valence: 0.5, Arousal: 0.3},
	"Motivation": {Valence: 0.6, Arousal: 0.7},
	"Confidence": {Valence: 0.7, Arousal: 0.5},

	// positive valence, low arousal
	"Contentment": {Valence: 0.7, Arousal: -0.4},
	"Calm":        {Valence: 0.6, Arousal: -0.6},
	"Gratitude":   {Valence: 0.8, Arousal: -0.2},
	"Relaxed":     {Valence: 0.7, Arousal: -0.7},

	// negative valence, high arousal
	"Anger":       {Valence: -0.6, Arousal: 0.7},
	"Fear":        {Valence: -0.7, Arousal: 0.6},
	"Anxiety":     {Valence: -0.5, Arousal: 0.5},
	"Stress":      {Valence: -0.4, Arousal: 0.6},
	"Frustration": {Valence: -0.5, Arousal: 0.4},
	"Irritation":  {Valence: -0.4, Arousal: 0.3},

	// negative valence, low arousal
	"Sadness":    {Valence: -0.8, Arousal: -0.6},
	"Fatigue":    {Valence: -0.4, Arousal: -0.7},
	"Apathy":     {Valence: -0.3, Arousal: -0.8},
	"Pessimism":  {Valence: -0.6, Arousal: -0.4},
	"Loneliness": {Valence: -0.7, Arousal: -0.5},
	"Boredom":    {Valence: -0.5, Arousal: -0.7},

	DefaultName: {Valence: 0, Arousal: 0},
}

// Lookup returns the catalog coordinates for an emotion name.
func Lookup(name string) (VA, bool) {
	va, ok := catalog[name]
	return va, ok
}

// Point is a plotted emotion. Size and Opacity grow with intensity; they
// exist for rendering only and are never persisted.
type Point struct {
	Emotion string
	Score   float64
	VA
	Size    float64
	Opacity float64
}

// Project maps one scored emotion to its plot point. Emotions absent from
// the catalog (and not the literal Default sentinel) are dropped, by
// design, not reported as errors.
func Project(em entry.EmotionScore) (Point, bool) {
	va, ok := catalog[em.Emotion]
	if !ok {
		if em.Emotion != DefaultName {
			return Point{}, false
		}
		va = catalog[DefaultName]
	}
	return Point{
		Emotion: em.Emotion,
		Score:   em.Score,
		VA:      va,
		Size:    3 + em.Score*4,
		Opacity: 0.7 + em.Score*0.3,
	}, true
}

// ProjectAll projects a set of scored emotions, silently skipping the
// unknowns.
func ProjectAll(emotions []entry.EmotionScore) []Point {
	points := make([]Point, 0, len(emotions))
	for _, em := range emotions {
		if p, ok := Project(em); ok {
			points = append(points, p)
		}
	}
	return points
}
