package ai

import (
	"regexp"
	"strings"

	"tableflip.dev/noesis/pkg/entry"
)

// The boundary adapter: everything past this file receives fully-shaped
// analysis values, so the aggregation core never sees a missing field.

type entryPayload struct {
	Sentiment               entry.Sentiment             `json:"sentiment"`
	Emotions                []entry.EmotionScore        `json:"emotions"`
	Themes                  []string                    `json:"themes"`
	CognitiveDistortions    []entry.CognitiveDistortion `json:"cognitiveDistortions"`
	Summary                 string                      `json:"summary"`
	FriendlyFeedback        string                      `json:"friendlyFeedback"`
	CompletedChecklistItems []string                    `json:"completedChecklistItems"`
}

type dailyPayload struct {
	OverallSentiment entry.Sentiment      `json:"overallSentiment"`
	DominantEmotions []entry.EmotionScore `json:"dominantEmotions"`
	DailyThemes      []string             `json:"dailyThemes"`
	DailySummaryText string               `json:"dailySummaryText"`
}

// distortionExplanations maps known distortion names to their one-line
// explanations, attached here so the model does not have to produce them.
var distortionExplanations = map[string]string{
	"Catastrophizing":          "Exaggerating the potential negative consequences of an event, seeing it as a catastrophe.",
	"Black-and-White Thinking": "Seeing things in absolute, all-or-nothing terms, with no middle ground.",
	"Mind Reading":             "Assuming you know what others are thinking, usually negatively, without direct evidence.",
	"Overgeneralization":       "Drawing broad conclusions based on a single event or piece of evidence.",
	"Personalization":          "Believing you are responsible for events that are outside your control.",
	"Should Statements":        "Having rigid rules about how you or others should behave, and feeling guilty or resentful when these rules are broken.",
	"Emotional Reasoning":      "Believing something is true because you feel it strongly, ignoring evidence to the contrary.",
}

const fallbackExplanation = "A pattern of thought that may not be fully accurate or helpful."

const fallbackFeedback = "It's good that you're expressing your thoughts. Keep it up!"

func coerceEntry(p entryPayload) *entry.Analysis {
	a := &entry.Analysis{
		Sentiment:               p.Sentiment,
		Emotions:                p.Emotions,
		Themes:                  p.Themes,
		Summary:                 p.Summary,
		FriendlyFeedback:        p.FriendlyFeedback,
		CompletedChecklistItems: p.CompletedChecklistItems,
	}
	if !a.Sentiment.Valid() {
		a.Sentiment = entry.Neutral
	}
	if a.Emotions == nil {
		a.Emotions = []entry.EmotionScore{}
	}
	if a.Themes == nil {
		a.Themes = []string{}
	}
	if a.CompletedChecklistItems == nil {
		a.CompletedChecklistItems = []string{}
	}
	if a.FriendlyFeedback == "" {
		a.FriendlyFeedback = fallbackFeedback
	}

	a.CognitiveDistortions = make([]entry.CognitiveDistortion, 0, len(p.CognitiveDistortions))
	for _, d := range p.CognitiveDistortions {
		if d.Explanation == "" {
			if expl, ok := distortionExplanations[d.Distortion]; ok {
				d.Explanation = expl
			} else {
				d.Explanation = fallbackExplanation
			}
		}
		a.CognitiveDistortions = append(a.CognitiveDistortions, d)
	}
	return a
}

func coerceDaily(p dailyPayload) *entry.DailyLogAnalysis {
	d := &entry.DailyLogAnalysis{
		OverallSentiment: p.OverallSentiment,
		DominantEmotions: p.DominantEmotions,
		DailyThemes:      p.DailyThemes,
		DailySummaryText: p.DailySummaryText,
	}
	if !d.OverallSentiment.Valid() {
		d.OverallSentiment = entry.Neutral
	}
	if d.DominantEmotions == nil {
		d.DominantEmotions = []entry.EmotionScore{}
	}
	if d.DailyThemes == nil {
		d.DailyThemes = []string{}
	}
	return d
}

var fenceRE = regexp.MustCompile("(?s)^```(?:json)?\\s*\\n?(.*?)\\n?\\s*```$")

// stripFence removes a markdown code fence if the model wrapped its JSON in
// one despite the instructions.
func stripFence(s string) string {
	s = strings.TrimSpace(s)
	if m := fenceRE.FindStringSubmatch(s); m != nil {
		return strings.TrimSpace(m[1])
	}
	return s
}
