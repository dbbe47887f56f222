package entry

import (
	"time"
)

// Sentiment is the overall mood classification produced by analysis.
type Sentiment string

const (
	Positive Sentiment = "Positive"
	Negative Sentiment = "Negative"
	Neutral  Sentiment = "Neutral"
)

// Valid reports whether s is one of the three known sentiments.
func (s Sentiment) Valid() bool {
	switch s {
	case Positive, Negative, Neutral:
		return true
	}
	return false
}

// MoodValue maps a sentiment onto the graph axis: Positive 1, Neutral 0,
// Negative -1.
func (s Sentiment) MoodValue() int {
	switch s {
	case Positive:
		return 1
	case Negative:
		return -1
	}
	return 0
}

// EmotionScore is a named emotion with an intensity in [0,1].
type EmotionScore struct {
	Emotion string  `json:"emotion"`
	Score   float64 `json:"score"`
}

// CognitiveDistortion is a thought pattern flagged by analysis, with the
// snippet of entry text that suggested it.
type CognitiveDistortion struct {
	Distortion  string `json:"distortion"`
	Snippet     string `json:"snippet,omitempty"`
	Explanation string `json:"explanation,omitempty"`
}

// Analysis holds the per-entry result from the analysis service. The entry
// owns it once attached; nothing downstream mutates it.
type Analysis struct {
	Sentiment               Sentiment             `json:"sentiment"`
	Emotions                []EmotionScore        `json:"emotions,omitempty"`
	Themes                  []string              `json:"themes,omitempty"`
	CognitiveDistortions    []CognitiveDistortion `json:"cognitiveDistortions,omitempty"`
	Summary                 string                `json:"summary,omitempty"`
	FriendlyFeedback        string                `json:"friendlyFeedback,omitempty"`
	CompletedChecklistItems []string              `json:"completedChecklistItems,omitempty"`
}

// DailyLogAnalysis is the whole-day rollup from the analysis service.
type DailyLogAnalysis struct {
	OverallSentiment Sentiment      `json:"overallSentiment"`
	DominantEmotions []EmotionScore `json:"dominantEmotions,omitempty"`
	DailyThemes      []string       `json:"dailyThemes,omitempty"`
	DailySummaryText string         `json:"dailySummaryText,omitempty"`
}

// Entry is a single journal entry. Immutable after save except for the
// analysis attachment, which arrives asynchronously.
type Entry struct {
	ID       string    `json:"id,omitempty"`
	Created  Timestamp `json:"created"`
	Text     string    `json:"text"`
	AudioRef string    `json:"audioRef,omitempty"`
	Analysis *Analysis `json:"analysis,omitempty"`
}

func New(text string, at time.Time) *Entry {
	return &Entry{
		Created: Timestamp{Time: at},
		Text:    text,
	}
}

// Analyzed reports whether the entry carries a usable analysis. An entry
// saved while the analysis call was in flight, or whose call failed, is
// present-but-unanalyzed; that state is first-class, not an error.
func (e *Entry) Analyzed() bool {
	return e != nil && e.Analysis != nil && e.Analysis.Sentiment.Valid()
}

// DayKey returns the local calendar day the entry was authored on.
func (e *Entry) DayKey() string {
	return DayKey(e.Created.Time)
}

// SortDescending orders entries newest first, breaking timestamp ties on ID
// so the order is stable across reloads.
func SortDescending(entries []*Entry) {
	sortEntries(entries)
}
