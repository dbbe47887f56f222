package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"tableflip.dev/noesis/pkg/checklist"
)

// coreDailyEmotions steers the daily rollup toward a stable emotion
// vocabulary that the affect catalog can project.
var coreDailyEmotions = []string{
	"Joy", "Sadness", "Anger", "Fear", "Anxiety",
	"Contentment", "Stress", "Hope", "Frustration", "Calm",
	"Gratitude", "Fatigue", "Optimism", "Pessimism",
	"Irritation", "Excitement", "Motivation", "Apathy", "Loneliness",
}

func entryPrompt(text string) string {
	type promptItem struct {
		ID   string `json:"id"`
		Text string `json:"text"`
	}
	items := make([]promptItem, 0, len(checklist.Template()))
	for _, it := range checklist.Template() {
		items = append(items, promptItem{ID: it.ID, Text: it.Text})
	}
	itemsJSON, _ := json.Marshal(items)

	var b strings.Builder
	b.WriteString(`Analyze the following journal entry. Your response MUST be a valid JSON object.
Do not wrap the JSON in markdown (e.g. ` + "```json ... ```" + `).
Identify:
1. Overall sentiment: Choose one from "Positive", "Negative", "Neutral".
2. Key emotions: Provide an array of objects, each with "emotion" (e.g., Joy, Sadness, Anger, Fear, Anxiety, Surprise, Confidence) and "score" (a float between 0 and 1 indicating intensity). Include up to 5 dominant emotions.
3. Main themes or topics: Provide an array of strings (e.g., "Work Stress", "Relationship Issues", "Self-Reflection"). Limit to 3-5 key themes.
4. Potential cognitive distortions: Provide an array of objects, each with "distortion" (e.g., "Catastrophizing", "Black-and-White Thinking", "Mind Reading"), and "snippet" (the exact text phrase from the entry that suggests this distortion). If no distortions are clear, provide an empty array.
5. A concise summary of the entry in 1-2 sentences.
6. Friendly Feedback: Write a short, empathetic, and supportive message (1-3 sentences). Acknowledge their feelings. If appropriate, gently weave in values like generosity, kindness, helpfulness, respecting others' feelings, treating people equally, or working for the overall social good. The tone should remain supportive and natural, not preachy.
7. Completed Social Good Checklist Items: Based SOLELY on the content of the journal entry, identify which of the following social good actions were performed or strongly indicated. Return an array of their 'id' strings. If none are clearly indicated, return an empty array.
   Available actions: `)
	b.Write(itemsJSON)
	b.WriteString(`

Journal Entry:
---
`)
	b.WriteString(text)
	b.WriteString(`
---

JSON Response Format Example:
{
  "sentiment": "Positive",
  "emotions": [{ "emotion": "Joy", "score": 0.8 }, { "emotion": "Gratitude", "score": 0.7 }],
  "themes": ["Helping a friend", "Community Garden"],
  "cognitiveDistortions": [],
  "summary": "The user describes helping a friend and working at the community garden.",
  "friendlyFeedback": "It's wonderful that you helped your friend and contributed to the community garden! Acts of kindness make a real difference.",
  "completedChecklistItems": ["sg3", "sg5"]
}
`)
	return b.String()
}

func dailyLogPrompt(texts []string) string {
	var entries strings.Builder
	for i, text := range texts {
		if i > 0 {
			entries.WriteString("\n\n")
		}
		fmt.Fprintf(&entries, "Entry %d:\n---\n%s\n---", i+1, text)
	}

	var b strings.Builder
	b.WriteString(`Analyze all the following journal entries made throughout a single day.
Provide an overall summary and analysis for the entire day.
Your response MUST be a valid JSON object. Do not wrap the JSON in markdown.
Identify:
1. Overall sentiment for the day: Choose one from "Positive", "Negative", "Neutral". This should reflect the general mood considering all entries.
2. Dominant Emotions for the day: Based on all entries, identify up to 3-4 key emotions that best characterize the overall emotional landscape of the day. For each, provide an "emotion" and a "score". Consider emotions like: `)
	b.WriteString(strings.Join(coreDailyEmotions, ", "))
	b.WriteString(`. The "score" (a float between 0 and 1) should represent the emotion's overall prominence across the day, not just peak intensity from a single isolated event.
3. Main themes or topics for the day: Provide an array of strings. Limit to 3-5 key themes that represent the day.
4. A concise summary for the entire day in 2-3 sentences, explaining the day's emotional journey, especially if there were significant emotional shifts.

Journal Entries for the Day:
`)
	b.WriteString(entries.String())
	b.WriteString(`

JSON Response Format:
{
  "overallSentiment": "Neutral",
  "dominantEmotions": [{ "emotion": "Stress", "score": 0.7 }, { "emotion": "Hope", "score": 0.5 }],
  "dailyThemes": ["Project Deadlines", "Future Plans"],
  "dailySummaryText": "The day was marked by stress from project deadlines, but also a sense of hope regarding future plans."
}
`)
	return b.String()
}
