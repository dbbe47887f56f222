// Package wellness holds the static catalog of interactive wellness tools.
package wellness

// Suggestion is one wellness tool. Content carries the instructions the CLI
// prints when the tool is used.
type Suggestion struct {
	ID          string
	Title       string
	Description string
	Type        string
	Content     string
}

// Suggestions returns the wellness tool catalog.
func Suggestions() []Suggestion {
	return []Suggestion{
		{
			ID:          "ws1",
			Title:       "Calming Anxiety Meditation",
			Description: "A 5-minute guided meditation to ease anxiety.",
			Type:        "meditation",
			Content:     "Find a quiet space, sit comfortably, and focus on your breath. Let thoughts pass without judgment.",
		},
		{
			ID:          "ws2",
			Title:       "4-7-8 Breathing Technique",
			Description: "A simple technique to promote calm: Inhale for 4s, hold for 7s, exhale for 8s.",
			Type:        "breathing",
			Content:     "This rhythmic breathing can help reduce anxiety and promote relaxation. Focus on maintaining the count.",
		},
		{
			ID:          "ws3",
			Title:       "Grounding: 5-4-3-2-1",
			Description: "Engage your senses to anchor yourself in the present moment.",
			Type:        "grounding",
			Content:     "Look around. Name 5 things you can see. Then, 4 things you can physically feel. 3 things you can hear. 2 things you can smell. Finally, 1 thing you can taste.",
		},
		{
			ID:          "ws4",
			Title:       "Gratitude List",
			Description: "List three small things that went well or you appreciate today.",
			Type:        "gratitude",
			Content:     "Reflecting on positive aspects of your day can shift your perspective and improve mood.",
		},
		{
			ID:          "ws5",
			Title:       "Short Walk & Music",
			Description: "A 10-minute walk can boost your mood. Listen to something uplifting.",
			Type:        "activity",
			Content:     "Consider a brief walk. Fresh air and movement can make a big difference. Pair it with an inspiring podcast or your favorite music.",
		},
		{
			ID:          "ws6",
			Title:       "Positive Affirmations",
			Description: "Repeat kind and empowering statements to yourself.",
			Type:        "affirmation",
			Content:     `Examples: "I am capable." "I am worthy of peace." "I can handle challenges." "I choose to be kind to myself."`,
		},
		{
			ID:          "ws7",
			Title:       "Challenge That Thought (CBT)",
			Description: "Question a negative thought: Is it 100% true? What's another perspective?",
			Type:        "cbt",
			Content:     "Identify a specific negative thought you've had. Ask: What evidence supports this thought? What evidence contradicts it? Is there a more balanced or compassionate way to view this situation?",
		},
		{
			ID:          "ws8",
			Title:       "Journal Release",
			Description: "Write a letter to the source of your anger/frustration. No need to send it.",
			Type:        "release",
			Content:     "Freely express your feelings about the situation or person. This is for your eyes only, to help process and release the emotions.",
		},
		{
			ID:          "ws9",
			Title:       "Empathy Expansion",
			Description: "Step into someone else's shoes to understand their feelings and perspective.",
			Type:        "social-awareness",
			Content:     "Think of someone you interacted with today. Imagine what their day might have been like from their point of view, and reflect on one small way you could show more understanding.",
		},
		{
			ID:          "ws10",
			Title:       "Community Connection Idea",
			Description: "Brainstorm one way to contribute positively to your local community or a cause you care about.",
			Type:        "community-action",
			Content:     "Pick a local need or cause you feel passionate about and write down one small, actionable step you could take this week.",
		},
	}
}

// Find returns the suggestion with the given id.
func Find(id string) (Suggestion, bool) {
	for _, s := range Suggestions() {
		if s.ID == id {
			return s, true
		}
	}
	return Suggestion{}, false
}
