// Package themes maps free-text analysis labels onto a fixed set of
// therapeutic categories and rolls their frequencies up over a window.
package themes

// Category is a static catalog entry. Keywords are matched as
// case-insensitive substrings of analysis labels.
type Category struct {
	ID          string
	DisplayName string
	Keywords    []string
	Icon        string
}

// Categories returns the therapeutic category catalog in display order.
// Tie-breaks in the rollup are stable on this order.
func Categories() []Category {
	return []Category{
		{
			ID:          "anxiety_stress",
			DisplayName: "Anxiety & Stress",
			Keywords:    []string{"anxiety", "stress", "worry", "fear", "panic", "overwhelmed", "nervous", "tense", "pressure"},
			Icon:        "bolt",
		},
		{
			ID:          "mood_depression",
			DisplayName: "Mood & Depression",
			Keywords:    []string{"sadness", "depression", "low mood", "hopeless", "unhappy", "gloomy", "fatigue", "apathy", "down", "empty"},
			Icon:        "cloud-rain",
		},
		{
			ID:          "relationships",
			DisplayName: "Relationships & Social",
			Keywords:    []string{"relationship", "family", "friend", "partner", "social", "loneliness", "conflict", "communication", "connection", "isolation", "argument"},
			Icon:        "users",
		},
		{
			ID:          "self_esteem",
			DisplayName: "Self-Esteem & Self-Worth",
			Keywords:    []string{"self-esteem", "self-worth", "confidence", "inadequacy", "self-criticism", "value", "shame", "insecure", "doubt"},
			Icon:        "id-badge",
		},
		{
			ID:          "coping_resilience",
			DisplayName: "Coping & Resilience",
			Keywords:    []string{"coping", "resilience", "strength", "adapting", "overcoming", "dealing", "managing", "bounce back", "strong"},
			Icon:        "shield-alt",
		},
		{
			ID:          "trauma_grief",
			DisplayName: "Trauma & Grief",
			Keywords:    []string{"trauma", "grief", "loss", "mourning", "bereavement", "past event", "painful memory", "sad memory"},
			Icon:        "heart-broken",
		},
		{
			ID:          "life_transitions",
			DisplayName: "Life Transitions & Change",
			Keywords:    []string{"change", "transition", "new job", "moving", "adjustment", "uncertainty", "new beginning", "different"},
			Icon:        "route",
		},
		{
			ID:          "anger_frustration",
			DisplayName: "Anger & Frustration",
			Keywords:    []string{"anger", "frustration", "irritation", "resentment", "annoyance", "mad", "upset", "annoyed"},
			Icon:        "fire-alt",
		},
		{
			ID:          "habits_behavior",
			DisplayName: "Habits & Behaviors",
			Keywords:    []string{"habit", "addiction", "craving", "pattern", "behavior", "procrastination", "motivation", "discipline", "routine"},
			Icon:        "sync-alt",
		},
		{
			ID:          "positive_wellbeing",
			DisplayName: "Positive Wellbeing & Growth",
			Keywords:    []string{"joy", "gratitude", "growth", "achievement", "positive", "contentment", "hope", "optimism", "happiness", "fulfillment", "mindfulness", "peace", "calm", "proud", "excited"},
			Icon:        "spa",
		},
		{
			ID:          "work_school",
			DisplayName: "Work & School",
			Keywords:    []string{"work", "school", "career", "study", "project", "deadline", "performance", "job", "class", "assignment"},
			Icon:        "briefcase",
		},
		{
			ID:          "health_body",
			DisplayName: "Health & Body Image",
			Keywords:    []string{"health", "body image", "sleep", "illness", "physical", "exercise", "diet", "weight", "appearance", "energy"},
			Icon:        "heartbeat",
		},
		{
			ID:          "equality_social_justice",
			DisplayName: "Equality & Social Justice",
			Keywords:    []string{"equality", "fairness", "justice", "bias", "diversity", "inclusion", "rights", "advocacy", "perspective", "understanding others"},
			Icon:        "balance-scale",
		},
		{
			ID:          "community_contribution",
			DisplayName: "Community & Contribution",
			Keywords:    []string{"community", "helping", "kindness", "volunteering", "social good", "environment", "support", "connection", "collaboration"},
			Icon:        "hands-helping",
		},
	}
}

// Find returns the catalog category with the given id.
func Find(id string) (Category, bool) {
	for _, c := range Categories() {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}
