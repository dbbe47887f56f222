// Package badges evaluates achievement requirements over the per-day
// completion record and maintains the append-only earned set.
package badges

// RequirementKind names how a badge requirement is evaluated.
type RequirementKind string

const (
	// Consecutive requires the last N days, anchor inclusive, each fully
	// completed.
	Consecutive RequirementKind = "consecutive_all_items"
	// TotalInPeriod requires N fully-completed days, not necessarily
	// consecutive, within the trailing period.
	TotalInPeriod RequirementKind = "total_all_items_in_period"
	// JournalStreak requires a journal entry authored on each of the last
	// N days, anchor inclusive.
	JournalStreak RequirementKind = "consecutive_journal_days"
	// WellnessUse requires any interactive wellness tool to have been
	// used at least once.
	WellnessUse RequirementKind = "wellness_tool_used"
)

// Requirement describes when a badge is earned. PeriodDays 0 means
// unbounded; the scan is still capped at unboundedPeriodDays.
type Requirement struct {
	Kind       RequirementKind `json:"type"`
	Days       int             `json:"days"`
	PeriodDays int             `json:"periodDays,omitempty"`
}

// Badge is a static catalog entry. Earned badge ids are persisted
// separately and never revoked.
type Badge struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Icon        string      `json:"icon"`
	Requirement Requirement `json:"requirement"`
}

// Catalog returns the badge definitions in notification order.
func Catalog() []Badge {
	return []Badge{
		{
			ID:          "empathy_expert_1",
			Name:        "Empathy Explorer",
			Description: "First day with all social good acts completed!",
			Icon:        "hand-holding-heart",
			Requirement: Requirement{Kind: TotalInPeriod, Days: 1},
		},
		{
			ID:          "social_advocate_3",
			Name:        "Social Advocate Bronze",
			Description: "Logged 3 days with completed social good acts in a month.",
			Icon:        "award",
			Requirement: Requirement{Kind: TotalInPeriod, Days: 3, PeriodDays: 30},
		},
		{
			ID:          "kindness_streak_7",
			Name:        "Kindness Champion (7 Days)",
			Description: "Completed all social good acts for 7 consecutive days!",
			Icon:        "medal",
			Requirement: Requirement{Kind: Consecutive, Days: 7},
		},
		{
			ID:          "community_star_15",
			Name:        "Community Star (15 Days)",
			Description: "Completed all social good acts on 15 total days.",
			Icon:        "star",
			Requirement: Requirement{Kind: TotalInPeriod, Days: 15},
		},
		{
			ID:          "journal_streak_3",
			Name:        "Consistent Voice (3 Days)",
			Description: "Made a journal entry for 3 days in a row.",
			Icon:        "calendar-check",
			Requirement: Requirement{Kind: JournalStreak, Days: 3},
		},
		{
			ID:          "wellness_explorer_1",
			Name:        "Mindful Moment User",
			Description: "Used an interactive wellness tool.",
			Icon:        "spa",
			Requirement: Requirement{Kind: WellnessUse, Days: 1},
		},
	}
}

// Find returns the catalog badge with the given id.
func Find(id string) (Badge, bool) {
	for _, b := range Catalog() {
		if b.ID == id {
			return b, true
		}
	}
	return Badge{}, false
}
