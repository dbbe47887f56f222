// Package checklist tracks the daily social-good checklist and derives the
// per-day "fully completed" flag the badge logic consumes.
package checklist

// Item is one checklist row. Completed may be set by the user or by
// analysis detection; AICompleted records provenance only and never
// implies Completed is false.
type Item struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	Completed   bool   `json:"completed"`
	AICompleted bool   `json:"aiCompleted,omitempty"`
}

// Template returns the fixed item set a day's checklist is seeded from.
func Template() []Item {
	return []Item{
		{ID: "sg1", Text: "Listened actively to someone without interrupting."},
		{ID: "sg2", Text: "Learned something new about a different perspective or culture."},
		{ID: "sg3", Text: "Performed a random act of kindness, big or small."},
		{ID: "sg4", Text: "Reflected on a personal bias and considered how to challenge it."},
		{ID: "sg5", Text: "Offered help or support to someone in my community/network."},
		{ID: "sg6", Text: "Took a moment to appreciate diversity around me."},
		{ID: "sg7", Text: "Made an environmentally conscious choice (e.g., reduced waste, conserved energy)."},
	}
}

// Day is one calendar day's checklist state. Created lazily from the
// template on first touch; deleted only by bulk wipe.
type Day struct {
	DayKey string `json:"dayKey"`
	Items  []Item `json:"items"`
}

// NewDay seeds a fresh checklist for the day from the template.
func NewDay(dayKey string) Day {
	return Day{DayKey: dayKey, Items: Template()}
}

// Toggle flips one item's completion by hand and clears its AI provenance.
// Returns false when the id is not on the list.
func (d *Day) Toggle(id string) bool {
	for i := range d.Items {
		if d.Items[i].ID == id {
			d.Items[i].Completed = !d.Items[i].Completed
			d.Items[i].AICompleted = false
			return true
		}
	}
	return false
}

// ApplyDetections merges analysis-detected completions. Detected ids are
// marked completed with AI provenance; everything else keeps its prior
// state. Detection is additive only: silence about an already-completed
// item never downgrades it.
func (d *Day) ApplyDetections(ids []string) bool {
	detected := make(map[string]bool, len(ids))
	for _, id := range ids {
		detected[id] = true
	}
	changed := false
	for i := range d.Items {
		if detected[d.Items[i].ID] {
			if !d.Items[i].Completed || !d.Items[i].AICompleted {
				changed = true
			}
			d.Items[i].Completed = true
			d.Items[i].AICompleted = true
		}
	}
	return changed
}

// AllCompleted derives the day's "fully completed" flag.
func (d Day) AllCompleted() bool {
	if len(d.Items) == 0 {
		return false
	}
	for _, it := range d.Items {
		if !it.Completed {
			return false
		}
	}
	return true
}
