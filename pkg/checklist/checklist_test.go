package checklist

import (
	"testing"
)

func TestToggle(t *testing.T) {
	day := NewDay("2020-02-28")

	if !day.Toggle("sg1") {
		t.Fatal("Toggle(sg1) = false")
	}
	if !day.Items[0].Completed {
		t.Error("sg1 not completed after toggle")
	}

	if !day.Toggle("sg1") {
		t.Fatal("second Toggle(sg1) = false")
	}
	if day.Items[0].Completed {
		t.Error("sg1 still completed after second toggle")
	}

	if day.Toggle("nope") {
		t.Error("Toggle(nope) = true for an unknown id")
	}
}

func TestToggleClearsProvenance(t *testing.T) {
	day := NewDay("2020-02-28")
	day.ApplyDetections([]string{"sg1"})
	if !day.Items[0].AICompleted {
		t.Fatal("detection did not mark provenance")
	}

	// Manual uncheck then recheck leaves it a user completion.
	day.Toggle("sg1")
	day.Toggle("sg1")
	if !day.Items[0].Completed || day.Items[0].AICompleted {
		t.Errorf("item after manual recheck = %+v", day.Items[0])
	}
}

func TestApplyDetectionsIsAdditive(t *testing.T) {
	day := NewDay("2020-02-28")
	day.Toggle("sg1")
	day.Toggle("sg2")

	// A later analysis that only mentions sg3 must not downgrade sg1/sg2.
	day.ApplyDetections([]string{"sg3"})

	if !day.Items[0].Completed || !day.Items[1].Completed || !day.Items[2].Completed {
		t.Errorf("items = %+v", day.Items[:3])
	}
	if day.Items[0].AICompleted || day.Items[1].AICompleted {
		t.Error("manual completions gained AI provenance")
	}
	if !day.Items[2].AICompleted {
		t.Error("detected completion missing AI provenance")
	}
}

func TestApplyDetectionsReportsChange(t *testing.T) {
	day := NewDay("2020-02-28")

	if !day.ApplyDetections([]string{"sg1"}) {
		t.Error("first detection reported no change")
	}
	if day.ApplyDetections([]string{"sg1"}) {
		t.Error("repeat detection reported a change")
	}
	if day.ApplyDetections(nil) {
		t.Error("empty detection reported a change")
	}
}

func TestAllCompleted(t *testing.T) {
	day := NewDay("2020-02-28")
	if day.AllCompleted() {
		t.Error("fresh day reads completed")
	}

	for _, it := range Template() {
		day.Toggle(it.ID)
	}
	if !day.AllCompleted() {
		t.Error("day with every item checked reads incomplete")
	}

	day.Toggle("sg4")
	if day.AllCompleted() {
		t.Error("day with one item unchecked reads completed")
	}
}

func TestAllCompletedEmpty(t *testing.T) {
	day := Day{DayKey: "2020-02-28"}
	if day.AllCompleted() {
		t.Error("day with no items reads completed")
	}
}
