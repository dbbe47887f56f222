package store

import (
	"context"
	"testing"
	"time"

	"tableflip.dev/noesis/pkg/checklist"
	"tableflip.dev/noesis/pkg/entry"
)

type testConfig struct {
	path string
}

func (c *testConfig) BasePath() string    { return c.path }
func (c *testConfig) APIKey() string      { return "" }
func (c *testConfig) APIEndpoint() string { return "" }
func (c *testConfig) Model() string       { return "" }

func load(t *testing.T) Persistence {
	t.Helper()
	p, err := Load(&testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	return p
}

func TestEntryRoundTrip(t *testing.T) {
	p := load(t)
	ctx := context.Background()
	at := time.Date(2020, 2, 28, 12, 0, 0, 0, time.Local)

	e := entry.New("a pretty good day", at)
	if err := p.StoreEntry(e); err != nil {
		t.Fatalf("StoreEntry() returned error: %v", err)
	}
	if e.ID == "" {
		t.Fatal("StoreEntry() did not mint an id")
	}

	all := p.ListEntries(ctx)
	if len(all) != 1 {
		t.Fatalf("ListEntries() = %d entries, want 1", len(all))
	}
	got := all[0]
	if got.ID != e.ID || got.Text != e.Text {
		t.Errorf("round trip = %+v, want %+v", got, e)
	}
	if got.DayKey() != "2020-02-28" {
		t.Errorf("DayKey() = %q", got.DayKey())
	}
}

func TestStoreEntryKeepsIDOnUpdate(t *testing.T) {
	p := load(t)
	ctx := context.Background()
	at := time.Date(2020, 2, 28, 12, 0, 0, 0, time.Local)

	e := entry.New("waiting on analysis", at)
	if err := p.StoreEntry(e); err != nil {
		t.Fatalf("StoreEntry() returned error: %v", err)
	}
	id := e.ID

	e.Analysis = &entry.Analysis{Sentiment: entry.Positive}
	if err := p.StoreEntry(e); err != nil {
		t.Fatalf("second StoreEntry() returned error: %v", err)
	}

	all := p.ListEntries(ctx)
	if len(all) != 1 {
		t.Fatalf("ListEntries() = %d entries after update, want 1", len(all))
	}
	if all[0].ID != id {
		t.Errorf("id changed on update: %q vs %q", all[0].ID, id)
	}
	if !all[0].Analyzed() {
		t.Error("analysis did not survive the round trip")
	}
}

func TestEntriesOn(t *testing.T) {
	p := load(t)
	ctx := context.Background()
	at := time.Date(2020, 2, 28, 12, 0, 0, 0, time.Local)

	for _, e := range []*entry.Entry{
		entry.New("on the day", at),
		entry.New("day before", at.AddDate(0, 0, -1)),
	} {
		if err := p.StoreEntry(e); err != nil {
			t.Fatalf("StoreEntry() returned error: %v", err)
		}
	}

	day := p.EntriesOn(ctx, "2020-02-28")
	if len(day) != 1 || day[0].Text != "on the day" {
		t.Errorf("EntriesOn() = %+v", day)
	}

	if !p.JournalDay("2020-02-27") {
		t.Error("JournalDay(2020-02-27) = false")
	}
	if p.JournalDay("2020-02-26") {
		t.Error("JournalDay(2020-02-26) = true")
	}
}

func TestChecklistDayAbsent(t *testing.T) {
	p := load(t)

	if _, ok, err := p.ChecklistDay("2020-02-28"); err != nil || ok {
		t.Fatalf("ChecklistDay() = ok %v err %v, want absent", ok, err)
	}

	day := checklist.NewDay("2020-02-28")
	day.Toggle("sg1")
	if err := p.SaveChecklistDay(day); err != nil {
		t.Fatalf("SaveChecklistDay() returned error: %v", err)
	}

	got, ok, err := p.ChecklistDay("2020-02-28")
	if err != nil || !ok {
		t.Fatalf("ChecklistDay() = ok %v err %v after save", ok, err)
	}
	if !got.Items[0].Completed {
		t.Errorf("round trip lost completion: %+v", got.Items[0])
	}
}

func TestDayCompletedFlag(t *testing.T) {
	p := load(t)

	if p.DayCompleted("2020-02-28") {
		t.Error("unset flag reads completed")
	}
	if err := p.SetDayCompleted("2020-02-28", true); err != nil {
		t.Fatalf("SetDayCompleted() returned error: %v", err)
	}
	if !p.DayCompleted("2020-02-28") {
		t.Error("set flag reads incomplete")
	}
	if err := p.SetDayCompleted("2020-02-28", false); err != nil {
		t.Fatalf("SetDayCompleted(false) returned error: %v", err)
	}
	if p.DayCompleted("2020-02-28") {
		t.Error("cleared flag reads completed")
	}
}

func TestEarnedBadges(t *testing.T) {
	p := load(t)

	ids, err := p.EarnedBadges()
	if err != nil || len(ids) != 0 {
		t.Fatalf("fresh EarnedBadges() = %v, %v", ids, err)
	}

	if err := p.SaveEarnedBadges([]string{"empathy_expert_1", "journal_streak_3"}); err != nil {
		t.Fatalf("SaveEarnedBadges() returned error: %v", err)
	}
	ids, err = p.EarnedBadges()
	if err != nil || len(ids) != 2 || ids[0] != "empathy_expert_1" {
		t.Errorf("EarnedBadges() = %v, %v", ids, err)
	}
}

func TestWellnessUsage(t *testing.T) {
	p := load(t)

	if p.WellnessUsed() {
		t.Error("fresh store reports wellness used")
	}
	if err := p.MarkWellnessUsed("ws1", "2020-02-28"); err != nil {
		t.Fatalf("MarkWellnessUsed() returned error: %v", err)
	}
	// First use wins; a later day must not overwrite it.
	if err := p.MarkWellnessUsed("ws1", "2020-03-01"); err != nil {
		t.Fatalf("second MarkWellnessUsed() returned error: %v", err)
	}

	if !p.WellnessUsed() {
		t.Error("store reports wellness unused after marking")
	}
	used, err := p.WellnessUsage()
	if err != nil {
		t.Fatalf("WellnessUsage() returned error: %v", err)
	}
	if used["ws1"] != "2020-02-28" {
		t.Errorf("used[ws1] = %q", used["ws1"])
	}
}

func TestShareSettings(t *testing.T) {
	p := load(t)

	s, ok, err := p.ShareSettings()
	if err != nil || ok {
		t.Fatalf("fresh ShareSettings() = ok %v err %v", ok, err)
	}
	if s.Connected {
		t.Error("default settings report connected")
	}

	s.Connected = true
	s.ProviderEmail = "doc@example.com"
	s.ShareThemes = false
	if err := p.SaveShareSettings(s); err != nil {
		t.Fatalf("SaveShareSettings() returned error: %v", err)
	}

	got, ok, err := p.ShareSettings()
	if err != nil || !ok {
		t.Fatalf("ShareSettings() = ok %v err %v after save", ok, err)
	}
	if !got.Connected || got.ProviderEmail != "doc@example.com" || got.ShareThemes {
		t.Errorf("round trip = %+v", got)
	}
}

func TestWipe(t *testing.T) {
	p := load(t)
	ctx := context.Background()

	if err := p.StoreEntry(entry.New("gone soon", time.Now())); err != nil {
		t.Fatalf("StoreEntry() returned error: %v", err)
	}
	if err := p.SetDayCompleted("2020-02-28", true); err != nil {
		t.Fatalf("SetDayCompleted() returned error: %v", err)
	}

	if err := p.Wipe(); err != nil {
		t.Fatalf("Wipe() returned error: %v", err)
	}
	if got := p.ListEntries(ctx); len(got) != 0 {
		t.Errorf("ListEntries() after wipe = %d entries", len(got))
	}
	if p.DayCompleted("2020-02-28") {
		t.Error("completion flag survived the wipe")
	}
}
