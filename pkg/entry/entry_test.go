package entry

import (
	"testing"
	"time"
)

func TestDayKey(t *testing.T) {
	tests := map[string]struct {
		at   time.Time
		want string
	}{
		"noon": {
			at:   time.Date(2020, 2, 28, 12, 0, 0, 0, time.Local),
			want: "2020-02-28",
		},
		"just before midnight stays on the authored day": {
			at:   time.Date(2020, 2, 28, 23, 30, 0, 0, time.Local),
			want: "2020-02-28",
		},
		"just after midnight rolls to the next day": {
			at:   time.Date(2020, 2, 29, 0, 30, 0, 0, time.Local),
			want: "2020-02-29",
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := DayKey(tc.at); got != tc.want {
				t.Errorf("DayKey() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestParseDayKeyRoundTrip(t *testing.T) {
	key := "2020-02-28"
	at, err := ParseDayKey(key)
	if err != nil {
		t.Fatalf("ParseDayKey() returned error: %v", err)
	}
	if got := DayKey(at); got != key {
		t.Errorf("DayKey(ParseDayKey(%q)) = %q", key, got)
	}
}

func TestAnalyzed(t *testing.T) {
	now := time.Now()
	tests := map[string]struct {
		e    *Entry
		want bool
	}{
		"nil entry": {
			e:    nil,
			want: false,
		},
		"no analysis": {
			e:    New("rough day", now),
			want: false,
		},
		"analysis with invalid sentiment": {
			e: &Entry{
				Created:  Timestamp{Time: now},
				Analysis: &Analysis{Sentiment: Sentiment("Confused")},
			},
			want: false,
		},
		"analyzed": {
			e: &Entry{
				Created:  Timestamp{Time: now},
				Analysis: &Analysis{Sentiment: Positive},
			},
			want: true,
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tc.e.Analyzed(); got != tc.want {
				t.Errorf("Analyzed() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestMoodValue(t *testing.T) {
	tests := []struct {
		s    Sentiment
		want int
	}{
		{Positive, 1},
		{Neutral, 0},
		{Negative, -1},
		{Sentiment("Confused"), 0},
	}
	for _, tc := range tests {
		if got := tc.s.MoodValue(); got != tc.want {
			t.Errorf("%s.MoodValue() = %d, want %d", tc.s, got, tc.want)
		}
	}
}

func TestSortDescending(t *testing.T) {
	base := time.Date(2020, 2, 28, 12, 0, 0, 0, time.Local)

	a := &Entry{ID: "a", Created: Timestamp{Time: base}}
	b := &Entry{ID: "b", Created: Timestamp{Time: base.Add(time.Hour)}}
	c := &Entry{ID: "c", Created: Timestamp{Time: base}}

	entries := []*Entry{a, b, c}
	SortDescending(entries)

	want := []string{"b", "a", "c"}
	for i, id := range want {
		if entries[i].ID != id {
			t.Fatalf("entries[%d].ID = %q, want %q", i, entries[i].ID, id)
		}
	}
}
