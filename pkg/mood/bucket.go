// Package mood derives per-day mood aggregates from the raw entry stream.
// Everything here is a pure function of (entries, reference date, window);
// callers recompute on every view, there is no cached index.
package mood

import (
	"time"

	"tableflip.dev/noesis/pkg/entry"
)

// Bucket groups the entries authored on one local calendar day, newest
// first.
type Bucket struct {
	DayKey  string
	Entries []*entry.Entry
}

// Representative picks the entry that characterizes the day's mood: the
// most recent entry with an analyzed sentiment. Nil when no entry on the
// day has been analyzed, even if entries exist. An unanalyzed day is a
// distinct state from an empty one.
func (b *Bucket) Representative() *entry.Entry {
	if b == nil {
		return nil
	}
	for _, e := range b.Entries {
		if e.Analyzed() {
			return e
		}
	}
	return nil
}

// BucketByDay partitions entries by their authored local day. The bucket
// key is the entry's authored date, never the date its analysis landed.
func BucketByDay(entries []*entry.Entry) map[string]*Bucket {
	buckets := make(map[string]*Bucket)
	for _, e := range entries {
		if e == nil {
			continue
		}
		key := e.DayKey()
		b, ok := buckets[key]
		if !ok {
			b = &Bucket{DayKey: key}
			buckets[key] = b
		}
		b.Entries = append(b.Entries, e)
	}
	for _, b := range buckets {
		entry.SortDescending(b.Entries)
	}
	return buckets
}

// ForDay returns the bucket for one local calendar day. The bucket is never
// nil; a day with no entries yields an empty bucket.
func ForDay(entries []*entry.Entry, day time.Time) *Bucket {
	key := entry.DayKey(day)
	b := &Bucket{DayKey: key}
	for _, e := range entries {
		if e != nil && e.DayKey() == key {
			b.Entries = append(b.Entries, e)
		}
	}
	entry.SortDescending(b.Entries)
	return b
}
