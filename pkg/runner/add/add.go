package add

import (
	"context"
	"fmt"
	"os"
	"time"

	"tableflip.dev/noesis/pkg/ai"
	"tableflip.dev/noesis/pkg/badges"
	"tableflip.dev/noesis/pkg/checklist"
	"tableflip.dev/noesis/pkg/entry"
	"tableflip.dev/noesis/pkg/printers"
	"tableflip.dev/noesis/pkg/store"
)

// Add saves a journal entry, requests analysis, merges any detected
// checklist completions, and re-evaluates badges.
type Add struct {
	Text     string
	On       *time.Time
	AudioRef string

	Persistence store.Persistence
	Analyzer    ai.Analyzer
}

func (n *Add) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return fmt.Errorf("can not add, no persistence")
	}

	at := time.Now()
	if n.On != nil {
		at = *n.On
	}
	e := entry.New(n.Text, at)
	e.AudioRef = n.AudioRef

	// The entry is persisted before analysis: a failed or slow analysis
	// call must never lose the entry, it just leaves it unanalyzed.
	if err := n.Persistence.StoreEntry(e); err != nil {
		return err
	}

	if n.Analyzer != nil {
		analysis, err := n.Analyzer.AnalyzeEntry(ctx, n.Text)
		if err != nil {
			fmt.Fprintf(os.Stderr, "analysis unavailable, entry saved without it: %s\n", err)
		} else if analysis != nil {
			e.Analysis = analysis
			if err := n.Persistence.StoreEntry(e); err != nil {
				return err
			}
		}
	}

	pp := printers.PrettyPrint{}
	pp.Title(at.Format("January 2, 2006"))
	pp.EntryDetail(e)
	pp.NewLine()

	awarder := &badges.Awarder{Store: n.Persistence}

	if e.Analysis != nil && len(e.Analysis.CompletedChecklistItems) > 0 {
		sync := &checklist.Sync{Store: n.Persistence, Badges: awarder}
		_, newly, err := sync.ApplyDetections(at, e.Analysis.CompletedChecklistItems)
		if err != nil {
			return err
		}
		announce(newly)
		return nil
	}

	// No detections; the new entry can still extend a journaling streak.
	newly, err := awarder.Award(at)
	if err != nil {
		return err
	}
	announce(newly)
	return nil
}

func announce(newly []badges.Badge) {
	for _, b := range newly {
		fmt.Printf("New badge unlocked: %s!\n", b.Name)
	}
}
