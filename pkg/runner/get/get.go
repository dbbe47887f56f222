package get

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/noesis/pkg/entry"
	"tableflip.dev/noesis/pkg/printers"
	"tableflip.dev/noesis/pkg/store"
)

// Get lists journal entries, newest first, for one day or for everything.
type Get struct {
	ShowID bool
	On     *time.Time
	All    bool
	ID     string

	Persistence store.Persistence
}

func (n *Get) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get, no persistence")
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")

	if n.ID != "" {
		for _, e := range n.Persistence.ListEntries(ctx) {
			if e.ID == n.ID {
				pp.EntryDetail(e)
				return nil
			}
		}
		return fmt.Errorf("no entry %q", n.ID)
	}

	if n.All {
		all := n.Persistence.ListEntries(ctx)
		pp.TitleWithCount("Journal", len(all))
		pp.Entries(all...)
		return nil
	}

	on := time.Now()
	if n.On != nil {
		on = *n.On
	}
	day := n.Persistence.EntriesOn(ctx, entry.DayKey(on))
	pp.TitleWithCount(on.Format("January 2, 2006"), len(day))
	pp.Entries(day...)
	return nil
}
