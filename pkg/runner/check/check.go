package check

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/noesis/pkg/badges"
	"tableflip.dev/noesis/pkg/checklist"
	"tableflip.dev/noesis/pkg/entry"
	"tableflip.dev/noesis/pkg/printers"
	"tableflip.dev/noesis/pkg/store"
)

// Check shows or toggles the day's social-good checklist.
type Check struct {
	On     *time.Time
	Toggle string // item id to flip; empty just shows

	Persistence store.Persistence
}

func (n *Check) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not update checklist, no persistence")
	}

	on := time.Now()
	if n.On != nil {
		on = *n.On
	}

	pp := printers.PrettyPrint{}
	pp.Title(fmt.Sprintf("Social Good Checklist - %s", on.Format("January 2, 2006")))

	if n.Toggle == "" {
		day, ok, err := n.Persistence.ChecklistDay(entry.DayKey(on))
		if err != nil {
			return err
		}
		if !ok {
			day = checklist.NewDay(entry.DayKey(on))
		}
		pp.Checklist(day)
		return nil
	}

	sync := &checklist.Sync{
		Store:  n.Persistence,
		Badges: &badges.Awarder{Store: n.Persistence},
	}
	day, newly, err := sync.Toggle(on, n.Toggle)
	if err != nil {
		return err
	}
	pp.Checklist(day)
	for _, b := range newly {
		fmt.Printf("New badge unlocked: %s!\n", b.Name)
	}
	return nil
}
