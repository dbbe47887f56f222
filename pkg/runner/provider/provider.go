package provider

import (
	"context"
	"errors"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/noesis/pkg/badges"
	"tableflip.dev/noesis/pkg/mood"
	"tableflip.dev/noesis/pkg/printers"
	"tableflip.dev/noesis/pkg/store"
	"tableflip.dev/noesis/pkg/themes"
)

// Provider renders the simulated provider view: the same derived
// aggregates as the dashboard, filtered by the persisted sharing toggles.
type Provider struct {
	Reference  time.Time // zero means now
	WindowDays int

	Persistence store.Persistence
}

func (n *Provider) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not show provider view, no persistence")
	}
	ref := n.Reference
	if ref.IsZero() {
		ref = time.Now()
	}

	settings, _, err := n.Persistence.ShareSettings()
	if err != nil {
		return err
	}
	if !settings.Connected {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Println("No provider connected. Use `noesis provider connect` first.")
		return nil
	}

	pp := printers.PrettyPrint{}
	pp.Title("Provider View")
	if settings.ProviderEmail != "" {
		f := color.New(color.Faint)
		_, _ = f.Printf("shared with %s\n\n", settings.ProviderEmail)
	}

	all := n.Persistence.ListEntries(ctx)
	shared := false

	if settings.ShareMoodTrends {
		shared = true
		pp.Title("Mood Trend (Last 30 Days)")
		pp.MoodTrend(mood.Series(all, ref, n.WindowDays), ref, n.WindowDays)
	}
	if settings.ShareThemes {
		shared = true
		pp.Title("Recurring Themes (Last 30 Days)")
		pp.Themes(themes.Top(all, ref, n.WindowDays, themes.TopLimit))
	}
	if settings.ShareSummary {
		shared = true
		earnedIDs, err := n.Persistence.EarnedBadges()
		if err != nil {
			return err
		}
		pp.Title("Badges")
		pp.Badges(badges.Catalog(), badges.EarnedSet(earnedIDs))
	}

	if !shared {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Println("All sharing toggles are off; nothing to show.")
		return nil
	}
	f := color.New(color.Faint)
	_, _ = f.Println("Entries and raw journal text are never shared.")
	return nil
}
