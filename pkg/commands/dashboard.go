package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/noesis/pkg/commands/options"
	"tableflip.dev/noesis/pkg/runner/dashboard"
)

func addDashboard(topLevel *cobra.Command) {
	wo := &options.WindowOptions{}

	cmd := &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"dash", "insights"},
		Short:   "show the mood calendar, trend, themes, and badges",
		Example: `
noesis dashboard
noesis dashboard --month="2020-02"
noesis dashboard --days 7
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadStore()
			if err != nil {
				return err
			}
			s := dashboard.Dashboard{
				WindowDays:  wo.Days,
				Persistence: p,
			}
			if wo.Month != "" {
				m, err := time.ParseInLocation("2006-01", wo.Month, time.Local)
				if err != nil {
					return err
				}
				s.Month = &m
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddWindowArgs(cmd, wo)
	options.AddMonthArgs(cmd, wo)

	topLevel.AddCommand(cmd)
}
