package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/noesis/pkg/commands/options"
	"tableflip.dev/noesis/pkg/runner/summary"
)

func addSummary(topLevel *cobra.Command) {
	oo := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "analyze a whole day's entries together",
		Example: `
noesis summary
noesis summary --on="2/28"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadStore()
			if err != nil {
				return err
			}
			a := loadAnalyzer()
			if a == nil {
				return errors.New("summary needs an api_key, see `noesis help`")
			}
			on, err := oo.GetOn()
			if err != nil {
				return err
			}
			s := summary.Summary{
				On:          on,
				Persistence: p,
				Analyzer:    a,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, oo)

	topLevel.AddCommand(cmd)
}
