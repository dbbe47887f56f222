package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/noesis/pkg/commands/options"
	"tableflip.dev/noesis/pkg/runner/check"
)

func addCheck(topLevel *cobra.Command) {
	oo := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:     "check [item id]",
		Aliases: []string{"checklist"},
		Short:   "show or toggle the social good checklist",
		Example: `
noesis check
noesis check sg1
noesis check sg3 --on="2/28"
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadStore()
			if err != nil {
				return err
			}
			on, err := oo.GetOn()
			if err != nil {
				return err
			}
			s := check.Check{
				On:          on,
				Persistence: p,
			}
			if len(args) == 1 {
				s.Toggle = args[0]
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, oo)

	topLevel.AddCommand(cmd)
}
