package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/noesis/pkg/badges"
	"tableflip.dev/noesis/pkg/printers"
)

func addBadges(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "badges",
		Short: "show earned and unearned badges",
		Example: `
noesis badges
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadStore()
			if err != nil {
				return err
			}
			earned, err := p.EarnedBadges()
			if err != nil {
				return output.HandleError(err)
			}
			pp := printers.PrettyPrint{}
			pp.Title("Badges")
			pp.Badges(badges.Catalog(), badges.EarnedSet(earned))
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
