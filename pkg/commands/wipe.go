package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func addWipe(topLevel *cobra.Command) {
	yes := false

	cmd := &cobra.Command{
		Use:   "wipe",
		Short: "erase all local data",
		Example: `
noesis wipe --yes
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("wipe erases every entry, checklist, and badge; pass --yes to confirm")
			}
			p, err := loadStore()
			if err != nil {
				return err
			}
			if err := p.Wipe(); err != nil {
				return output.HandleError(err)
			}
			fmt.Println("All data erased.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm erasing all data.")

	topLevel.AddCommand(cmd)
}
