package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/noesis/pkg/commands/options"
	"tableflip.dev/noesis/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	io := &options.IDOptions{}
	all := false

	cmd := &cobra.Command{
		Use:     "get",
		Aliases: []string{"list", "entries"},
		Short:   "get journal entries",
		Example: `
noesis get
noesis get --on="2/28"
noesis get --all
noesis get --id <entry id>
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadStore()
			if err != nil {
				return err
			}
			on, err := oo.GetOn()
			if err != nil {
				return err
			}
			s := get.Get{
				ShowID:      io.ShowID,
				On:          on,
				All:         all,
				ID:          io.ID,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, oo)
	options.AddShowIDArgs(cmd, io)
	options.AddIDArgs(cmd, io)
	cmd.Flags().BoolVar(&all, "all", false, "Show every entry.")

	topLevel.AddCommand(cmd)
}
