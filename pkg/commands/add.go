package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/noesis/pkg/commands/options"
	"tableflip.dev/noesis/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	audio := ""

	cmd := &cobra.Command{
		Use:     "add",
		Aliases: []string{"new", "journal"},
		Short:   "add a journal entry",
		Example: `
noesis add today was a good day
noesis add --on="2/28" forgot to log this one
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires entry text")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadStore()
			if err != nil {
				return err
			}
			on, err := oo.GetOn()
			if err != nil {
				return err
			}
			s := add.Add{
				Text:        strings.Join(args, " "),
				On:          on,
				AudioRef:    audio,
				Persistence: p,
				Analyzer:    loadAnalyzer(),
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, oo)
	cmd.Flags().StringVar(&audio, "audio", "",
		"Attach a reference to an audio recording of this entry.")

	topLevel.AddCommand(cmd)
}
