package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/noesis/pkg/prompts"
)

func addPrompt(topLevel *cobra.Command) {
	affirmation := false

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "get a guided journaling prompt or an affirmation",
		Example: `
noesis prompt
noesis prompt --affirmation
`,
		Run: func(cmd *cobra.Command, args []string) {
			i := color.New(color.Italic)
			if affirmation {
				_, _ = i.Println(prompts.RandomAffirmation())
				return
			}
			_, _ = i.Println(prompts.RandomGuided())
			fmt.Println("\nAnswer it with: noesis add <your entry>")
		},
	}

	cmd.Flags().BoolVarP(&affirmation, "affirmation", "a", false,
		"Print an affirmation instead of a prompt.")

	topLevel.AddCommand(cmd)
}
