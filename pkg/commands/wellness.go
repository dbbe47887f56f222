package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/noesis/pkg/badges"
	"tableflip.dev/noesis/pkg/entry"
	"tableflip.dev/noesis/pkg/printers"
	"tableflip.dev/noesis/pkg/wellness"
)

func addWellness(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "wellness",
		Short: "browse the wellness toolkit",
		Example: `
noesis wellness
noesis wellness use ws1
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadStore()
			if err != nil {
				return err
			}
			used, err := p.WellnessUsage()
			if err != nil {
				return output.HandleError(err)
			}
			pp := printers.PrettyPrint{}
			pp.Title("Wellness Toolkit")
			pp.Wellness(wellness.Suggestions(), used)
			return nil
		},
	}

	use := &cobra.Command{
		Use:   "use <id>",
		Short: "record trying a wellness tool",
		Example: `
noesis wellness use ws1
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadStore()
			if err != nil {
				return err
			}
			s, ok := wellness.Find(args[0])
			if !ok {
				return fmt.Errorf("no wellness tool with id %q", args[0])
			}
			now := time.Now()
			if err := p.MarkWellnessUsed(s.ID, entry.DayKey(now)); err != nil {
				return output.HandleError(err)
			}
			fmt.Printf("%s\n\n%s\n\n", s.Title, s.Content)

			awarder := &badges.Awarder{Store: p}
			newly, err := awarder.Award(now)
			if err != nil {
				return output.HandleError(err)
			}
			for _, b := range newly {
				fmt.Printf("New badge unlocked: %s!\n", b.Name)
			}
			return nil
		},
	}
	cmd.AddCommand(use)

	topLevel.AddCommand(cmd)
}
