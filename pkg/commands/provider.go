package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/noesis/pkg/commands/options"
	"tableflip.dev/noesis/pkg/runner/provider"
	"tableflip.dev/noesis/pkg/share"
)

func addProvider(topLevel *cobra.Command) {
	wo := &options.WindowOptions{}

	cmd := &cobra.Command{
		Use:   "provider",
		Short: "preview what a connected provider would see",
		Example: `
noesis provider
noesis provider connect --email="doc@example.com"
noesis provider disconnect
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadStore()
			if err != nil {
				return err
			}
			s := provider.Provider{
				WindowDays:  wo.Days,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}
	options.AddWindowArgs(cmd, wo)

	so := &options.ShareOptions{}
	connect := &cobra.Command{
		Use:   "connect",
		Short: "connect a provider and choose what is shared",
		Example: `
noesis provider connect --email="doc@example.com" --themes=false
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if so.Email == "" {
				return errors.New("requires --email")
			}
			p, err := loadStore()
			if err != nil {
				return err
			}
			settings := share.Settings{
				Connected:       true,
				ProviderEmail:   so.Email,
				ShareSummary:    so.Summary,
				ShareThemes:     so.Themes,
				ShareMoodTrends: so.MoodTrends,
				AlertOnCrisis:   so.Crisis,
			}
			if err := p.SaveShareSettings(settings); err != nil {
				return output.HandleError(err)
			}
			fmt.Printf("Connected to %s.\n", so.Email)
			return nil
		},
	}
	options.AddShareArgs(connect, so)
	cmd.AddCommand(connect)

	disconnect := &cobra.Command{
		Use:   "disconnect",
		Short: "disconnect the provider and stop all sharing",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadStore()
			if err != nil {
				return err
			}
			if err := p.SaveShareSettings(share.Default()); err != nil {
				return output.HandleError(err)
			}
			fmt.Println("Disconnected.")
			return nil
		},
	}
	cmd.AddCommand(disconnect)

	topLevel.AddCommand(cmd)
}
