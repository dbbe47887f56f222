package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/noesis/pkg/ai"
	"tableflip.dev/noesis/pkg/commands/options"
	"tableflip.dev/noesis/pkg/store"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "noesis",
		Short: base.Wrap80("Private journaling with mood analytics on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.PersistentFlags().BoolVar(&output.JSON, "json", false,
		"Output errors as JSON.")

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addGet(topLevel)
	addDashboard(topLevel)
	addSummary(topLevel)
	addCheck(topLevel)
	addBadges(topLevel)
	addWellness(topLevel)
	addPrompt(topLevel)
	addProvider(topLevel)
	addUI(topLevel)
	addWipe(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

func loadStore() (store.Persistence, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	return store.Load(cfg)
}

// loadAnalyzer returns nil when no API key is configured. Runners treat a
// nil analyzer as "save without analysis" rather than an error.
func loadAnalyzer() ai.Analyzer {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil
	}
	if cfg.APIKey() == "" {
		fmt.Fprintln(os.Stderr, "no api_key configured, entries are saved without analysis")
		return nil
	}
	c, err := ai.New(cfg.APIKey(), cfg.APIEndpoint(), cfg.Model())
	if err != nil {
		fmt.Fprintf(os.Stderr, "analyzer unavailable: %s\n", err)
		return nil
	}
	return c
}
