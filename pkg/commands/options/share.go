package options

import (
	"github.com/spf13/cobra"
)

// ShareOptions
type ShareOptions struct {
	Email      string
	Summary    bool
	Themes     bool
	MoodTrends bool
	Crisis     bool
}

func AddShareArgs(cmd *cobra.Command, o *ShareOptions) {
	cmd.Flags().StringVar(&o.Email, "email", "",
		"Provider email address.")
	cmd.Flags().BoolVar(&o.Summary, "summary", true,
		"Share weekly summaries and badges.")
	cmd.Flags().BoolVar(&o.Themes, "themes", true,
		"Share recurring themes.")
	cmd.Flags().BoolVar(&o.MoodTrends, "mood-trends", true,
		"Share mood trends.")
	cmd.Flags().BoolVar(&o.Crisis, "crisis-alerts", true,
		"Alert the provider on crisis indicators.")
}
