package options

import (
	"github.com/spf13/cobra"
)

// WindowOptions
type WindowOptions struct {
	Days  int
	Month string
}

func AddWindowArgs(cmd *cobra.Command, o *WindowOptions) {
	cmd.Flags().IntVar(&o.Days, "days", 30,
		"Number of trailing days for trends and themes.")
}

func AddMonthArgs(cmd *cobra.Command, o *WindowOptions) {
	cmd.Flags().StringVar(&o.Month, "month", "",
		`Calendar month to show, example: --month="2020-02".`)
}
