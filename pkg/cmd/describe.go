package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tradeacademy/indicatorlab/pkg/style"
)

func init() {
	RootCmd.AddCommand(DescribeCmd)
}

// go run ./cmd/indicatorlab describe bb
var DescribeCmd = &cobra.Command{
	Use:   "describe <id>",
	Short: "show an indicator and its parameters",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		def, err := indicators.Lookup(args[0])
		if err != nil {
			return err
		}

		style.PrintDefinition(cmd.OutOrStdout(), def, style.TableStyle(withColor()), withColor())
		return nil
	},
}
