package cmd

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tradeacademy/indicatorlab/pkg/datasource/csvsource"
)

func init() {
	ConvertCmd.Flags().String("input", "", "bars file (.csv, .json) or directory of csv files, - for stdin")
	ConvertCmd.Flags().String("input-format", InputFormatAuto, "auto, csv, metatrader or json")
	ConvertCmd.Flags().String("format", OutputFormatCSV, "csv or json")
	ConvertCmd.Flags().String("output", "", "output file, stdout by default")
	RootCmd.AddCommand(ConvertCmd)
}

// go run ./cmd/indicatorlab convert --input=export.json --format=csv --output=bars.csv
var ConvertCmd = &cobra.Command{
	Use:   "convert --input=bars.json [--format=csv]",
	Short: "normalize price bars into csv or json",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := cmd.Flags().GetString("input")
		if err != nil {
			return err
		}

		inputFormat, err := cmd.Flags().GetString("input-format")
		if err != nil {
			return err
		}

		format, err := cmd.Flags().GetString("format")
		if err != nil {
			return err
		}

		output, err := cmd.Flags().GetString("output")
		if err != nil {
			return err
		}

		if err := checkFormat(format, []string{OutputFormatCSV, OutputFormatJSON}); err != nil {
			return err
		}

		bars, err := readBars(input, inputFormat, cmd.InOrStdin())
		if err != nil {
			return err
		}

		w, closeOutput, err := openOutput(output, cmd.OutOrStdout())
		if err != nil {
			return err
		}

		if format == OutputFormatJSON {
			err = writeJSON(w, bars)
		} else {
			err = csvsource.WriteBars(w, bars)
		}

		if err != nil {
			_ = closeOutput()
			return err
		}

		log.Infof("converted %d bars", len(bars))
		return closeOutput()
	},
}
