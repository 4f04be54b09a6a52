package cmd

import (
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tradeacademy/indicatorlab/pkg/catalog"
	"github.com/tradeacademy/indicatorlab/pkg/indicator"
	"github.com/tradeacademy/indicatorlab/pkg/types"
)

func init() {
	ComputeCmd.Flags().String("input", "", "bars file (.csv, .json) or directory of csv files, - for stdin")
	ComputeCmd.Flags().String("input-format", InputFormatAuto, "auto, csv, metatrader or json")
	ComputeCmd.Flags().StringArray("param", nil, "parameter override, e.g. --param period=14")
	ComputeCmd.Flags().String("preset", "", "parameter preset from the config file")
	ComputeCmd.Flags().String("format", OutputFormatJSON, "json, csv or tsv")
	ComputeCmd.Flags().String("output", "", "output file, stdout by default")
	RootCmd.AddCommand(ComputeCmd)
}

type computeOptions struct {
	id          string
	input       string
	inputFormat string
	params      []string
	preset      string
	format      string
	output      string
}

// go run ./cmd/indicatorlab compute rsi --input bars.csv --param period=7 --format csv
var ComputeCmd = &cobra.Command{
	Use:   "compute [id] --input=bars.csv [--param name=value ...]",
	Short: "compute an indicator over price bars",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var opts computeOptions
		var err error

		if len(args) > 0 {
			opts.id = args[0]
		}

		if opts.input, err = cmd.Flags().GetString("input"); err != nil {
			return err
		}

		if opts.inputFormat, err = cmd.Flags().GetString("input-format"); err != nil {
			return err
		}

		if opts.params, err = cmd.Flags().GetStringArray("param"); err != nil {
			return err
		}

		if opts.preset, err = cmd.Flags().GetString("preset"); err != nil {
			return err
		}

		if opts.format, err = cmd.Flags().GetString("format"); err != nil {
			return err
		}

		if opts.output, err = cmd.Flags().GetString("output"); err != nil {
			return err
		}

		return compute(indicators, userConfig, opts, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func compute(c *catalog.Catalog, config *catalog.Config, opts computeOptions, stdin io.Reader, stdout io.Writer) error {
	if err := checkFormat(opts.format, seriesFormats); err != nil {
		return err
	}

	params, err := parseParams(opts.params)
	if err != nil {
		return err
	}

	if opts.preset != "" {
		preset, ok := config.Preset(opts.preset)
		if !ok {
			return errors.Errorf("preset %s is not defined in the config file", opts.preset)
		}

		if opts.id == "" {
			opts.id = preset.Indicator
		} else if opts.id != preset.Indicator {
			return errors.Errorf("preset %s is for %s, not %s", opts.preset, preset.Indicator, opts.id)
		}

		for name, v := range preset.Params {
			if _, overridden := params[name]; !overridden {
				params[name] = v
			}
		}
	}

	if opts.id == "" {
		return errors.New("indicator id or --preset is required")
	}

	def, err := c.Lookup(opts.id)
	if err != nil {
		return err
	}

	bars, err := readBars(opts.input, opts.inputFormat, stdin)
	if err != nil {
		return err
	}

	if def.UsesVolume && !types.BarsHaveVolume(bars) {
		log.Warnf("%s reads volume but the input has none, a placeholder volume of %g per bar is used", def.ID, indicator.DefaultVolume)
	}

	series, err := c.Compute(def.ID, bars, params)
	if err != nil {
		return err
	}

	if series.Len() == 0 {
		log.Warnf("%s: %d bars are not enough for the warm-up window, the result is empty", def.ID, len(bars))
	}

	if n := series.NonFinite(); n > 0 {
		log.Warnf("%s: %d NaN or Inf values from degenerate input windows", def.ID, n)
	}

	w, closeOutput, err := openOutput(opts.output, stdout)
	if err != nil {
		return err
	}

	if err := writeSeries(w, series, opts.format); err != nil {
		_ = closeOutput()
		return errors.Wrap(err, "unable to write the result")
	}

	return closeOutput()
}

// parseParams parses name=value pairs.
func parseParams(pairs []string) (map[string]float64, error) {
	params := make(map[string]float64, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, errors.Errorf("invalid parameter %q, expected name=value", pair)
		}

		v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid value of parameter %s", name)
		}

		params[name] = v
	}
	return params, nil
}
