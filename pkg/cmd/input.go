package cmd

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/tradeacademy/indicatorlab/pkg/datasource/csvsource"
	"github.com/tradeacademy/indicatorlab/pkg/datasource/jsonsource"
	"github.com/tradeacademy/indicatorlab/pkg/metrics"
	"github.com/tradeacademy/indicatorlab/pkg/types"
)

const (
	InputFormatAuto       = "auto"
	InputFormatCSV        = "csv"
	InputFormatMetaTrader = "metatrader"
	InputFormatJSON       = "json"
)

// detectInputFormat picks the reader by file extension; directories are read
// as csv.
func detectInputFormat(path, format string) string {
	if format != "" && format != InputFormatAuto {
		return format
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		return InputFormatJSON
	}
	return InputFormatCSV
}

// readBars loads the bars of path, "-" reads stdin, and checks their order.
func readBars(path, format string, stdin io.Reader) ([]types.PriceBar, error) {
	if path == "" {
		return nil, errors.New("--input is required")
	}

	var bars []types.PriceBar
	var err error

	switch format = detectInputFormat(path, format); format {
	case InputFormatJSON:
		if path == "-" {
			var payload []byte
			if payload, err = io.ReadAll(stdin); err == nil {
				bars, err = jsonsource.ParseBars(payload)
			}
		} else {
			bars, err = jsonsource.ReadBarsFromFile(path)
		}

	case InputFormatCSV:
		if path == "-" {
			if bars, err = csvsource.NewCSVBarReader(csv.NewReader(stdin)).ReadAll(); err == nil {
				metrics.ObserveInputBars(InputFormatCSV, len(bars))
			}
		} else {
			bars, err = csvsource.ReadBarsFromCSV(path)
		}

	case InputFormatMetaTrader:
		if path == "-" {
			if bars, err = csvsource.NewMetaTraderCSVBarReader(csv.NewReader(stdin)).ReadAll(); err == nil {
				metrics.ObserveInputBars(InputFormatCSV, len(bars))
			}
		} else {
			bars, err = csvsource.ReadBarsFromCSVWithDecoder(path, csvsource.NewMetaTraderCSVBarReader)
		}

	default:
		return nil, errors.Errorf("unsupported input format %q", format)
	}

	if err != nil {
		return nil, errors.Wrapf(err, "unable to read bars from %s", path)
	}

	if len(bars) == 0 {
		return nil, errors.Errorf("no bars in %s", path)
	}

	if err := types.ValidateBarOrder(bars); err != nil {
		return nil, errors.Wrapf(err, "bars of %s must be in ascending time order", path)
	}

	return bars, nil
}

// openOutput returns stdout for "" and "-".
func openOutput(path string, stdout io.Writer) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return stdout, func() error { return nil }, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "unable to create %s", path)
	}
	return f, f.Close, nil
}
