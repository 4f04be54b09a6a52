package csvsource

import (
	"encoding/csv"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/tradeacademy/indicatorlab/pkg/metrics"
	"github.com/tradeacademy/indicatorlab/pkg/types"
)

// BarReader is an interface for reading price bars.
type BarReader interface {
	Read() (types.PriceBar, error)
	ReadAll() ([]types.PriceBar, error)
}

// ReadBarsFromCSV reads all the .csv files in a given directory or a single file into a slice of PriceBars.
// Wraps a default CSVBarReader with Binance decoder for convenience.
func ReadBarsFromCSV(path string) ([]types.PriceBar, error) {
	return ReadBarsFromCSVWithDecoder(path, MakeCSVBarReader(NewBinanceCSVBarReader))
}

// ReadBarsFromCSVWithDecoder permits using a custom CSVBarReader. Files of a
// directory are read in lexical order.
func ReadBarsFromCSVWithDecoder(path string, maker MakeCSVBarReader) ([]types.PriceBar, error) {
	var bars []types.PriceBar

	err := filepath.WalkDir(path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if filepath.Ext(path) != ".csv" {
			return nil
		}
		file, err := os.Open(path)
		if err != nil {
			return err
		}
		//nolint:errcheck // Read ops only so safe to ignore err return
		defer file.Close()
		reader := maker(csv.NewReader(file))
		newBars, err := reader.ReadAll()
		if err != nil {
			return errors.Wrapf(err, "read %s", path)
		}
		bars = append(bars, newBars...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.ObserveInputBars("csv", len(bars))
	return bars, nil
}
