package csvsource

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/tradeacademy/indicatorlab/pkg/types"
)

var barHeader = []string{"time", "open", "high", "low", "close", "volume"}

// WriteBars writes the bars as a Binance style csv with a header line and
// unix second timestamps. A missing volume is written as an empty column.
func WriteBars(w io.Writer, bars []types.PriceBar) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(barHeader); err != nil {
		return errors.Wrap(err, "writing header")
	}

	for _, bar := range bars {
		volume := ""
		if bar.HasVolume() {
			volume = ftos(bar.Volume)
		}

		row := []string{
			bar.Time.UnixString(),
			ftos(bar.Open),
			ftos(bar.High),
			ftos(bar.Low),
			ftos(bar.Close),
			volume,
		}
		if err := cw.Write(row); err != nil {
			return errors.Wrap(err, "writing record")
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteBarsFile writes csv to path.
func WriteBarsFile(path string, bars []types.PriceBar) (err error) {
	if len(bars) == 0 {
		return fmt.Errorf("no bars to write")
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to open file")
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "failed to close file")
		}
	}()

	return WriteBars(file, bars)
}

func ftos(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
