package csvsource

import (
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tradeacademy/indicatorlab/pkg/types"
)

// MetaTraderTimeFormat is the time format expected by the MetaTrader decoder when cols [0] and [1] are used.
const MetaTraderTimeFormat = "02/01/2006 15:04"

var (
	// ErrNotEnoughColumns is returned when the CSV price record does not have enough columns.
	ErrNotEnoughColumns = errors.New("not enough columns")

	// ErrInvalidTimeFormat is returned when the CSV price record does not have a valid time.
	ErrInvalidTimeFormat = errors.New("cannot parse time string")

	// ErrInvalidPriceFormat is returned when the CSV price record does not prices in expected format.
	ErrInvalidPriceFormat = errors.New("OHLC prices must be in valid decimal format")

	// ErrInvalidVolumeFormat is returned when the CSV price record does not have a valid volume format.
	ErrInvalidVolumeFormat = errors.New("volume must be in valid float format")
)

// CSVBarDecoder is an extension point for CSVBarReader to support custom file formats.
type CSVBarDecoder func(record []string) (types.PriceBar, error)

// NewBinanceCSVBarReader creates a new CSVBarReader for Binance style CSV files.
func NewBinanceCSVBarReader(csv *csv.Reader) *CSVBarReader {
	csv.FieldsPerRecord = -1
	return &CSVBarReader{
		csv:     csv,
		decoder: BinanceCSVBarDecoder,
	}
}

// BinanceCSVBarDecoder decodes a time,open,high,low,close[,volume] record.
// The time column is a unix timestamp in seconds or milliseconds, or a
// date-time string.
func BinanceCSVBarDecoder(record []string) (types.PriceBar, error) {
	var bar, empty types.PriceBar

	if len(record) < 5 {
		return empty, ErrNotEnoughColumns
	}

	t, err := types.ParseTime(record[0])
	if err != nil {
		return empty, ErrInvalidTimeFormat
	}
	bar.Time = types.Time(t)

	if err := parsePrices(&bar, record[1:5]); err != nil {
		return empty, err
	}

	if len(record) > 5 {
		if bar.Volume, err = parseVolume(record[5]); err != nil {
			return empty, err
		}
	}

	return bar, nil
}

// NewMetaTraderCSVBarReader creates a new CSVBarReader for MetaTrader CSV files.
func NewMetaTraderCSVBarReader(csv *csv.Reader) *CSVBarReader {
	csv.Comma = ';'
	csv.FieldsPerRecord = -1
	return &CSVBarReader{
		csv:     csv,
		decoder: MetaTraderCSVBarDecoder,
	}
}

// MetaTraderCSVBarDecoder decodes a date;time;open;high;low;close[;volume] record.
func MetaTraderCSVBarDecoder(record []string) (types.PriceBar, error) {
	var bar, empty types.PriceBar

	if len(record) < 6 {
		return empty, ErrNotEnoughColumns
	}

	tStr := fmt.Sprintf("%s %s", record[0], record[1])
	t, err := time.Parse(MetaTraderTimeFormat, tStr)
	if err != nil {
		return empty, ErrInvalidTimeFormat
	}
	bar.Time = types.NewTimeFromUnix(t.Unix(), 0)

	if err := parsePrices(&bar, record[2:6]); err != nil {
		return empty, err
	}

	if len(record) > 6 {
		if bar.Volume, err = parseVolume(record[6]); err != nil {
			return empty, err
		}
	}

	return bar, nil
}

func parsePrices(bar *types.PriceBar, cols []string) error {
	prices := []*float64{&bar.Open, &bar.High, &bar.Low, &bar.Close}
	for i, p := range prices {
		v, err := strconv.ParseFloat(strings.TrimSpace(cols[i]), 64)
		if err != nil {
			return ErrInvalidPriceFormat
		}
		*p = v
	}
	return nil
}

// parseVolume treats an empty column as a missing volume.
func parseVolume(col string) (float64, error) {
	col = strings.TrimSpace(col)
	if col == "" {
		return 0, nil
	}

	v, err := strconv.ParseFloat(col, 64)
	if err != nil {
		return 0, ErrInvalidVolumeFormat
	}
	return v, nil
}
