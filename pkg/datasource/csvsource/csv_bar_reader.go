package csvsource

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/tradeacademy/indicatorlab/pkg/types"
)

var _ BarReader = (*CSVBarReader)(nil)

// CSVBarReader is a BarReader that reads from a CSV file.
type CSVBarReader struct {
	csv     *csv.Reader
	decoder CSVBarDecoder

	line int
}

// MakeCSVBarReader is a factory method type that creates a new CSVBarReader.
type MakeCSVBarReader func(csv *csv.Reader) *CSVBarReader

// NewCSVBarReader creates a new CSVBarReader with the default Binance decoder.
func NewCSVBarReader(csv *csv.Reader) *CSVBarReader {
	csv.FieldsPerRecord = -1
	return &CSVBarReader{
		csv:     csv,
		decoder: BinanceCSVBarDecoder,
	}
}

// NewCSVBarReaderWithDecoder creates a new CSVBarReader with the given decoder.
func NewCSVBarReaderWithDecoder(csv *csv.Reader, decoder CSVBarDecoder) *CSVBarReader {
	csv.FieldsPerRecord = -1
	return &CSVBarReader{
		csv:     csv,
		decoder: decoder,
	}
}

// Read reads the next PriceBar from the underlying CSV data. A header line
// at the top of the file is skipped.
func (r *CSVBarReader) Read() (types.PriceBar, error) {
	var bar types.PriceBar

	rec, err := r.csv.Read()
	if err != nil {
		return bar, err
	}
	r.line++

	if r.line == 1 && isHeader(rec) {
		return r.Read()
	}

	return r.decoder(rec)
}

// ReadAll reads all the PriceBars from the underlying CSV data.
func (r *CSVBarReader) ReadAll() ([]types.PriceBar, error) {
	var bars []types.PriceBar
	for {
		bar, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", r.line)
		}
		bars = append(bars, bar)
	}

	return bars, nil
}

// isHeader reports whether none of the columns is a number.
func isHeader(record []string) bool {
	for _, col := range record {
		if _, err := strconv.ParseFloat(strings.TrimSpace(col), 64); err == nil {
			return false
		}
	}
	return len(record) > 0
}
