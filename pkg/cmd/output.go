package cmd

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/tradeacademy/indicatorlab/pkg/data/tsv"
	"github.com/tradeacademy/indicatorlab/pkg/types"
)

const (
	OutputFormatJSON = "json"
	OutputFormatCSV  = "csv"
	OutputFormatTSV  = "tsv"
)

var seriesFormats = []string{OutputFormatJSON, OutputFormatCSV, OutputFormatTSV}

// checkFormat rejects a format before any input is read or output created.
func checkFormat(format string, supported []string) error {
	for _, f := range supported {
		if format == f {
			return nil
		}
	}
	return errors.Errorf("unsupported output format %q, expected one of %s", format, strings.Join(supported, ", "))
}

// writeSeries encodes the series. JSON encodes NaN and Inf as null, csv and
// tsv write them as NaN, +Inf and -Inf.
func writeSeries(w io.Writer, s types.Series, format string) error {
	switch format {
	case OutputFormatJSON, "":
		if s.Len() == 0 {
			_, err := io.WriteString(w, "[]\n")
			return err
		}
		return writeJSON(w, s)

	case OutputFormatCSV:
		cw := csv.NewWriter(w)
		if err := cw.Write(s.CsvHeader()); err != nil {
			return err
		}
		return cw.WriteAll(s.CsvRecords())

	case OutputFormatTSV:
		tw := tsv.NewWriter(w)
		if err := tw.WriteSeries(s); err != nil {
			return err
		}
		tw.Flush()
		return tw.Error()
	}

	return errors.Errorf("unsupported output format %q", format)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
