package tsv

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/tradeacademy/indicatorlab/pkg/types"
)

type Writer struct {
	file io.Writer

	*csv.Writer
}

func NewWriterFile(filename string) (*Writer, error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, err
	}

	return NewWriter(f), nil
}

func AppendWriterFile(filename string) (*Writer, error) {
	f, err := os.OpenFile(filename, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return nil, err
	}

	return NewWriter(f), nil
}

// NewWriter wraps w; Close closes it when it is an io.Closer.
func NewWriter(w io.Writer) *Writer {
	tsv := csv.NewWriter(w)
	tsv.Comma = '\t'
	return &Writer{
		Writer: tsv,
		file:   w,
	}
}

// WriteSeries writes the header line followed by one line per point.
func (w *Writer) WriteSeries(s types.CsvFormatter) error {
	if err := w.Write(s.CsvHeader()); err != nil {
		return err
	}

	if err := w.WriteAll(s.CsvRecords()); err != nil {
		return err
	}

	return w.Error()
}

func (w *Writer) Close() error {
	w.Writer.Flush()
	if err := w.Writer.Error(); err != nil {
		return err
	}

	if closer, ok := w.file.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
