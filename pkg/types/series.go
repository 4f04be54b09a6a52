package types

import (
	"math"
	"strconv"

	"github.com/tradeacademy/indicatorlab/pkg/datatype/floats"
)

// Series is the output of an indicator routine: a time ordered sequence of
// points that can be dumped as csv rows.
type Series interface {
	CsvFormatter

	Len() int

	// NonFinite counts the NaN and ±Inf values produced by degenerate input.
	NonFinite() int
}

var (
	_ Series = PointSeries(nil)
	_ Series = BandSeries(nil)
	_ Series = MACDSeries(nil)
	_ Series = StochSeries(nil)
)

// Point is a single-line indicator value.
type Point struct {
	Time  Time    `json:"time"`
	Value float64 `json:"value"`
}

func (p Point) MarshalJSON() ([]byte, error) {
	return marshalFields(p.Time, "value", p.Value)
}

type PointSeries []Point

func (s PointSeries) Len() int { return len(s) }

// Values returns the plain value column.
func (s PointSeries) Values() []float64 {
	values := make([]float64, len(s))
	for i, p := range s {
		values[i] = p.Value
	}
	return values
}

// ClosePoints adapts the series so it can be fed into another routine as its
// close prices.
func (s PointSeries) ClosePoints() []ClosePoint {
	points := make([]ClosePoint, len(s))
	for i, p := range s {
		points[i] = ClosePoint{Time: p.Time, Close: p.Value}
	}
	return points
}

func (s PointSeries) NonFinite() (n int) {
	for _, p := range s {
		n += countNonFinite(p.Value)
	}
	return n
}

func (s PointSeries) CsvHeader() []string {
	return []string{"time", "value"}
}

func (s PointSeries) CsvRecords() [][]string {
	records := make([][]string, 0, len(s))
	for _, p := range s {
		records = append(records, []string{formatTime(p.Time), formatFloat(p.Value)})
	}
	return records
}

// BandPoint is a channel style value: Bollinger, Keltner and Donchian.
type BandPoint struct {
	Time   Time    `json:"time"`
	Upper  float64 `json:"upper"`
	Middle float64 `json:"middle"`
	Lower  float64 `json:"lower"`
}

func (p BandPoint) MarshalJSON() ([]byte, error) {
	return marshalFields(p.Time, "upper", p.Upper, "middle", p.Middle, "lower", p.Lower)
}

type BandSeries []BandPoint

func (s BandSeries) Len() int { return len(s) }

func (s BandSeries) NonFinite() (n int) {
	for _, p := range s {
		n += countNonFinite(p.Upper, p.Middle, p.Lower)
	}
	return n
}

func (s BandSeries) CsvHeader() []string {
	return []string{"time", "upper", "middle", "lower"}
}

func (s BandSeries) CsvRecords() [][]string {
	records := make([][]string, 0, len(s))
	for _, p := range s {
		records = append(records, []string{
			formatTime(p.Time),
			formatFloat(p.Upper),
			formatFloat(p.Middle),
			formatFloat(p.Lower),
		})
	}
	return records
}

type MACDPoint struct {
	Time      Time    `json:"time"`
	MACD      float64 `json:"macd"`
	Signal    float64 `json:"signal"`
	Histogram float64 `json:"histogram"`
}

func (p MACDPoint) MarshalJSON() ([]byte, error) {
	return marshalFields(p.Time, "macd", p.MACD, "signal", p.Signal, "histogram", p.Histogram)
}

type MACDSeries []MACDPoint

func (s MACDSeries) Len() int { return len(s) }

func (s MACDSeries) NonFinite() (n int) {
	for _, p := range s {
		n += countNonFinite(p.MACD, p.Signal, p.Histogram)
	}
	return n
}

func (s MACDSeries) CsvHeader() []string {
	return []string{"time", "macd", "signal", "histogram"}
}

func (s MACDSeries) CsvRecords() [][]string {
	records := make([][]string, 0, len(s))
	for _, p := range s {
		records = append(records, []string{
			formatTime(p.Time),
			formatFloat(p.MACD),
			formatFloat(p.Signal),
			formatFloat(p.Histogram),
		})
	}
	return records
}

// StochPoint holds %K and %D. %D is only defined once dPeriod %K values are
// available; DReady is false before that.
type StochPoint struct {
	Time   Time    `json:"time"`
	K      float64 `json:"k"`
	D      float64 `json:"d,omitempty"`
	DReady bool    `json:"-"`
}

func (p StochPoint) MarshalJSON() ([]byte, error) {
	if !p.DReady {
		return marshalFields(p.Time, "k", p.K)
	}
	return marshalFields(p.Time, "k", p.K, "d", p.D)
}

type StochSeries []StochPoint

func (s StochSeries) Len() int { return len(s) }

func (s StochSeries) NonFinite() (n int) {
	for _, p := range s {
		n += countNonFinite(p.K)
		if p.DReady {
			n += countNonFinite(p.D)
		}
	}
	return n
}

func (s StochSeries) CsvHeader() []string {
	return []string{"time", "k", "d"}
}

func (s StochSeries) CsvRecords() [][]string {
	records := make([][]string, 0, len(s))
	for _, p := range s {
		d := ""
		if p.DReady {
			d = formatFloat(p.D)
		}
		records = append(records, []string{formatTime(p.Time), formatFloat(p.K), d})
	}
	return records
}

func countNonFinite(values ...float64) (n int) {
	for _, v := range values {
		if !floats.IsFinite(v) {
			n++
		}
	}
	return n
}

func formatTime(t Time) string {
	return t.UnixString()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// marshalFields encodes {"time": t, name: value, ...}. Non-finite values are
// encoded as null since JSON has no representation for them.
func marshalFields(t Time, kvs ...interface{}) ([]byte, error) {
	tb, err := t.MarshalJSON()
	if err != nil {
		return nil, err
	}

	buf := make([]byte, 0, 64)
	buf = append(buf, `{"time":`...)
	buf = append(buf, tb...)
	for i := 0; i+1 < len(kvs); i += 2 {
		buf = append(buf, ',')
		buf = strconv.AppendQuote(buf, kvs[i].(string))
		buf = append(buf, ':')
		buf = appendJSONFloat(buf, kvs[i+1].(float64))
	}
	buf = append(buf, '}')
	return buf, nil
}

func appendJSONFloat(buf []byte, v float64) []byte {
	if !floats.IsFinite(v) {
		return append(buf, "null"...)
	}

	abs := math.Abs(v)
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		return strconv.AppendFloat(buf, v, 'e', -1, 64)
	}
	return strconv.AppendFloat(buf, v, 'f', -1, 64)
}
