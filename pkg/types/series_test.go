package types

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTime(i int) Time {
	return NewTimeFromUnix(1700000000+int64(i)*86400, 0)
}

func TestPointSeries_MarshalJSON(t *testing.T) {
	s := PointSeries{
		{Time: testTime(0), Value: 1.5},
		{Time: testTime(1), Value: math.NaN()},
		{Time: testTime(2), Value: math.Inf(-1)},
		{Time: testTime(3), Value: 1e-7},
	}

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"time": 1700000000, "value": 1.5},
		{"time": 1700086400, "value": null},
		{"time": 1700172800, "value": null},
		{"time": 1700259200, "value": 1e-7}
	]`, string(data))
	assert.Equal(t, 2, s.NonFinite())
}

func TestBandSeries_MarshalJSON(t *testing.T) {
	s := BandSeries{{Time: testTime(0), Upper: 3, Middle: 2, Lower: 1}}

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"time": 1700000000, "upper": 3, "middle": 2, "lower": 1}]`, string(data))
}

func TestMACDSeries_MarshalJSON(t *testing.T) {
	s := MACDSeries{{Time: testTime(0), MACD: 0.5, Signal: 0.25, Histogram: 0.25}}

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"time": 1700000000, "macd": 0.5, "signal": 0.25, "histogram": 0.25}]`, string(data))
}

func TestStochSeries(t *testing.T) {
	s := StochSeries{
		{Time: testTime(0), K: 40},
		{Time: testTime(1), K: 60, D: 50, DReady: true},
		{Time: testTime(2), K: math.NaN(), D: math.NaN(), DReady: true},
	}

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"time": 1700000000, "k": 40},
		{"time": 1700086400, "k": 60, "d": 50},
		{"time": 1700172800, "k": null, "d": null}
	]`, string(data))

	assert.Equal(t, []string{"time", "k", "d"}, s.CsvHeader())
	assert.Equal(t, [][]string{
		{"1700000000", "40", ""},
		{"1700086400", "60", "50"},
		{"1700172800", "NaN", "NaN"},
	}, s.CsvRecords())
	assert.Equal(t, 2, s.NonFinite())
}

func TestPointSeries_CsvRecords(t *testing.T) {
	s := PointSeries{
		{Time: testTime(0), Value: 0.1},
		{Time: testTime(1), Value: math.Inf(1)},
	}

	assert.Equal(t, []string{"time", "value"}, s.CsvHeader())
	assert.Equal(t, [][]string{
		{"1700000000", "0.1"},
		{"1700086400", "+Inf"},
	}, s.CsvRecords())
}

func TestPointSeries_ClosePoints(t *testing.T) {
	s := PointSeries{{Time: testTime(0), Value: 2}, {Time: testTime(1), Value: 3}}

	assert.Equal(t, []float64{2, 3}, s.Values())
	points := s.ClosePoints()
	require.Len(t, points, 2)
	assert.Equal(t, 3.0, points[1].Close)
	assert.True(t, testTime(1).Equal(points[1].Time))
}

func TestPointSeries_CsvRecords_SubSecondTime(t *testing.T) {
	s := PointSeries{
		{Time: NewTimeFromUnix(1700000000, 0), Value: 1},
		{Time: NewTimeFromUnix(1700000000, int64(250*time.Millisecond)), Value: 2},
		{Time: NewTimeFromUnix(1700000000, int64(500*time.Millisecond)), Value: 3},
	}

	records := s.CsvRecords()
	require.Len(t, records, 3)
	assert.Equal(t, []string{"1700000000", "1"}, records[0])
	assert.Equal(t, []string{"1700000000.25", "2"}, records[1])
	assert.Equal(t, []string{"1700000000.5", "3"}, records[2])

	data, err := json.Marshal(s[1:2])
	require.NoError(t, err)
	assert.JSONEq(t, `[{"time": 1700000000.25, "value": 2}]`, string(data))
}

func TestSeries_NonFinite(t *testing.T) {
	band := BandSeries{{Time: testTime(0), Upper: math.Inf(1), Middle: math.NaN(), Lower: 1}}
	assert.Equal(t, 2, band.NonFinite())

	stoch := StochSeries{
		{Time: testTime(0), K: math.NaN(), D: math.NaN()},
		{Time: testTime(1), K: 50, D: math.Inf(-1), DReady: true},
	}
	assert.Equal(t, 2, stoch.NonFinite())
}
