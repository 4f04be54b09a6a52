package csvsource

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradeacademy/indicatorlab/pkg/types"
)

var assertBarEq = func(t *testing.T, exp, act types.PriceBar) {
	assert.Equal(t, exp.Time.Unix(), act.Time.Unix())
	assert.Equal(t, exp.Open, act.Open)
	assert.Equal(t, exp.High, act.High)
	assert.Equal(t, exp.Low, act.Low)
	assert.Equal(t, exp.Close, act.Close)
	assert.Equal(t, exp.Volume, act.Volume)
}

func TestCSVBarReader_ReadWithBinanceDecoder(t *testing.T) {
	tests := []struct {
		name string
		give string
		want types.PriceBar
		err  error
	}{
		{
			name: "Read DOHLCV",
			give: "1609459200000,28923.63000000,29031.34000000,28690.17000000,28995.13000000,2311.81144500",
			want: types.PriceBar{
				Time:   types.NewTimeFromUnix(1609459200, 0),
				Open:   28923.63,
				High:   29031.34,
				Low:    28690.17,
				Close:  28995.13,
				Volume: 2311.811445},
			err: nil,
		},
		{
			name: "Read DOHLC",
			give: "1609459200,28923.63,29031.34,28690.17,28995.13",
			want: types.PriceBar{
				Time:  types.NewTimeFromUnix(1609459200, 0),
				Open:  28923.63,
				High:  29031.34,
				Low:   28690.17,
				Close: 28995.13},
			err: nil,
		},
		{
			name: "Read date time",
			give: "2021-01-01T00:00:00Z,1,2,0.5,1.5,",
			want: types.PriceBar{
				Time:  types.NewTimeFromUnix(1609459200, 0),
				Open:  1,
				High:  2,
				Low:   0.5,
				Close: 1.5},
			err: nil,
		},
		{
			name: "Not enough columns",
			give: "1609459200000,28923.63000000,29031.34000000",
			want: types.PriceBar{},
			err:  ErrNotEnoughColumns,
		},
		{
			name: "Invalid time format",
			give: "23/12/2021,28923.63000000,29031.34000000,28690.17000000,28995.13000000",
			want: types.PriceBar{},
			err:  ErrInvalidTimeFormat,
		},
		{
			name: "Invalid price format",
			give: "1609459200000,sixty,29031.34000000,28690.17000000,28995.13000000",
			want: types.PriceBar{},
			err:  ErrInvalidPriceFormat,
		},
		{
			name: "Invalid volume format",
			give: "1609459200000,28923.63000000,29031.34000000,28690.17000000,28995.13000000,vol",
			want: types.PriceBar{},
			err:  ErrInvalidVolumeFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := NewBinanceCSVBarReader(csv.NewReader(strings.NewReader(tt.give)))
			bar, err := reader.Read()
			assert.Equal(t, tt.err, err)
			assertBarEq(t, tt.want, bar)
		})
	}
}

func TestCSVBarReader_ReadAllWithDefaultDecoder(t *testing.T) {
	records := []string{
		"time,open,high,low,close,volume",
		"1609459200000,28923.63000000,29031.34000000,28690.17000000,28995.13000000,2311.81144500",
		"1609459300000,28928.63000000,30031.34000000,22690.17000000,28495.13000000",
	}
	reader := NewCSVBarReader(csv.NewReader(strings.NewReader(strings.Join(records, "\n"))))
	bars, err := reader.ReadAll()
	require.NoError(t, err)
	require.Len(t, bars, 2)
	assert.True(t, bars[0].HasVolume())
	assert.False(t, bars[1].HasVolume())
}

func TestCSVBarReader_ReadAllReportsLine(t *testing.T) {
	records := []string{
		"1609459200,1,2,0.5,1.5",
		"1609459260,1,2,0.5",
	}
	reader := NewCSVBarReader(csv.NewReader(strings.NewReader(strings.Join(records, "\n"))))
	_, err := reader.ReadAll()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotEnoughColumns))
	assert.Contains(t, err.Error(), "line 2")
}

func TestCSVBarReader_ReadWithMetaTraderDecoder(t *testing.T) {
	tests := []struct {
		name string
		give string
		want types.PriceBar
		err  error
	}{
		{
			name: "Read DOHLCV",
			give: "11/12/2008;16:00;779.527679;780.964756;777.527679;779.964756;5",
			want: types.PriceBar{
				Time:   types.NewTimeFromUnix(time.Date(2008, 12, 11, 16, 0, 0, 0, time.UTC).Unix(), 0),
				Open:   779.527679,
				High:   780.964756,
				Low:    777.527679,
				Close:  779.964756,
				Volume: 5},
			err: nil,
		},
		{
			name: "Read DOHLC",
			give: "11/12/2008;16:00;779.527679;780.964756;777.527679;779.964756",
			want: types.PriceBar{
				Time:  types.NewTimeFromUnix(time.Date(2008, 12, 11, 16, 0, 0, 0, time.UTC).Unix(), 0),
				Open:  779.527679,
				High:  780.964756,
				Low:   777.527679,
				Close: 779.964756},
			err: nil,
		},
		{
			name: "Not enough columns",
			give: "1609459200000;28923.63000000;29031.34000000",
			want: types.PriceBar{},
			err:  ErrNotEnoughColumns,
		},
		{
			name: "Invalid time format",
			give: "23/12/2021;t;28923.63000000;29031.34000000;28690.17000000;28995.13000000",
			want: types.PriceBar{},
			err:  ErrInvalidTimeFormat,
		},
		{
			name: "Invalid price format",
			give: "11/12/2008;00:00;sixty;29031.34000000;28690.17000000;28995.13000000",
			want: types.PriceBar{},
			err:  ErrInvalidPriceFormat,
		},
		{
			name: "Invalid volume format",
			give: "11/12/2008;00:00;779.527679;780.964756;777.527679;779.964756;vol",
			want: types.PriceBar{},
			err:  ErrInvalidVolumeFormat,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := NewMetaTraderCSVBarReader(csv.NewReader(strings.NewReader(tt.give)))
			bar, err := reader.Read()
			assert.Equal(t, tt.err, err)
			assertBarEq(t, tt.want, bar)
		})
	}
}
