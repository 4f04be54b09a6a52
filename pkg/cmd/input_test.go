package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_detectInputFormat(t *testing.T) {
	tests := []struct {
		path   string
		format string
		want   string
	}{
		{"bars.csv", "", InputFormatCSV},
		{"bars.JSON", InputFormatAuto, InputFormatJSON},
		{"exports/", InputFormatAuto, InputFormatCSV},
		{"-", InputFormatAuto, InputFormatCSV},
		{"bars.csv", InputFormatMetaTrader, InputFormatMetaTrader},
		{"bars.txt", InputFormatJSON, InputFormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.path+"/"+tt.format, func(t *testing.T) {
			assert.Equal(t, tt.want, detectInputFormat(tt.path, tt.format))
		})
	}
}

func Test_readBars(t *testing.T) {
	t.Run("csv", func(t *testing.T) {
		bars, err := readBars("testdata/bars.csv", InputFormatAuto, nil)
		require.NoError(t, err)
		require.Len(t, bars, 6)
		assert.Equal(t, int64(1700000000), bars[0].Time.Unix())
		assert.Equal(t, 10.0, bars[0].Close)
		assert.Equal(t, 1300.0, bars[5].Volume)
	})

	t.Run("json", func(t *testing.T) {
		bars, err := readBars("testdata/bars.json", InputFormatAuto, nil)
		require.NoError(t, err)
		require.Len(t, bars, 6)
		assert.Equal(t, 15.0, bars[5].Close)
		assert.Equal(t, 0.0, bars[5].Volume)
	})

	t.Run("stdin csv", func(t *testing.T) {
		stdin := strings.NewReader("1700000000,1,2,0.5,1.5,10\n1700086400,1.5,2.5,1,2,20\n")
		bars, err := readBars("-", InputFormatCSV, stdin)
		require.NoError(t, err)
		require.Len(t, bars, 2)
		assert.Equal(t, 2.0, bars[1].Close)
	})

	t.Run("stdin json", func(t *testing.T) {
		stdin := strings.NewReader(`[[1700000000,1,2,0.5,1.5,10]]`)
		bars, err := readBars("-", InputFormatJSON, stdin)
		require.NoError(t, err)
		require.Len(t, bars, 1)
		assert.Equal(t, 1.5, bars[0].Close)
	})

	t.Run("stdin metatrader", func(t *testing.T) {
		stdin := strings.NewReader("14/11/2023;22:13;1;2;0.5;1.5;10\n")
		bars, err := readBars("-", InputFormatMetaTrader, stdin)
		require.NoError(t, err)
		require.Len(t, bars, 1)
		assert.Equal(t, 0.5, bars[0].Low)
	})

	t.Run("missing input", func(t *testing.T) {
		_, err := readBars("", InputFormatAuto, nil)
		assert.Error(t, err)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := readBars("-", InputFormatCSV, strings.NewReader(""))
		assert.Error(t, err)
	})

	t.Run("descending time", func(t *testing.T) {
		stdin := strings.NewReader("1700086400,1,2,0.5,1.5,10\n1700000000,1.5,2.5,1,2,20\n")
		_, err := readBars("-", InputFormatCSV, stdin)
		assert.Error(t, err)
	})

	t.Run("unsupported format", func(t *testing.T) {
		_, err := readBars("bars.xlsx", "xlsx", nil)
		assert.Error(t, err)
	})
}

func Test_parseParams(t *testing.T) {
	tests := []struct {
		name    string
		pairs   []string
		want    map[string]float64
		wantErr bool
	}{
		{"none", nil, map[string]float64{}, false},
		{"single", []string{"period=14"}, map[string]float64{"period": 14}, false},
		{"spaces", []string{" deviation = 2.5 "}, map[string]float64{"deviation": 2.5}, false},
		{"last wins", []string{"period=5", "period=7"}, map[string]float64{"period": 7}, false},
		{"no value", []string{"period"}, nil, true},
		{"no name", []string{"=3"}, nil, true},
		{"not a number", []string{"period=fast"}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseParams(tt.pairs)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
