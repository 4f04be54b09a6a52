package indicator

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tradeacademy/indicatorlab/pkg/types"
)

const Delta = 1e-9

// fixture bars: 60 daily bars starting at 2023-11-14T22:13:20Z, generated with
// a seeded LCG random walk. The reference values in the tests were computed
// with the charting front-end's indicator library on the same bars.
func loadFixtureBars(t *testing.T) []types.PriceBar {
	t.Helper()

	data, err := os.ReadFile("testdata/bars.json")
	require.NoError(t, err)

	var bars []types.PriceBar
	require.NoError(t, json.Unmarshal(data, &bars))
	require.Len(t, bars, 60)
	return bars
}

// barsFromCloses builds daily bars where open, high and low equal the close.
func barsFromCloses(closes ...float64) []types.PriceBar {
	bars := make([]types.PriceBar, len(closes))
	for i, c := range closes {
		bars[i] = types.PriceBar{
			Time:  types.NewTimeFromUnix(1700000000+int64(i)*86400, 0),
			Open:  c,
			High:  c,
			Low:   c,
			Close: c,
		}
	}
	return bars
}

// barsFromHLC builds daily bars from (high, low, close) triples.
func barsFromHLC(hlc ...[3]float64) []types.PriceBar {
	bars := make([]types.PriceBar, len(hlc))
	for i, v := range hlc {
		bars[i] = types.PriceBar{
			Time:  types.NewTimeFromUnix(1700000000+int64(i)*86400, 0),
			Open:  v[2],
			High:  v[0],
			Low:   v[1],
			Close: v[2],
		}
	}
	return bars
}

func rising(n int, start float64) []float64 {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = start + float64(i)
	}
	return closes
}

func unix(i int) int64 {
	return 1700000000 + int64(i)*86400
}
