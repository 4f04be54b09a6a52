package indicator

import (
	"github.com/tradeacademy/indicatorlab/pkg/types"
)

// DEMA is the double exponential moving average, 2*EMA1 - EMA2 where EMA2 is
// the EMA of EMA1.
func DEMA(bars []types.PriceBar, period int) types.PointSeries {
	ema1 := ema(types.ClosePointsOf(bars), period)
	ema2 := ema(ema1.ClosePoints(), period)

	n := min(len(ema1), len(ema2))
	out := make(types.PointSeries, n)
	for i := 0; i < n; i++ {
		out[i] = types.Point{
			Time:  ema1[i].Time,
			Value: (2 * ema1[i].Value) - ema2[i].Value,
		}
	}
	return out
}
