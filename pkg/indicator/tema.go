package indicator

import (
	"github.com/tradeacademy/indicatorlab/pkg/types"
)

// TEMA is the triple exponential moving average, 3*EMA1 - 3*EMA2 + EMA3.
func TEMA(bars []types.PriceBar, period int) types.PointSeries {
	ema1, ema2, ema3 := tripleEMA(types.ClosePointsOf(bars), period)

	n := min(len(ema1), len(ema2), len(ema3))
	out := make(types.PointSeries, n)
	for i := 0; i < n; i++ {
		out[i] = types.Point{
			Time:  ema1[i].Time,
			Value: float64(3*ema1[i].Value) - float64(3*ema2[i].Value) + ema3[i].Value,
		}
	}
	return out
}

// tripleEMA applies the seeded EMA three times in sequence.
func tripleEMA(src []types.ClosePoint, period int) (ema1, ema2, ema3 types.PointSeries) {
	ema1 = ema(src, period)
	ema2 = ema(ema1.ClosePoints(), period)
	ema3 = ema(ema2.ClosePoints(), period)
	return ema1, ema2, ema3
}
