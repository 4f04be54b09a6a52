package indicator

import (
	"github.com/tradeacademy/indicatorlab/pkg/types"
)

// EMA is the exponential moving average seeded with the first close:
//
//	ema[0] = close[0]
//	ema[i] = close[i]*k + ema[i-1]*(1-k), k = 2/(period+1)
//
// The output has the same length as the input.
func EMA(bars []types.PriceBar, period int) types.PointSeries {
	return ema(types.ClosePointsOf(bars), period)
}

func ema(src []types.ClosePoint, period int) types.PointSeries {
	if period < 1 || len(src) == 0 {
		return nil
	}

	multiplier := 2 / float64(period+1)
	out := make(types.PointSeries, len(src))

	value := src[0].Close
	out[0] = types.Point{Time: src[0].Time, Value: value}
	for i := 1; i < len(src); i++ {
		value = float64(src[i].Close*multiplier) + float64(value*(1-multiplier))
		out[i] = types.Point{Time: src[i].Time, Value: value}
	}
	return out
}
