package indicator

import (
	"github.com/tradeacademy/indicatorlab/pkg/types"
)

// trixScale turns the one-bar rate of change of the triple EMA into basis points.
const trixScale = 10000

// TRIX is the one-bar rate of change of the triple smoothed EMA, scaled by
// 10000. It starts one bar after the triple EMA does.
func TRIX(bars []types.PriceBar, period int) types.PointSeries {
	_, _, ema3 := tripleEMA(types.ClosePointsOf(bars), period)
	if len(ema3) < 2 {
		return nil
	}

	out := make(types.PointSeries, 0, len(ema3)-1)
	for i := 1; i < len(ema3); i++ {
		prev := ema3[i-1].Value
		out = append(out, types.Point{
			Time:  ema3[i].Time,
			Value: ((ema3[i].Value - prev) / prev) * trixScale,
		})
	}
	return out
}
