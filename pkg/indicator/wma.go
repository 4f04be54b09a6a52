package indicator

import (
	"github.com/tradeacademy/indicatorlab/pkg/types"
)

// WMA is the linearly weighted moving average: the newest bar of the window
// has weight period, the oldest weight 1.
func WMA(bars []types.PriceBar, period int) types.PointSeries {
	if period < 1 || len(bars) < period {
		return nil
	}

	weightSum := 0.0
	for w := 1; w <= period; w++ {
		weightSum += float64(w)
	}

	out := make(types.PointSeries, 0, len(bars)-period+1)
	for i := period - 1; i < len(bars); i++ {
		weighted := 0.0
		// walk from the newest bar backwards
		for j := 0; j < period; j++ {
			weighted += float64(bars[i-j].Close * float64(period-j))
		}

		out = append(out, types.Point{
			Time:  bars[i].Time,
			Value: weighted / weightSum,
		})
	}
	return out
}
