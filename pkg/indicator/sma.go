package indicator

import (
	"github.com/tradeacademy/indicatorlab/pkg/types"
)

// SMA is the arithmetic mean of the close over the trailing period bars.
// The first value is at index period-1.
func SMA(bars []types.PriceBar, period int) types.PointSeries {
	return sma(types.ClosePointsOf(bars), period)
}

func sma(src []types.ClosePoint, period int) types.PointSeries {
	if period < 1 || len(src) < period {
		return nil
	}

	out := make(types.PointSeries, 0, len(src)-period+1)
	for i := period - 1; i < len(src); i++ {
		sum := 0.0
		for _, p := range src[i-period+1 : i+1] {
			sum += p.Close
		}

		out = append(out, types.Point{
			Time:  src[i].Time,
			Value: sum / float64(period),
		})
	}
	return out
}
