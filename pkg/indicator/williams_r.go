package indicator

import (
	"github.com/tradeacademy/indicatorlab/pkg/types"
)

// WilliamsR computes Williams %R in the range [-100, 0]:
//
//	(highestHigh - close) / (highestHigh - lowestLow) * -100
func WilliamsR(bars []types.PriceBar, period int) types.PointSeries {
	if period < 1 || len(bars) < period {
		return nil
	}

	highs, lows := highsOf(bars), lowsOf(bars)

	out := make(types.PointSeries, 0, len(bars)-period+1)
	for i := period - 1; i < len(bars); i++ {
		highest := highs.Window(i, period).Max()
		lowest := lows.Window(i, period).Min()

		out = append(out, types.Point{
			Time:  bars[i].Time,
			Value: ((highest - bars[i].Close) / (highest - lowest)) * -100,
		})
	}
	return out
}
