package indicator

import (
	"github.com/tradeacademy/indicatorlab/pkg/types"
)

// DPO is the detrended price oscillator, close - SMA(close, period), stamped
// at the bar the SMA ends on.
//
// A point is kept only when the bar floor(period/2)+1 positions after it
// exists, so the last floor(period/2)+1 windows are dropped.
func DPO(bars []types.PriceBar, period int) types.PointSeries {
	average := SMA(bars, period)
	shift := period/2 + 1

	out := make(types.PointSeries, 0, len(average))
	for i, a := range average {
		index := i + period - 1
		if index+shift >= len(bars) {
			break
		}

		out = append(out, types.Point{
			Time:  bars[index].Time,
			Value: bars[index].Close - a.Value,
		})
	}
	return out
}
