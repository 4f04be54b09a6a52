package indicator

import (
	"github.com/tradeacademy/indicatorlab/pkg/types"
)

// ROC is the percent rate of change of the close against the close period
// bars earlier. The first value is at index period.
func ROC(bars []types.PriceBar, period int) types.PointSeries {
	if period < 1 || len(bars) <= period {
		return nil
	}

	out := make(types.PointSeries, 0, len(bars)-period)
	for i := period; i < len(bars); i++ {
		prev := bars[i-period].Close
		out = append(out, types.Point{
			Time:  bars[i].Time,
			Value: ((bars[i].Close - prev) / prev) * 100,
		})
	}
	return out
}
