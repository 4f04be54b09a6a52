package indicator

import (
	"github.com/tradeacademy/indicatorlab/pkg/datatype/floats"
	"github.com/tradeacademy/indicatorlab/pkg/types"
)

const (
	aoFastWindow = 5
	aoSlowWindow = 34
)

// AwesomeOscillator is SMA(medianPrice, 5) - SMA(medianPrice, 34) where
// medianPrice = (high + low) / 2.
//
// The two averages are paired by position, not by time, and the result is
// truncated to the shorter (slow) one; each point carries the timestamp of the
// fast average. At least 34 bars are needed.
func AwesomeOscillator(bars []types.PriceBar) types.PointSeries {
	median := types.MedianPointsOf(bars)
	fast := sma(median, aoFastWindow)
	slow := sma(median, aoSlowWindow)

	n := min(len(fast), len(slow))
	diff := floats.Slice(fast.Values()[:n]).Sub(slow.Values())
	out := make(types.PointSeries, n)
	for i, v := range diff {
		out[i] = types.Point{Time: fast[i].Time, Value: v}
	}
	return out
}
