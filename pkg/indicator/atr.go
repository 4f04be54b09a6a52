package indicator

import (
	"math"

	"github.com/tradeacademy/indicatorlab/pkg/datatype/floats"
	"github.com/tradeacademy/indicatorlab/pkg/types"
)

// ATR is the average true range.
//
// The true range of bar i (i >= 1) is max(high-low, |high-prevClose|, |low-prevClose|).
// The first ATR is the simple mean of the first period true ranges and is
// stamped with bars[period].Time; later values use Wilder smoothing. At least
// period+1 bars are needed.
func ATR(bars []types.PriceBar, period int) types.PointSeries {
	if period < 1 || len(bars) <= period {
		return nil
	}

	trueRanges := trueRangesOf(bars)
	p := float64(period)

	atr := floats.Slice(trueRanges[:period]).Mean()
	out := make(types.PointSeries, 0, len(trueRanges)-period+1)
	out = append(out, types.Point{Time: bars[period].Time, Value: atr})

	for i := period; i < len(trueRanges); i++ {
		atr = (float64(atr*(p-1)) + trueRanges[i]) / p
		out = append(out, types.Point{Time: bars[i+1].Time, Value: atr})
	}
	return out
}

// trueRangesOf returns len(bars)-1 true ranges, element i belongs to bars[i+1].
func trueRangesOf(bars []types.PriceBar) []float64 {
	if len(bars) < 2 {
		return nil
	}

	ranges := make([]float64, len(bars)-1)
	for i := 1; i < len(bars); i++ {
		prevClose := bars[i-1].Close
		ranges[i-1] = floats.Max3(
			bars[i].High-bars[i].Low,
			math.Abs(bars[i].High-prevClose),
			math.Abs(bars[i].Low-prevClose),
		)
	}
	return ranges
}
