package indicator

import (
	"github.com/tradeacademy/indicatorlab/pkg/types"
)

// AccumulationDistribution is the running sum of CLV * volume where the close
// location value is
//
//	CLV = ((close - low) - (high - close)) / (high - low)
//
// A bar with high == low makes CLV NaN or ±Inf and the sum stays degenerate
// from there on.
func AccumulationDistribution(bars []types.PriceBar) types.PointSeries {
	if len(bars) == 0 {
		return nil
	}

	ad := 0.0
	out := make(types.PointSeries, len(bars))
	for i, b := range bars {
		clv := ((b.Close - b.Low) - (b.High - b.Close)) / (b.High - b.Low)
		ad += float64(clv * volumeOf(b))

		out[i] = types.Point{Time: b.Time, Value: ad}
	}
	return out
}
