package indicator

import (
	"github.com/tradeacademy/indicatorlab/pkg/types"
)

// MFI is the money flow index, a volume weighted RSI.
//
// The raw money flow of a bar is typicalPrice * volume. Over each window of
// period bars the flow of a bar counts as positive when its typical price rose
// against the previous bar and as negative when it fell. The first value is at
// index period.
//
// Unlike RSI there is no zero guard: with no negative flow the ratio is +Inf
// and MFI is 100, with no flow at all it is NaN.
func MFI(bars []types.PriceBar, period int) types.PointSeries {
	if period < 1 || len(bars) <= period {
		return nil
	}

	tps := typicalPricesOf(bars)
	flows := make([]float64, len(bars))
	for i, b := range bars {
		flows[i] = tps[i] * volumeOf(b)
	}

	out := make(types.PointSeries, 0, len(bars)-period)
	for i := period; i < len(bars); i++ {
		var positive, negative float64
		for j := i - period + 1; j <= i; j++ {
			if tps[j] > tps[j-1] {
				positive += flows[j]
			} else if tps[j] < tps[j-1] {
				negative += flows[j]
			}
		}

		ratio := positive / negative
		out = append(out, types.Point{
			Time:  bars[i].Time,
			Value: 100 - (100 / (1 + ratio)),
		})
	}
	return out
}
