package indicator

import (
	"github.com/tradeacademy/indicatorlab/pkg/types"
)

// VWAP is the cumulative volume weighted average of the typical price, from
// the first bar of the input to each bar. It never resets inside a call.
func VWAP(bars []types.PriceBar) types.PointSeries {
	if len(bars) == 0 {
		return nil
	}

	var priceVolume, volume float64
	out := make(types.PointSeries, len(bars))
	for i, b := range bars {
		v := volumeOf(b)
		priceVolume += float64(b.TypicalPrice() * v)
		volume += v

		out[i] = types.Point{
			Time:  b.Time,
			Value: priceVolume / volume,
		}
	}
	return out
}
