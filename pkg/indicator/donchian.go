package indicator

import (
	"github.com/tradeacademy/indicatorlab/pkg/types"
)

// DonchianChannels is the highest high and lowest low of the trailing period
// bars, with the middle line half way between them.
func DonchianChannels(bars []types.PriceBar, period int) types.BandSeries {
	if period < 1 || len(bars) < period {
		return nil
	}

	highs, lows := highsOf(bars), lowsOf(bars)

	out := make(types.BandSeries, 0, len(bars)-period+1)
	for i := period - 1; i < len(bars); i++ {
		upper := highs.Window(i, period).Max()
		lower := lows.Window(i, period).Min()

		out = append(out, types.BandPoint{
			Time:   bars[i].Time,
			Upper:  upper,
			Middle: (upper + lower) / 2,
			Lower:  lower,
		})
	}
	return out
}
