package indicator

import (
	"github.com/tradeacademy/indicatorlab/pkg/types"
)

/*
OBV implements the on-balance volume indicator.

It starts at 0 on the first bar, then adds the bar volume when the close
rises, subtracts it when the close falls and carries the previous value when
the close is unchanged.

On-Balance Volume (OBV) Definition
- https://www.investopedia.com/terms/o/onbalancevolume.asp
*/
func OBV(bars []types.PriceBar) types.PointSeries {
	if len(bars) == 0 {
		return nil
	}

	out := make(types.PointSeries, len(bars))
	out[0] = types.Point{Time: bars[0].Time, Value: 0}

	obv := 0.0
	for i := 1; i < len(bars); i++ {
		v := volumeOf(bars[i])
		if bars[i].Close > bars[i-1].Close {
			obv += v
		} else if bars[i].Close < bars[i-1].Close {
			obv -= v
		}

		out[i] = types.Point{Time: bars[i].Time, Value: obv}
	}
	return out
}
