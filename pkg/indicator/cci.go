package indicator

import (
	"github.com/tradeacademy/indicatorlab/pkg/datatype/floats"
	"github.com/tradeacademy/indicatorlab/pkg/types"
)

// cciConstant scales the mean deviation so that most CCI values fall in ±100.
const cciConstant = 0.015

// CCI is the commodity channel index over the typical price:
//
//	(tp - SMA(tp)) / (0.015 * meanAbsoluteDeviation(tp))
//
// A window with a constant typical price has zero deviation and yields NaN or ±Inf.
func CCI(bars []types.PriceBar, period int) types.PointSeries {
	if period < 1 || len(bars) < period {
		return nil
	}

	tps := floats.Slice(typicalPricesOf(bars))
	out := make(types.PointSeries, 0, len(bars)-period+1)
	for i := period - 1; i < len(bars); i++ {
		window := tps.Window(i, period)
		mean := window.Mean()
		deviation := floats.MeanAbsDeviation(window, mean)

		out = append(out, types.Point{
			Time:  bars[i].Time,
			Value: (tps[i] - mean) / (cciConstant * deviation),
		})
	}
	return out
}
