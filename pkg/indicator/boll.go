package indicator

import (
	"math"

	"github.com/tradeacademy/indicatorlab/pkg/datatype/floats"
	"github.com/tradeacademy/indicatorlab/pkg/types"
)

// BollingerBands computes the bands around SMA(close, period):
//
//	middle = SMA(close, period)
//	band   = deviation * populationStdDev(close, period)
//	upper  = middle + band, lower = middle - band
func BollingerBands(bars []types.PriceBar, period int, deviation float64) types.BandSeries {
	middle := SMA(bars, period)
	if len(middle) == 0 {
		return nil
	}

	closes := floats.Slice(closesOf(bars))
	out := make(types.BandSeries, len(middle))
	for i, m := range middle {
		window := closes.Window(i+period-1, period)
		stdDev := math.Sqrt(floats.PopVariance(window, m.Value))

		out[i] = types.BandPoint{
			Time:   m.Time,
			Upper:  m.Value + float64(deviation*stdDev),
			Middle: m.Value,
			Lower:  m.Value - float64(deviation*stdDev),
		}
	}
	return out
}
