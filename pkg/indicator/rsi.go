package indicator

import (
	"github.com/tradeacademy/indicatorlab/pkg/types"
)

// RSI is the relative strength index with Wilder smoothing.
//
// The average gain and loss are seeded with the simple mean of the first
// period close deltas, then updated as avg = (avg*(period-1) + x) / period.
// RSI is 100 when the average loss is zero, otherwise 100 - 100/(1+RS).
// The first value is at index period.
func RSI(bars []types.PriceBar, period int) types.PointSeries {
	if period < 1 || len(bars) <= period {
		return nil
	}

	gains := make([]float64, len(bars)-1)
	losses := make([]float64, len(bars)-1)
	for i := 1; i < len(bars); i++ {
		change := bars[i].Close - bars[i-1].Close
		if change > 0 {
			gains[i-1] = change
		} else if change < 0 {
			losses[i-1] = -change
		}
	}

	p := float64(period)
	avgGain, avgLoss := 0.0, 0.0
	for i := 0; i < period; i++ {
		avgGain += gains[i]
		avgLoss += losses[i]
	}
	avgGain /= p
	avgLoss /= p

	out := make(types.PointSeries, 0, len(bars)-period)
	for i := period; i < len(bars); i++ {
		out = append(out, types.Point{
			Time:  bars[i].Time,
			Value: relativeStrength(avgGain, avgLoss),
		})

		if i < len(gains) {
			avgGain = (float64(avgGain*(p-1)) + gains[i]) / p
			avgLoss = (float64(avgLoss*(p-1)) + losses[i]) / p
		}
	}
	return out
}

func relativeStrength(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		return 100
	}

	rs := avgGain / avgLoss
	return 100 - (100 / (1 + rs))
}
