package indicator

import (
	"github.com/tradeacademy/indicatorlab/pkg/datatype/floats"
	"github.com/tradeacademy/indicatorlab/pkg/types"
)

// MACD computes the moving average convergence divergence:
//
//	macd      = EMA(close, fast) - EMA(close, slow)
//	signal    = EMA(macd, signal)
//	histogram = macd - signal
//
// Each stage is truncated to the shortest of its inputs. All the EMAs are
// seeded, so for valid periods every stage has the input length.
func MACD(bars []types.PriceBar, fastPeriod, slowPeriod, signalPeriod int) types.MACDSeries {
	src := types.ClosePointsOf(bars)
	fast := ema(src, fastPeriod)
	slow := ema(src, slowPeriod)

	n := min(len(fast), len(slow))
	diff := floats.Slice(fast.Values()[:n]).Sub(slow.Values())
	macdLine := make(types.PointSeries, n)
	for i, v := range diff {
		macdLine[i] = types.Point{Time: fast[i].Time, Value: v}
	}

	signalLine := ema(macdLine.ClosePoints(), signalPeriod)

	n = min(len(macdLine), len(signalLine))
	out := make(types.MACDSeries, n)
	for i := 0; i < n; i++ {
		out[i] = types.MACDPoint{
			Time:      macdLine[i].Time,
			MACD:      macdLine[i].Value,
			Signal:    signalLine[i].Value,
			Histogram: macdLine[i].Value - signalLine[i].Value,
		}
	}
	return out
}
