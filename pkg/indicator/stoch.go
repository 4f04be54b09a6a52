package indicator

import (
	"github.com/tradeacademy/indicatorlab/pkg/datatype/floats"
	"github.com/tradeacademy/indicatorlab/pkg/types"
)

// Stochastic computes the stochastic oscillator.
//
//	%K = (close - lowestLow) / (highestHigh - lowestLow) * 100 over kPeriod bars
//	%D = SMA(%K, dPeriod)
//
// %D is only set (DReady) from the dPeriod-th %K value on. A flat window makes
// the %K denominator zero and the result NaN or ±Inf.
func Stochastic(bars []types.PriceBar, kPeriod, dPeriod int) types.StochSeries {
	if kPeriod < 1 || len(bars) < kPeriod {
		return nil
	}

	highs, lows := highsOf(bars), lowsOf(bars)

	out := make(types.StochSeries, 0, len(bars)-kPeriod+1)
	for i := kPeriod - 1; i < len(bars); i++ {
		lowest := lows.Window(i, kPeriod).Min()
		highest := highs.Window(i, kPeriod).Max()

		out = append(out, types.StochPoint{
			Time: bars[i].Time,
			K:    ((bars[i].Close - lowest) / (highest - lowest)) * 100,
		})
	}

	if dPeriod < 1 {
		return out
	}

	ks := make(floats.Slice, len(out))
	for i, p := range out {
		ks[i] = p.K
	}

	for i := dPeriod - 1; i < len(out); i++ {
		out[i].D = ks.Window(i, dPeriod).Mean()
		out[i].DReady = true
	}
	return out
}
