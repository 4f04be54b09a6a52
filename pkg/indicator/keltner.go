package indicator

import (
	"github.com/tradeacademy/indicatorlab/pkg/types"
)

// KeltnerChannels computes the channel around EMA(close, period):
//
//	upper = EMA + multiplier * ATR(period)
//	lower = EMA - multiplier * ATR(period)
//
// The EMA and ATR series are paired by position and the result is truncated
// to the shorter of the two (the ATR). Since the ATR starts period bars later,
// point i combines the EMA at bar i with the ATR at bar i+period and carries
// the EMA timestamp.
func KeltnerChannels(bars []types.PriceBar, period int, multiplier float64) types.BandSeries {
	middle := EMA(bars, period)
	atr := ATR(bars, period)

	n := min(len(middle), len(atr))
	out := make(types.BandSeries, n)
	for i := 0; i < n; i++ {
		out[i] = types.BandPoint{
			Time:   middle[i].Time,
			Upper:  middle[i].Value + float64(multiplier*atr[i].Value),
			Middle: middle[i].Value,
			Lower:  middle[i].Value - float64(multiplier*atr[i].Value),
		}
	}
	return out
}
