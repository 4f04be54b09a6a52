// Package indicator implements the technical indicator routines.
//
// Every routine is a pure function of its input bars and parameters: it walks
// the whole slice, allocates a fresh output series and keeps no state between
// calls. Input shorter than the warm-up window (or a non-positive period)
// yields an empty series. Numerically degenerate windows (zero price range,
// zero deviation, zero money flow) are not guarded: NaN and ±Inf values flow
// into the output as they are.
//
// Formulas keep a fixed evaluation order. Products that feed an addition are
// wrapped in float64 conversions so the compiler cannot fuse them into FMA
// instructions.
package indicator

import (
	"math"

	"github.com/tradeacademy/indicatorlab/pkg/datatype/floats"
	"github.com/tradeacademy/indicatorlab/pkg/types"
)

// DefaultVolume replaces the volume of bars that carry none (zero or NaN).
//
// This is a compatibility placeholder inherited from the charting front-end,
// whose sample candles never had volume. It fabricates data: VWAP, OBV, A/D
// and MFI computed over bars without volume are not meaningful. Callers can
// detect the situation with types.BarsHaveVolume.
const DefaultVolume = 1_000_000.0

func volumeOf(b types.PriceBar) float64 {
	if b.Volume == 0 || math.IsNaN(b.Volume) {
		return DefaultVolume
	}
	return b.Volume
}

func closesOf(bars []types.PriceBar) []float64 {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	return closes
}

func typicalPricesOf(bars []types.PriceBar) []float64 {
	prices := make([]float64, len(bars))
	for i, b := range bars {
		prices[i] = b.TypicalPrice()
	}
	return prices
}

func highsOf(bars []types.PriceBar) floats.Slice {
	highs := make(floats.Slice, len(bars))
	for i, b := range bars {
		highs[i] = b.High
	}
	return highs
}

func lowsOf(bars []types.PriceBar) floats.Slice {
	lows := make(floats.Slice, len(bars))
	for i, b := range bars {
		lows[i] = b.Low
	}
	return lows
}
