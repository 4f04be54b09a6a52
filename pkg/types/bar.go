package types

import (
	"fmt"
	"math"
)

// PriceBar is one OHLCV sample. Bars are ordered by ascending Time without
// duplicates; the indicator routines rely on the caller for that.
//
// Volume is optional. A zero (or NaN) volume means the source did not provide
// one, see HasVolume.
type PriceBar struct {
	Time   Time    `json:"time"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume,omitempty"`
}

// HasVolume reports whether the bar carries a usable volume value.
func (b PriceBar) HasVolume() bool {
	return b.Volume != 0 && !math.IsNaN(b.Volume)
}

// TypicalPrice returns (high + low + close) / 3.
func (b PriceBar) TypicalPrice() float64 {
	return (b.High + b.Low + b.Close) / 3
}

// MedianPrice returns (high + low) / 2.
func (b PriceBar) MedianPrice() float64 {
	return (b.High + b.Low) / 2
}

func (b PriceBar) String() string {
	return fmt.Sprintf("%s O: %f H: %f L: %f C: %f V: %f", b.Time, b.Open, b.High, b.Low, b.Close, b.Volume)
}

// BarsHaveVolume reports whether at least one bar carries a volume value.
func BarsHaveVolume(bars []PriceBar) bool {
	for _, b := range bars {
		if b.HasVolume() {
			return true
		}
	}
	return false
}

// ClosePoint is the minimal bar-like input used to chain indicators: the
// output of one routine becomes the close series of the next one.
type ClosePoint struct {
	Time  Time
	Close float64
}

// ClosePointsOf projects the bars onto their close prices.
func ClosePointsOf(bars []PriceBar) []ClosePoint {
	points := make([]ClosePoint, len(bars))
	for i, b := range bars {
		points[i] = ClosePoint{Time: b.Time, Close: b.Close}
	}
	return points
}

// MedianPointsOf projects the bars onto their median prices.
func MedianPointsOf(bars []PriceBar) []ClosePoint {
	points := make([]ClosePoint, len(bars))
	for i, b := range bars {
		points[i] = ClosePoint{Time: b.Time, Close: b.MedianPrice()}
	}
	return points
}

// ValidateBarOrder checks that the bar times are strictly ascending.
func ValidateBarOrder(bars []PriceBar) error {
	for i := 1; i < len(bars); i++ {
		if !bars[i-1].Time.Before(bars[i].Time) {
			return fmt.Errorf("bar %d at %s is not after bar %d at %s", i, bars[i].Time, i-1, bars[i-1].Time)
		}
	}
	return nil
}
