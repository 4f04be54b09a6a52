package catalog

import (
	"github.com/tradeacademy/indicatorlab/pkg/indicator"
	"github.com/tradeacademy/indicatorlab/pkg/types"
)

func periodParam(def, min, max float64) Parameter {
	return Parameter{Name: "period", Type: ParamTypeInt, Default: def, Min: min, Max: max}
}

func withPeriod(fn func([]types.PriceBar, int) types.PointSeries) CalculateFunc {
	return func(bars []types.PriceBar, params []float64) types.Series {
		return fn(bars, int(params[0]))
	}
}

func withoutParams(fn func([]types.PriceBar) types.PointSeries) CalculateFunc {
	return func(bars []types.PriceBar, _ []float64) types.Series {
		return fn(bars)
	}
}

func withPeriodAndWidth(fn func([]types.PriceBar, int, float64) types.BandSeries) CalculateFunc {
	return func(bars []types.PriceBar, params []float64) types.Series {
		return fn(bars, int(params[0]), params[1])
	}
}

// builtins returns the built-in definitions in catalog order.
func builtins() []*Definition {
	return []*Definition{
		// trend
		{
			ID:          "sma",
			Name:        "Simple Moving Average",
			Description: "A basic moving average that smooths price data",
			Category:    CategoryTrend,
			Params:      []Parameter{periodParam(20, 1, 200)},
			Func:        withPeriod(indicator.SMA),
		},
		{
			ID:          "ema",
			Name:        "Exponential Moving Average",
			Description: "A moving average that gives more weight to recent prices",
			Category:    CategoryTrend,
			Params:      []Parameter{periodParam(20, 1, 200)},
			Func:        withPeriod(indicator.EMA),
		},
		{
			ID:          "wma",
			Name:        "Weighted Moving Average",
			Description: "A moving average that assigns different weights to data points",
			Category:    CategoryTrend,
			Params:      []Parameter{periodParam(20, 1, 200)},
			Func:        withPeriod(indicator.WMA),
		},
		{
			ID:          "dema",
			Name:        "Double Exponential Moving Average",
			Description: "A double-smoothed exponential moving average",
			Category:    CategoryTrend,
			Params:      []Parameter{periodParam(20, 1, 200)},
			Func:        withPeriod(indicator.DEMA),
		},
		{
			ID:          "tema",
			Name:        "Triple Exponential Moving Average",
			Description: "A triple-smoothed exponential moving average",
			Category:    CategoryTrend,
			Params:      []Parameter{periodParam(20, 1, 200)},
			Func:        withPeriod(indicator.TEMA),
		},

		// momentum
		{
			ID:          "rsi",
			Name:        "Relative Strength Index",
			Description: "Measures the speed and magnitude of price changes",
			Category:    CategoryMomentum,
			Params:      []Parameter{periodParam(14, 2, 50)},
			Func:        withPeriod(indicator.RSI),
		},
		{
			ID:          "macd",
			Name:        "MACD",
			Description: "Moving Average Convergence Divergence",
			Category:    CategoryMomentum,
			Params: []Parameter{
				{Name: "fastPeriod", Type: ParamTypeInt, Default: 12, Min: 1, Max: 50},
				{Name: "slowPeriod", Type: ParamTypeInt, Default: 26, Min: 1, Max: 100},
				{Name: "signalPeriod", Type: ParamTypeInt, Default: 9, Min: 1, Max: 50},
			},
			Func: func(bars []types.PriceBar, params []float64) types.Series {
				return indicator.MACD(bars, int(params[0]), int(params[1]), int(params[2]))
			},
		},
		{
			ID:          "stoch",
			Name:        "Stochastic Oscillator",
			Description: "Compares closing price to price range over time",
			Category:    CategoryMomentum,
			Params: []Parameter{
				{Name: "kPeriod", Type: ParamTypeInt, Default: 14, Min: 1, Max: 50},
				{Name: "dPeriod", Type: ParamTypeInt, Default: 3, Min: 1, Max: 20},
			},
			Func: func(bars []types.PriceBar, params []float64) types.Series {
				return indicator.Stochastic(bars, int(params[0]), int(params[1]))
			},
		},
		{
			ID:          "cci",
			Name:        "Commodity Channel Index",
			Description: "Measures the current price level relative to an average price level",
			Category:    CategoryMomentum,
			Params:      []Parameter{periodParam(20, 5, 50)},
			Func:        withPeriod(indicator.CCI),
		},
		{
			ID:          "williams",
			Name:        "Williams %R",
			Description: "A momentum indicator that measures overbought and oversold levels",
			Category:    CategoryMomentum,
			Params:      []Parameter{periodParam(14, 1, 50)},
			Func:        withPeriod(indicator.WilliamsR),
		},

		// volatility
		{
			ID:          "bb",
			Name:        "Bollinger Bands",
			Description: "Price channels based on standard deviation",
			Category:    CategoryVolatility,
			Params: []Parameter{
				periodParam(20, 5, 50),
				{Name: "deviation", Type: ParamTypeFloat, Default: 2, Min: 0.5, Max: 4, Step: 0.1},
			},
			Func: withPeriodAndWidth(indicator.BollingerBands),
		},
		{
			ID:          "atr",
			Name:        "Average True Range",
			Description: "Measures market volatility",
			Category:    CategoryVolatility,
			Params:      []Parameter{periodParam(14, 1, 50)},
			Func:        withPeriod(indicator.ATR),
		},
		{
			ID:          "keltner",
			Name:        "Keltner Channels",
			Description: "Volatility-based envelopes set above and below an exponential moving average",
			Category:    CategoryVolatility,
			Params: []Parameter{
				periodParam(20, 5, 50),
				{Name: "multiplier", Type: ParamTypeFloat, Default: 2, Min: 0.5, Max: 4, Step: 0.1},
			},
			Func: withPeriodAndWidth(indicator.KeltnerChannels),
		},
		{
			ID:          "donchian",
			Name:        "Donchian Channels",
			Description: "Price channels based on highest high and lowest low",
			Category:    CategoryVolatility,
			Params:      []Parameter{periodParam(20, 5, 100)},
			Func: func(bars []types.PriceBar, params []float64) types.Series {
				return indicator.DonchianChannels(bars, int(params[0]))
			},
		},

		// volume
		{
			ID:          "vwap",
			Name:        "Volume Weighted Average Price",
			Description: "Average price weighted by volume",
			Category:    CategoryVolume,
			UsesVolume:  true,
			Func:        withoutParams(indicator.VWAP),
		},
		{
			ID:          "obv",
			Name:        "On Balance Volume",
			Description: "Cumulative volume based on price direction",
			Category:    CategoryVolume,
			UsesVolume:  true,
			Func:        withoutParams(indicator.OBV),
		},
		{
			ID:          "ad",
			Name:        "Accumulation/Distribution",
			Description: "Volume flow indicator",
			Category:    CategoryVolume,
			UsesVolume:  true,
			Func:        withoutParams(indicator.AccumulationDistribution),
		},
		{
			ID:          "mfi",
			Name:        "Money Flow Index",
			Description: "Volume-weighted RSI",
			Category:    CategoryVolume,
			Params:      []Parameter{periodParam(14, 2, 50)},
			UsesVolume:  true,
			Func:        withPeriod(indicator.MFI),
		},

		// oscillators
		{
			ID:          "ao",
			Name:        "Awesome Oscillator",
			Description: "Momentum oscillator based on moving averages",
			Category:    CategoryOscillator,
			Func:        withoutParams(indicator.AwesomeOscillator),
		},
		{
			ID:          "roc",
			Name:        "Rate of Change",
			Description: "Momentum oscillator measuring percentage change",
			Category:    CategoryOscillator,
			Params:      []Parameter{periodParam(12, 1, 50)},
			Func:        withPeriod(indicator.ROC),
		},
		{
			ID:          "trix",
			Name:        "TRIX",
			Description: "Triple smoothed exponential moving average oscillator",
			Category:    CategoryOscillator,
			Params:      []Parameter{periodParam(14, 5, 50)},
			Func:        withPeriod(indicator.TRIX),
		},
		{
			ID:          "dpo",
			Name:        "Detrended Price Oscillator",
			Description: "Removes trend to highlight cycles",
			Category:    CategoryOscillator,
			Params:      []Parameter{periodParam(20, 5, 50)},
			Func:        withPeriod(indicator.DPO),
		},
	}
}
