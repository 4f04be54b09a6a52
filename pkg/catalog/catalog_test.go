package catalog

import (
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradeacademy/indicatorlab/pkg/types"
)

func ids(defs []*Definition) []string {
	out := make([]string, len(defs))
	for i, d := range defs {
		out[i] = d.ID
	}
	return out
}

func testBars(n int) []types.PriceBar {
	bars := make([]types.PriceBar, n)
	for i := range bars {
		c := 100 + float64(i%7) - float64(i%3)
		bars[i] = types.PriceBar{
			Time:   types.NewTimeFromUnix(1700000000+int64(i)*60, 0),
			Open:   c,
			High:   c + 1,
			Low:    c - 1,
			Close:  c,
			Volume: 10,
		}
	}
	return bars
}

func TestCatalog_ByCategory(t *testing.T) {
	c := New()

	tests := []struct {
		category string
		want     []string
	}{
		{"trend", []string{"sma", "ema", "wma", "dema", "tema"}},
		{"momentum", []string{"rsi", "macd", "stoch", "cci", "williams"}},
		{"volatility", []string{"bb", "atr", "keltner", "donchian"}},
		{"volume", []string{"vwap", "obv", "ad", "mfi"}},
		{"oscillator", []string{"ao", "roc", "trix", "dpo"}},
		{"oscillators", []string{"ao", "roc", "trix", "dpo"}},
		{"Trend", []string{"sma", "ema", "wma", "dema", "tema"}},
		{"unknown", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(c.ByCategory(tt.category)))
		})
	}

	all := c.ByCategory("all")
	assert.Len(t, all, 22)
	assert.Equal(t, "sma", all[0].ID)
	assert.Equal(t, "dpo", all[21].ID)
}

func TestCatalog_Get(t *testing.T) {
	c := New()

	d, ok := c.Get("bb")
	require.True(t, ok)
	assert.Equal(t, "Bollinger Bands", d.Name)
	assert.Equal(t, CategoryVolatility, d.Category)
	require.Len(t, d.Params, 2)
	assert.Equal(t, 0.1, d.Params[1].Step)

	_, ok = c.Get("nope")
	assert.False(t, ok)
}

func TestCatalog_BuiltinsAreComplete(t *testing.T) {
	bars := testBars(80)
	for _, d := range New().All() {
		t.Run(d.ID, func(t *testing.T) {
			assert.NotEmpty(t, d.Name)
			assert.NotEmpty(t, d.Description)
			assert.NotNil(t, d.Func)
			for _, p := range d.Params {
				assert.NoError(t, p.Validate(p.Default), p.Name)
			}

			series := d.Calculate(bars, d.Defaults())
			assert.Greater(t, series.Len(), 0)
		})
	}
}

func TestCatalog_AddCustom(t *testing.T) {
	c := New()
	sma, _ := c.Get("sma")

	first := sma.derive("my-ma")
	first.Name = "first"
	require.NoError(t, c.AddCustom(first))

	other := sma.derive("other")
	require.NoError(t, c.AddCustom(other))

	second := sma.derive("my-ma")
	second.Name = "second"
	require.NoError(t, c.AddCustom(second))

	assert.Equal(t, []string{"my-ma", "other"}, ids(c.Customs()))

	d, err := c.Lookup("my-ma")
	require.NoError(t, err)
	assert.Equal(t, "second", d.Name)

	// customs are not built-ins
	_, ok := c.Get("my-ma")
	assert.False(t, ok)
	assert.Len(t, c.All(), 22)

	assert.Error(t, c.AddCustom(&Definition{ID: "no-func"}))
	assert.Error(t, c.AddCustom(&Definition{Func: sma.Func}))
}

func TestCatalog_LookupPrefersBuiltin(t *testing.T) {
	c := New()
	shadow := &Definition{
		ID:   "sma",
		Name: "shadow",
		Func: func(bars []types.PriceBar, params []float64) types.Series { return types.PointSeries{} },
	}
	require.NoError(t, c.AddCustom(shadow))

	d, err := c.Lookup("sma")
	require.NoError(t, err)
	assert.Equal(t, "Simple Moving Average", d.Name)

	_, err = c.Lookup("missing")
	assert.True(t, errors.Is(err, ErrIndicatorNotFound))
}

func TestCatalog_Search(t *testing.T) {
	c := New()

	assert.Equal(t, []string{"sma", "ema", "wma", "dema", "tema", "macd", "keltner", "ao", "trix"}, ids(c.Search("moving average")))
	assert.Equal(t, []string{"vwap", "obv", "ad", "mfi"}, ids(c.Search("VOLUME")))
	assert.Len(t, c.Search(""), 22)
	assert.Empty(t, c.Search("no such indicator"))
}

func TestCatalog_Compute(t *testing.T) {
	c := New()
	bars := testBars(40)

	series, err := c.Compute("sma", bars, map[string]float64{"period": 5})
	require.NoError(t, err)
	assert.Equal(t, 36, series.Len())

	series, err = c.ComputeDefault("sma", bars)
	require.NoError(t, err)
	assert.Equal(t, 21, series.Len())

	_, err = c.Compute("sma", bars, map[string]float64{"period": 0})
	assert.Error(t, err)

	_, err = c.Compute("missing", bars, nil)
	assert.Error(t, err)

	// short input is not an error
	series, err = c.ComputeDefault("rsi", bars[:5])
	require.NoError(t, err)
	assert.Equal(t, 0, series.Len())
}

func TestCatalog_ConcurrentCustoms(t *testing.T) {
	c := New()
	sma, _ := c.Get("sma")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = c.AddCustom(sma.derive("shared"))
		}()
		go func() {
			defer wg.Done()
			_, _ = c.Lookup("shared")
			_ = c.Customs()
		}()
	}
	wg.Wait()

	assert.Equal(t, []string{"shared"}, ids(c.Customs()))
}

func TestDefault(t *testing.T) {
	assert.Same(t, Default(), Default())
}
