package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/tradeacademy/indicatorlab/pkg/types"
)

var IndicatorComputeCountMetrics = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "indicatorlab_indicator_compute_total",
		Help: "number of indicator computations",
	}, []string{"indicator", "category"})

var IndicatorComputeDurationMetrics = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "indicatorlab_indicator_compute_duration_seconds",
		Help:    "indicator computation latency",
		Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
	}, []string{"indicator"})

var IndicatorEmptyResultMetrics = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "indicatorlab_indicator_empty_result_total",
		Help: "computations that returned an empty series because the input was too short",
	}, []string{"indicator"})

var IndicatorNonFiniteValueMetrics = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "indicatorlab_indicator_non_finite_values_total",
		Help: "NaN and Inf values produced by degenerate input windows",
	}, []string{"indicator"})

var InputBarsMetrics = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "indicatorlab_input_bars_total",
		Help: "price bars decoded from input files",
	}, []string{"format"})

func init() {
	prometheus.MustRegister(
		IndicatorComputeCountMetrics,
		IndicatorComputeDurationMetrics,
		IndicatorEmptyResultMetrics,
		IndicatorNonFiniteValueMetrics,
		InputBarsMetrics,
	)
}

// ObserveCompute records one indicator computation and the shape of its output.
func ObserveCompute(id, category string, duration time.Duration, series types.Series) {
	IndicatorComputeCountMetrics.With(prometheus.Labels{"indicator": id, "category": category}).Inc()
	IndicatorComputeDurationMetrics.With(prometheus.Labels{"indicator": id}).Observe(duration.Seconds())

	if series == nil || series.Len() == 0 {
		IndicatorEmptyResultMetrics.With(prometheus.Labels{"indicator": id}).Inc()
		return
	}

	if n := series.NonFinite(); n > 0 {
		IndicatorNonFiniteValueMetrics.With(prometheus.Labels{"indicator": id}).Add(float64(n))
	}
}

func ObserveInputBars(format string, n int) {
	InputBarsMetrics.With(prometheus.Labels{"format": format}).Add(float64(n))
}
