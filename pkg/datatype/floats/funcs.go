package floats

import "math"

// MeanAbsDeviation returns the mean of |x - mean| over arr for the given mean.
func MeanAbsDeviation(arr []float64, mean float64) float64 {
	s := 0.0
	for _, a := range arr {
		s += math.Abs(a - mean)
	}
	return s / float64(len(arr))
}

// PopVariance returns the population variance of arr around the given mean.
func PopVariance(arr []float64, mean float64) float64 {
	s := 0.0
	for _, a := range arr {
		s += math.Pow(a-mean, 2)
	}
	return s / float64(len(arr))
}

// Max3 returns the largest of three values, NaN if any of them is NaN.
func Max3(a, b, c float64) float64 {
	return math.Max(math.Max(a, b), c)
}

// IsFinite reports whether v is neither NaN nor ±Inf.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
