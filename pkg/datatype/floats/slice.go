package floats

import "math"

type Slice []float64

// Sum adds the values from left to right, starting from zero.
func (s Slice) Sum() (sum float64) {
	for _, v := range s {
		sum += v
	}
	return sum
}

func (s Slice) Mean() float64 {
	return s.Sum() / float64(len(s))
}

// Max returns the largest value, NaN if any value is NaN and -Inf for an empty slice.
func (s Slice) Max() float64 {
	m := math.Inf(-1)
	for _, v := range s {
		m = math.Max(m, v)
	}
	return m
}

// Min returns the smallest value, NaN if any value is NaN and +Inf for an empty slice.
func (s Slice) Min() float64 {
	m := math.Inf(1)
	for _, v := range s {
		m = math.Min(m, v)
	}
	return m
}

// Window returns the n values ending at index end (inclusive).
func (s Slice) Window(end, n int) Slice {
	return s[end-n+1 : end+1]
}

// Sub subtracts b element-wise; b must be at least as long as s.
func (s Slice) Sub(b Slice) Slice {
	out := make(Slice, len(s))
	for i := range s {
		out[i] = s[i] - b[i]
	}
	return out
}
