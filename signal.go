package spevent

import (
	"fmt"
	"math"
	"sort"
)

// MovingMean returns the rolling mean of x over the given window.
// result[i] is the mean of x[i : i+window], so the output has
// len(x)-window+1 values. Returns ErrBadWindow unless 1 <= window <= len(x).
func MovingMean(x []float64, window int) ([]float64, error) {
	if window < 1 || window > len(x) {
		return nil, fmt.Errorf("spevent: window %d for %d samples: %w", window, len(x), ErrBadWindow)
	}

	out := make([]float64, len(x)-window+1)
	w := float64(window)

	var sum float64
	for i := 0; i < window; i++ {
		sum += x[i]
	}
	out[0] = sum / w
	for i := window; i < len(x); i++ {
		sum += x[i] - x[i-window]
		out[i-window+1] = sum / w
	}
	return out, nil
}

// MovingStd returns the rolling population standard deviation of x over
// the given window, aligned like MovingMean.
func MovingStd(x []float64, window int) ([]float64, error) {
	if window < 1 || window > len(x) {
		return nil, fmt.Errorf("spevent: window %d for %d samples: %w", window, len(x), ErrBadWindow)
	}

	out := make([]float64, len(x)-window+1)
	w := float64(window)

	var sum, sq float64
	for i := 0; i < window; i++ {
		sum += x[i]
		sq += x[i] * x[i]
	}
	out[0] = windowStd(sum, sq, w)
	for i := window; i < len(x); i++ {
		sum += x[i] - x[i-window]
		sq += x[i]*x[i] - x[i-window]*x[i-window]
		out[i-window+1] = windowStd(sum, sq, w)
	}
	return out, nil
}

func windowStd(sum, sq, w float64) float64 {
	mean := sum / w
	v := sq/w - mean*mean
	// rounding can push the variance slightly negative
	if v < 0 {
		v = 0
	}
	return math.Sqrt(v)
}

// MovingMedian returns the rolling median of x over the given window,
// aligned like MovingMean. Even windows average the two middle samples.
func MovingMedian(x []float64, window int) ([]float64, error) {
	if window < 1 || window > len(x) {
		return nil, fmt.Errorf("spevent: window %d for %d samples: %w", window, len(x), ErrBadWindow)
	}

	out := make([]float64, len(x)-window+1)

	sorted := make([]float64, window)
	copy(sorted, x[:window])
	sort.Float64s(sorted)

	hi := window / 2
	lo := hi + window%2 - 1

	for start := 0; ; start++ {
		out[start] = (sorted[lo] + sorted[hi]) / 2
		end := start + window
		if end == len(x) {
			break
		}

		// Swap the outgoing sample for the incoming one, keeping the
		// window sorted.
		i := sort.SearchFloat64s(sorted, x[start])
		copy(sorted[i:], sorted[i+1:])
		sorted = sorted[:window-1]
		j := sort.SearchFloat64s(sorted, x[end])
		sorted = append(sorted, 0)
		copy(sorted[j+1:], sorted[j:])
		sorted[j] = x[end]
	}
	return out, nil
}

// padReflect mirrors pad samples on each side of x without repeating
// the edge values. pad must be at most len(x)-1.
func padReflect(x []float64, pad int) []float64 {
	out := make([]float64, 0, len(x)+2*pad)
	for i := pad; i >= 1; i-- {
		out = append(out, x[i])
	}
	out = append(out, x...)
	for i := len(x) - 2; i >= len(x)-1-pad; i-- {
		out = append(out, x[i])
	}
	return out
}
