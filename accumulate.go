package spevent

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// AccumulateDetections sums contiguous regions of y that rise above
// limitAccumulation and contain at least one sample above
// limitDetection. It returns the summed signal of each detected region,
// a per-sample region label (1..k in order of appearance, 0 for
// background) and the [start, end) extent of each region; a region
// running to the final sample has its end clipped to len(y)-1.
//
// limitAccumulation must not exceed limitDetection; otherwise
// ErrBadLimits is returned.
func AccumulateDetections(y []float64, limitAccumulation, limitDetection float64) (sums []float64, labels []int, regions [][2]int, err error) {
	if limitAccumulation > limitDetection {
		return nil, nil, nil, fmt.Errorf("spevent: accumulation limit %v above detection limit %v: %w",
			limitAccumulation, limitDetection, ErrBadLimits)
	}

	labels = make([]int, len(y))
	region := 0

	for i := 0; i < len(y); {
		if y[i] <= limitAccumulation {
			i++
			continue
		}

		start := i
		for i < len(y) && y[i] > limitAccumulation {
			i++
		}
		run := y[start:i]
		if floats.Max(run) <= limitDetection {
			continue
		}

		region++
		sums = append(sums, floats.Sum(run))
		end := i
		if end == len(y) {
			end = len(y) - 1
		}
		regions = append(regions, [2]int{start, end})
		for j := start; j < i; j++ {
			labels[j] = region
		}
	}

	return sums, labels, regions, nil
}
