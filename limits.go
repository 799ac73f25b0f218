package spevent

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// LimitMethod selects how detection limits are derived from a signal.
type LimitMethod string

const (
	// LimitAutomatic picks LimitPoisson for low-count signals (mean
	// below 50 counts) and LimitGaussian otherwise.
	LimitAutomatic LimitMethod = "automatic"
	// LimitHighest evaluates both statistics and keeps whichever gives
	// the higher detection limit.
	LimitHighest LimitMethod = "highest"
	// LimitGaussian thresholds at mean + sigma * std.
	LimitGaussian LimitMethod = "gaussian"
	// LimitGaussianMedian is LimitGaussian centered on the median,
	// which is less biased by the particle signals themselves.
	LimitGaussianMedian LimitMethod = "gaussian median"
	// LimitPoisson uses Currie's paired-count limits.
	LimitPoisson LimitMethod = "poisson"
)

// LimitOptions tunes CalculateLimits. The zero value selects the usual
// defaults: Sigma 3, Alpha and Beta 0.05, no rolling window.
type LimitOptions struct {
	// Sigma is the Gaussian threshold multiplier.
	Sigma float64
	// Alpha is the Poisson false positive error rate.
	Alpha float64
	// Beta is the Poisson false negative error rate.
	Beta float64
	// Window enables rolling limits when >= 2: the center and limits
	// become per-sample arrays computed over a reflected-padded window.
	Window int
}

// LimitResult holds detection limits for a signal. Center, Critical and
// Detection have one value per sample when a rolling window was used,
// and a single value otherwise.
type LimitResult struct {
	// Method is the resolved method: LimitGaussian, LimitGaussianMedian
	// or LimitPoisson, never LimitAutomatic or LimitHighest.
	Method LimitMethod
	// Center is the background estimate the limits are relative to.
	Center []float64
	// Critical is Lc, the decision threshold: signals above it are
	// statistically above background.
	Critical []float64
	// Detection is Ld, the limit of detection. For Gaussian methods
	// Critical and Detection coincide.
	Detection []float64
}

// PoissonLimits returns Currie's gross-count critical value Yc and
// detection limit Yd for a mean background of ub counts; Lc and Ld are
// obtained by adding ub. alpha and beta are the false positive and
// false negative error rates: 0.05 for both gives the familiar
// 2.33*sqrt(ub) and 2.71 + 4.65*sqrt(ub). Backgrounds below 5 counts
// get a +0.5 correction to maintain the error rates.
func PoissonLimits(ub, alpha, beta float64) (yc, yd float64) {
	if ub < 5.0 {
		ub += 0.5
	}
	norm := distuv.Normal{Mu: 0, Sigma: 1}
	za := norm.Quantile(1 - alpha)
	zb := norm.Quantile(1 - beta)
	yc = za * math.Sqrt(2.0*ub)
	yd = zb*zb + yc + zb*math.Sqrt(2.0*ub)
	return yc, yd
}

// CalculateLimits derives the limit of criticality Lc and limit of
// detection Ld for a signal. LimitAutomatic and LimitHighest resolve to
// a concrete method from the signal itself; the resolved method is
// reported in the result. With LimitOptions.Window >= 2 the limits are
// rolling, one value per sample.
func CalculateLimits(responses []float64, method LimitMethod, opts LimitOptions) (*LimitResult, error) {
	if len(responses) == 0 {
		return nil, fmt.Errorf("spevent: limits: %w", ErrEmptySignal)
	}
	if opts.Sigma == 0 {
		opts.Sigma = 3.0
	}
	if opts.Alpha == 0 {
		opts.Alpha = 0.05
	}
	if opts.Beta == 0 {
		opts.Beta = 0.05
	}
	if opts.Window > len(responses) {
		return nil, fmt.Errorf("spevent: window %d for %d samples: %w",
			opts.Window, len(responses), ErrBadWindow)
	}

	var ub float64
	if method == LimitGaussianMedian {
		ub = median(responses)
	} else {
		ub = stat.Mean(responses, nil)
	}

	switch method {
	case LimitAutomatic:
		if ub < 50.0 {
			method = LimitPoisson
		} else {
			method = LimitGaussian
		}
	case LimitHighest:
		_, yd := PoissonLimits(ub, opts.Alpha, opts.Beta)
		gaussian := ub + opts.Sigma*popStd(responses)
		if gaussian > ub+yd {
			method = LimitGaussian
		} else {
			method = LimitPoisson
		}
	case LimitGaussian, LimitGaussianMedian, LimitPoisson:
	default:
		return nil, fmt.Errorf("spevent: limit method %q: %w", method, ErrBadMethod)
	}

	if opts.Window < 2 {
		return scalarLimits(responses, method, ub, opts), nil
	}
	return rollingLimits(responses, method, opts)
}

func scalarLimits(responses []float64, method LimitMethod, ub float64, opts LimitOptions) *LimitResult {
	r := &LimitResult{Method: method, Center: []float64{ub}}
	switch method {
	case LimitPoisson:
		yc, yd := PoissonLimits(ub, opts.Alpha, opts.Beta)
		r.Critical = []float64{ub + yc}
		r.Detection = []float64{ub + yd}
	default:
		ld := ub + opts.Sigma*popStd(responses)
		r.Critical = []float64{ld}
		r.Detection = []float64{ld}
	}
	return r
}

func rollingLimits(responses []float64, method LimitMethod, opts LimitOptions) (*LimitResult, error) {
	n := len(responses)
	padded := padReflect(responses, opts.Window/2)

	var center []float64
	var err error
	if method == LimitGaussianMedian {
		center, err = MovingMedian(padded, opts.Window)
	} else {
		center, err = MovingMean(padded, opts.Window)
	}
	if err != nil {
		return nil, err
	}
	center = center[:n]

	r := &LimitResult{Method: method, Center: center}
	switch method {
	case LimitPoisson:
		r.Critical = make([]float64, n)
		r.Detection = make([]float64, n)
		for i, ub := range center {
			yc, yd := PoissonLimits(ub, opts.Alpha, opts.Beta)
			r.Critical[i] = ub + yc
			r.Detection[i] = ub + yd
		}
	default:
		std, err := MovingStd(padded, opts.Window)
		if err != nil {
			return nil, err
		}
		ld := make([]float64, n)
		for i := range ld {
			ld[i] = center[i] + opts.Sigma*std[i]
		}
		r.Critical = ld
		r.Detection = ld
	}
	return r, nil
}

// median of x, averaging the middle pair for even lengths.
func median(x []float64) float64 {
	sorted := make([]float64, len(x))
	copy(sorted, x)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// popStd is the population standard deviation, the form the rolling
// variant uses as well.
func popStd(x []float64) float64 {
	mean := stat.Mean(x, nil)
	var ss float64
	for _, v := range x {
		d := v - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(x)))
}
