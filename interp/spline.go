package interp

import (
	"github.com/ubcspin/REMO1-dataProcessing/errors"
)

// Spline is a natural cubic spline fitted through a set of knots.
type Spline struct {
	xs, ys []float64
	// second derivatives at the knots, zero at both ends
	m []float64
}

// NewSpline fits a natural cubic spline through the given knots.
// The x values must be strictly increasing and at least two knots are
// required. With exactly two knots the spline degenerates to a line.
func NewSpline(xs, ys []float64) (*Spline, error) {
	if len(xs) != len(ys) {
		return nil, errors.InvalidInput("knots", "x and y must have the same length")
	}
	if len(xs) < 2 {
		return nil, errors.InsufficientData("spline fit", 2, len(xs))
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return nil, errors.InvalidInput("knots", "x values must be strictly increasing")
		}
	}

	n := len(xs)
	s := &Spline{
		xs: append([]float64(nil), xs...),
		ys: append([]float64(nil), ys...),
		m:  make([]float64, n),
	}
	if n == 2 {
		return s, nil
	}

	// Solve the tridiagonal system for interior second derivatives
	// (Thomas algorithm). Natural boundary: m[0] = m[n-1] = 0.
	h := make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		h[i] = xs[i+1] - xs[i]
	}

	diag := make([]float64, n-2)
	upper := make([]float64, n-2)
	rhs := make([]float64, n-2)
	for i := 1; i < n-1; i++ {
		diag[i-1] = 2 * (h[i-1] + h[i])
		upper[i-1] = h[i]
		rhs[i-1] = 6 * ((ys[i+1]-ys[i])/h[i] - (ys[i]-ys[i-1])/h[i-1])
	}

	for i := 1; i < n-2; i++ {
		factor := h[i] / diag[i-1]
		diag[i] -= factor * upper[i-1]
		rhs[i] -= factor * rhs[i-1]
	}
	s.m[n-2] = rhs[n-3] / diag[n-3]
	for i := n - 4; i >= 0; i-- {
		s.m[i+1] = (rhs[i] - upper[i]*s.m[i+2]) / diag[i]
	}

	return s, nil
}

// Eval evaluates the spline at x. Outside the knot range the boundary
// polynomial is extended.
func (s *Spline) Eval(x float64) float64 {
	n := len(s.xs)
	// Locate the interval by binary search.
	lo, hi := 0, n-2
	switch {
	case x <= s.xs[0]:
		lo = 0
	case x >= s.xs[n-1]:
		lo = n - 2
	default:
		for lo < hi {
			mid := (lo + hi + 1) / 2
			if s.xs[mid] <= x {
				lo = mid
			} else {
				hi = mid - 1
			}
		}
	}

	h := s.xs[lo+1] - s.xs[lo]
	a := (s.xs[lo+1] - x) / h
	b := (x - s.xs[lo]) / h
	return a*s.ys[lo] + b*s.ys[lo+1] +
		((a*a*a-a)*s.m[lo]+(b*b*b-b)*s.m[lo+1])*(h*h)/6
}

// EvalAll evaluates the spline at every point in xs.
func (s *Spline) EvalAll(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = s.Eval(x)
	}
	return out
}

// Resample fits a spline through (xs, ys) and evaluates it at targets.
func Resample(xs, ys, targets []float64) ([]float64, error) {
	s, err := NewSpline(xs, ys)
	if err != nil {
		return nil, err
	}
	return s.EvalAll(targets), nil
}
