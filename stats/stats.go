package stats

import (
	"math"
	"sort"
)

// Mean returns the arithmetic mean of data, or NaN for an empty slice.
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, v := range data {
		sum += v
	}
	return sum / float64(len(data))
}

// Std returns the population standard deviation of data, or NaN for an
// empty slice.
func Std(data []float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}
	mean := Mean(data)
	sumSquares := 0.0
	for _, v := range data {
		d := v - mean
		sumSquares += d * d
	}
	return math.Sqrt(sumSquares / float64(len(data)))
}

// Min returns the smallest value in data, or NaN for an empty slice.
func Min(data []float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}
	min := data[0]
	for _, v := range data[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// Max returns the largest value in data, or NaN for an empty slice.
func Max(data []float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}
	max := data[0]
	for _, v := range data[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// Percentile returns the p-th percentile (0..100) of data using linear
// interpolation between adjacent ranks, or NaN for an empty slice.
func Percentile(data []float64, p float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}
	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)

	if p <= 0 {
		return sorted[0]
	}
	if p >= 100 {
		return sorted[len(sorted)-1]
	}

	index := (p / 100.0) * float64(len(sorted)-1)
	lower := int(math.Floor(index))
	upper := int(math.Ceil(index))
	if lower == upper {
		return sorted[lower]
	}
	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Median returns the 50th percentile of data.
func Median(data []float64) float64 {
	return Percentile(data, 50)
}

// MAD returns the median absolute deviation of data.
func MAD(data []float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}
	med := Median(data)
	dev := make([]float64, len(data))
	for i, v := range data {
		dev[i] = math.Abs(v - med)
	}
	return Median(dev)
}

// Diff returns the successive differences data[i+1]-data[i].
// The result has length len(data)-1, or 0 for shorter inputs.
func Diff(data []float64) []float64 {
	if len(data) < 2 {
		return nil
	}
	out := make([]float64, len(data)-1)
	for i := 1; i < len(data); i++ {
		out[i-1] = data[i] - data[i-1]
	}
	return out
}

// AbsDiff returns the absolute successive differences |data[i+1]-data[i]|.
func AbsDiff(data []float64) []float64 {
	out := Diff(data)
	for i, v := range out {
		out[i] = math.Abs(v)
	}
	return out
}

// Square returns a new slice with every element squared.
func Square(data []float64) []float64 {
	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = v * v
	}
	return out
}

// Trapezoid integrates y with unit sample spacing using the trapezoidal
// rule. Returns 0 for fewer than two points.
func Trapezoid(y []float64) float64 {
	sum := 0.0
	for i := 1; i < len(y); i++ {
		sum += (y[i] + y[i-1]) / 2
	}
	return sum
}

// Linspace returns n evenly spaced values from start to stop inclusive.
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{start}
	}
	out := make([]float64, n)
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop
	return out
}
