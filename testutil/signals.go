package testutil

import "math"

// Sine generates n samples of offset + amp*sin(2*pi*freq*t) sampled at
// rate Hz.
func Sine(n int, rate, freq, amp, offset float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		t := float64(i) / rate
		out[i] = offset + amp*math.Sin(2*math.Pi*freq*t)
	}
	return out
}

// ModulatedSine generates a sine whose instantaneous frequency wobbles
// around baseFreq by depth*baseFreq at modFreq Hz. The wobble gives the
// inter-peak intervals a small spread, like a real heartbeat.
func ModulatedSine(n int, rate, baseFreq, depth, modFreq, amp, offset float64) []float64 {
	out := make([]float64, n)
	phase := 0.0
	for i := range out {
		t := float64(i) / rate
		freq := baseFreq * (1 + depth*math.Sin(2*math.Pi*modFreq*t))
		phase += 2 * math.Pi * freq / rate
		out[i] = offset + amp*math.Sin(phase)
	}
	return out
}

// ImpulseTrain generates a flat base signal with a single-sample spike of
// the given amplitude every period samples, starting at firstAt.
func ImpulseTrain(n, firstAt, period int, base, amp float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = base
	}
	for i := firstAt; i < n; i += period {
		out[i] = amp
	}
	return out
}

// WithPlateau clips a copy of data: every sample above ceiling is replaced
// with ceiling, producing the flat-topped segments of a saturated sensor.
func WithPlateau(data []float64, ceiling float64) []float64 {
	out := append([]float64(nil), data...)
	for i, v := range out {
		if v > ceiling {
			out[i] = ceiling
		}
	}
	return out
}

// Constant generates n samples of the same value.
func Constant(n int, value float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}

// AlmostEqual reports whether a and b are within tol of each other.
func AlmostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// AllFinite reports whether every element is a finite number.
func AllFinite(data []float64) bool {
	for _, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
