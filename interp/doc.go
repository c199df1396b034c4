// Package interp provides cubic-spline interpolation for the analysis
// pipeline: clipping-segment repair, RR-series resampling onto uniform
// time grids, and breathing-signal upsampling.
package interp
