package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Pipeline errors
const (
	// ErrCodeDegenerateSignal indicates a constant signal (max == min) that
	// cannot be rescaled.
	ErrCodeDegenerateSignal ErrorCode = "SIGNAL_DEGENERATE"
	// ErrCodeNoStableThreshold indicates peak fitting found no baseline
	// raise percentage satisfying the stability and plausibility filters.
	ErrCodeNoStableThreshold ErrorCode = "NO_STABLE_THRESHOLD"
	// ErrCodeInvalidSpectralMethod indicates an unsupported spectral
	// estimation method name.
	ErrCodeInvalidSpectralMethod ErrorCode = "INVALID_SPECTRAL_METHOD"
	// ErrCodeInsufficientData indicates fewer data points than an interval
	// computation requires.
	ErrCodeInsufficientData ErrorCode = "INSUFFICIENT_DATA"
)

// Input errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
	// ErrCodeNotFound indicates the requested resource was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
)

// Internal errors
const (
	// ErrCodeInternal indicates an internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)
