package errors

import (
	"fmt"
	"net/http"
)

// AnalysisError is the unified error type for the analysis pipeline.
type AnalysisError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// HTTPStatus is the recommended HTTP status code for this error.
	HTTPStatus int `json:"-"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AnalysisError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AnalysisError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AnalysisError) WithCause(cause error) *AnalysisError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AnalysisError) WithDetail(key string, value any) *AnalysisError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AnalysisError.
func New(code ErrorCode, message string, httpStatus int) *AnalysisError {
	return &AnalysisError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// --- Pipeline Error Constructors ---

// DegenerateSignal creates an error for a constant signal that cannot be
// rescaled because max == min.
func DegenerateSignal() *AnalysisError {
	return &AnalysisError{
		Code: ErrCodeDegenerateSignal, Message: "Signal is constant; amplitude scaling requires max > min.",
		HTTPStatus: http.StatusUnprocessableEntity,
	}
}

// NoStableThreshold creates an error for a peak fit where no candidate raise
// percentage passed the stability and plausibility filters.
func NoStableThreshold(bpmMin, bpmMax float64) *AnalysisError {
	return &AnalysisError{
		Code: ErrCodeNoStableThreshold, Message: "No baseline raise percentage produced a stable, plausible peak fit.",
		HTTPStatus: http.StatusUnprocessableEntity,
		Details:    map[string]any{"bpm_min": bpmMin, "bpm_max": bpmMax},
	}
}

// InvalidSpectralMethod creates an error for an unsupported spectral
// estimation method name.
func InvalidSpectralMethod(method string) *AnalysisError {
	return &AnalysisError{
		Code: ErrCodeInvalidSpectralMethod, Message: fmt.Sprintf("Unsupported spectral method %q. Use 'fft', 'periodogram' or 'welch'.", method),
		HTTPStatus: http.StatusBadRequest,
		Details:    map[string]any{"method": method},
	}
}

// InsufficientData creates an error for a computation that needs more data
// points than are available.
func InsufficientData(operation string, needed, got int) *AnalysisError {
	return &AnalysisError{
		Code: ErrCodeInsufficientData, Message: fmt.Sprintf("Not enough data for %s: need at least %d points, got %d.", operation, needed, got),
		HTTPStatus: http.StatusUnprocessableEntity,
		Details:    map[string]any{"operation": operation, "needed": needed, "got": got},
	}
}

// --- Input Error Constructors ---

// InvalidInput creates an error for invalid input.
func InvalidInput(field, reason string) *AnalysisError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &AnalysisError{
		Code: ErrCodeInvalidInput, Message: fmt.Sprintf("Invalid input: %s", reason),
		HTTPStatus: http.StatusBadRequest, Details: details,
	}
}

// Validation creates an error for validation failures.
func Validation(message string) *AnalysisError {
	return &AnalysisError{
		Code: ErrCodeInvalidInput, Message: message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// MissingField creates an error for a missing required field.
func MissingField(field string) *AnalysisError {
	return &AnalysisError{
		Code: ErrCodeMissingField, Message: fmt.Sprintf("Missing required field: %s", field),
		HTTPStatus: http.StatusBadRequest,
		Details:    map[string]any{"field": field},
	}
}

// NotFound creates an error for a resource that was not found.
func NotFound(resource, name string) *AnalysisError {
	details := map[string]any{"resource": resource}
	if name != "" {
		details["name"] = name
	}
	return &AnalysisError{
		Code: ErrCodeNotFound, Message: fmt.Sprintf("The requested %s was not found.", resource),
		HTTPStatus: http.StatusNotFound, Details: details,
	}
}

// Internal creates an error for an unexpected internal failure.
func Internal(cause error) *AnalysisError {
	return &AnalysisError{
		Code: ErrCodeInternal, Message: "An unexpected error occurred.",
		HTTPStatus: http.StatusInternalServerError, Cause: cause,
	}
}
