package errors

import (
	stderrors "errors"
)

// ErrorResponse is the JSON structure returned to clients.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody contains the error details sent to clients.
type ErrorBody struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ToResponse converts an AnalysisError to an ErrorResponse for JSON serialization.
func (e *AnalysisError) ToResponse() ErrorResponse {
	return ErrorResponse{
		Error: ErrorBody{
			Code:    e.Code,
			Message: e.Message,
			Details: e.Details,
		},
	}
}

// IsAnalysisError checks if an error is an AnalysisError.
func IsAnalysisError(err error) bool {
	var aerr *AnalysisError
	return stderrors.As(err, &aerr)
}

// AsAnalysisError converts an error to an AnalysisError if possible.
func AsAnalysisError(err error) (*AnalysisError, bool) {
	var aerr *AnalysisError
	if stderrors.As(err, &aerr) {
		return aerr, true
	}
	return nil, false
}

// HasCode reports whether err is an AnalysisError carrying the given code.
func HasCode(err error, code ErrorCode) bool {
	aerr, ok := AsAnalysisError(err)
	return ok && aerr.Code == code
}
