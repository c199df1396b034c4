package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AnalysisError
		wantCode   ErrorCode
		wantStatus int
	}{
		{"degenerate signal", DegenerateSignal(), ErrCodeDegenerateSignal, http.StatusUnprocessableEntity},
		{"no stable threshold", NoStableThreshold(40, 180), ErrCodeNoStableThreshold, http.StatusUnprocessableEntity},
		{"invalid spectral method", InvalidSpectralMethod("cwt"), ErrCodeInvalidSpectralMethod, http.StatusBadRequest},
		{"insufficient data", InsufficientData("rr intervals", 2, 1), ErrCodeInsufficientData, http.StatusUnprocessableEntity},
		{"invalid input", InvalidInput("sample_rate", "must be positive"), ErrCodeInvalidInput, http.StatusBadRequest},
		{"missing field", MissingField("signal"), ErrCodeMissingField, http.StatusBadRequest},
		{"not found", NotFound("column", "hr"), ErrCodeNotFound, http.StatusNotFound},
		{"internal", Internal(stderrors.New("boom")), ErrCodeInternal, http.StatusInternalServerError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err.Code != tc.wantCode {
				t.Errorf("code = %s, want %s", tc.err.Code, tc.wantCode)
			}
			if tc.err.HTTPStatus != tc.wantStatus {
				t.Errorf("status = %d, want %d", tc.err.HTTPStatus, tc.wantStatus)
			}
			if tc.err.Error() == "" {
				t.Error("expected non-empty error string")
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("root cause")
	err := Internal(cause)
	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
	if err.Unwrap() != cause {
		t.Error("expected Unwrap to return the cause")
	}
}

func TestAsAnalysisError(t *testing.T) {
	wrapped := fmt.Errorf("stage failed: %w", NoStableThreshold(40, 180))
	aerr, ok := AsAnalysisError(wrapped)
	if !ok {
		t.Fatal("expected AsAnalysisError to succeed on wrapped error")
	}
	if aerr.Code != ErrCodeNoStableThreshold {
		t.Errorf("code = %s, want %s", aerr.Code, ErrCodeNoStableThreshold)
	}
	if IsAnalysisError(stderrors.New("plain")) {
		t.Error("plain error should not be an AnalysisError")
	}
}

func TestHasCode(t *testing.T) {
	err := fmt.Errorf("wrap: %w", DegenerateSignal())
	if !HasCode(err, ErrCodeDegenerateSignal) {
		t.Error("expected HasCode to match through wrapping")
	}
	if HasCode(err, ErrCodeNotFound) {
		t.Error("HasCode matched wrong code")
	}
}

func TestWithDetailAndCause(t *testing.T) {
	cause := stderrors.New("io failure")
	err := Validation("bad payload").WithDetail("field", "signal").WithCause(cause)
	if err.Details["field"] != "signal" {
		t.Errorf("detail field = %v, want signal", err.Details["field"])
	}
	if err.Unwrap() != cause {
		t.Error("expected cause to be set")
	}
	resp := err.ToResponse()
	if resp.Error.Code != ErrCodeInvalidInput {
		t.Errorf("response code = %s, want %s", resp.Error.Code, ErrCodeInvalidInput)
	}
	if resp.Error.Details["field"] != "signal" {
		t.Error("expected details to survive ToResponse")
	}
}
