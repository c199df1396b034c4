// Package validation provides input validation for analysis requests and
// pipeline options.
//
// It supports both struct tag validation (using the validator library) and
// programmatic validation with error collection. Struct tag validation is
// the usual path for request payloads and option structs.
//
// # Struct Tag Validation
//
//	type AnalyzeRequest struct {
//	    SampleRate float64 `json:"sample_rate" validate:"required,gt=0"`
//	}
//	err := validation.Validate(req)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Positive("sample_rate", rate)
//	err := v.Validate()
package validation
