// Package errors provides the typed error taxonomy for the heart-rate
// analysis pipeline. It implements structured error values with
// machine-readable codes, HTTP status mapping for the analysis service,
// and cause chaining compatible with errors.Is/As.
package errors
