// Package logger provides structured logging for the analysis pipeline
// and its surrounding services.
//
// It wraps zerolog with a small Config surface, console and JSON output
// formats, and component-tagged child loggers. A package-level global
// logger backs the convenience functions; pipeline code receives loggers
// explicitly.
package logger
