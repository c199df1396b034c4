// Package server exposes the analysis pipeline over HTTP.
//
// It wraps a Gin engine with the standard middleware stack (recovery,
// request IDs, request logging) and registers the analysis and health
// endpoints:
//
//	POST /v1/analyze   run the pipeline over a posted signal
//	GET  /health       service health
//	GET  /version      build information
package server
