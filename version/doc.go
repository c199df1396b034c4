// Package version provides build version information for the analysis
// service.
//
// Version, git commit, and build time are set at compile time via
// -ldflags:
//
//	go build -ldflags "-X github.com/ubcspin/REMO1-dataProcessing/version.Version=1.0.0"
package version
