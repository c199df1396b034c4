// Package testutil provides synthetic signal generators and float helpers
// shared by the analysis test suites.
package testutil
