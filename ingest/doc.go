// Package ingest reads raw sensor recordings from CSV exports and derives
// their sampling rate from an embedded millisecond timer column.
//
// Loggers of wearable prototypes tend to prepend free-form metadata lines
// before the actual header row, leave null cells where the sensor dropped a
// reading, and record a millisecond timestamp next to each sample. The
// reader handles all three.
package ingest
