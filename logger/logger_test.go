package logger

import (
	"testing"
	"time"
)

func TestConfigDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	if cfg.Level != "info" {
		t.Errorf("level = %s, want info", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("format = %s, want console", cfg.Format)
	}
	if cfg.Output != "stdout" {
		t.Errorf("output = %s, want stdout", cfg.Output)
	}
	if !cfg.Timestamp {
		t.Error("expected timestamp enabled by default")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Level: "debug", Format: "json"}, false},
		{"bad level", Config{Level: "verbose", Format: "json"}, true},
		{"bad format", Config{Level: "info", Format: "xml"}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestFields(t *testing.T) {
	m := Fields("op", "analyze", "peaks", 42)
	if m["op"] != "analyze" {
		t.Errorf("op = %v, want analyze", m["op"])
	}
	if m["peaks"] != 42 {
		t.Errorf("peaks = %v, want 42", m["peaks"])
	}
	// Odd trailing value is dropped.
	m = Fields("only")
	if len(m) != 0 {
		t.Errorf("expected empty map for odd pair count, got %v", m)
	}
}

func TestDurationFields(t *testing.T) {
	m := DurationFields("process", 1500*time.Millisecond)
	if m[FieldDuration] != int64(1500) {
		t.Errorf("duration = %v, want 1500", m[FieldDuration])
	}
}

func TestWithComponent(t *testing.T) {
	base := NewDefault("hrv")
	child := base.WithComponent("peakfit")
	if child == base {
		t.Error("expected a new logger instance")
	}
	// Must not panic.
	child.Debug("component logger works")
}
