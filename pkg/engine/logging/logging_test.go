package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{" WARN ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"chatty", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNew_FiltersAndTags(t *testing.T) {
	var buf bytes.Buffer
	log := New("maze", StyleEngine, &buf, slog.LevelInfo)

	log.Debug("hidden")
	log.Info("built", "cells", 187)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug records must be filtered at info level")
	}
	for _, want := range []string{"msg=built", "cells=187", "maze", "INFO"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q is missing %q", out, want)
		}
	}
}

func TestDiscard(t *testing.T) {
	log := Discard()
	if log.Enabled(context.Background(), slog.LevelError) {
		t.Error("Discard() should not be enabled for any level")
	}
}
