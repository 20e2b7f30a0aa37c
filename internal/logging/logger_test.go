package logging

import (
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"", LevelInfo},
		{"warning", LevelWarn},
		{"error", LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, %v, want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestLoggerFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := FromZap(zap.New(core)).Named("probe").With(String("scene", "cube"))

	l.Info("cast",
		Int("rays", 4),
		Float64("nearest", 1.5),
		Bool("hit", true),
		Duration("took", time.Millisecond),
		Stringer("origin", stringer("(0, 0, 0)")),
		Err(errors.New("boom")),
		Any("faces", []string{"front"}),
	)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.LoggerName != "probe" {
		t.Errorf("logger name = %q, want probe", e.LoggerName)
	}
	ctx := e.ContextMap()
	if ctx["scene"] != "cube" {
		t.Errorf("scene = %v, want cube", ctx["scene"])
	}
	if ctx["rays"] != int64(4) {
		t.Errorf("rays = %#v, want 4", ctx["rays"])
	}
	if ctx["origin"] != "(0, 0, 0)" {
		t.Errorf("origin = %v", ctx["origin"])
	}
	if ctx["error"] != "boom" {
		t.Errorf("error = %v, want boom", ctx["error"])
	}
}

func TestProvideWithoutNew(t *testing.T) {
	if Provide() == nil {
		t.Fatal("Provide() returned nil")
	}
	Provide().Debug("discarded")
}

type stringer string

func (s stringer) String() string { return string(s) }
