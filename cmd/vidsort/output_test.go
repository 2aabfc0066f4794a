package main

import (
	"io"
	"strings"
	"testing"
)

func TestPaint(t *testing.T) {
	if got := paint("FAIL", ansiRed, false); got != "FAIL" {
		t.Fatalf("paint without color = %q", got)
	}
	got := paint("PASS", ansiGreen, true)
	if !strings.HasPrefix(got, ansiGreen) || !strings.HasSuffix(got, ansiReset) {
		t.Fatalf("expected colorized value, got %q", got)
	}
}

func TestRenderSectionHeader(t *testing.T) {
	lines := renderSectionHeader("Duration sort plan", false)
	if len(lines) != 2 {
		t.Fatalf("expected header and rule, got %d lines", len(lines))
	}
	if lines[0] != "== Duration sort plan ==" {
		t.Fatalf("header = %q", lines[0])
	}
	if len(lines[1]) != len(lines[0]) {
		t.Fatalf("rule length %d, want %d", len(lines[1]), len(lines[0]))
	}
}

func TestShouldColorizeNonFile(t *testing.T) {
	if shouldColorize(io.Discard) {
		t.Fatal("expected non-file writer to disable color")
	}
}

func TestTitleCase(t *testing.T) {
	cases := map[string]string{
		"duration":       "Duration",
		"probe_failures": "Probe Failures",
		"pipeline":       "Pipeline",
	}
	for in, want := range cases {
		if got := titleCase(in); got != want {
			t.Fatalf("titleCase(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "0:00"},
		{59.6, "1:00"},
		{120, "2:00"},
		{3723, "1:02:03"},
	}
	for _, tt := range tests {
		if got := formatClock(tt.seconds); got != tt.want {
			t.Fatalf("formatClock(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestFormatCutoffs(t *testing.T) {
	if got := formatCutoffs(nil); got != "none" {
		t.Fatalf("formatCutoffs(nil) = %q", got)
	}
	if got := formatCutoffs([]float64{60, 300}); got != "60.00, 300.00" {
		t.Fatalf("formatCutoffs = %q", got)
	}
}
