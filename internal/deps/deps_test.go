package deps

import (
	"os"
	"path/filepath"
	"testing"
)

func writeScript(t *testing.T, path, body string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(body), 0o755); err != nil {
		t.Fatalf("write stub %s: %v", path, err)
	}
}

func TestCheckBinaries(t *testing.T) {
	binDir := t.TempDir()
	present := filepath.Join(binDir, "present")
	writeScript(t, present, "#!/bin/sh\nexit 0\n")

	reqs := []Requirement{
		{Name: "Present", Command: present},
		{Name: "Missing", Command: "clearly-not-present-binary"},
		{Name: "Blank", Command: "  "},
	}

	results := CheckBinaries(reqs)
	if len(results) != len(reqs) {
		t.Fatalf("expected %d results, got %d", len(reqs), len(results))
	}

	if !results[0].Available || results[0].Detail != "" {
		t.Fatalf("expected first requirement to be available, got %#v", results[0])
	}
	if results[1].Available {
		t.Fatal("expected missing binary to be unavailable")
	}
	if results[1].Detail == "" {
		t.Fatal("expected detail message for missing binary")
	}
	if results[2].Available || results[2].Detail != "command not configured" {
		t.Fatalf("unexpected blank-command result: %#v", results[2])
	}
}

func TestCheckBinariesRejectsNonExecutablePath(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(plain, []byte("not a tool"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	results := CheckBinaries([]Requirement{{Name: "Plain", Command: plain}})
	if results[0].Available {
		t.Fatalf("expected non-executable path to fail: %#v", results[0])
	}
}

func TestResolveFFprobe(t *testing.T) {
	if got := ResolveFFprobe(""); got != "ffprobe" {
		t.Fatalf("ResolveFFprobe(\"\") = %q", got)
	}
	if got := ResolveFFprobe("  /opt/ffmpeg/bin/ffprobe  "); got != "/opt/ffmpeg/bin/ffprobe" {
		t.Fatalf("ResolveFFprobe with path = %q", got)
	}
}

func TestCheckFFprobeReportsVersion(t *testing.T) {
	binDir := t.TempDir()
	stub := filepath.Join(binDir, "ffprobe")
	writeScript(t, stub, "#!/bin/sh\necho 'ffprobe version 7.0.2 Copyright (c) 2007-2024 the FFmpeg developers'\nexit 0\n")
	t.Setenv("PATH", binDir)

	status := CheckFFprobe("")
	if !status.Available {
		t.Fatalf("expected stubbed ffprobe to be available: %#v", status)
	}
	if status.Version != "7.0.2" {
		t.Fatalf("Version = %q, want 7.0.2", status.Version)
	}
	if status.Command != "ffprobe" {
		t.Fatalf("Command = %q, want bare name", status.Command)
	}
}

func TestCheckFFprobeMissing(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	status := CheckFFprobe("")
	if status.Available {
		t.Fatalf("expected missing ffprobe to be unavailable: %#v", status)
	}
	if status.Detail == "" {
		t.Fatal("expected detail for missing binary")
	}
}

func TestParseVersionBanner(t *testing.T) {
	cases := []struct {
		name   string
		output string
		want   string
	}{
		{"standard", "ffprobe version 6.1.1-3ubuntu5 Copyright (c) 2007-2023\nbuilt with gcc 13", "6.1.1-3ubuntu5"},
		{"no version token", "something unexpected\n", ""},
		{"empty", "", ""},
		{"version last word", "ffprobe version", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := parseVersionBanner(tc.output); got != tc.want {
				t.Fatalf("parseVersionBanner(%q) = %q, want %q", tc.output, got, tc.want)
			}
		})
	}
}
