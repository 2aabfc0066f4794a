package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"vidsort/internal/testsupport"
)

// stubProbeJSON is what the fake ffprobe prints for every file: 1080p30,
// two minutes, 4 Mbps.
const stubProbeJSON = `{
  "streams": [
    {
      "codec_name": "h264",
      "width": 1920,
      "height": 1080,
      "r_frame_rate": "30/1",
      "duration": "120.0",
      "bit_rate": "4000000"
    }
  ],
  "format": {
    "duration": "120.0",
    "bit_rate": "4000000"
  }
}`

type cliEnv struct {
	configPath string
	sourceDir  string
	logDir     string
}

// setupCLIEnv builds a temp source tree plus a config file pointing at it,
// and isolates HOME so the default config path never leaks in.
func setupCLIEnv(t *testing.T) cliEnv {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	cfg := testsupport.NewConfig(t)
	configPath := filepath.Join(filepath.Dir(cfg.Paths.SourceDir), "config.toml")
	writeCLIConfig(t, configPath, cfg.Paths.SourceDir, cfg.Paths.LogDir)
	return cliEnv{configPath: configPath, sourceDir: cfg.Paths.SourceDir, logDir: cfg.Paths.LogDir}
}

func writeCLIConfig(t *testing.T, path, sourceDir, logDir string) {
	t.Helper()
	content := fmt.Sprintf("[paths]\nsource_dir = %q\nlog_dir = %q\n", sourceDir, logDir)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

// installProbeStub puts a fake ffprobe on PATH that prints the same JSON for
// every file.
func installProbeStub(t *testing.T, stdout string) {
	t.Helper()
	binDir := t.TempDir()
	script := "#!/bin/sh\ncat <<'EOF'\n" + stdout + "\nEOF\n"
	if err := os.WriteFile(filepath.Join(binDir, "ffprobe"), []byte(script), 0o755); err != nil {
		t.Fatalf("write ffprobe stub: %v", err)
	}
	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

// runCLI executes a fresh command tree and returns stdout, stderr, and the
// execution error. input feeds the command's stdin.
func runCLI(t *testing.T, args []string, configPath, input string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(input))
	if configPath != "" {
		args = append([]string{"--config", configPath}, args...)
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func mustExist(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected %s to exist: %v", path, err)
	}
}

func mustNotExist(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected %s to be gone, stat err: %v", path, err)
	}
}
