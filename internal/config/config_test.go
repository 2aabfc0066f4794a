package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"vidsort/internal/config"
)

func TestLoadDefaultsWhenFileAbsent(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	if cfg.Paths.LogDir != filepath.Join(tempHome, ".local", "share", "vidsort", "logs") {
		t.Fatalf("unexpected log dir: %q", cfg.Paths.LogDir)
	}
	if cfg.Paths.SourceDir != "" {
		t.Fatalf("expected empty source dir by default, got %q", cfg.Paths.SourceDir)
	}
	if cfg.Sort.DurationMethod != "fixed" || cfg.Sort.QualityMethod != "fixed" {
		t.Fatalf("unexpected default methods: %q %q", cfg.Sort.DurationMethod, cfg.Sort.QualityMethod)
	}
	if cfg.Sort.NumCategories != 3 {
		t.Fatalf("unexpected default categories: %d", cfg.Sort.NumCategories)
	}
	if cfg.Sort.BitrateFactor != 0.13 {
		t.Fatalf("unexpected default bitrate factor: %v", cfg.Sort.BitrateFactor)
	}
	if cfg.Scan.ProbeTimeoutSeconds != 30 {
		t.Fatalf("unexpected probe timeout: %d", cfg.Scan.ProbeTimeoutSeconds)
	}
	if len(cfg.Scan.VideoExtensions) != 7 || cfg.Scan.VideoExtensions[0] != ".mp4" {
		t.Fatalf("unexpected default extensions: %v", cfg.Scan.VideoExtensions)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "console" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadCustomPathNormalizes(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "vidsort.toml")

	type payload struct {
		Scan struct {
			VideoExtensions []string `toml:"video_extensions"`
		} `toml:"scan"`
		Sort struct {
			DurationMethod string `toml:"duration_method"`
			NumCategories  int    `toml:"num_categories"`
		} `toml:"sort"`
	}
	custom := payload{}
	custom.Scan.VideoExtensions = []string{"MP4", "mp4", " mkv "}
	custom.Sort.DurationMethod = "KMeans"
	custom.Sort.NumCategories = 2
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if got := cfg.Scan.VideoExtensions; len(got) != 2 || got[0] != ".mp4" || got[1] != ".mkv" {
		t.Fatalf("expected lowercased deduped extensions, got %v", got)
	}
	if cfg.Sort.DurationMethod != "kmeans" {
		t.Fatalf("expected lowercased method, got %q", cfg.Sort.DurationMethod)
	}
	if cfg.Sort.NumCategories != 2 {
		t.Fatalf("expected categories override, got %d", cfg.Sort.NumCategories)
	}
	if cfg.Sort.QualityMethod != "fixed" {
		t.Fatalf("expected default quality method, got %q", cfg.Sort.QualityMethod)
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	cfg := config.Default()
	cfg.Sort.NumCategories = 4
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unsupported category count")
	}

	cfg = config.Default()
	cfg.Sort.DurationMethod = "median"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown duration method")
	}

	cfg = config.Default()
	cfg.Sort.DurationMediumMax = cfg.Sort.DurationShortMax
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when medium max does not exceed short max")
	}

	cfg = config.Default()
	cfg.Sort.QualityHighMin = cfg.Sort.QualityMediumMin - 0.1
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when high min does not exceed medium min")
	}

	cfg = config.Default()
	cfg.Sort.BitrateFactor = -1
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for negative bitrate factor")
	}

	cfg = config.Default()
	cfg.Scan.VideoExtensions = nil
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for empty extension list")
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(contents), "duration_method") {
		t.Fatalf("sample config missing sort keys: %s", contents)
	}

	var cfg config.Config
	if err := toml.Unmarshal(contents, &cfg); err != nil {
		t.Fatalf("unmarshal sample: %v", err)
	}
	if cfg.Sort.NumCategories != 3 {
		t.Fatalf("sample categories = %d, want 3", cfg.Sort.NumCategories)
	}
	if len(cfg.Scan.VideoExtensions) != 7 {
		t.Fatalf("sample extensions = %v", cfg.Scan.VideoExtensions)
	}

	// The shipped sample must survive the full load path, validation included.
	t.Setenv("HOME", t.TempDir())
	loaded, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load(sample) failed: %v", err)
	}
	if !exists {
		t.Fatal("Load did not find the sample file")
	}
	if loaded.Sort.DurationMethod != "fixed" {
		t.Fatalf("sample duration_method = %q", loaded.Sort.DurationMethod)
	}
}

func TestSetValueRoundTrip(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "vidsort.toml")

	if _, err := config.SetValue(configPath, "sort.duration_method", "jenks"); err != nil {
		t.Fatalf("SetValue failed: %v", err)
	}
	if _, err := config.SetValue(configPath, "scan.video_extensions", "mp4, webm"); err != nil {
		t.Fatalf("SetValue extensions failed: %v", err)
	}

	cfg, _, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load after SetValue: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to exist after SetValue")
	}
	if cfg.Sort.DurationMethod != "jenks" {
		t.Fatalf("expected jenks method, got %q", cfg.Sort.DurationMethod)
	}
	if got := cfg.Scan.VideoExtensions; len(got) != 2 || got[0] != ".mp4" || got[1] != ".webm" {
		t.Fatalf("unexpected extensions after SetValue: %v", got)
	}
	// The first mutation must survive the second write.
	if cfg.Sort.NumCategories != 3 {
		t.Fatalf("expected untouched keys to keep defaults, got %d", cfg.Sort.NumCategories)
	}
}

func TestSetValueRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "vidsort.toml")

	if _, err := config.SetValue(configPath, "sort.num_categories", "4"); err == nil {
		t.Fatal("expected validation error for 4 categories")
	}
	if _, err := config.SetValue(configPath, "sort.bitrate_factor", "lots"); err == nil {
		t.Fatal("expected parse error for non-numeric factor")
	}
	if _, err := config.SetValue(configPath, "sorter.method", "fixed"); err == nil {
		t.Fatal("expected error for unknown key")
	}
	if _, err := os.Stat(configPath); !os.IsNotExist(err) {
		t.Fatal("expected no file to be written on failure")
	}
}

func TestHasExtension(t *testing.T) {
	cfg := config.Default()
	if !cfg.HasExtension("clip.MP4") {
		t.Fatal("expected uppercase extension to match")
	}
	if cfg.HasExtension("notes.txt") {
		t.Fatal("expected txt to be rejected")
	}
	if cfg.HasExtension("README") {
		t.Fatal("expected extensionless name to be rejected")
	}
}
