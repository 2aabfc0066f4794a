package analyze_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"vidsort/internal/analyze"
	"vidsort/internal/media"
	"vidsort/internal/progress"
	"vidsort/internal/services"
	"vidsort/internal/testsupport"
)

func TestScanFiltersAndOrders(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	dir := cfg.Paths.SourceDir
	testsupport.WriteVideoFiles(t, dir, "b.mp4", "a.mkv", "notes.txt")
	testsupport.WriteFile(t, filepath.Join(dir, "nested", "inner.mp4"), 32)

	prober := &testsupport.StubProber{
		Videos: map[string]media.Video{
			"a.mkv": {Width: 1920, Height: 1080, Duration: 120},
			"b.mp4": {Width: 720, Height: 1280, Duration: 30},
		},
	}
	scanner := analyze.NewScanner(cfg, prober, nil)

	var updates []progress.Update
	batch, err := scanner.Scan(context.Background(), dir, func(u progress.Update) {
		updates = append(updates, u)
	})
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}

	if batch.Count() != 2 {
		t.Fatalf("expected 2 videos, got %d", batch.Count())
	}
	if batch.Videos[0].Filename != "a.mkv" || batch.Videos[1].Filename != "b.mp4" {
		t.Fatalf("expected sorted filename order, got %q then %q", batch.Videos[0].Filename, batch.Videos[1].Filename)
	}
	if batch.Videos[0].Size == 0 {
		t.Fatal("expected size from directory listing")
	}

	if len(updates) != 2 {
		t.Fatalf("expected 2 progress updates, got %d", len(updates))
	}
	if updates[0].Stage != progress.StageAnalyze || updates[0].Index != 1 || updates[0].Total != 2 {
		t.Fatalf("unexpected first update: %+v", updates[0])
	}
	if updates[1].Filename != "b.mp4" {
		t.Fatalf("unexpected second update: %+v", updates[1])
	}
}

func TestScanCollectsProbeFailures(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	dir := cfg.Paths.SourceDir
	testsupport.WriteVideoFiles(t, dir, "good.mp4", "corrupt.mp4")

	prober := &testsupport.StubProber{
		Videos:   map[string]media.Video{"good.mp4": {Width: 640, Height: 480}},
		Failures: map[string]error{"corrupt.mp4": errors.New("moov atom not found")},
	}
	scanner := analyze.NewScanner(cfg, prober, nil)

	batch, err := scanner.Scan(context.Background(), dir, nil)
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}
	if batch.Count() != 1 || len(batch.ProbeFailures) != 1 {
		t.Fatalf("expected 1 video and 1 failure, got %d and %d", batch.Count(), len(batch.ProbeFailures))
	}
	if batch.ProbeFailures[0].Filename != "corrupt.mp4" {
		t.Fatalf("unexpected failure entry: %+v", batch.ProbeFailures[0])
	}
	if batch.Total() != 2 {
		t.Fatalf("expected total 2, got %d", batch.Total())
	}
}

func TestScanMissingDirectory(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	scanner := analyze.NewScanner(cfg, &testsupport.StubProber{}, nil)

	_, err := scanner.Scan(context.Background(), filepath.Join(cfg.Paths.SourceDir, "missing"), nil)
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestScanHonorsContextCancellation(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	dir := cfg.Paths.SourceDir
	testsupport.WriteVideoFiles(t, dir, "a.mp4")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	scanner := analyze.NewScanner(cfg, &testsupport.StubProber{}, nil)
	if _, err := scanner.Scan(ctx, dir, nil); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestBatchTotals(t *testing.T) {
	batch := &analyze.Batch{
		Videos: []media.Video{
			{Size: 1000, Duration: 90},
			{Size: 2000, Duration: 30.5},
		},
	}
	if got := batch.TotalSize(); got != 3000 {
		t.Fatalf("TotalSize = %d, want 3000", got)
	}
	if got := batch.TotalDuration().Seconds(); got != 120.5 {
		t.Fatalf("TotalDuration = %v seconds, want 120.5", got)
	}
}
