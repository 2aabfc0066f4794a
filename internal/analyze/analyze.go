package analyze

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"vidsort/internal/config"
	"vidsort/internal/logging"
	"vidsort/internal/media"
	"vidsort/internal/progress"
	"vidsort/internal/services"
)

// Prober extracts metadata for a single file.
type Prober interface {
	Probe(ctx context.Context, path string) (media.Video, error)
}

// Scanner walks one directory level and probes every recognized video file.
type Scanner struct {
	cfg    *config.Config
	prober Prober
	logger *slog.Logger
}

// NewScanner builds a Scanner. A nil logger disables logging.
func NewScanner(cfg *config.Config, prober Prober, logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Scanner{cfg: cfg, prober: prober, logger: logging.NewComponentLogger(logger, "analyze")}
}

// Scan probes the video files directly inside dir in sorted filename order.
// Subdirectories are not descended into, so already-sorted folders are left
// alone. Probe failures are collected per file and never abort the batch;
// ctx cancellation between files does.
func (s *Scanner) Scan(ctx context.Context, dir string, notify progress.Func) (*Batch, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		marker := services.ErrTransient
		if os.IsNotExist(err) {
			marker = services.ErrNotFound
		}
		return nil, services.Wrap(marker, "analyze", "read directory", "Failed to list source directory", err)
	}

	var candidates []os.DirEntry
	for _, entry := range entries {
		if entry.IsDir() || !s.cfg.HasExtension(entry.Name()) {
			continue
		}
		candidates = append(candidates, entry)
	}

	batch := &Batch{Dir: dir}
	for i, entry := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		name := entry.Name()
		progress.Notify(notify, progress.Update{
			Stage:    progress.StageAnalyze,
			Index:    i + 1,
			Total:    len(candidates),
			Filename: name,
		})

		path := filepath.Join(dir, name)
		video, err := s.prober.Probe(ctx, path)
		if err != nil {
			s.logger.Warn("probe failed",
				logging.String("file", name),
				logging.Error(err),
			)
			batch.ProbeFailures = append(batch.ProbeFailures, ProbeFailure{Filename: name, Err: err})
			continue
		}
		if info, err := entry.Info(); err == nil {
			video.Size = info.Size()
		}
		batch.Videos = append(batch.Videos, video)
	}

	s.logger.Info("scan complete",
		logging.String("dir", dir),
		logging.Int("videos", batch.Count()),
		logging.Int("probe_failures", len(batch.ProbeFailures)),
	)
	return batch, nil
}
