package organizer

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"vidsort/internal/config"
	"vidsort/internal/fileutil"
	"vidsort/internal/logging"
	"vidsort/internal/planner"
	"vidsort/internal/progress"
	"vidsort/internal/services"
)

// Result summarizes one executed operation.
type Result struct {
	Moved        int
	Errors       int
	Folders      int
	FolderCounts map[string]int
}

// Organizer moves files according to sort plans and runs the reset and
// split maintenance operations.
type Organizer struct {
	cfg    *config.Config
	logger *slog.Logger
}

// New builds an Organizer. A nil logger disables logging.
func New(cfg *config.Config, logger *slog.Logger) *Organizer {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Organizer{cfg: cfg, logger: logging.NewComponentLogger(logger, "organizer")}
}

// Execute carries out a sort plan. Files land in their planned folders,
// renamed with a numeric suffix when the destination name is taken. Move
// failures are logged and counted without aborting the run. With dryRun set
// nothing on disk changes and every assignment counts as moved.
func (o *Organizer) Execute(ctx context.Context, plan *planner.Plan, dryRun bool, notify progress.Func) (*Result, error) {
	logger := logging.WithContext(ctx, o.logger)
	result := &Result{
		Errors:       plan.ProbeFailures,
		FolderCounts: make(map[string]int),
	}

	total := len(plan.Assignments)
	for i, assignment := range plan.Assignments {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		progress.Notify(notify, progress.Update{
			Stage:    progress.StageSort,
			Index:    i + 1,
			Total:    total,
			Filename: assignment.Video.Filename,
			Target:   assignment.RelPath,
		})

		if dryRun {
			result.Moved++
			result.FolderCounts[assignment.RelPath]++
			continue
		}

		destDir := filepath.Join(plan.Dir, filepath.FromSlash(assignment.RelPath))
		dest, err := fileutil.CollisionFreePath(filepath.Join(destDir, assignment.Video.Filename))
		if err == nil {
			err = fileutil.MoveFile(assignment.Video.Path, dest)
		}
		if err != nil {
			logger.Warn("move failed",
				logging.String("file", assignment.Video.Filename),
				logging.String("target", assignment.RelPath),
				logging.Error(err),
			)
			result.Errors++
			continue
		}
		result.Moved++
		result.FolderCounts[assignment.RelPath]++
	}
	result.Folders = len(result.FolderCounts)

	logger.Info("sort executed",
		logging.String("dimension", plan.Dimension.String()),
		logging.Bool("dry_run", dryRun),
		logging.Int("moved", result.Moved),
		logging.Int("errors", result.Errors),
	)
	return result, nil
}

type flatCandidate struct {
	filename string
	source   string
	relative string
}

// Reset moves every video found under subdirectories of root back into root
// itself, then removes subdirectories left empty. Files already at the top
// level stay where they are. Colliding names pick up a numeric suffix, so a
// reset after a reset is not guaranteed to restore original names.
func (o *Organizer) Reset(ctx context.Context, root string, dryRun bool, notify progress.Func) (*Result, error) {
	logger := logging.WithContext(ctx, o.logger)
	root = filepath.Clean(root)

	var candidates []flatCandidate
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Dir(path) == root {
			return nil
		}
		if !o.cfg.HasExtension(d.Name()) {
			return nil
		}
		rel, relErr := filepath.Rel(root, filepath.Dir(path))
		if relErr != nil {
			rel = filepath.Dir(path)
		}
		candidates = append(candidates, flatCandidate{filename: d.Name(), source: path, relative: rel})
		return nil
	})
	if walkErr != nil {
		marker := services.ErrTransient
		if os.IsNotExist(walkErr) {
			marker = services.ErrNotFound
		}
		return nil, services.Wrap(marker, "organizer", "walk directory", "Failed to walk directory tree for reset", walkErr)
	}

	result := &Result{}
	if len(candidates) == 0 {
		return result, nil
	}

	for i, candidate := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		progress.Notify(notify, progress.Update{
			Stage:    progress.StageReset,
			Index:    i + 1,
			Total:    len(candidates),
			Filename: candidate.filename,
			Target:   candidate.relative,
		})

		if dryRun {
			result.Moved++
			continue
		}

		dest, err := fileutil.CollisionFreePath(filepath.Join(root, candidate.filename))
		if err == nil {
			err = fileutil.MoveFile(candidate.source, dest)
		}
		if err != nil {
			logger.Warn("move failed",
				logging.String("file", candidate.filename),
				logging.String("source", candidate.relative),
				logging.Error(err),
			)
			result.Errors++
			continue
		}
		result.Moved++
	}

	if !dryRun {
		o.pruneEmptyDirs(logger, root)
	}

	logger.Info("reset complete",
		logging.Bool("dry_run", dryRun),
		logging.Int("moved", result.Moved),
		logging.Int("errors", result.Errors),
	)
	return result, nil
}

// Split distributes root's videos into numbered folders capped at perFolder
// files each. Runs with perFolder or fewer files change nothing.
func (o *Organizer) Split(ctx context.Context, root string, perFolder int, dryRun bool, notify progress.Func) (*Result, error) {
	logger := logging.WithContext(ctx, o.logger)
	if perFolder <= 0 {
		return nil, services.Wrap(services.ErrValidation, "organizer", "validate input", "Files per folder must be positive", nil)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		marker := services.ErrTransient
		if os.IsNotExist(err) {
			marker = services.ErrNotFound
		}
		return nil, services.Wrap(marker, "organizer", "read directory", "Failed to list directory for split", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !o.cfg.HasExtension(entry.Name()) {
			continue
		}
		files = append(files, entry.Name())
	}

	result := &Result{FolderCounts: make(map[string]int)}
	if len(files) <= perFolder {
		logger.Info("nothing to split",
			logging.Int("files", len(files)),
			logging.Int("per_folder", perFolder),
		)
		return result, nil
	}

	result.Folders = (len(files) + perFolder - 1) / perFolder
	for i, name := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		folder := strconv.Itoa(i/perFolder + 1)
		progress.Notify(notify, progress.Update{
			Stage:    progress.StageSplit,
			Index:    i + 1,
			Total:    len(files),
			Filename: name,
			Target:   "folder " + folder,
		})

		if dryRun {
			result.Moved++
			result.FolderCounts[folder]++
			continue
		}

		dest, err := fileutil.CollisionFreePath(filepath.Join(root, folder, name))
		if err == nil {
			err = fileutil.MoveFile(filepath.Join(root, name), dest)
		}
		if err != nil {
			logger.Warn("move failed",
				logging.String("file", name),
				logging.String("folder", folder),
				logging.Error(err),
			)
			result.Errors++
			continue
		}
		result.Moved++
		result.FolderCounts[folder]++
	}

	logger.Info("split complete",
		logging.Bool("dry_run", dryRun),
		logging.Int("moved", result.Moved),
		logging.Int("folders", result.Folders),
		logging.Int("errors", result.Errors),
	)
	return result, nil
}

// pruneEmptyDirs removes empty subdirectories deepest first. Failures are
// logged and skipped so a stubborn directory never fails a reset.
func (o *Organizer) pruneEmptyDirs(logger *slog.Logger, root string) {
	var dirs []string
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() && path != root {
			dirs = append(dirs, path)
		}
		return nil
	})
	if walkErr != nil {
		logger.Warn("prune walk failed", logging.Error(walkErr))
		return
	}

	// Children come after parents in walk order, so deleting in reverse
	// empties nested trees bottom-up.
	for i := len(dirs) - 1; i >= 0; i-- {
		removed, err := fileutil.RemoveDirIfEmpty(dirs[i])
		if err != nil {
			logger.Warn("prune failed", logging.String("dir", dirs[i]), logging.Error(err))
			continue
		}
		if removed {
			logger.Debug("removed empty directory", logging.String("dir", dirs[i]))
		}
	}
}
