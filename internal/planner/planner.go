package planner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"

	"vidsort/internal/analyze"
	"vidsort/internal/classify"
	"vidsort/internal/config"
	"vidsort/internal/logging"
	"vidsort/internal/media"
	"vidsort/internal/services"
	"vidsort/internal/textutil"
	"vidsort/internal/thresholds"
)

// Assignment pairs one analyzed video with its destination folder relative
// to the batch directory. RelPath is slash separated regardless of platform.
type Assignment struct {
	Video   media.Video
	RelPath string
}

// DimensionInfo reports how one thresholded axis was resolved so callers can
// show the applied boundaries alongside the plan.
type DimensionInfo struct {
	Set    thresholds.Set
	Labels []string
}

// Plan is a complete preview of one sort run. Thresholds are resolved over
// the whole batch before any file is assigned, so planning an unchanged
// batch again yields identical assignments. Nothing on disk is touched.
type Plan struct {
	Dimension     Dimension
	Dir           string
	Assignments   []Assignment
	FolderCounts  map[string]int
	Duration      *DimensionInfo
	Quality       *DimensionInfo
	ProbeFailures int
}

// Planner turns analyzed batches into sort plans.
type Planner struct {
	cfg    *config.Config
	logger *slog.Logger
}

// New builds a Planner. A nil logger disables logging.
func New(cfg *config.Config, logger *slog.Logger) *Planner {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Planner{cfg: cfg, logger: logging.NewComponentLogger(logger, "planner")}
}

// Plan assigns every video in the batch to a folder along the given
// dimension. An empty batch produces an empty plan without resolving any
// thresholds.
func (p *Planner) Plan(ctx context.Context, batch *analyze.Batch, dim Dimension) (*Plan, error) {
	logger := logging.WithContext(ctx, p.logger)
	plan := &Plan{
		Dimension:     dim,
		Dir:           batch.Dir,
		FolderCounts:  make(map[string]int),
		ProbeFailures: len(batch.ProbeFailures),
	}
	if len(batch.Videos) == 0 {
		return plan, nil
	}

	segments, err := p.segmentFunc(logger, batch, dim, plan)
	if err != nil {
		return nil, err
	}

	for _, video := range batch.Videos {
		parts := segments(video)
		for i, part := range parts {
			parts[i] = textutil.SanitizeToken(part)
		}
		rel := path.Join(parts...)
		plan.Assignments = append(plan.Assignments, Assignment{Video: video, RelPath: rel})
		plan.FolderCounts[rel]++
	}

	logger.Info("sort planned",
		logging.String("dimension", dim.String()),
		logging.Int("files", len(plan.Assignments)),
		logging.Int("folders", len(plan.FolderCounts)),
	)
	return plan, nil
}

// segmentFunc resolves the thresholds the dimension needs, records them on
// the plan, and returns the per-video folder segment builder.
func (p *Planner) segmentFunc(logger *slog.Logger, batch *analyze.Batch, dim Dimension, plan *Plan) (func(media.Video) []string, error) {
	switch dim {
	case Orientation:
		return func(v media.Video) []string {
			return []string{v.Orientation()}
		}, nil
	case Duration:
		info, err := p.durationInfo(logger, batch)
		if err != nil {
			return nil, err
		}
		plan.Duration = info
		return func(v media.Video) []string {
			return []string{classify.Categorize(v.Duration, info.Set.Cutoffs, info.Labels)}
		}, nil
	case Quality:
		info, err := p.qualityInfo(logger, batch)
		if err != nil {
			return nil, err
		}
		plan.Quality = info
		return func(v media.Video) []string {
			if ratio := v.QualityRatio(p.cfg.Sort.BitrateFactor); ratio > 0 {
				return []string{classify.Categorize(ratio, info.Set.Cutoffs, info.Labels)}
			}
			return []string{classify.Unknown}
		}, nil
	case Bitrate:
		return func(v media.Video) []string {
			return []string{classify.BitrateCategory(v.Bitrate, p.cfg.Sort.BitrateThresholdKbps)}
		}, nil
	case Pipeline:
		info, err := p.durationInfo(logger, batch)
		if err != nil {
			return nil, err
		}
		plan.Duration = info
		return func(v media.Video) []string {
			return []string{
				v.Orientation(),
				classify.Categorize(v.Duration, info.Set.Cutoffs, info.Labels),
				classify.BitrateCategory(v.Bitrate, p.cfg.Sort.BitrateThresholdKbps),
			}
		}, nil
	default:
		return nil, services.Wrap(
			services.ErrValidation,
			"planner",
			"select dimension",
			fmt.Sprintf("Unsupported sort dimension %q", dim.String()),
			nil,
		)
	}
}

func (p *Planner) durationInfo(logger *slog.Logger, batch *analyze.Batch) (*DimensionInfo, error) {
	method, err := thresholds.ParseMethod(p.cfg.Sort.DurationMethod)
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "planner", "parse duration method", "Invalid sort.duration_method in configuration", err)
	}
	var sample []float64
	for _, v := range batch.Videos {
		if v.Duration > 0 {
			sample = append(sample, v.Duration)
		}
	}
	fixed := []float64{p.cfg.Sort.DurationShortMax, p.cfg.Sort.DurationMediumMax}
	set, err := p.resolveSet(logger, "duration", method, sample, fixed)
	if err != nil {
		return nil, err
	}
	return &DimensionInfo{Set: set, Labels: classify.DurationLabels(set.Cutoffs, p.cfg.Sort.NumCategories)}, nil
}

func (p *Planner) qualityInfo(logger *slog.Logger, batch *analyze.Batch) (*DimensionInfo, error) {
	method, err := thresholds.ParseMethod(p.cfg.Sort.QualityMethod)
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "planner", "parse quality method", "Invalid sort.quality_method in configuration", err)
	}
	var sample []float64
	for _, v := range batch.Videos {
		if ratio := v.QualityRatio(p.cfg.Sort.BitrateFactor); ratio > 0 {
			sample = append(sample, ratio)
		}
	}
	fixed := []float64{p.cfg.Sort.QualityMediumMin, p.cfg.Sort.QualityHighMin}
	set, err := p.resolveSet(logger, "quality", method, sample, fixed)
	if err != nil {
		return nil, err
	}
	return &DimensionInfo{Set: set, Labels: classify.QualityLabels(set.Cutoffs, p.cfg.Sort.NumCategories)}, nil
}

// resolveSet produces the boundary set for one axis. The fixed method takes
// its cutoffs straight from configuration; every other method derives them
// from the sample. An empty sample downgrades to an empty cutoff list, which
// classifies every file into the middle category.
func (p *Planner) resolveSet(logger *slog.Logger, axis string, method thresholds.Method, sample, fixed []float64) (thresholds.Set, error) {
	categories := p.cfg.Sort.NumCategories
	if method == thresholds.Fixed {
		return thresholds.Set{
			Method:      method,
			Cutoffs:     fixed[:categories-1],
			Description: "static cutoffs from configuration",
		}, nil
	}

	set, err := thresholds.Compute(sample, method, categories)
	if errors.Is(err, thresholds.ErrEmptySample) {
		logger.Warn("no usable sample, middle category applies to every file",
			logging.String("axis", axis),
			logging.String("method", method.String()),
		)
		return thresholds.Set{
			Method:         method,
			UsedFallback:   true,
			FallbackReason: "no usable values in sample",
		}, nil
	}
	if err != nil {
		return thresholds.Set{}, services.Wrap(services.ErrValidation, "planner", "derive thresholds", fmt.Sprintf("Failed to derive %s thresholds", axis), err)
	}

	if set.UsedFallback {
		logger.Warn("threshold derivation degraded",
			logging.String("axis", axis),
			logging.String("method", method.String()),
			logging.String("reason", set.FallbackReason),
		)
	}
	logger.Info("thresholds resolved",
		logging.String("axis", axis),
		logging.String("method", method.String()),
		logging.Any("cutoffs", set.Cutoffs),
		logging.String("description", set.Description),
	)
	return set, nil
}
