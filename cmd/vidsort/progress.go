package main

import (
	"os"

	"github.com/schollz/progressbar/v3"

	"vidsort/internal/progress"
)

// progressRenderer draws a terminal progress bar from batch updates. It
// stays inert when stderr is not a terminal or JSON output was requested,
// so pipelines and scripts see no control characters.
type progressRenderer struct {
	enabled bool
	stage   string
	bar     *progressbar.ProgressBar
}

func newProgressRenderer(jsonMode bool) *progressRenderer {
	return &progressRenderer{enabled: !jsonMode && shouldColorize(os.Stderr)}
}

// Notify implements progress.Func. A stage change starts a fresh bar.
func (r *progressRenderer) Notify(update progress.Update) {
	if !r.enabled {
		return
	}
	if r.bar == nil || r.stage != update.Stage {
		r.finish()
		r.stage = update.Stage
		r.bar = progressbar.Default(-1, stageDescription(update.Stage))
	}
	if update.Total > 0 && r.bar.GetMax() == -1 {
		r.bar.ChangeMax64(int64(update.Total))
	}
	_ = r.bar.Set64(int64(update.Index))
}

func (r *progressRenderer) Finish() {
	r.finish()
}

func (r *progressRenderer) finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
		r.bar = nil
	}
}

func stageDescription(stage string) string {
	switch stage {
	case progress.StageAnalyze:
		return "Probing"
	case progress.StageSort:
		return "Moving"
	case progress.StageReset:
		return "Flattening"
	case progress.StageSplit:
		return "Splitting"
	default:
		return titleCase(stage)
	}
}
