package main

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"vidsort/internal/analyze"
)

type scanFileView struct {
	Filename        string  `json:"filename"`
	Width           int     `json:"width"`
	Height          int     `json:"height"`
	FPS             float64 `json:"fps"`
	DurationSeconds float64 `json:"duration_seconds"`
	BitrateBPS      int64   `json:"bitrate_bps"`
	SizeBytes       int64   `json:"size_bytes"`
	Codec           string  `json:"codec,omitempty"`
	Orientation     string  `json:"orientation"`
	QualityRatio    float64 `json:"quality_ratio"`
}

type probeFailureView struct {
	Filename string `json:"filename"`
	Error    string `json:"error"`
}

type scanView struct {
	Directory            string             `json:"directory"`
	Files                []scanFileView     `json:"files"`
	ProbeFailures        []probeFailureView `json:"probe_failures"`
	TotalSizeBytes       int64              `json:"total_size_bytes"`
	TotalDurationSeconds float64            `json:"total_duration_seconds"`
}

func newScanCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "scan [directory]",
		Short: "Probe video files and show their metadata",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			dir, err := ctx.resolveDir(args)
			if err != nil {
				return err
			}
			prober, err := ctx.prober()
			if err != nil {
				return err
			}

			renderer := newProgressRenderer(ctx.jsonMode())
			scanner := analyze.NewScanner(cfg, prober, logger)
			batch, err := scanner.Scan(cmd.Context(), dir, renderer.Notify)
			renderer.Finish()
			if err != nil {
				return err
			}

			if ctx.jsonMode() {
				return writeJSON(cmd, buildScanView(batch, cfg.Sort.BitrateFactor))
			}
			renderScan(cmd, batch, cfg.Sort.BitrateFactor)
			return nil
		},
	}
}

func buildScanView(batch *analyze.Batch, bitrateFactor float64) scanView {
	view := scanView{
		Directory:            batch.Dir,
		Files:                make([]scanFileView, 0, len(batch.Videos)),
		ProbeFailures:        make([]probeFailureView, 0, len(batch.ProbeFailures)),
		TotalSizeBytes:       batch.TotalSize(),
		TotalDurationSeconds: batch.TotalDuration().Seconds(),
	}
	for _, v := range batch.Videos {
		view.Files = append(view.Files, scanFileView{
			Filename:        v.Filename,
			Width:           v.Width,
			Height:          v.Height,
			FPS:             v.FPS,
			DurationSeconds: v.Duration,
			BitrateBPS:      v.Bitrate,
			SizeBytes:       v.Size,
			Codec:           v.Codec,
			Orientation:     v.Orientation(),
			QualityRatio:    v.QualityRatio(bitrateFactor),
		})
	}
	for _, failure := range batch.ProbeFailures {
		view.ProbeFailures = append(view.ProbeFailures, probeFailureView{
			Filename: failure.Filename,
			Error:    failure.Err.Error(),
		})
	}
	return view
}

func renderScan(cmd *cobra.Command, batch *analyze.Batch, bitrateFactor float64) {
	out := cmd.OutOrStdout()
	if batch.Total() == 0 {
		fmt.Fprintf(out, "No video files found in %s\n", batch.Dir)
		return
	}

	if len(batch.Videos) > 0 {
		rows := make([][]string, 0, len(batch.Videos))
		for _, v := range batch.Videos {
			ratio := "n/a"
			if r := v.QualityRatio(bitrateFactor); r > 0 {
				ratio = strconv.FormatFloat(r, 'f', 2, 64)
			}
			rows = append(rows, []string{
				v.Filename,
				fmt.Sprintf("%dx%d", v.Width, v.Height),
				strconv.FormatFloat(v.FPS, 'f', -1, 64),
				formatClock(v.Duration),
				formatBitrate(v.Bitrate),
				ratio,
			})
		}
		fmt.Fprintln(out, renderTable(
			[]string{"File", "Resolution", "FPS", "Duration", "Bitrate", "Ratio"},
			rows,
			[]columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignRight, alignRight},
		))
		fmt.Fprintf(out, "%s files, %s, %s\n",
			humanize.Comma(int64(batch.Count())),
			humanize.IBytes(uint64(batch.TotalSize())),
			formatClock(batch.TotalDuration().Seconds()),
		)
	}

	if len(batch.ProbeFailures) > 0 {
		colorize := shouldColorize(out)
		label := fmt.Sprintf("%d files could not be probed:", len(batch.ProbeFailures))
		fmt.Fprintln(out, paint(label, ansiYellow, colorize))
		for _, failure := range batch.ProbeFailures {
			fmt.Fprintf(out, "  %s: %v\n", failure.Filename, failure.Err)
		}
	}
}

func formatBitrate(bitrate int64) string {
	if bitrate <= 0 {
		return "n/a"
	}
	return fmt.Sprintf("%s kbps", humanize.Comma(bitrate/1000))
}
