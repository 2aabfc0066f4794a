package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"vidsort/internal/analyze"
	"vidsort/internal/organizer"
	"vidsort/internal/planner"
	"vidsort/internal/services"
	"vidsort/internal/textutil"
)

type thresholdView struct {
	Method         string    `json:"method"`
	Cutoffs        []float64 `json:"cutoffs"`
	Labels         []string  `json:"labels"`
	Description    string    `json:"description,omitempty"`
	UsedFallback   bool      `json:"used_fallback,omitempty"`
	FallbackReason string    `json:"fallback_reason,omitempty"`
}

type planView struct {
	Dimension     string         `json:"dimension"`
	Directory     string         `json:"directory"`
	Files         int            `json:"files"`
	Folders       map[string]int `json:"folders"`
	Duration      *thresholdView `json:"duration,omitempty"`
	Quality       *thresholdView `json:"quality,omitempty"`
	ProbeFailures int            `json:"probe_failures"`
}

type resultView struct {
	Moved        int            `json:"moved"`
	Errors       int            `json:"errors"`
	Folders      int            `json:"folders"`
	FolderCounts map[string]int `json:"folder_counts,omitempty"`
	DryRun       bool           `json:"dry_run"`
}

type sortReport struct {
	Plan   planView   `json:"plan"`
	Result resultView `json:"result"`
}

func newSortCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool
	var assumeYes bool

	cmd := &cobra.Command{
		Use:   "sort <dimension> [directory]",
		Short: "Plan and move video files into category folders",
		Long: "Sort moves the video files directly inside a directory into category\n" +
			"folders along one dimension: " + strings.Join(planner.DimensionNames(), ", ") + ".\n" +
			"Folder names embed the boundaries in effect, so a plain listing\n" +
			"documents how the files were divided.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dim, err := planner.ParseDimension(args[0])
			if err != nil {
				return services.Wrap(services.ErrValidation, "cli", "parse arguments", "Invalid sort dimension", err)
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			dir, err := ctx.resolveDir(args[1:])
			if err != nil {
				return err
			}
			prober, err := ctx.prober()
			if err != nil {
				return err
			}

			runCtx := services.WithDimension(cmd.Context(), dim.String())
			renderer := newProgressRenderer(ctx.jsonMode())
			defer renderer.Finish()

			batch, err := analyze.NewScanner(cfg, prober, logger).Scan(runCtx, dir, renderer.Notify)
			if err != nil {
				return err
			}
			renderer.Finish()

			plan, err := planner.New(cfg, logger).Plan(runCtx, batch, dim)
			if err != nil {
				return err
			}

			if batch.Total() == 0 {
				if ctx.jsonMode() {
					empty := &organizer.Result{FolderCounts: map[string]int{}}
					return writeJSON(cmd, sortReport{
						Plan:   buildPlanView(plan),
						Result: buildResultView(empty, dryRun),
					})
				}
				fmt.Fprintf(cmd.OutOrStdout(), "No video files found in %s\n", dir)
				return nil
			}

			if !ctx.jsonMode() {
				renderPlan(cmd, plan)
			}

			if !dryRun && !assumeYes {
				prompt := fmt.Sprintf("Move %d files under %s?", len(plan.Assignments), plan.Dir)
				if !confirm(cmd, prompt) {
					if ctx.jsonMode() {
						return writeJSON(cmd, map[string]any{"aborted": true})
					}
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}

			result, err := organizer.New(cfg, logger).Execute(runCtx, plan, dryRun, renderer.Notify)
			renderer.Finish()
			if err != nil {
				return err
			}

			if ctx.jsonMode() {
				return writeJSON(cmd, sortReport{
					Plan:   buildPlanView(plan),
					Result: buildResultView(result, dryRun),
				})
			}
			renderMoveSummary(cmd, result, dryRun, fmt.Sprintf("into %d folders", result.Folders))
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview the moves without changing the filesystem")
	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func renderPlan(cmd *cobra.Command, plan *planner.Plan) {
	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)
	for _, line := range renderSectionHeader(titleCase(plan.Dimension.String())+" sort plan", colorize) {
		fmt.Fprintln(out, line)
	}
	fmt.Fprintf(out, "Directory: %s\n", plan.Dir)
	renderThresholdLines(out, "Duration", plan.Duration, colorize)
	renderThresholdLines(out, "Quality", plan.Quality, colorize)

	folders := make([]string, 0, len(plan.FolderCounts))
	for folder := range plan.FolderCounts {
		folders = append(folders, folder)
	}
	sort.Strings(folders)
	rows := make([][]string, 0, len(folders))
	for _, folder := range folders {
		rows = append(rows, []string{folder, strconv.Itoa(plan.FolderCounts[folder])})
	}
	fmt.Fprintln(out, renderTable([]string{"Folder", "Files"}, rows, []columnAlignment{alignLeft, alignRight}))
	fmt.Fprintf(out, "%d files across %d folders\n", len(plan.Assignments), len(plan.FolderCounts))
	if plan.ProbeFailures > 0 {
		note := fmt.Sprintf("%d files could not be probed and will stay in place", plan.ProbeFailures)
		fmt.Fprintln(out, paint(note, ansiYellow, colorize))
	}
}

func renderThresholdLines(out io.Writer, axis string, info *planner.DimensionInfo, colorize bool) {
	if info == nil {
		return
	}
	fmt.Fprintf(out, "%s thresholds (%s): %s\n", axis, info.Set.Method, formatCutoffs(info.Set.Cutoffs))
	if desc := info.Set.Description; desc != "" {
		fmt.Fprintf(out, "  %s\n", desc)
	}
	if info.Set.UsedFallback {
		fmt.Fprintln(out, paint("  note: "+info.Set.FallbackReason, ansiYellow, colorize))
	}
}

func renderMoveSummary(cmd *cobra.Command, result *organizer.Result, dryRun bool, suffix string) {
	verb := textutil.Ternary(dryRun, "Would move", "Moved")
	line := fmt.Sprintf("%s %d files %s", verb, result.Moved, suffix)
	if result.Errors > 0 {
		line += fmt.Sprintf(" (%d errors)", result.Errors)
	}
	fmt.Fprintln(cmd.OutOrStdout(), line)
}

func buildPlanView(plan *planner.Plan) planView {
	return planView{
		Dimension:     plan.Dimension.String(),
		Directory:     plan.Dir,
		Files:         len(plan.Assignments),
		Folders:       plan.FolderCounts,
		Duration:      buildThresholdView(plan.Duration),
		Quality:       buildThresholdView(plan.Quality),
		ProbeFailures: plan.ProbeFailures,
	}
}

func buildThresholdView(info *planner.DimensionInfo) *thresholdView {
	if info == nil {
		return nil
	}
	return &thresholdView{
		Method:         info.Set.Method.String(),
		Cutoffs:        info.Set.Cutoffs,
		Labels:         info.Labels,
		Description:    info.Set.Description,
		UsedFallback:   info.Set.UsedFallback,
		FallbackReason: info.Set.FallbackReason,
	}
}

func buildResultView(result *organizer.Result, dryRun bool) resultView {
	return resultView{
		Moved:        result.Moved,
		Errors:       result.Errors,
		Folders:      result.Folders,
		FolderCounts: result.FolderCounts,
		DryRun:       dryRun,
	}
}
