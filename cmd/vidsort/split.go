package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vidsort/internal/organizer"
)

func newSplitCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool
	var assumeYes bool
	var perFolder int

	cmd := &cobra.Command{
		Use:   "split [directory]",
		Short: "Distribute files into numbered folders of a fixed size",
		Long: "Split moves the video files directly inside a directory into numbered\n" +
			"folders (1, 2, 3, ...) holding at most --per-folder files each, in\n" +
			"sorted filename order. Directories at or under the cap are left alone.",
		Args: cobra.MaximumNArgs(1),
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
			if perFolder == 0 {
				perFolder = cfg.Sort.SplitFolderSize
			}

			if !dryRun && !assumeYes {
				prompt := fmt.Sprintf("Split the files in %s into folders of %d?", dir, perFolder)
				if !confirm(cmd, prompt) {
					if ctx.jsonMode() {
						return writeJSON(cmd, map[string]any{"aborted": true})
					}
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}

			renderer := newProgressRenderer(ctx.jsonMode())
			result, err := organizer.New(cfg, logger).Split(cmd.Context(), dir, perFolder, dryRun, renderer.Notify)
			renderer.Finish()
			if err != nil {
				return err
			}

			if ctx.jsonMode() {
				return writeJSON(cmd, buildResultView(result, dryRun))
			}
			if result.Folders == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Nothing to split: %s holds %d files or fewer\n", dir, perFolder)
				return nil
			}
			renderMoveSummary(cmd, result, dryRun, fmt.Sprintf("into %d numbered folders", result.Folders))
			return nil
		},
	}

	cmd.Flags().IntVar(&perFolder, "per-folder", 0, "Files per folder (defaults to sort.split_folder_size)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview the moves without changing the filesystem")
	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
