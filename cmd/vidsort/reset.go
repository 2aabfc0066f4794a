package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vidsort/internal/organizer"
)

func newResetCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool
	var assumeYes bool

	cmd := &cobra.Command{
		Use:   "reset [directory]",
		Short: "Move sorted files back to the directory root",
		Long: "Reset walks every subdirectory, moves the video files it finds back\n" +
			"to the directory root, and removes the subdirectories that end up\n" +
			"empty. Files that collide with an existing name get a numeric suffix.",
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

			if !dryRun && !assumeYes {
				prompt := fmt.Sprintf("Flatten every subdirectory of %s back into it?", dir)
				if !confirm(cmd, prompt) {
					if ctx.jsonMode() {
						return writeJSON(cmd, map[string]any{"aborted": true})
					}
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}

			renderer := newProgressRenderer(ctx.jsonMode())
			result, err := organizer.New(cfg, logger).Reset(cmd.Context(), dir, dryRun, renderer.Notify)
			renderer.Finish()
			if err != nil {
				return err
			}

			if ctx.jsonMode() {
				return writeJSON(cmd, buildResultView(result, dryRun))
			}
			if result.Moved == 0 && result.Errors == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Nothing to reset in %s\n", dir)
				return nil
			}
			renderMoveSummary(cmd, result, dryRun, fmt.Sprintf("back to %s", dir))
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview the moves without changing the filesystem")
	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
