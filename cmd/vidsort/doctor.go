package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vidsort/internal/preflight"
)

type checkView struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail,omitempty"`
}

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check runtime prerequisites",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			results := preflight.RunAll(cfg)
			failed := 0
			for _, result := range results {
				if !result.Passed {
					failed++
				}
			}

			if ctx.jsonMode() {
				views := make([]checkView, 0, len(results))
				for _, result := range results {
					views = append(views, checkView{Name: result.Name, Passed: result.Passed, Detail: result.Detail})
				}
				if err := writeJSON(cmd, map[string]any{"checks": views, "healthy": failed == 0}); err != nil {
					return err
				}
			} else {
				out := cmd.OutOrStdout()
				colorize := shouldColorize(out)
				rows := make([][]string, 0, len(results))
				for _, result := range results {
					status := paint("PASS", ansiGreen, colorize)
					if !result.Passed {
						status = paint("FAIL", ansiRed, colorize)
					}
					rows = append(rows, []string{result.Name, status, result.Detail})
				}
				fmt.Fprintln(out, renderTable([]string{"Check", "Status", "Detail"}, rows, nil))
				if failed == 0 {
					fmt.Fprintln(out, "All checks passed")
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d checks failed", failed, len(results))
			}
			return nil
		},
	}
}
