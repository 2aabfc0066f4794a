package main

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// formatClock renders a duration in seconds as h:mm:ss, or m:ss under an
// hour.
func formatClock(seconds float64) string {
	total := int(seconds + 0.5)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// formatCutoffs joins boundary values for display.
func formatCutoffs(cutoffs []float64) string {
	if len(cutoffs) == 0 {
		return "none"
	}
	parts := make([]string, len(cutoffs))
	for i, c := range cutoffs {
		parts[i] = strconv.FormatFloat(c, 'f', 2, 64)
	}
	return strings.Join(parts, ", ")
}

// confirm prompts on stderr and reads one line from the command's stdin.
// Anything but y or yes declines, including EOF.
func confirm(cmd *cobra.Command, prompt string) bool {
	fmt.Fprintf(cmd.ErrOrStderr(), "%s [y/N]: ", prompt)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
