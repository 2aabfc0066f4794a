package deps

import (
	"context"
	"os/exec"
	"strings"
	"time"
)

const versionProbeTimeout = 2 * time.Second

// ResolveFFprobe returns the ffprobe command to execute, defaulting to a
// PATH lookup when no explicit binary is configured.
func ResolveFFprobe(configured string) string {
	if bin := strings.TrimSpace(configured); bin != "" {
		return bin
	}
	return "ffprobe"
}

// CheckFFprobe reports availability of the ffprobe binary and, when it is
// runnable, the version it announces.
func CheckFFprobe(configured string) Status {
	status := Status{
		Name:        "FFprobe",
		Command:     ResolveFFprobe(configured),
		Description: "Required for media inspection",
	}
	resolved, detail := commandAvailable(status.Command)
	if detail != "" {
		status.Detail = detail
		return status
	}
	status.Available = true
	status.Version = ffprobeVersion(resolved)
	return status
}

// ffprobeVersion runs "ffprobe -version" with a short timeout. Version
// display is best effort, so every failure collapses to an empty string.
func ffprobeVersion(binary string) string {
	ctx, cancel := context.WithTimeout(context.Background(), versionProbeTimeout)
	defer cancel()

	output, err := exec.CommandContext(ctx, binary, "-version").Output()
	if err != nil {
		return ""
	}
	return parseVersionBanner(string(output))
}

// parseVersionBanner extracts the token after "version" from the first line
// of a -version banner, e.g. "ffprobe version 7.0.2 Copyright ..." yields
// "7.0.2".
func parseVersionBanner(output string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(output), "\n")
	fields := strings.Fields(line)
	for i, field := range fields {
		if field == "version" && i+1 < len(fields) {
			return fields[i+1]
		}
	}
	return ""
}
