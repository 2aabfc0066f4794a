package deps

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// Requirement describes an external tool vidsort shells out to.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of one requirement.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	Version     string
	Detail      string
}

// CheckBinaries evaluates the provided requirements. Commands carrying a
// path separator are checked on disk directly; bare names resolve via PATH,
// matching how the tools are later launched.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		if cmd == "" {
			status.Detail = "command not configured"
		} else if _, detail := commandAvailable(cmd); detail != "" {
			status.Detail = detail
		} else {
			status.Available = true
		}
		results = append(results, status)
	}
	return results
}

// commandAvailable resolves cmd to an executable on disk. It returns the
// resolved path, or a human-readable detail when the command is unusable.
func commandAvailable(cmd string) (string, string) {
	if strings.ContainsRune(cmd, os.PathSeparator) {
		info, err := os.Stat(cmd)
		if err != nil {
			return "", fmt.Sprintf("binary %q not found", cmd)
		}
		if !isExecutable(info) {
			return "", fmt.Sprintf("%q is not executable", cmd)
		}
		return cmd, ""
	}
	path, err := exec.LookPath(cmd)
	if err != nil {
		return "", fmt.Sprintf("binary %q not found", cmd)
	}
	return path, ""
}

func isExecutable(info os.FileInfo) bool {
	if info == nil || info.IsDir() {
		return false
	}
	if runtime.GOOS == "windows" {
		return true
	}
	return info.Mode().Perm()&0o111 != 0
}
