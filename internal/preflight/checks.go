package preflight

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"vidsort/internal/deps"
)

// CheckDirectoryAccess verifies that the directory exists and is fully
// accessible. Sorting both lists and moves files, so read, write, and
// traverse permissions are all required.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckLogDir verifies the log directory can be created and written to.
func CheckLogDir(name, path string) Result {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: create: %v)", path, err)}
	}
	if err := unix.Access(path, unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (writable)", path)}
}

// CheckFFprobe folds the binary availability check into a preflight result,
// carrying the announced version when the tool runs.
func CheckFFprobe(binary string) Result {
	const name = "FFprobe"

	status := deps.CheckFFprobe(binary)
	if !status.Available {
		return Result{Name: name, Detail: status.Detail}
	}
	detail := status.Command
	if status.Version != "" {
		detail = fmt.Sprintf("%s (version %s)", status.Command, status.Version)
	}
	return Result{Name: name, Passed: true, Detail: detail}
}
