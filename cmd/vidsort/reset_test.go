package main

import (
	"path/filepath"
	"testing"

	"vidsort/internal/testsupport"
)

func TestResetFlattensTree(t *testing.T) {
	env := setupCLIEnv(t)
	testsupport.WriteVideoFiles(t, env.sourceDir,
		filepath.Join("sub", "a.mp4"),
		filepath.Join("sub", "deeper", "b.mp4"),
		"root.mp4",
	)

	out, _, err := runCLI(t, []string{"reset", env.sourceDir, "--yes"}, env.configPath, "")
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	requireContains(t, out, "Moved 2 files")
	mustExist(t, filepath.Join(env.sourceDir, "a.mp4"))
	mustExist(t, filepath.Join(env.sourceDir, "b.mp4"))
	mustExist(t, filepath.Join(env.sourceDir, "root.mp4"))
	mustNotExist(t, filepath.Join(env.sourceDir, "sub"))
}

func TestResetDeclineLeavesFiles(t *testing.T) {
	env := setupCLIEnv(t)
	paths := testsupport.WriteVideoFiles(t, env.sourceDir, filepath.Join("sub", "a.mp4"))

	out, _, err := runCLI(t, []string{"reset", env.sourceDir}, env.configPath, "")
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	requireContains(t, out, "Aborted.")
	mustExist(t, paths[0])
}

func TestResetDryRun(t *testing.T) {
	env := setupCLIEnv(t)
	paths := testsupport.WriteVideoFiles(t, env.sourceDir, filepath.Join("sub", "a.mp4"))

	out, _, err := runCLI(t, []string{"reset", env.sourceDir, "--dry-run"}, env.configPath, "")
	if err != nil {
		t.Fatalf("reset --dry-run: %v", err)
	}
	requireContains(t, out, "Would move 1 files")
	mustExist(t, paths[0])
}

func TestResetNothingToDo(t *testing.T) {
	env := setupCLIEnv(t)

	out, _, err := runCLI(t, []string{"reset", env.sourceDir, "--yes"}, env.configPath, "")
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	requireContains(t, out, "Nothing to reset")
}
