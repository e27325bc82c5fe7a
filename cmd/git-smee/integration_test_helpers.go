//go:build integration

package main

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// testExecutable is the git-smee path written into hook scripts by tests.
const testExecutable = "/usr/local/bin/git-smee"

// resolvePath resolves symlinks in a path.
// This is needed on macOS where /var is a symlink to /private/var.
func resolvePath(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		t.Fatalf("failed to resolve path %s: %v", path, err)
	}
	return resolved
}

// setupTestRepo creates a git repo in dir/name with an existing hooks
// directory. Returns the absolute path to the repo (with symlinks resolved).
func setupTestRepo(t *testing.T, dir, name string) string {
	t.Helper()

	// Resolve symlinks in dir (needed for macOS where /var -> /private/var)
	dir = resolvePath(t, dir)

	repoPath := filepath.Join(dir, name)
	if err := os.MkdirAll(repoPath, 0755); err != nil {
		t.Fatalf("failed to create repo dir: %v", err)
	}

	runGitCommand(t, repoPath, "git", "init")
	runGitCommand(t, repoPath, "git", "config", "user.email", "test@test.com")
	runGitCommand(t, repoPath, "git", "config", "user.name", "Test User")

	// Templates may be disabled; hooks dir must exist either way
	if err := os.MkdirAll(filepath.Join(repoPath, ".git", "hooks"), 0755); err != nil {
		t.Fatalf("failed to create hooks dir: %v", err)
	}

	return repoPath
}

// runGitCommand runs a git command and returns output
func runGitCommand(t *testing.T, dir string, args ...string) string {
	t.Helper()

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("failed to run %v: %v\n%s", args, err, out)
	}
	return string(out)
}

// writeConfig writes .git-smee.toml into repoPath.
func writeConfig(t *testing.T, repoPath, content string) string {
	t.Helper()

	path := filepath.Join(repoPath, ".git-smee.toml")
	if err := os.WriteFile(path, []byte(strings.TrimLeft(content, "\n")), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

// readFile returns the content of path, failing the test when it is missing.
func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

// executeCommand runs git-smee with args as if started in dir.
// Returns captured stdout and stderr.
func executeCommand(t *testing.T, dir string, args ...string) (string, string, error) {
	t.Helper()

	opts := &rootOptions{
		workDir:    dir,
		executable: func() (string, error) { return testExecutable, nil },
	}
	cmd := newRootCmdWithOptions(opts)

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}
