//go:build integration

package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/raphi011/git-smee/internal/installer"
)

// TestStatus_JSON tests machine-readable status after install.
//
// Scenario: install, then add commit-msg to the config and run `git smee status --json`
// Expected: pre-commit and pre-push installed, commit-msg missing
func TestStatus_JSON(t *testing.T) {
	t.Parallel()

	repo := setupTestRepo(t, t.TempDir(), "repo")
	writeConfig(t, repo, twoPhaseConfig)
	if _, _, err := executeCommand(t, repo, "install"); err != nil {
		t.Fatalf("install failed: %v", err)
	}
	writeConfig(t, repo, twoPhaseConfig+"\n[[commit-msg]]\ncommand = \"commitlint\"\n")

	stdout, _, err := executeCommand(t, repo, "status", "--json")
	if err != nil {
		t.Fatalf("status failed: %v", err)
	}

	var got []installer.HookStatus
	if err := json.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", stdout, err)
	}
	want := map[string]installer.State{
		"pre-commit": installer.StateInstalled,
		"commit-msg": installer.StateMissing,
		"pre-push":   installer.StateInstalled,
	}
	if len(got) != len(want) {
		t.Fatalf("status has %d entries, want %d: %+v", len(got), len(want), got)
	}
	for _, s := range got {
		if s.State != want[s.Phase] {
			t.Errorf("%s state = %q, want %q", s.Phase, s.State, want[s.Phase])
		}
	}
}

// TestStatus_Table tests the human-readable status.
//
// Scenario: A user hook exists for a configured phase
// Expected: Table lists the phase as unmanaged
func TestStatus_Table(t *testing.T) {
	t.Parallel()

	repo := setupTestRepo(t, t.TempDir(), "repo")
	writeConfig(t, repo, twoPhaseConfig)
	if err := os.WriteFile(filepath.Join(repo, ".git", "hooks", "pre-push"), []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatal(err)
	}

	stdout, _, err := executeCommand(t, repo, "status")
	if err != nil {
		t.Fatalf("status failed: %v", err)
	}
	for _, want := range []string{"PHASE", "pre-commit", "missing", "pre-push", "unmanaged"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("status output missing %q:\n%s", want, stdout)
		}
	}
}
