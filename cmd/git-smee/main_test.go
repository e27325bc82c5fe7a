package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/raphi011/git-smee/internal/git"
)

func TestErrorLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"plain", errors.New("boom"), "git-smee: boom"},
		{"multiline", errors.New("config invalid:\n  pre-commit: empty command\n"), "git-smee: config invalid: pre-commit: empty command"},
		{"wrapped", fmt.Errorf("pre-push: %w", errors.New("command failed\twith code 2")), "git-smee: pre-push: command failed with code 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := errorLine(tt.err)
			if got != tt.want {
				t.Errorf("errorLine() = %q, want %q", got, tt.want)
			}
			if strings.Contains(got, "\n") {
				t.Errorf("errorLine() contains a newline: %q", got)
			}
		})
	}
}

func TestConfigPath(t *testing.T) {
	t.Parallel()

	workDir := filepath.FromSlash("/work/sub")
	repo := &git.Repository{Root: filepath.FromSlash("/work")}

	tests := []struct {
		name    string
		flag    string
		env     string
		repo    *git.Repository
		want    string
		wantErr error
	}{
		{"repo default", "", "", repo, filepath.FromSlash("/work/.git-smee.toml"), nil},
		{"env overrides default", "", "hooks.toml", repo, filepath.FromSlash("/work/sub/hooks.toml"), nil},
		{"flag overrides env", "ci.toml", "hooks.toml", repo, filepath.FromSlash("/work/sub/ci.toml"), nil},
		{"absolute flag", filepath.FromSlash("/etc/smee.toml"), "", repo, filepath.FromSlash("/etc/smee.toml"), nil},
		{"relative path is cleaned", "../x/../hooks.toml", "", repo, filepath.FromSlash("/work/hooks.toml"), nil},
		{"env without repository", "", "hooks.toml", nil, filepath.FromSlash("/work/sub/hooks.toml"), nil},
		{"no repository", "", "", nil, "", git.ErrNotARepository},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := configPath(tt.flag, tt.env, workDir, tt.repo)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("configPath() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("configPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRepoContext_HookDir(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rc   repoContext
		want string
	}{
		{"worktree", repoContext{workDir: "/work/sub", repo: &git.Repository{Root: "/work"}}, "/work"},
		{"bare", repoContext{workDir: "/srv/repo.git", repo: &git.Repository{Root: "/srv/repo.git", Bare: true}}, "/srv/repo.git"},
		{"no repository", repoContext{workDir: "/tmp"}, "/tmp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.rc.hookDir(); got != tt.want {
				t.Errorf("hookDir() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRunArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		args      []string
		wantErr   bool
		wantPhase string
		wantHook  []string
	}{
		{"phase only", []string{"pre-commit"}, false, "pre-commit", nil},
		{"empty hook args", []string{"pre-commit", "--"}, false, "pre-commit", nil},
		{"hook args", []string{"pre-push", "--", "origin", "git@example.com:repo.git"}, false, "pre-push", []string{"origin", "git@example.com:repo.git"}},
		{"hook args look like flags", []string{"commit-msg", "--", "-v", "--force"}, false, "commit-msg", []string{"-v", "--force"}},
		{"no phase", []string{}, true, "", nil},
		{"extra positional", []string{"pre-commit", "extra"}, true, "", nil},
		{"arg before dash", []string{"pre-commit", "extra", "--", "x"}, true, "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotPhase string
			var gotHook []string
			cmd := &cobra.Command{
				Use:  "run",
				Args: validateRunArgs,
				RunE: func(cmd *cobra.Command, args []string) error {
					gotPhase, gotHook = splitRunArgs(args, cmd.ArgsLenAtDash())
					return nil
				},
				SilenceUsage:  true,
				SilenceErrors: true,
			}
			cmd.SetArgs(tt.args)

			err := cmd.Execute()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Execute() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if gotPhase != tt.wantPhase {
				t.Errorf("phase = %q, want %q", gotPhase, tt.wantPhase)
			}
			if !slices.Equal(gotHook, tt.wantHook) {
				t.Errorf("hook args = %q, want %q", gotHook, tt.wantHook)
			}
		})
	}
}

func TestCompletePhaseArg(t *testing.T) {
	t.Parallel()

	got, directive := completePhaseArg(nil, nil, "pre-r")
	if want := []string{"pre-rebase", "pre-receive"}; !slices.Equal(got, want) {
		t.Errorf("completePhaseArg(pre-r) = %v, want %v", got, want)
	}
	if directive != cobra.ShellCompDirectiveNoFileComp {
		t.Errorf("directive = %v, want NoFileComp", directive)
	}

	if got, _ := completePhaseArg(nil, nil, ""); len(got) != 23 {
		t.Errorf("completePhaseArg(\"\") returned %d phases, want 23", len(got))
	}
	if got, _ := completePhaseArg(nil, []string{"pre-commit"}, ""); got != nil {
		t.Errorf("completion after the phase = %v, want nil", got)
	}
}

func TestVersionString(t *testing.T) {
	t.Parallel()

	got := versionString()
	if !strings.HasPrefix(got, "git-smee dev (none, unknown, go") {
		t.Errorf("versionString() = %q", got)
	}
}
