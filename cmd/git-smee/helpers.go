package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/raphi011/git-smee/internal/config"
	"github.com/raphi011/git-smee/internal/git"
	"github.com/raphi011/git-smee/internal/log"
)

// repoContext is the repository a command operates on. It replaces any
// need to change the process working directory.
type repoContext struct {
	workDir    string
	repo       *git.Repository // nil when workDir is not inside a repository
	repoErr    error
	configPath string
}

// resolveRepo locates the repository and the config file for a command.
// The repository is optional as long as the config path is given by flag
// or environment.
func (o *rootOptions) resolveRepo(ctx context.Context) (*repoContext, error) {
	rc := &repoContext{workDir: o.workDir}

	rc.repo, rc.repoErr = git.FindRepositoryRoot(ctx, o.workDir)
	if rc.repoErr != nil {
		log.FromContext(ctx).Debug("no repository", "dir", o.workDir, "err", rc.repoErr)
	}

	path, err := configPath(o.configPath, os.Getenv(config.EnvConfigPath), o.workDir, rc.repo)
	if err != nil {
		if rc.repoErr != nil {
			return nil, rc.repoErr
		}
		return nil, err
	}
	rc.configPath = path
	return rc, nil
}

// configPath applies the lookup order --config, GIT_SMEE_CONFIG, then the
// default file in the repository root. Relative paths are taken from workDir.
func configPath(flag, env, workDir string, repo *git.Repository) (string, error) {
	p := flag
	if p == "" {
		p = env
	}
	if p != "" {
		if !filepath.IsAbs(p) {
			p = filepath.Join(workDir, p)
		}
		return filepath.Clean(p), nil
	}
	if repo == nil {
		return "", git.ErrNotARepository
	}
	return filepath.Join(repo.Root, config.DefaultFileName), nil
}

// requireRepo returns the repository or the error that prevented finding it.
func (rc *repoContext) requireRepo() (*git.Repository, error) {
	if rc.repo == nil {
		return nil, rc.repoErr
	}
	return rc.repo, nil
}

// hookDir is where hook commands run: the worktree root, or the inherited
// directory when there is none (bare repositories, no repository).
func (rc *repoContext) hookDir() string {
	if rc.repo != nil && !rc.repo.Bare {
		return rc.repo.Root
	}
	return rc.workDir
}

// loadConfig loads and validates the config of rc.
func (rc *repoContext) loadConfig(ctx context.Context) (*config.Config, error) {
	log.FromContext(ctx).Debug("loading config", "path", rc.configPath)
	return config.Load(rc.configPath)
}

// executablePath returns the absolute, symlink-free path of the running binary.
func executablePath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate git-smee executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return exe, nil
}
