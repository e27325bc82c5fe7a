package git

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
)

// ErrNotARepository is returned when no repository contains the directory.
var ErrNotARepository = errors.New("not inside a git repository")

// Repository is the repository git-smee operates on. It is passed to every
// operation that needs a root path instead of changing the process working
// directory.
type Repository struct {
	// Root is the top-level worktree directory, or the git directory of a
	// bare repository.
	Root string
	Bare bool
}

// FindRepositoryRoot returns the repository containing dir.
// An empty dir means the current working directory.
func FindRepositoryRoot(ctx context.Context, dir string) (*Repository, error) {
	root, err := outputGit(ctx, dir, "rev-parse", "--show-toplevel")
	if err == nil && root != "" {
		return &Repository{Root: filepath.Clean(root)}, nil
	}
	if errors.Is(err, context.Canceled) {
		return nil, err
	}

	// Bare repositories have no worktree; server-side hooks run there.
	bare, bareErr := outputGit(ctx, dir, "rev-parse", "--is-bare-repository")
	if bareErr == nil && bare == "true" {
		gitDir, gdErr := outputGit(ctx, dir, "rev-parse", "--absolute-git-dir")
		if gdErr == nil {
			return &Repository{Root: filepath.Clean(gitDir), Bare: true}, nil
		}
		err = gdErr
	}
	if err == nil {
		err = bareErr
	}
	return nil, fmt.Errorf("%w: %w", ErrNotARepository, err)
}

// ResolveGitPath asks git where key lives inside the repository at root
// (git rev-parse --git-path). Relative answers are joined to root.
// This honors core.hooksPath, linked worktrees and GIT_DIR.
func ResolveGitPath(ctx context.Context, root, key string) (string, error) {
	p, err := outputGit(ctx, root, "rev-parse", "--git-path", key)
	if err != nil {
		return "", fmt.Errorf("resolve git path %q: %w", key, err)
	}
	if !filepath.IsAbs(p) {
		p = filepath.Join(root, p)
	}
	return filepath.Clean(p), nil
}

// HooksDir returns the effective hooks directory of r.
func (r *Repository) HooksDir(ctx context.Context) (string, error) {
	return ResolveGitPath(ctx, r.Root, "hooks")
}
