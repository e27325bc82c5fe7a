package doctor

import (
	"context"
	"fmt"
	"os"

	"github.com/raphi011/git-smee/internal/config"
	"github.com/raphi011/git-smee/internal/installer"
	"github.com/raphi011/git-smee/internal/log"
)

// checkConfig loads the config, returning an issue instead of an error.
func checkConfig(ctx context.Context, path string) (*config.Config, []Issue) {
	cfg, err := config.Load(path)
	if err != nil {
		log.FromContext(ctx).Debug("config check failed", "path", path, "err", err)
		return nil, []Issue{{
			Key:         path,
			Path:        path,
			Description: err.Error(),
			Category:    CategoryConfig,
		}}
	}
	return cfg, nil
}

// checkHooks compares the hook files in opts.HooksDir with what install
// would write for cfg.
func checkHooks(cfg *config.Config, opts Options) ([]Issue, IssueStats, error) {
	var stats IssueStats

	if info, err := os.Stat(opts.HooksDir); err != nil || !info.IsDir() {
		stats.HooksUnrepairable++
		return []Issue{{
			Key:         "hooks",
			Path:        opts.HooksDir,
			Description: fmt.Sprintf("hooks directory not found: %s", opts.HooksDir),
			Category:    CategoryHooks,
		}}, stats, nil
	}

	statuses, err := installer.Inspect(cfg, opts.HooksDir, opts.Platform)
	if err != nil {
		return nil, stats, err
	}

	var issues []Issue
	for _, s := range statuses {
		issue := Issue{Key: s.Phase, Path: s.Path, Category: CategoryHooks}

		switch s.State {
		case installer.StateMissing:
			issue.Description = "hook is not installed"
			issue.FixAction = FixInstall
		case installer.StateUnmanaged:
			issue.Description = "hook file was not written by git-smee (use 'git smee install --force')"
		case installer.StateStale:
			issue.Description = "managed hook for a phase that is no longer configured"
			issue.FixAction = FixRemove
		case installer.StateInstalled:
			current, err := isCurrent(s.Path, s.Phase, opts)
			if err != nil {
				return nil, stats, err
			}
			switch {
			case !current:
				issue.Description = "hook script is outdated (git-smee or the config moved)"
				issue.FixAction = FixInstall
			case !s.Executable:
				issue.Description = "hook file is not executable"
				issue.FixAction = FixChmod
			default:
				stats.HooksHealthy++
				continue
			}
		}

		if issue.Fixable() {
			stats.HooksRepairable++
		} else {
			stats.HooksUnrepairable++
		}
		issues = append(issues, issue)
	}

	return issues, stats, nil
}

// isCurrent reports whether the managed hook at path is byte-identical to
// what install would write now.
func isCurrent(path, phase string, opts Options) (bool, error) {
	// #nosec G304 -- path is a hook file inside the hooks directory
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("%w: %w", installer.ErrReadExistingFailed, err)
	}
	return string(data) == installer.RenderManagedHook(phase, opts.Script, opts.Platform), nil
}
