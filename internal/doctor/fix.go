package doctor

import (
	"context"
	"fmt"
	"os"

	"github.com/raphi011/git-smee/internal/config"
	"github.com/raphi011/git-smee/internal/installer"
	"github.com/raphi011/git-smee/internal/output"
)

// fixAllIssues applies fixes for all detected issues.
func fixAllIssues(ctx context.Context, report *Report, opts Options) error {
	out := output.FromContext(ctx)
	out.Println("\nFixing issues...")

	var fixed, failed, skipped int

	// Missing and outdated hooks are rewritten in one install pass
	reinstall := &config.Config{Hooks: make(map[config.Phase][]config.HookDefinition)}

	for _, issue := range report.Issues {
		switch issue.FixAction {
		case FixInstall:
			phase, err := config.ParsePhase(issue.Key)
			if err != nil {
				return err
			}
			reinstall.Hooks[phase] = report.config.Hooks[phase]

		case FixChmod:
			if err := opts.Platform.MakeExecutable(issue.Path); err != nil {
				out.Printf("  ✗ Failed to make %s executable: %v\n", issue.Key, err)
				failed++
				continue
			}
			out.Printf("  ✓ Made %s executable\n", issue.Key)
			fixed++

		case FixRemove:
			// Re-check ownership; never delete a file the user replaced meanwhile
			managed, err := installer.IsManaged(issue.Path)
			if err != nil || !managed {
				out.Printf("  ✗ Skipped %s: no longer managed by git-smee\n", issue.Key)
				failed++
				continue
			}
			if err := os.Remove(issue.Path); err != nil {
				out.Printf("  ✗ Failed to remove %s: %v\n", issue.Key, err)
				failed++
				continue
			}
			out.Printf("  ✓ Removed stale hook %s\n", issue.Key)
			fixed++

		default:
			skipped++
		}
	}

	if len(reinstall.Hooks) > 0 {
		n, err := reinstallHooks(ctx, reinstall, opts)
		fixed += n
		failed += len(reinstall.Hooks) - n
		if err != nil {
			out.Printf("  ✗ Install failed: %v\n", err)
		}
	}

	out.Printf("\nFixed %d of %d issues\n", fixed, fixed+failed+skipped)
	if remaining := failed + skipped; remaining > 0 {
		return fmt.Errorf("%w: %d remaining", ErrIssuesFound, remaining)
	}
	return nil
}

// reinstallHooks installs the hooks of cfg and returns how many were written.
func reinstallHooks(ctx context.Context, cfg *config.Config, opts Options) (int, error) {
	out := output.FromContext(ctx)

	inst, err := installer.NewFileSystem(installer.Options{
		HooksDir: opts.HooksDir,
		Platform: opts.Platform,
	})
	if err != nil {
		return 0, err
	}

	paths, err := installer.InstallHooks(ctx, cfg, opts.Script, inst, opts.Platform)
	for _, path := range paths {
		out.Printf("  ✓ Installed %s\n", path)
	}
	return len(paths), err
}
