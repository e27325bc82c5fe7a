package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/raphi011/git-smee/internal/config"
	"github.com/raphi011/git-smee/internal/installer"
	"github.com/raphi011/git-smee/internal/log"
	"github.com/raphi011/git-smee/internal/output"
	"github.com/raphi011/git-smee/internal/platform"
)

func newInstallCmd(opts *rootOptions) *cobra.Command {
	var (
		force  bool
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install hook scripts for all configured phases",
		Long: `Write one hook script per configured phase into the repository's
hooks directory (core.hooksPath and linked worktrees are honored).

Existing hook files written by git-smee are replaced. Any other existing
hook file is left untouched and the install fails, unless --force is given.`,
		Example: `  git smee install             # Install hooks from .git-smee.toml
  git smee install --dry-run   # Show the scripts without writing them
  git smee install --force     # Overwrite hooks not written by git-smee`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd.Context(), opts, force, dryRun)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing hook files not managed by git-smee")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, "Print hook scripts without writing them")

	return cmd
}

func runInstall(ctx context.Context, opts *rootOptions, force, dryRun bool) error {
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)

	rc, err := opts.resolveRepo(ctx)
	if err != nil {
		return err
	}
	repo, err := rc.requireRepo()
	if err != nil {
		return err
	}
	cfg, err := rc.loadConfig(ctx)
	if err != nil {
		return err
	}
	hooksDir, err := repo.HooksDir(ctx)
	if err != nil {
		return err
	}

	exe, err := opts.executable()
	if err != nil {
		return err
	}
	cfgPath, err := filepath.Abs(rc.configPath)
	if err != nil {
		return err
	}
	scriptOpts := platform.ScriptOptions{ExecutablePath: exe, ConfigPath: cfgPath}
	p := platform.Current()

	l.Debug("installing hooks", "dir", hooksDir, "phases", len(cfg.Hooks), "force", force, "dryRun", dryRun)

	if dryRun {
		return previewInstall(ctx, cfg, hooksDir, cfgPath, force, scriptOpts, p)
	}

	inst, err := installer.NewFileSystem(installer.Options{
		HooksDir:   hooksDir,
		ConfigPath: cfgPath,
		Force:      force,
		Platform:   p,
	})
	if err != nil {
		return err
	}

	paths, err := installer.InstallHooks(ctx, cfg, scriptOpts, inst, p)
	for _, path := range paths {
		out.Printf("Installed %s\n", path)
	}
	return err
}

// previewInstall runs the install against an in-memory copy of the hook
// files that exist on disk and prints what would be written.
func previewInstall(ctx context.Context, cfg *config.Config, hooksDir, cfgPath string, force bool, scriptOpts platform.ScriptOptions, p platform.Platform) error {
	out := output.FromContext(ctx)

	mem := installer.NewMemory(hooksDir, cfgPath, force)
	var existing []string
	for _, phase := range cfg.Phases() {
		existing = append(existing, filepath.Join(hooksDir, phase.String()))
	}
	if err := mem.SeedFromDisk(existing...); err != nil {
		return err
	}

	paths, err := installer.InstallHooks(ctx, cfg, scriptOpts, mem, p)
	for _, path := range paths {
		content, _ := mem.File(path)
		out.Printf("[dry-run] would write %s\n", path)
		out.Print(content)
		out.Println()
	}
	if err != nil {
		return fmt.Errorf("install would fail: %w", err)
	}
	return nil
}
