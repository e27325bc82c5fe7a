package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/raphi011/git-smee/internal/doctor"
	"github.com/raphi011/git-smee/internal/platform"
)

func newDoctorCmd(opts *rootOptions) *cobra.Command {
	var fix bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose and repair the hook installation",
		Long: `Check the hook config and every hook file against what install would
write now.

Detected issues:
  - config that does not load or validate
  - configured hooks that are not installed
  - hook files that are not executable
  - managed hooks pointing at a moved git-smee binary or config
  - managed hooks for phases no longer configured
  - hook files not written by git-smee

With --fix, everything except unmanaged hook files is repaired. Exits
non-zero while issues remain.`,
		Example: `  git smee doctor        # Report issues
  git smee doctor --fix  # Repair what can be repaired`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			rc, err := opts.resolveRepo(ctx)
			if err != nil {
				return err
			}
			repo, err := rc.requireRepo()
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

			return doctor.Run(ctx, doctor.Options{
				ConfigPath: cfgPath,
				HooksDir:   hooksDir,
				Script:     platform.ScriptOptions{ExecutablePath: exe, ConfigPath: cfgPath},
				Platform:   platform.Current(),
				Fix:        fix,
			})
		},
	}

	cmd.Flags().BoolVar(&fix, "fix", false, "Repair issues")

	return cmd
}
