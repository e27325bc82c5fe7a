package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/git-smee/internal/installer"
	"github.com/raphi011/git-smee/internal/output"
	"github.com/raphi011/git-smee/internal/platform"
	"github.com/raphi011/git-smee/internal/ui/static"
	"github.com/raphi011/git-smee/internal/ui/styles"
)

func newStatusCmd(opts *rootOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show which configured hooks are installed",
		Long: `Show every configured phase with its hook file and state:

  installed   the hook file was written by git-smee
  unmanaged   a hook file exists but was not written by git-smee
  missing     no hook file exists; run 'git smee install'
  stale       a git-smee hook file exists for a phase no longer configured`,
		Example: `  git smee status          # Table of hook states
  git smee status --json   # Machine-readable output`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
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

			statuses, err := installer.Inspect(cfg, hooksDir, platform.Current())
			if err != nil {
				return err
			}

			if jsonOutput {
				if statuses == nil {
					statuses = []installer.HookStatus{}
				}
				return out.JSON(statuses)
			}

			if len(statuses) == 0 {
				out.Println("No hooks configured")
				return nil
			}
			out.Print(static.RenderStatus(statuses))
			for _, s := range statuses {
				if s.State == installer.StateMissing || s.State == installer.StateStale {
					out.Println(styles.InfoStyle.Render("Run 'git smee install' to update hooks."))
					break
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
