package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/git-smee/internal/config"
	"github.com/raphi011/git-smee/internal/installer"
	"github.com/raphi011/git-smee/internal/output"
)

func newInitCmd(opts *rootOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a default .git-smee.toml",
		Long: `Write a commented default config with a single pre-commit hook.

An existing config is never overwritten without --force, even one created
by a previous init, because it may hold your edits.`,
		Example: `  git smee init                       # Create <repo>/.git-smee.toml
  git smee init -c hooks/smee.toml    # Create the config at a custom path
  git smee init --force               # Replace an existing config`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			rc, err := opts.resolveRepo(ctx)
			if err != nil {
				return err
			}

			inst, err := installer.NewFileSystem(installer.Options{
				ConfigPath: rc.configPath,
				Force:      force,
			})
			if err != nil {
				return err
			}

			path, err := installer.WriteConfig(ctx, config.Default(), inst)
			if err != nil {
				return err
			}
			output.FromContext(ctx).Printf("Created %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config file")

	return cmd
}
