package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raphi011/git-smee/internal/config"
	"github.com/raphi011/git-smee/internal/hooks"
	"github.com/raphi011/git-smee/internal/log"
	"github.com/raphi011/git-smee/internal/output"
	"github.com/raphi011/git-smee/internal/platform"
)

func newRunCmd(opts *rootOptions) *cobra.Command {
	var (
		env    []string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:               "run <phase> [-- hook-args...]",
		Short:             "Run the commands configured for a phase",
		Args:              validateRunArgs,
		ValidArgsFunction: completePhaseArg,
		Long: `Run the commands configured for a git hook phase. Installed hook
scripts call this; it can also be run by hand.

Sequential entries run first in the order written. Entries with
parallel_execution_allowed = true run afterwards, concurrently. The first
failure fails the phase.

Arguments after -- are passed to every command as $1, $2, ... and the phase
name is exported as GIT_SMEE_HOOK. Piped stdin is given to every command.`,
		Example: `  git smee run pre-commit                      # Run pre-commit hooks
  git smee run pre-commit --dry-run            # Print commands without running
  git smee run commit-msg -- .git/COMMIT_EDITMSG
  git smee run pre-push -e CI=true -- origin git@example.com:repo.git`,
		RunE: func(cmd *cobra.Command, args []string) error {
			phaseArg, hookArgs := splitRunArgs(args, cmd.ArgsLenAtDash())
			return runPhase(cmd.Context(), opts, phaseArg, hookArgs, env, dryRun)
		},
	}

	cmd.Flags().StringSliceVarP(&env, "env", "e", nil, "Export KEY=VALUE to hook commands")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, "Print commands without executing")
	cmd.RegisterFlagCompletionFunc("env", cobra.NoFileCompletions)

	return cmd
}

// validateRunArgs requires exactly one phase before the optional --.
func validateRunArgs(cmd *cobra.Command, args []string) error {
	n := len(args)
	if dash := cmd.ArgsLenAtDash(); dash >= 0 {
		n = dash
	}
	if n != 1 {
		return fmt.Errorf("expected exactly one phase before --, got %d", n)
	}
	return nil
}

// splitRunArgs splits args into the phase and the hook arguments after --.
func splitRunArgs(args []string, dashIdx int) (string, []string) {
	if dashIdx < 0 {
		return args[0], nil
	}
	return args[0], args[dashIdx:]
}

func runPhase(ctx context.Context, opts *rootOptions, phaseArg string, hookArgs, env []string, dryRun bool) error {
	l := log.FromContext(ctx)

	// The phase is checked before anything is looked up.
	phase, err := config.ParsePhase(phaseArg)
	if err != nil {
		return err
	}
	extraEnv, err := hooks.ParseEnv(env)
	if err != nil {
		return err
	}

	rc, err := opts.resolveRepo(ctx)
	if err != nil {
		return err
	}
	cfg, err := rc.loadConfig(ctx)
	if err != nil {
		return err
	}

	p := platform.Current()
	var runner hooks.Runner
	if dryRun {
		runner = &hooks.DryRunner{Out: output.FromContext(ctx).Writer(), ShellName: p.ShellDescription()}
	} else {
		stdin, err := hooks.ReadStdinIfPiped(opts.stdin)
		if err != nil {
			return err
		}
		sr := hooks.NewShellRunner(p)
		sr.Dir = rc.hookDir()
		sr.Args = hookArgs
		sr.Env = append(extraEnv, hooks.EnvHook+"="+phase.String())
		sr.Stdin = stdin
		runner = sr
	}

	l.Debug("running phase", "phase", phase, "dir", rc.hookDir(), "args", len(hookArgs), "dryRun", dryRun)
	return hooks.NewEngine(runner, 0).Execute(ctx, cfg, phase)
}
