package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raphi011/git-smee/internal/git"
	"github.com/raphi011/git-smee/internal/log"
	"github.com/raphi011/git-smee/internal/output"
	"github.com/raphi011/git-smee/internal/ui/styles"
)

// rootOptions holds global flags and process state shared by all commands.
type rootOptions struct {
	configPath string
	verbose    bool
	quiet      bool

	// workDir is captured once at startup; nothing changes directory.
	workDir string
	// executable returns the path written into hook scripts.
	executable func() (string, error)
	// stdin is handed to hook commands when it is not a terminal.
	stdin *os.File
}

func newRootCmd(workDir string) *cobra.Command {
	return newRootCmdWithOptions(&rootOptions{
		workDir:    workDir,
		executable: executablePath,
		stdin:      os.Stdin,
	})
}

func newRootCmdWithOptions(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "git-smee",
		Short: "Git hooks manager",
		Long: `git-smee manages git hooks from a .git-smee.toml file in the repository.

It installs small hook scripts into the repository's hooks directory. When
git runs one of them, git-smee runs the commands configured for that phase:
sequential entries in order, then parallel entries concurrently.`,
		SilenceUsage:               true,
		SilenceErrors:              true,
		SuggestionsMinimumDistance: 2,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			// Create logger (stderr for diagnostics)
			l := log.New(cmd.ErrOrStderr(), opts.verbose, opts.quiet)
			ctx = log.WithLogger(ctx, l)
			ctx = output.With(ctx, newPrinter(cmd.OutOrStdout()))
			cmd.SetContext(ctx)

			if theme := os.Getenv(styles.EnvTheme); theme != "" {
				if err := styles.Init(theme); err != nil {
					l.Printf("Warning: %v\n", err)
				}
			}

			// Skip git check for completion and help commands
			if cmd.Name() == "completion" || cmd.Name() == cobra.ShellCompRequestCmd || cmd.Name() == "help" {
				return nil
			}
			return git.CheckGit(ctx)
		},
		// Run is not set - shows help when no subcommand provided
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to the hook config (default: $GIT_SMEE_CONFIG or <repo>/.git-smee.toml)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Show external commands being executed")
	cmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress all log output")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.Version = versionString()
	cmd.SetVersionTemplate("{{.Version}}\n")

	cmd.AddCommand(newInstallCmd(opts))
	cmd.AddCommand(newRunCmd(opts))
	cmd.AddCommand(newInitCmd(opts))
	cmd.AddCommand(newStatusCmd(opts))
	cmd.AddCommand(newDoctorCmd(opts))
	cmd.AddCommand(newCompletionCmd())

	return cmd
}

// newPrinter downsamples colors when w is a file such as stdout.
func newPrinter(w io.Writer) *output.Printer {
	if f, ok := w.(*os.File); ok {
		return output.NewTerminal(f, os.Environ())
	}
	return output.New(w)
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	workDir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "git-smee: failed to get working directory: %v\n", err)
		return 1
	}

	if err := newRootCmd(workDir).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, errorLine(err))
		return 1
	}
	return 0
}

// errorLine renders err as the single line printed on failure.
func errorLine(err error) string {
	return "git-smee: " + strings.Join(strings.Fields(err.Error()), " ")
}
