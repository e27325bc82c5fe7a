package hooks

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/raphi011/git-smee/internal/log"
	"github.com/raphi011/git-smee/internal/platform"
)

// Status is how a hook command ended. Exited is false when the process
// was terminated without an exit code, such as by a signal.
type Status struct {
	Code   int
	Exited bool
}

// Runner runs one command line through a shell.
// A non-nil error means the shell could not be started at all.
type Runner interface {
	Run(ctx context.Context, command string) (Status, error)
	// Shell describes the shell invocation for error messages.
	Shell() string
}

// ShellRunner runs commands through the platform shell with inherited
// standard streams.
type ShellRunner struct {
	Program string
	Flag    string
	Args    []string // positional parameters; $1.. for sh, ignored by cmd.exe
	Env     []string // appended to the process environment
	Dir     string   // empty inherits the working directory

	// Stdin is handed to every command when non-nil. Otherwise commands
	// share the process stdin.
	Stdin  []byte
	Stdout io.Writer
	Stderr io.Writer
}

// NewShellRunner returns a runner using the shell of platform p.
func NewShellRunner(p platform.Platform) *ShellRunner {
	program, flag := p.ShellInvocation()
	return &ShellRunner{
		Program: program,
		Flag:    flag,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// Shell implements Runner.
func (r *ShellRunner) Shell() string {
	return r.Program + " " + r.Flag
}

// Run implements Runner. Started commands are not tied to ctx; they run
// until they exit.
func (r *ShellRunner) Run(ctx context.Context, command string) (Status, error) {
	c := shellCommand(r.Program, r.Flag, command, r.Args)
	c.Dir = r.Dir
	if len(r.Env) > 0 {
		c.Env = append(os.Environ(), r.Env...)
	}
	if r.Stdin != nil {
		c.Stdin = bytes.NewReader(r.Stdin)
	} else {
		c.Stdin = os.Stdin
	}
	c.Stdout = r.Stdout
	c.Stderr = r.Stderr

	done := log.FromContext(ctx).Command(r.Dir, r.Program, r.Flag, Redact(command))
	start := time.Now()
	defer func() { done(time.Since(start)) }()

	if err := c.Start(); err != nil {
		return Status{}, err
	}
	if err := c.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code := exitErr.ExitCode()
			if code < 0 {
				return Status{}, nil
			}
			return Status{Code: code, Exited: true}, nil
		}
		return Status{}, fmt.Errorf("wait: %w", err)
	}
	return Status{Code: 0, Exited: true}, nil
}

// DryRunner prints commands instead of running them.
type DryRunner struct {
	Out       io.Writer
	ShellName string

	mu sync.Mutex
}

// Run implements Runner.
func (r *DryRunner) Run(_ context.Context, command string) (Status, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.Out, "[dry-run] %s\n", strings.TrimSpace(command))
	return Status{Code: 0, Exited: true}, nil
}

// Shell implements Runner.
func (r *DryRunner) Shell() string {
	return r.ShellName
}

// ReadStdinIfPiped reads all of stdin when it is not a terminal, so every
// hook command can receive its own copy. Git pipes ref lists to hooks such
// as pre-push and pre-receive. Returns nil for an interactive or nil stdin.
func ReadStdinIfPiped(f *os.File) ([]byte, error) {
	if f == nil {
		return nil, nil
	}
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return nil, nil
	}
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return data, nil
}
