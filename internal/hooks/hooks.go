package hooks

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/raphi011/git-smee/internal/config"
	"github.com/raphi011/git-smee/internal/log"
)

// Engine runs the commands configured for a phase.
type Engine struct {
	runner  Runner
	workers int
}

// NewEngine returns an engine that runs commands with runner. workers
// bounds the parallel group; values below 1 mean one per CPU.
func NewEngine(runner Runner, workers int) *Engine {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	return &Engine{runner: runner, workers: workers}
}

// Execute runs every command configured for phase.
//
// Sequential entries run first, in document order, and the first failure
// stops the phase. Parallel entries start only after all sequential entries
// succeeded. Once a parallel entry fails no further entries are started,
// but entries already running are waited for and not interrupted.
func (e *Engine) Execute(ctx context.Context, cfg *config.Config, phase config.Phase) error {
	entries, ok := cfg.Hooks[phase]
	if !ok {
		return &NoHooksConfiguredError{Phase: phase}
	}

	l := log.FromContext(ctx)

	var parallel []config.HookDefinition
	for i, h := range entries {
		if h.ParallelExecutionAllowed {
			parallel = append(parallel, h)
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		l.Debug("running hook", "phase", phase, "entry", i+1)
		if err := e.RunOne(ctx, h.Command); err != nil {
			return fmt.Errorf("%s: %w", phase, err)
		}
	}

	if len(parallel) == 0 {
		return nil
	}
	l.Debug("running parallel hooks", "phase", phase, "count", len(parallel), "workers", e.workers)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for _, h := range parallel {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return e.RunOne(ctx, h.Command)
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("%s: %w", phase, err)
	}
	return nil
}

// RunOne runs a single command and classifies its outcome.
func (e *Engine) RunOne(ctx context.Context, command string) error {
	if strings.TrimSpace(command) == "" {
		return ErrNoCommandDefined
	}

	status, err := e.runner.Run(ctx, command)
	if err != nil {
		return &SpawnError{Command: Redact(command), Shell: e.runner.Shell(), Err: err}
	}
	switch {
	case !status.Exited:
		return ErrTerminatedBySignal
	case status.Code != 0:
		return &ExitError{Command: Redact(command), Code: status.Code}
	}
	return nil
}
