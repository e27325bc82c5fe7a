package hooks

import (
	"errors"
	"fmt"

	"github.com/raphi011/git-smee/internal/config"
)

var (
	ErrNoHooksConfigured  = errors.New("no hooks configured")
	ErrNoCommandDefined   = errors.New("no command defined")
	ErrExecutionFailed    = errors.New("hook execution failed")
	ErrTerminatedBySignal = errors.New("hook execution was terminated by a signal")
	ErrCommandSpawnFailed = errors.New("failed to spawn hook command")
)

// NoHooksConfiguredError reports a phase absent from the config.
type NoHooksConfiguredError struct {
	Phase config.Phase
}

func (e *NoHooksConfiguredError) Error() string {
	return fmt.Sprintf("no hooks configured for phase %s", e.Phase)
}

func (e *NoHooksConfiguredError) Is(target error) bool { return target == ErrNoHooksConfigured }

// ExitError reports a command that exited with a nonzero code.
type ExitError struct {
	Command string // redacted
	Code    int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("hook command %q failed with exit code %d", e.Command, e.Code)
}

func (e *ExitError) Is(target error) bool { return target == ErrExecutionFailed }

// SpawnError reports a shell that could not be started. Command is always
// the redacted form so arguments and inline env values stay out of logs.
type SpawnError struct {
	Command string
	Shell   string
	Err     error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("%v %q via %q: %v", ErrCommandSpawnFailed, e.Command, e.Shell, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }

func (e *SpawnError) Is(target error) bool { return target == ErrCommandSpawnFailed }
