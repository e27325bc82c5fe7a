// Package hooks executes the commands configured for a git hook phase.
//
// Commands run through the platform shell (sh -c, or cmd.exe /C on
// Windows), one shell per command, with the process streams inherited.
//
// # Ordering
//
// Entries without parallel_execution_allowed form the sequential group and
// run in document order. Entries with it form the parallel group, which
// starts only after the whole sequential group succeeded and runs on a
// worker pool sized to the CPU count:
//
//	[[pre-push]]
//	command = "go build ./..."          # 1st
//
//	[[pre-push]]
//	command = "go test ./..."           # parallel
//	parallel_execution_allowed = true
//
//	[[pre-push]]
//	command = "golangci-lint run"       # parallel
//	parallel_execution_allowed = true
//
// A sequential failure stops the phase. A parallel failure stops further
// starts; commands already running finish on their own. There are no
// retries or timeouts.
//
// # Errors
//
// Every failure matches one of ErrNoHooksConfigured, ErrNoCommandDefined,
// ErrExecutionFailed, ErrTerminatedBySignal or ErrCommandSpawnFailed with
// errors.Is. Error text shows commands only in their Redact form.
//
// # Arguments and Stdin
//
// Arguments git passes to the hook script are forwarded as positional
// parameters ($1, $2, ...) and GIT_SMEE_HOOK holds the phase name. Piped
// stdin is read once and every command receives its own copy.
package hooks
