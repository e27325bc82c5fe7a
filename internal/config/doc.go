// Package config loads and validates the git-smee hook configuration.
//
// The configuration lives in .git-smee.toml at the repository root unless
// --config or the GIT_SMEE_CONFIG environment variable points elsewhere.
//
// # Document Format
//
// Top-level keys are git hook names. Each maps to an array of tables, one per
// command, kept in document order:
//
//	[[pre-commit]]
//	command = "go build ./..."
//
//	[[pre-commit]]
//	command = "go vet ./..."
//	parallel_execution_allowed = true
//
// Unknown hook names and unknown entry fields fail parsing with a [*ParseError]
// naming the offending key. A misspelled hook name gets a suggestion.
//
// # Validation
//
// [Config.Validate] rejects a hook key with no entries ([*EmptyHookEntriesError])
// and a blank command ([*EmptyCommandError], with a 1-based entry index).
// Phases are checked in [Phase] table order, so the first reported violation
// does not depend on map iteration.
//
// # Phases
//
// [Phase] is a closed enumeration backed by one name table. [ParsePhase] and
// [Phase.String] are exact inverses over that table.
package config
