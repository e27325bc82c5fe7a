package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValidation matches every schema-valid config that breaks a hook rule.
var ErrValidation = errors.New("invalid hook configuration")

// EmptyHookEntriesError reports a phase key with no entries.
type EmptyHookEntriesError struct {
	Phase Phase
}

func (e *EmptyHookEntriesError) Error() string {
	return fmt.Sprintf("hook %q has no entries", e.Phase)
}

func (e *EmptyHookEntriesError) Is(target error) bool { return target == ErrValidation }

// EmptyCommandError reports an entry whose command is blank.
// Entry is 1-based.
type EmptyCommandError struct {
	Phase Phase
	Entry int
}

func (e *EmptyCommandError) Error() string {
	return fmt.Sprintf("hook %q entry #%d: command must not be empty", e.Phase, e.Entry)
}

func (e *EmptyCommandError) Is(target error) bool { return target == ErrValidation }

// Validate returns the first rule violation, walking phases in table order
// so the same config always reports the same error.
func (c *Config) Validate() error {
	for _, phase := range c.Phases() {
		entries := c.Hooks[phase]
		if len(entries) == 0 {
			return &EmptyHookEntriesError{Phase: phase}
		}
		for i, entry := range entries {
			if strings.TrimSpace(entry.Command) == "" {
				return &EmptyCommandError{Phase: phase, Entry: i + 1}
			}
		}
	}
	return nil
}
