package config

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		hooks map[Phase][]HookDefinition
		want  error
	}{
		{
			name:  "valid",
			hooks: map[Phase][]HookDefinition{PreCommit: {{Command: "cargo test"}}},
		},
		{
			name:  "no phases",
			hooks: map[Phase][]HookDefinition{},
		},
		{
			name:  "empty entries",
			hooks: map[Phase][]HookDefinition{PrePush: {}},
			want:  &EmptyHookEntriesError{Phase: PrePush},
		},
		{
			name: "blank second command",
			hooks: map[Phase][]HookDefinition{
				PreCommit: {{Command: "cargo test"}, {Command: "   "}},
			},
			want: &EmptyCommandError{Phase: PreCommit, Entry: 2},
		},
		{
			name: "tab and newline only",
			hooks: map[Phase][]HookDefinition{
				CommitMsg: {{Command: "\t\n"}},
			},
			want: &EmptyCommandError{Phase: CommitMsg, Entry: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := (&Config{Hooks: tt.hooks}).Validate()

			switch want := tt.want.(type) {
			case nil:
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
			case *EmptyHookEntriesError:
				var got *EmptyHookEntriesError
				if !errors.As(err, &got) || *got != *want {
					t.Errorf("Validate() = %v, want %v", err, want)
				}
			case *EmptyCommandError:
				var got *EmptyCommandError
				if !errors.As(err, &got) || *got != *want {
					t.Errorf("Validate() = %v, want %v", err, want)
				}
			}
			if tt.want != nil && !errors.Is(err, ErrValidation) {
				t.Errorf("Validate() error %v should match ErrValidation", err)
			}
		})
	}
}

func TestValidate_Deterministic(t *testing.T) {
	t.Parallel()

	// Both phases are invalid; the earlier phase in the table must win every time.
	cfg := &Config{Hooks: map[Phase][]HookDefinition{
		PostReceive: {},
		PreCommit:   {{Command: "ok"}, {Command: ""}},
		PrePush:     {},
	}}

	for range 50 {
		err := cfg.Validate()
		var got *EmptyCommandError
		if !errors.As(err, &got) || got.Phase != PreCommit || got.Entry != 2 {
			t.Fatalf("Validate() = %v, want pre-commit entry #2", err)
		}
	}
}

func TestValidationErrorMessages(t *testing.T) {
	t.Parallel()

	if got, want := (&EmptyHookEntriesError{Phase: PrePush}).Error(), `hook "pre-push" has no entries`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if got, want := (&EmptyCommandError{Phase: PreCommit, Entry: 3}).Error(), `hook "pre-commit" entry #3: command must not be empty`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
