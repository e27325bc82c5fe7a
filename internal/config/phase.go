package config

import (
	"errors"
	"fmt"

	"github.com/sahilm/fuzzy"
)

// Phase is a git lifecycle hook name.
type Phase int

// Recognized phases. The order matches phaseNames and is the order used for
// validation, serialization and status output.
const (
	ApplypatchMsg Phase = iota
	PreApplypatch
	PostApplypatch
	PreCommit
	PrepareCommitMsg
	CommitMsg
	PostCommit
	PreMergeCommit
	PreRebase
	PostCheckout
	PostMerge
	PostRewrite
	PrePush
	ReferenceTransaction
	PushToCheckout
	PreAutoGc
	PostUpdate
	FsmonitorWatchman
	PostIndexChange
	PreReceive
	Update
	ProcReceive
	PostReceive

	phaseCount
)

// phaseNames is the single source for the Phase <-> string mapping.
var phaseNames = [phaseCount]string{
	ApplypatchMsg:        "applypatch-msg",
	PreApplypatch:        "pre-applypatch",
	PostApplypatch:       "post-applypatch",
	PreCommit:            "pre-commit",
	PrepareCommitMsg:     "prepare-commit-msg",
	CommitMsg:            "commit-msg",
	PostCommit:           "post-commit",
	PreMergeCommit:       "pre-merge-commit",
	PreRebase:            "pre-rebase",
	PostCheckout:         "post-checkout",
	PostMerge:            "post-merge",
	PostRewrite:          "post-rewrite",
	PrePush:              "pre-push",
	ReferenceTransaction: "reference-transaction",
	PushToCheckout:       "push-to-checkout",
	PreAutoGc:            "pre-auto-gc",
	PostUpdate:           "post-update",
	FsmonitorWatchman:    "fsmonitor-watchman",
	PostIndexChange:      "post-index-change",
	PreReceive:           "pre-receive",
	Update:               "update",
	ProcReceive:          "proc-receive",
	PostReceive:          "post-receive",
}

var phaseByName = func() map[string]Phase {
	m := make(map[string]Phase, phaseCount)
	for p, name := range phaseNames {
		m[name] = Phase(p)
	}
	return m
}()

// ErrUnknownPhase indicates a string that is not a recognized hook name.
var ErrUnknownPhase = errors.New("unknown lifecycle phase")

// UnknownPhaseError reports an unrecognized phase name, with the closest
// known name when one matches.
type UnknownPhaseError struct {
	Name       string
	Suggestion string
}

func (e *UnknownPhaseError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown lifecycle phase %q (did you mean %q?)", e.Name, e.Suggestion)
	}
	return fmt.Sprintf("unknown lifecycle phase %q", e.Name)
}

func (e *UnknownPhaseError) Is(target error) bool {
	return target == ErrUnknownPhase
}

// ParsePhase converts a kebab-case hook name into a Phase.
func ParsePhase(s string) (Phase, error) {
	if p, ok := phaseByName[s]; ok {
		return p, nil
	}
	return 0, &UnknownPhaseError{Name: s, Suggestion: suggestPhase(s)}
}

// suggestPhase returns the best fuzzy match for name, or "" if nothing matches.
func suggestPhase(name string) string {
	if name == "" {
		return ""
	}
	matches := fuzzy.Find(name, PhaseNames())
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Str
}

// String returns the kebab-case hook name.
func (p Phase) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Phase(%d)", int(p))
	}
	return phaseNames[p]
}

// Valid reports whether p is one of the recognized phases.
func (p Phase) Valid() bool {
	return p >= 0 && p < phaseCount
}

// ServerSide reports whether git runs this hook on the receiving end of a push.
func (p Phase) ServerSide() bool {
	switch p {
	case PreReceive, Update, ProcReceive, PostReceive:
		return true
	}
	return false
}

// MarshalText implements encoding.TextMarshaler.
func (p Phase) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("invalid phase %d", int(p))
	}
	return []byte(phaseNames[p]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Phase) UnmarshalText(text []byte) error {
	parsed, err := ParsePhase(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// AllPhases returns every recognized phase in table order.
func AllPhases() []Phase {
	phases := make([]Phase, phaseCount)
	for i := range phases {
		phases[i] = Phase(i)
	}
	return phases
}

// PhaseNames returns every recognized hook name in table order.
func PhaseNames() []string {
	return append([]string(nil), phaseNames[:]...)
}
