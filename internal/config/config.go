package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultFileName is the config file looked up in the repository root.
const DefaultFileName = ".git-smee.toml"

// EnvConfigPath overrides the config location when --config is not given.
const EnvConfigPath = "GIT_SMEE_CONFIG"

// configExtension is the only accepted config file extension.
const configExtension = ".toml"

// Errors returned by Load before the document is decoded.
var (
	ErrMissingFile           = errors.New("configuration file is missing")
	ErrNotAFile              = errors.New("configuration path is not a regular file")
	ErrCanNotReadExtension   = errors.New("configuration file does not have a readable extension")
	ErrNotATomlFileExtension = errors.New("configuration file does not have a .toml extension")
	ErrReadFailed            = errors.New("failed to read configuration file")
	ErrParse                 = errors.New("failed to parse configuration file")
)

// HookDefinition is one configured command for a phase.
type HookDefinition struct {
	Command                  string `toml:"command" json:"command"`
	ParallelExecutionAllowed bool   `toml:"parallel_execution_allowed,omitempty" json:"parallel_execution_allowed"`
}

// Config maps each configured phase to its commands in document order.
// It is built fresh per invocation and not modified afterwards.
type Config struct {
	Hooks map[Phase][]HookDefinition
}

// Default returns the config written by "git smee init".
func Default() *Config {
	return &Config{
		Hooks: map[Phase][]HookDefinition{
			PreCommit: {
				{Command: "echo 'Default pre-commit hook'"},
			},
		},
	}
}

// Phases returns the configured phases in table order.
func (c *Config) Phases() []Phase {
	phases := make([]Phase, 0, len(c.Hooks))
	for p := range c.Hooks {
		phases = append(phases, p)
	}
	slices.Sort(phases)
	return phases
}

// ParseError reports a document that does not match the hook config schema.
type ParseError struct {
	Path string
	Key  string // offending key or field, empty for syntax errors
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%v: %v", ErrParse, e.Err)
	}
	return fmt.Sprintf("%v %s: %v", ErrParse, e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }

// rawEntry is the decode target for a single [[phase]] table.
// Command is a pointer so a missing key can be told apart from an empty one.
type rawEntry struct {
	Command                  *string `toml:"command"`
	ParallelExecutionAllowed bool    `toml:"parallel_execution_allowed"`
}

// Load reads, parses and validates the hook config at path.
func Load(path string) (*Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingFile, path)
		}
		return nil, fmt.Errorf("%w: %w", ErrReadFailed, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotAFile, path)
	}

	ext := filepath.Ext(path)
	// A dotfile such as ".toml" has a name but no extension
	if ext == "" || strings.TrimSuffix(filepath.Base(path), ext) == "" {
		return nil, fmt.Errorf("%w: %s", ErrCanNotReadExtension, path)
	}
	if ext != configExtension {
		return nil, fmt.Errorf("%w: %s", ErrNotATomlFileExtension, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadFailed, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			perr.Path = path
		}
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes a hook config document without validating it.
// Unknown phases and unknown entry fields are rejected.
func Parse(data []byte) (*Config, error) {
	var raw map[string][]rawEntry
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, &ParseError{Err: err}
	}

	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	slices.Sort(names)

	hooks := make(map[Phase][]HookDefinition, len(raw))
	for _, name := range names {
		phase, err := ParsePhase(name)
		if err != nil {
			return nil, &ParseError{Key: name, Err: err}
		}

		entries := make([]HookDefinition, 0, len(raw[name]))
		for i, entry := range raw[name] {
			if entry.Command == nil {
				return nil, &ParseError{
					Key: name + ".command",
					Err: fmt.Errorf("hook %q entry #%d: missing required field \"command\"", name, i+1),
				}
			}
			entries = append(entries, HookDefinition{
				Command:                  *entry.Command,
				ParallelExecutionAllowed: entry.ParallelExecutionAllowed,
			})
		}
		hooks[phase] = entries
	}

	// Fields that matched no struct member are left undecoded by toml.
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		key := undecoded[0].String()
		return nil, &ParseError{Key: key, Err: fmt.Errorf("unknown field %q", key)}
	}

	return &Config{Hooks: hooks}, nil
}

// Marshal renders the config as a TOML document with phases in table order.
// The output loads back into an equivalent Config.
func (c *Config) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	for i, phase := range c.Phases() {
		if i > 0 {
			buf.WriteString("\n")
		}
		enc := toml.NewEncoder(&buf)
		enc.Indent = ""
		doc := map[string][]HookDefinition{phase.String(): c.Hooks[phase]}
		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("encode %s: %w", phase, err)
		}
	}
	return buf.Bytes(), nil
}

const documentHeader = `# git-smee hook configuration
#
# Each [[phase]] table adds one command to a git hook. Commands run through
# the platform shell from the repository root, in the order written here.
# Entries with parallel_execution_allowed = true run concurrently after all
# sequential entries of the phase have succeeded.
#
# [[pre-push]]
# command = "go test ./..."
# parallel_execution_allowed = true

`

// Document returns the config as the commented file written by init.
func (c *Config) Document() ([]byte, error) {
	body, err := c.Marshal()
	if err != nil {
		return nil, err
	}
	return append([]byte(documentHeader), body...), nil
}
