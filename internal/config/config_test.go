package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const exampleConfig = `
[[pre-commit]]
command = "cargo build"

[[pre-commit]]
command = "cargo test"

[[pre-push]]
command = "cargo clippy"
parallel_execution_allowed = true
`

// writeConfig writes content to name inside a fresh temp dir and returns its path.
func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestParse(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte(exampleConfig))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if len(cfg.Hooks) != 2 {
		t.Fatalf("len(Hooks) = %d, want 2", len(cfg.Hooks))
	}

	pre := cfg.Hooks[PreCommit]
	if len(pre) != 2 {
		t.Fatalf("len(pre-commit) = %d, want 2", len(pre))
	}
	if pre[0].Command != "cargo build" || pre[1].Command != "cargo test" {
		t.Errorf("pre-commit commands = %q, %q; want document order", pre[0].Command, pre[1].Command)
	}
	for i, h := range pre {
		if h.ParallelExecutionAllowed {
			t.Errorf("pre-commit[%d].ParallelExecutionAllowed = true, want default false", i)
		}
	}

	push := cfg.Hooks[PrePush]
	if len(push) != 1 || !push[0].ParallelExecutionAllowed {
		t.Errorf("pre-push = %+v, want one parallel entry", push)
	}
}

func TestParse_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		doc     string
		wantKey string
	}{
		{
			name:    "unknown hook key",
			doc:     "[[pre-commmit]]\ncommand = \"cargo test\"\n",
			wantKey: "pre-commmit",
		},
		{
			name:    "unknown entry field",
			doc:     "[[pre-commit]]\ncommand = \"cargo test\"\ntimeout = 5\n",
			wantKey: "timeout",
		},
		{
			name:    "missing command",
			doc:     "[[pre-commit]]\nparallel_execution_allowed = true\n",
			wantKey: "command",
		},
		{
			name:    "wrong value type",
			doc:     "[[pre-commit]]\ncommand = 42\n",
			wantKey: "",
		},
		{
			name:    "table instead of array",
			doc:     "[pre-commit]\ncommand = \"x\"\n",
			wantKey: "",
		},
		{
			name:    "malformed",
			doc:     "[[pre-commit]\ncommand = ",
			wantKey: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse([]byte(tt.doc))
			if !errors.Is(err, ErrParse) {
				t.Fatalf("Parse() error = %v, want ErrParse", err)
			}
			if tt.wantKey != "" && !strings.Contains(err.Error(), tt.wantKey) {
				t.Errorf("error %q does not name %q", err.Error(), tt.wantKey)
			}
		})
	}
}

func TestParse_MultipleUnknownKeys(t *testing.T) {
	t.Parallel()

	doc := "[[pre-commmit]]\ncommand = \"cargo test\"\n\n[[pre-puush]]\ncommand = \"cargo fmt\"\n"
	_, err := Parse([]byte(doc))
	if err == nil {
		t.Fatal("Parse() = nil, want error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "pre-commmit") && !strings.Contains(msg, "pre-puush") {
		t.Errorf("error %q names neither unknown key", msg)
	}
}

func TestParse_Empty(t *testing.T) {
	t.Parallel()

	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) error = %v", err)
	}
	if len(cfg.Hooks) != 0 {
		t.Errorf("len(Hooks) = %d, want 0", len(cfg.Hooks))
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, DefaultFileName, exampleConfig)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := len(cfg.Hooks[PreCommit]); got != 2 {
		t.Errorf("len(pre-commit) = %d, want 2", got)
	}
	if got := len(cfg.Hooks[PrePush]); got != 1 {
		t.Errorf("len(pre-push) = %d, want 1", got)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		setup func(t *testing.T) string
		want  error
	}{
		{
			name:  "missing file",
			setup: func(t *testing.T) string { return filepath.Join(t.TempDir(), "absent.toml") },
			want:  ErrMissingFile,
		},
		{
			name: "directory",
			setup: func(t *testing.T) string {
				dir := filepath.Join(t.TempDir(), "conf.toml")
				if err := os.Mkdir(dir, 0755); err != nil {
					t.Fatal(err)
				}
				return dir
			},
			want: ErrNotAFile,
		},
		{
			name:  "no extension",
			setup: func(t *testing.T) string { return writeConfig(t, "smee", exampleConfig) },
			want:  ErrCanNotReadExtension,
		},
		{
			name:  "dotfile without extension",
			setup: func(t *testing.T) string { return writeConfig(t, ".toml", exampleConfig) },
			want:  ErrCanNotReadExtension,
		},
		{
			name:  "hidden file with extension",
			setup: func(t *testing.T) string { return writeConfig(t, ".smee", exampleConfig) },
			want:  ErrCanNotReadExtension,
		},
		{
			name:  "yaml extension",
			setup: func(t *testing.T) string { return writeConfig(t, "smee.yaml", exampleConfig) },
			want:  ErrNotATomlFileExtension,
		},
		{
			name:  "malformed",
			setup: func(t *testing.T) string { return writeConfig(t, "bad.toml", "[[pre-commit\n") },
			want:  ErrParse,
		},
		{
			name:  "validation",
			setup: func(t *testing.T) string { return writeConfig(t, "empty.toml", "pre-push = []\n") },
			want:  ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Load(tt.setup(t))
			if !errors.Is(err, tt.want) {
				t.Errorf("Load() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoad_ParseErrorCarriesPath(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "bad.toml", "[[nope]]\ncommand = \"x\"\n")
	_, err := Load(path)

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("Load() error = %v, want *ParseError", err)
	}
	if perr.Path != path {
		t.Errorf("Path = %q, want %q", perr.Path, path)
	}
	if perr.Key != "nope" {
		t.Errorf("Key = %q, want %q", perr.Key, "nope")
	}
	if !errors.Is(err, ErrUnknownPhase) {
		t.Errorf("error should wrap ErrUnknownPhase: %v", err)
	}
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	if len(cfg.Hooks) != 1 {
		t.Fatalf("len(Hooks) = %d, want 1", len(cfg.Hooks))
	}
	entries := cfg.Hooks[PreCommit]
	if len(entries) != 1 {
		t.Fatalf("len(pre-commit) = %d, want 1", len(entries))
	}
	if entries[0].ParallelExecutionAllowed {
		t.Error("default entry should be sequential")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestMarshal_RoundTrip(t *testing.T) {
	t.Parallel()

	configs := map[string]*Config{
		"default": Default(),
		"mixed": {
			Hooks: map[Phase][]HookDefinition{
				PreCommit: {{Command: "go build ./..."}, {Command: `echo "it's quoted"`}},
				PrePush:   {{Command: "go test ./...", ParallelExecutionAllowed: true}},
				Update:    {{Command: "check-ref \"$1\""}},
			},
		},
	}

	for name, cfg := range configs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			data, err := cfg.Marshal()
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}

			path := writeConfig(t, DefaultFileName, string(data))
			back, err := Load(path)
			if err != nil {
				t.Fatalf("Load(Marshal()) error = %v\n%s", err, data)
			}
			assertSameHooks(t, back, cfg)
		})
	}
}

func TestMarshal_PhaseOrder(t *testing.T) {
	t.Parallel()

	cfg := &Config{Hooks: map[Phase][]HookDefinition{
		PostReceive: {{Command: "c"}},
		PreCommit:   {{Command: "a"}},
		PrePush:     {{Command: "b"}},
	}}
	data, err := cfg.Marshal()
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	doc := string(data)
	a := strings.Index(doc, "[[pre-commit]]")
	b := strings.Index(doc, "[[pre-push]]")
	c := strings.Index(doc, "[[post-receive]]")
	if a < 0 || b < 0 || c < 0 || !(a < b && b < c) {
		t.Errorf("phases not in table order:\n%s", doc)
	}
	if strings.Contains(doc, "parallel_execution_allowed") {
		t.Errorf("false parallel flag should be omitted:\n%s", doc)
	}
}

func TestDocument_Loads(t *testing.T) {
	t.Parallel()

	data, err := Default().Document()
	if err != nil {
		t.Fatalf("Document() error = %v", err)
	}
	back, err := Load(writeConfig(t, DefaultFileName, string(data)))
	if err != nil {
		t.Fatalf("Load(Document()) error = %v", err)
	}
	assertSameHooks(t, back, Default())
}

func assertSameHooks(t *testing.T, got, want *Config) {
	t.Helper()
	if len(got.Hooks) != len(want.Hooks) {
		t.Fatalf("len(Hooks) = %d, want %d", len(got.Hooks), len(want.Hooks))
	}
	for phase, wantEntries := range want.Hooks {
		gotEntries := got.Hooks[phase]
		if len(gotEntries) != len(wantEntries) {
			t.Errorf("%s: %d entries, want %d", phase, len(gotEntries), len(wantEntries))
			continue
		}
		for i := range wantEntries {
			if gotEntries[i] != wantEntries[i] {
				t.Errorf("%s[%d] = %+v, want %+v", phase, i, gotEntries[i], wantEntries[i])
			}
		}
	}
}
