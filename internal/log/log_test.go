package log

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"
)

func TestPrint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		quiet bool
		write func(l *Logger)
		want  string
	}{
		{"printf", false, func(l *Logger) { l.Printf("installed %d hooks", 2) }, "installed 2 hooks"},
		{"println", false, func(l *Logger) { l.Println("hook", "pre-commit") }, "hook pre-commit\n"},
		{"printf quiet", true, func(l *Logger) { l.Printf("installed %d hooks", 2) }, ""},
		{"println quiet", true, func(l *Logger) { l.Println("hook") }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			tt.write(New(&buf, false, tt.quiet))
			if got := buf.String(); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCommand(t *testing.T) {
	t.Parallel()

	t.Run("verbose with dir", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, true, false)
		done := l.Command("/repo", "sh", "-c", "make <args redacted>")
		done(120 * time.Millisecond)
		got := buf.String()
		if !strings.Contains(got, "[/repo] $ sh -c make <args redacted>") {
			t.Errorf("Command output = %q, want dir prefix and command", got)
		}
		if !strings.Contains(got, "120ms") {
			t.Errorf("Command output = %q, want duration", got)
		}
	})

	t.Run("verbose without dir", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, true, false)
		l.Command("", "git", "rev-parse", "--show-toplevel")(5 * time.Millisecond)
		if got := buf.String(); !strings.HasPrefix(got, "$ git rev-parse --show-toplevel") {
			t.Errorf("Command output = %q", got)
		}
	})

	t.Run("not verbose", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		New(&buf, false, false).Command("/repo", "git", "status")(time.Second)
		if buf.Len() != 0 {
			t.Errorf("Command wrote %q when not verbose", buf.String())
		}
	})

	t.Run("quiet wins over verbose", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		New(&buf, true, true).Command("/repo", "git", "status")(time.Second)
		if buf.Len() != 0 {
			t.Errorf("Command wrote %q when quiet", buf.String())
		}
	})
}

func TestDebug(t *testing.T) {
	t.Parallel()

	t.Run("key value pairs", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		New(&buf, true, false).Debug("installed hook", "phase", "pre-commit", "path", "/repo/.git/hooks/pre-commit")
		got := buf.String()
		for _, want := range []string{"installed hook", "phase=pre-commit", "path=/repo/.git/hooks/pre-commit"} {
			if !strings.Contains(got, want) {
				t.Errorf("Debug output = %q, want to contain %q", got, want)
			}
		}
	})

	t.Run("odd trailing key dropped", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		New(&buf, true, false).Debug("msg", "phase", "pre-push", "dangling")
		got := buf.String()
		if !strings.Contains(got, "phase=pre-push") || strings.Contains(got, "dangling") {
			t.Errorf("Debug output = %q", got)
		}
	})

	t.Run("silent unless verbose", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		New(&buf, false, false).Debug("msg", "k", "v")
		New(&buf, true, true).Debug("msg", "k", "v")
		if buf.Len() != 0 {
			t.Errorf("Debug wrote %q", buf.String())
		}
	})
}

func TestIsVerbose(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		verbose bool
		quiet   bool
		want    bool
	}{
		{"verbose only", true, false, true},
		{"quiet only", false, true, false},
		{"both", true, true, false},
		{"neither", false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := New(io.Discard, tt.verbose, tt.quiet).IsVerbose(); got != tt.want {
				t.Errorf("IsVerbose() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		l := New(io.Discard, true, false)
		if got := FromContext(WithLogger(context.Background(), l)); got != l {
			t.Error("FromContext did not return the stored logger")
		}
	})

	t.Run("fallback discards", func(t *testing.T) {
		t.Parallel()
		l := FromContext(context.Background())
		if l == nil {
			t.Fatal("FromContext returned nil")
		}
		l.Printf("dropped")
		if l.Writer() != io.Discard {
			t.Error("fallback logger should write to io.Discard")
		}
	})
}
