// Package platform hides the differences between Unix-like systems and
// Windows that matter for generating and running hooks: which shell runs a
// command line, the hook script template, path quoting inside that script,
// the comment form of the managed marker, and file executability.
package platform

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"
	"strings"
)

// Platform is the operating system family hooks are generated for.
type Platform int

const (
	Unix Platform = iota
	Windows
)

// ErrSetPermissions indicates the executable bits could not be applied.
var ErrSetPermissions = errors.New("failed to set hook permissions")

// ManagedMarker is the sentinel text that marks a file as generated by git-smee.
const ManagedMarker = "THIS FILE IS MANAGED BY GIT-SMEE"

// Marker comment lines recognized as ownership markers.
const (
	HashMarkerLine = "# " + ManagedMarker
	RemMarkerLine  = "REM " + ManagedMarker
)

// Template placeholders.
const (
	PlaceholderHook           = "{hook}"
	PlaceholderExecutablePath = "{executable_path}"
	PlaceholderConfigPath     = "{config_path}"
)

const unixTemplate = `#!/bin/sh
# Runs the {hook} hooks configured for this repository.
exec {executable_path} --config {config_path} run {hook} -- "$@"
`

const windowsTemplate = `@echo off
REM Runs the {hook} hooks configured for this repository.
{executable_path} --config {config_path} run {hook} -- %*
exit /b %ERRORLEVEL%
`

// Current returns the platform of the running process.
func Current() Platform {
	if runtime.GOOS == "windows" {
		return Windows
	}
	return Unix
}

func (p Platform) String() string {
	if p == Windows {
		return "windows"
	}
	return "unix"
}

// ShellInvocation returns the program and flag that run a single command line.
func (p Platform) ShellInvocation() (program, flag string) {
	if p == Windows {
		return "cmd.exe", "/C"
	}
	return "sh", "-c"
}

// ShellDescription is the shell invocation as shown in error messages.
func (p Platform) ShellDescription() string {
	program, flag := p.ShellInvocation()
	return program + " " + flag
}

// HookScriptTemplate returns the hook script with unsubstituted placeholders.
func (p Platform) HookScriptTemplate() string {
	if p == Windows {
		return windowsTemplate
	}
	return unixTemplate
}

// MarkerLine returns the marker comment in this platform's script syntax.
func (p Platform) MarkerLine() string {
	if p == Windows {
		return RemMarkerLine
	}
	return HashMarkerLine
}

// EscapePath quotes path for literal use inside a hook script.
//
// Unix wraps the path in single quotes and turns every embedded ' into '\''.
// Windows wraps it in double quotes, doubles embedded double quotes, and
// doubles % so batch variable expansion leaves the path alone.
func (p Platform) EscapePath(path string) string {
	if p == Windows {
		escaped := strings.ReplaceAll(path, `"`, `""`)
		escaped = strings.ReplaceAll(escaped, "%", "%%")
		return `"` + escaped + `"`
	}
	return "'" + strings.ReplaceAll(path, "'", `'\''`) + "'"
}

// MakeExecutable adds execute permission for everyone on Unix.
// Windows decides executability by extension, so it does nothing there.
func (p Platform) MakeExecutable(path string) error {
	if p == Windows {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSetPermissions, err)
	}
	mode := info.Mode().Perm() | 0o111
	if err := os.Chmod(path, mode); err != nil {
		return fmt.Errorf("%w: %w", ErrSetPermissions, err)
	}
	return nil
}

// IsExecutable reports whether MakeExecutable has taken effect for path.
func (p Platform) IsExecutable(info fs.FileInfo) bool {
	if p == Windows {
		return true
	}
	return info.Mode().Perm()&0o111 == 0o111
}

// ScriptOptions are the values substituted into every hook script of one
// install run.
type ScriptOptions struct {
	ExecutablePath string
	ConfigPath     string
}

// RenderHookScript fills the template for one hook, escaping both paths.
func (p Platform) RenderHookScript(hook string, opts ScriptOptions) string {
	r := strings.NewReplacer(
		PlaceholderHook, hook,
		PlaceholderExecutablePath, p.EscapePath(opts.ExecutablePath),
		PlaceholderConfigPath, p.EscapePath(opts.ConfigPath),
	)
	return r.Replace(p.HookScriptTemplate())
}
