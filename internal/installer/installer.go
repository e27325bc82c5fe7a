package installer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/raphi011/git-smee/internal/platform"
	"github.com/raphi011/git-smee/internal/storage"
)

var (
	ErrHooksDirNotFound  = errors.New("hooks directory not found")
	ErrNoHooksPresent    = errors.New("no hooks present in the configuration to install")
	ErrWriteHookFailed   = errors.New("failed to write hook")
	ErrWriteConfigFailed = errors.New("failed to write config file")

	ErrRefusingToOverwriteUnmanagedHookFile   = errors.New("refusing to overwrite hook file not managed by git-smee (use --force)")
	ErrRefusingToOverwriteUnmanagedConfigFile = errors.New("refusing to overwrite existing config file (use --force)")
	ErrRefusingToOverwriteManagedConfigFile   = errors.New("refusing to regenerate existing config file, it may contain edits (use --force)")

	ErrReadExistingFailed = errors.New("failed to read existing file")
)

// Kind selects the overwrite rule applied to a target file.
type Kind int

const (
	KindHook Kind = iota
	KindConfig
)

func (k Kind) String() string {
	if k == KindConfig {
		return "config"
	}
	return "hook"
}

// Installer writes generated files. FileSystem is the production
// implementation; Memory keeps everything in memory for previews and tests.
type Installer interface {
	// InstallHook writes a hook script named name and returns its path.
	InstallHook(name, content string) (string, error)
	// InstallConfig writes the config document and returns its path.
	InstallConfig(content string) (string, error)
	// MakeExecutable marks an installed hook as runnable.
	MakeExecutable(path string) error
}

// checkOverwrite applies the ownership protocol to an existing target.
// Hooks may be replaced when managed; configs are never replaced unforced.
func checkOverwrite(path string, kind Kind, managed, force bool) error {
	if force {
		return nil
	}
	switch kind {
	case KindHook:
		if managed {
			return nil
		}
		return fmt.Errorf("%w: %s", ErrRefusingToOverwriteUnmanagedHookFile, path)
	case KindConfig:
		if managed {
			return fmt.Errorf("%w: %s", ErrRefusingToOverwriteManagedConfigFile, path)
		}
		return fmt.Errorf("%w: %s", ErrRefusingToOverwriteUnmanagedConfigFile, path)
	}
	return fmt.Errorf("unknown file kind %d", kind)
}

// Options configures a FileSystem installer.
type Options struct {
	HooksDir   string // effective hooks directory; may be empty when only the config is written
	ConfigPath string
	Force      bool
	Platform   platform.Platform
}

// FileSystem writes hooks and config files to disk.
type FileSystem struct {
	opts Options
}

// NewFileSystem returns a FileSystem installer. A non-empty HooksDir must
// be an existing directory.
func NewFileSystem(opts Options) (*FileSystem, error) {
	if opts.HooksDir != "" {
		info, err := os.Stat(opts.HooksDir)
		if err != nil || !info.IsDir() {
			return nil, fmt.Errorf("%w: %s", ErrHooksDirNotFound, opts.HooksDir)
		}
	}
	return &FileSystem{opts: opts}, nil
}

// HookPath returns where the hook called name is written.
func (f *FileSystem) HookPath(name string) string {
	return filepath.Join(f.opts.HooksDir, name)
}

// InstallHook implements Installer.
func (f *FileSystem) InstallHook(name, content string) (string, error) {
	if f.opts.HooksDir == "" {
		return "", ErrHooksDirNotFound
	}
	path := f.HookPath(name)
	if err := f.EnsureCanWrite(path, KindHook); err != nil {
		return "", err
	}
	if err := storage.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("%w %s: %w", ErrWriteHookFailed, name, err)
	}
	return path, nil
}

// InstallConfig implements Installer.
func (f *FileSystem) InstallConfig(content string) (string, error) {
	path := f.opts.ConfigPath
	if err := f.EnsureCanWrite(path, KindConfig); err != nil {
		return "", err
	}
	if err := storage.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("%w: %w", ErrWriteConfigFailed, err)
	}
	return path, nil
}

// MakeExecutable implements Installer.
func (f *FileSystem) MakeExecutable(path string) error {
	return f.opts.Platform.MakeExecutable(path)
}

// EnsureCanWrite returns nil when path may be (over)written as kind.
func (f *FileSystem) EnsureCanWrite(path string, kind Kind) error {
	if _, err := os.Lstat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("%w: %w", ErrReadExistingFailed, err)
	}
	if f.opts.Force {
		return nil
	}
	managed, err := IsManaged(path)
	if err != nil {
		return err
	}
	return checkOverwrite(path, kind, managed, false)
}
