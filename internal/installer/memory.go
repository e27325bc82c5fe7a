package installer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Memory is an Installer that keeps files in a map. It applies the same
// ownership rules as FileSystem against the files it holds, so a preview
// reports the conflicts a real install would hit.
type Memory struct {
	HooksDir   string
	ConfigPath string
	Force      bool

	files      map[string]string
	executable map[string]bool
	written    []string
}

// NewMemory returns an empty in-memory installer.
func NewMemory(hooksDir, configPath string, force bool) *Memory {
	return &Memory{
		HooksDir:   hooksDir,
		ConfigPath: configPath,
		Force:      force,
		files:      make(map[string]string),
		executable: make(map[string]bool),
	}
}

// Seed records content as already present at path without counting it as written.
func (m *Memory) Seed(path, content string) {
	m.files[path] = content
}

// SeedFromDisk seeds every listed path that exists on disk.
func (m *Memory) SeedFromDisk(paths ...string) error {
	for _, path := range paths {
		// #nosec G304 -- paths are hook targets computed by the caller
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("%w: %w", ErrReadExistingFailed, err)
		}
		m.Seed(path, string(data))
	}
	return nil
}

// InstallHook implements Installer.
func (m *Memory) InstallHook(name, content string) (string, error) {
	if m.HooksDir == "" {
		return "", ErrHooksDirNotFound
	}
	path := filepath.Join(m.HooksDir, name)
	return path, m.write(path, content, KindHook)
}

// InstallConfig implements Installer.
func (m *Memory) InstallConfig(content string) (string, error) {
	return m.ConfigPath, m.write(m.ConfigPath, content, KindConfig)
}

// MakeExecutable implements Installer.
func (m *Memory) MakeExecutable(path string) error {
	if _, ok := m.files[path]; !ok {
		return fmt.Errorf("make executable %s: %w", path, fs.ErrNotExist)
	}
	m.executable[path] = true
	return nil
}

func (m *Memory) write(path, content string, kind Kind) error {
	if existing, ok := m.files[path]; ok {
		if err := checkOverwrite(path, kind, HasManagedMarker([]byte(existing)), m.Force); err != nil {
			return err
		}
	}
	m.files[path] = content
	m.written = append(m.written, path)
	return nil
}

// File returns the content held for path.
func (m *Memory) File(path string) (string, bool) {
	content, ok := m.files[path]
	return content, ok
}

// Executable reports whether MakeExecutable was called for path.
func (m *Memory) Executable(path string) bool {
	return m.executable[path]
}

// Written returns the paths written so far, in write order.
func (m *Memory) Written() []string {
	return append([]string(nil), m.written...)
}
