package installer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/raphi011/git-smee/internal/config"
	"github.com/raphi011/git-smee/internal/platform"
)

// State describes a hook file relative to the config.
type State string

const (
	StateInstalled State = "installed" // configured, file is managed
	StateUnmanaged State = "unmanaged" // configured, file belongs to the user
	StateMissing   State = "missing"   // configured, no file
	StateStale     State = "stale"     // managed file for a phase no longer configured
)

// HookStatus is the install state of one phase.
type HookStatus struct {
	Phase      string `json:"phase"`
	Path       string `json:"path"`
	State      State  `json:"state"`
	Executable bool   `json:"executable"`
	Sequential int    `json:"sequential"`
	Parallel   int    `json:"parallel"`
	ServerSide bool   `json:"server_side,omitempty"`
}

// Inspect reports every configured phase and every stale managed hook in
// hooksDir, in phase-table order.
func Inspect(cfg *config.Config, hooksDir string, p platform.Platform) ([]HookStatus, error) {
	var result []HookStatus
	for _, phase := range config.AllPhases() {
		entries, configured := cfg.Hooks[phase]
		path := filepath.Join(hooksDir, phase.String())

		info, err := os.Lstat(path)
		exists := err == nil
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrReadExistingFailed, err)
		}

		var managed bool
		if exists && info.Mode().IsRegular() {
			if managed, err = IsManaged(path); err != nil {
				return nil, err
			}
		}

		var state State
		switch {
		case configured && !exists:
			state = StateMissing
		case configured && managed:
			state = StateInstalled
		case configured:
			state = StateUnmanaged
		case managed:
			state = StateStale
		default:
			continue
		}

		s := HookStatus{
			Phase:      phase.String(),
			Path:       path,
			State:      state,
			Executable: exists && p.IsExecutable(info),
			ServerSide: phase.ServerSide(),
		}
		for _, h := range entries {
			if h.ParallelExecutionAllowed {
				s.Parallel++
			} else {
				s.Sequential++
			}
		}
		result = append(result, s)
	}
	return result, nil
}
