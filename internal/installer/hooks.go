package installer

import (
	"context"
	"fmt"
	"strings"

	"github.com/raphi011/git-smee/internal/config"
	"github.com/raphi011/git-smee/internal/log"
	"github.com/raphi011/git-smee/internal/platform"
)

// InstallHooks writes one hook script per configured phase and marks it
// executable. Phases are installed in table order and the first failure
// stops the run; scripts written before it stay in place. The returned
// paths cover every hook that was fully installed.
func InstallHooks(ctx context.Context, cfg *config.Config, opts platform.ScriptOptions, inst Installer, p platform.Platform) ([]string, error) {
	l := log.FromContext(ctx)

	phases := cfg.Phases()
	if len(phases) == 0 {
		return nil, ErrNoHooksPresent
	}

	paths := make([]string, 0, len(phases))
	for _, phase := range phases {
		name := phase.String()
		path, err := inst.InstallHook(name, RenderManagedHook(name, opts, p))
		if err != nil {
			return paths, err
		}
		if err := inst.MakeExecutable(path); err != nil {
			return paths, fmt.Errorf("%s: %w", name, err)
		}

		l.Debug("installed hook", "phase", name, "path", path)
		paths = append(paths, path)
	}
	return paths, nil
}

// RenderManagedHook returns the complete hook script for phase, including
// the managed marker. Batch scripts get the marker after "@echo off" so cmd
// does not echo it.
func RenderManagedHook(phase string, opts platform.ScriptOptions, p platform.Platform) string {
	script := p.RenderHookScript(phase, opts)
	if p == platform.Windows && strings.HasPrefix(script, "@echo off") {
		return afterFirstLine(script, p.MarkerLine())
	}
	return WithManagedHeader(script, p.MarkerLine())
}

// WriteConfig writes cfg as a commented, managed config document.
func WriteConfig(ctx context.Context, cfg *config.Config, inst Installer) (string, error) {
	doc, err := cfg.Document()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrWriteConfigFailed, err)
	}
	path, err := inst.InstallConfig(WithManagedHeader(string(doc), platform.HashMarkerLine))
	if err != nil {
		return "", err
	}
	log.FromContext(ctx).Debug("wrote config", "path", path)
	return path, nil
}
