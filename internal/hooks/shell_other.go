//go:build !windows

package hooks

import "os/exec"

// shellCommand builds "program flag command git-smee args...". The fixed
// word becomes $0 so args land in $1 onwards.
func shellCommand(program, flag, command string, args []string) *exec.Cmd {
	argv := append([]string{flag, command, "git-smee"}, args...)
	// #nosec G204 -- running configured hook commands is the purpose
	return exec.Command(program, argv...)
}
