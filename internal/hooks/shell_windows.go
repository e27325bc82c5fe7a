//go:build windows

package hooks

import (
	"os/exec"
	"syscall"
)

// shellCommand passes command to cmd.exe verbatim. The default argument
// quoting of os/exec does not follow cmd.exe parsing rules, so the command
// line is set directly. cmd.exe has no positional parameters; args are
// dropped.
func shellCommand(program, flag, command string, _ []string) *exec.Cmd {
	// #nosec G204 -- running configured hook commands is the purpose
	c := exec.Command(program)
	c.SysProcAttr = &syscall.SysProcAttr{
		CmdLine: program + ` /S ` + flag + ` "` + command + `"`,
	}
	return c
}
