package hooks

import (
	"strings"
	"unicode/utf8"
)

const (
	maxExecutableDisplay = 80
	argsRedacted         = "<args redacted>"
	commandRedacted      = "<redacted>"
)

// Redact returns a display form of command that is safe for error output.
// Leading inline env assignments are skipped, the executable name is kept
// (shortened past 80 bytes) and any remaining arguments are replaced by a
// fixed marker.
func Redact(command string) string {
	fields := strings.Fields(command)
	i := 0
	for i < len(fields) && isEnvAssignment(fields[i]) {
		i++
	}
	if i == len(fields) {
		return commandRedacted
	}

	name := fields[i]
	if len(name) > maxExecutableDisplay {
		cut := maxExecutableDisplay - 3
		for cut > 0 && !utf8.RuneStart(name[cut]) {
			cut--
		}
		name = name[:cut] + "..."
	}
	if i+1 < len(fields) {
		name += " " + argsRedacted
	}
	return name
}

// isEnvAssignment reports whether tok looks like KEY=VALUE rather than a
// flag or a path.
func isEnvAssignment(tok string) bool {
	return strings.Contains(tok, "=") &&
		!strings.HasPrefix(tok, "-") &&
		!strings.ContainsAny(tok, `/\`)
}
