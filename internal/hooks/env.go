package hooks

import (
	"fmt"
	"strings"
)

// EnvHook names the phase being run. It is exported to every hook command.
const EnvHook = "GIT_SMEE_HOOK"

// ParseEnv checks that every entry is KEY=VALUE with a non-empty key and
// returns the entries in os/exec environment form.
func ParseEnv(envSlice []string) ([]string, error) {
	result := make([]string, 0, len(envSlice))
	for _, e := range envSlice {
		key, value, ok := strings.Cut(e, "=")
		if !ok {
			return nil, fmt.Errorf("invalid env format %q: expected KEY=VALUE", e)
		}
		if key == "" {
			return nil, fmt.Errorf("invalid env format %q: key cannot be empty", e)
		}
		result = append(result, key+"="+value)
	}
	return result, nil
}
