package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/raphi011/git-smee/internal/config"
)

// completePhaseArg completes the phase of "run" from the phase table.
func completePhaseArg(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var matches []string
	for _, name := range config.PhaseNames() {
		if strings.HasPrefix(name, toComplete) {
			matches = append(matches, name)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}
