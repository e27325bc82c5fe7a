// Package static provides non-interactive terminal output components.
package static

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/raphi011/git-smee/internal/installer"
	"github.com/raphi011/git-smee/internal/ui/styles"
)

// StatusHeaders are the column headers of the status table.
var StatusHeaders = []string{"PHASE", "STATE", "COMMANDS", "PATH"}

// RenderTable creates a formatted table with proper column alignment.
// Headers and rows are rendered using lipgloss/table which automatically
// calculates column widths based on content. No borders are rendered.
func RenderTable(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	var output strings.Builder

	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).PaddingRight(2)
			}
			return lipgloss.NewStyle().PaddingRight(2)
		})

	output.WriteString(t.String())
	output.WriteString("\n")

	return output.String()
}

// StatusTableRow formats one hook status as a table row matching StatusHeaders.
func StatusTableRow(s installer.HookStatus) []string {
	phase := styles.PrimaryStyle.Render(s.Phase)
	if s.ServerSide {
		phase += styles.MutedStyle.Render(" (server)")
	}

	state := styles.FormatState(s.State)
	if s.State == installer.StateInstalled && !s.Executable {
		state += styles.WarningStyle.Render(" (not executable)")
	}

	return []string{phase, state, formatCounts(s.Sequential, s.Parallel), styles.MutedStyle.Render(s.Path)}
}

func formatCounts(sequential, parallel int) string {
	switch {
	case sequential == 0 && parallel == 0:
		return "-"
	case parallel == 0:
		return fmt.Sprintf("%d", sequential)
	default:
		return fmt.Sprintf("%d + %d parallel", sequential, parallel)
	}
}

// RenderStatus renders the status table for statuses.
func RenderStatus(statuses []installer.HookStatus) string {
	rows := make([][]string, 0, len(statuses))
	for _, s := range statuses {
		rows = append(rows, StatusTableRow(s))
	}
	return RenderTable(StatusHeaders, rows)
}
