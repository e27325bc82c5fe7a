package styles

import (
	"fmt"
	"image/color"
	"maps"
	"slices"
	"strings"

	"charm.land/lipgloss/v2"
)

// EnvTheme selects the color theme by name.
const EnvTheme = "GIT_SMEE_THEME"

// Theme defines the color palette for UI components
type Theme struct {
	Primary color.Color // phase names
	Success color.Color // installed hooks
	Error   color.Color // missing hooks
	Warning color.Color // unmanaged and stale hooks
	Muted   color.Color // paths and counts
	Normal  color.Color // standard text
	Info    color.Color // hints
}

// Preset themes
var (
	// DefaultTheme is the default color scheme
	DefaultTheme = Theme{
		Primary: lipgloss.Color("62"),  // cyan/teal
		Success: lipgloss.Color("82"),  // green
		Error:   lipgloss.Color("196"), // red
		Warning: lipgloss.Color("214"), // orange
		Muted:   lipgloss.Color("240"), // dark gray
		Normal:  lipgloss.Color("252"), // light gray
		Info:    lipgloss.Color("244"), // gray
	}

	// DraculaTheme is based on the Dracula color scheme
	DraculaTheme = Theme{
		Primary: lipgloss.Color("#bd93f9"),
		Success: lipgloss.Color("#50fa7b"),
		Error:   lipgloss.Color("#ff5555"),
		Warning: lipgloss.Color("#ffb86c"),
		Muted:   lipgloss.Color("#6272a4"),
		Normal:  lipgloss.Color("#f8f8f2"),
		Info:    lipgloss.Color("#8be9fd"),
	}

	// NordTheme is based on the Nord color scheme
	NordTheme = Theme{
		Primary: lipgloss.Color("#88c0d0"),
		Success: lipgloss.Color("#a3be8c"),
		Error:   lipgloss.Color("#bf616a"),
		Warning: lipgloss.Color("#ebcb8b"),
		Muted:   lipgloss.Color("#4c566a"),
		Normal:  lipgloss.Color("#eceff4"),
		Info:    lipgloss.Color("#81a1c1"),
	}

	// NoneTheme renders without colors; bold and italic are kept.
	NoneTheme = Theme{
		Primary: lipgloss.NoColor{},
		Success: lipgloss.NoColor{},
		Error:   lipgloss.NoColor{},
		Warning: lipgloss.NoColor{},
		Muted:   lipgloss.NoColor{},
		Normal:  lipgloss.NoColor{},
		Info:    lipgloss.NoColor{},
	}
)

var themes = map[string]Theme{
	"default": DefaultTheme,
	"dracula": DraculaTheme,
	"nord":    NordTheme,
	"none":    NoneTheme,
}

// currentTheme holds the active theme
var currentTheme = DefaultTheme

// Current returns the current theme
func Current() Theme {
	return currentTheme
}

// ThemeNames returns the preset names in sorted order.
func ThemeNames() []string {
	return slices.Sorted(maps.Keys(themes))
}

// Init activates the named theme. An empty name selects the default.
// Unknown names keep the default theme and return an error.
func Init(name string) error {
	theme := DefaultTheme
	var err error
	if name != "" {
		preset, ok := themes[strings.ToLower(name)]
		if ok {
			theme = preset
		} else {
			err = fmt.Errorf("unknown theme %q, using default (available: %s)", name, strings.Join(ThemeNames(), ", "))
		}
	}
	currentTheme = theme
	applyTheme(theme)
	return err
}
