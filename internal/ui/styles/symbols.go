package styles

import "github.com/raphi011/git-smee/internal/installer"

// Symbols for hook states
const (
	SymbolInstalled = "✓"
	SymbolUnmanaged = "!"
	SymbolMissing   = "✗"
	SymbolStale     = "~"
)

// FormatState returns the colored symbol and name of a hook state.
func FormatState(state installer.State) string {
	switch state {
	case installer.StateInstalled:
		return SuccessStyle.Render(SymbolInstalled + " " + string(state))
	case installer.StateUnmanaged:
		return WarningStyle.Render(SymbolUnmanaged + " " + string(state))
	case installer.StateMissing:
		return ErrorStyle.Render(SymbolMissing + " " + string(state))
	case installer.StateStale:
		return MutedStyle.Render(SymbolStale + " " + string(state))
	default:
		return string(state)
	}
}
