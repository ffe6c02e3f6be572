package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorRed  = lipgloss.Color("167") // Soft red - errors
	colorGray = lipgloss.Color("245") // Gray - secondary text
)

// =============================================================================
// Styles
// =============================================================================

var (
	styleIconError = lipgloss.NewStyle().Foreground(colorRed)
	styleErrorText = lipgloss.NewStyle().Foreground(colorGray)
)

// =============================================================================
// Icons
// =============================================================================

const iconError = "✗"

// =============================================================================
// Status Output
// =============================================================================

// PrintError writes a styled error message to stderr. Styling never touches
// stdout, which carries only the rendered diagram and listing.
func PrintError(err error) {
	fmt.Fprintln(os.Stderr,
		styleIconError.Render(iconError),
		styleErrorText.Render(err.Error()))
}
