package format

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	errorStyle   lipgloss.Style
	warningStyle lipgloss.Style
	grayStyle    lipgloss.Style
)

func init() {
	SetOutput(os.Stderr)
}

// SetOutput binds the styles to the writer diagnostics are printed to, so
// colour support is detected on that writer rather than on stdout.
func SetOutput(w io.Writer) {
	r := lipgloss.NewRenderer(w)
	errorStyle = r.NewStyle().Foreground(lipgloss.Color("1"))   // Red
	warningStyle = r.NewStyle().Foreground(lipgloss.Color("3")) // Yellow
	grayStyle = r.NewStyle().Foreground(lipgloss.Color("8"))    // Gray
}

// colorsEnabled controls whether diagnostics are colorized.
var colorsEnabled = true

// SetColorsEnabled enables or disables color output.
func SetColorsEnabled(enabled bool) {
	colorsEnabled = enabled
}

// ColorsEnabled reports whether diagnostics are colorized.
func ColorsEnabled() bool {
	return colorsEnabled
}

func styled(s lipgloss.Style, text string) string {
	if !colorsEnabled {
		return text
	}
	return s.Render(text)
}

// Error formats a fatal error message in red with an X prefix.
func Error(msg string) string {
	return styled(errorStyle, "✗ "+msg)
}

// Warning formats a warning message in yellow with a warning prefix.
func Warning(msg string) string {
	return styled(warningStyle, "⚠ WARNING: "+msg)
}

// Debug formats a debug message in gray.
func Debug(msg string) string {
	return styled(grayStyle, "[debug] "+msg)
}
