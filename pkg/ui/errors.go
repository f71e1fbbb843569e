package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const errorPrefix = "Error:"

// ErrorPrinter writes "Error: <message>" lines
type ErrorPrinter struct {
	out    io.Writer
	prefix lipgloss.Style
}

// NewErrorPrinter creates a printer writing to out. FormatAuto is resolved
// with DetectFormat when out is a file, and falls back to text otherwise.
func NewErrorPrinter(out io.Writer, format Format) *ErrorPrinter {
	if format == FormatAuto {
		format = FormatText
		if f, ok := out.(*os.File); ok {
			format = DetectFormat(f)
		}
	}

	renderer := lipgloss.NewRenderer(out)
	if format == FormatTerminal {
		if renderer.ColorProfile() == termenv.Ascii {
			renderer.SetColorProfile(termenv.ANSI)
		}
	} else {
		renderer.SetColorProfile(termenv.Ascii)
	}

	return &ErrorPrinter{
		out:    out,
		prefix: renderer.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#C0392B", Dark: "#FF6B6B"}),
	}
}

// Print writes err, doing nothing when err is nil
func (p *ErrorPrinter) Print(err error) {
	if err == nil {
		return
	}
	_, _ = fmt.Fprintf(p.out, "%s %s\n", p.prefix.Render(errorPrefix), err.Error())
}
