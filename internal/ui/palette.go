package ui

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"checkgroup/internal/config"
)

// Palette renders styled words for the report.
// Every styled segment ends in a plain ESC[0m reset.
type Palette struct {
	enabled bool
}

var (
	passAttrs = []color.Attribute{color.FgGreen}
	failAttrs = []color.Attribute{color.FgRed, color.Bold}
)

// NewPalette creates a Palette for the given writer and mode
func NewPalette(w io.Writer, mode config.ColorMode) *Palette {
	switch mode {
	case config.ColorAlways:
		return &Palette{enabled: true}
	case config.ColorNever:
		return &Palette{enabled: false}
	default:
		return &Palette{enabled: !color.NoColor && isTerminal(w)}
	}
}

// Enabled reports whether escape sequences are written
func (p *Palette) Enabled() bool {
	return p.enabled
}

// Pass styles s in the pass color (green)
func (p *Palette) Pass(s string) string {
	return p.paint(passAttrs, s)
}

// Fail styles s in the failure color (bright red)
func (p *Palette) Fail(s string) string {
	return p.paint(failAttrs, s)
}

func (p *Palette) paint(attrs []color.Attribute, s string) string {
	if !p.enabled {
		return s
	}
	return sequence(attrs...) + s + sequence(color.Reset)
}

func sequence(attrs ...color.Attribute) string {
	parts := make([]string, len(attrs))
	for i, a := range attrs {
		parts[i] = strconv.Itoa(int(a))
	}
	return fmt.Sprintf("\x1b[%sm", strings.Join(parts, ";"))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
