package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Printer writes user-facing output, applying color only when the
// destination is an interactive terminal.
type Printer struct {
	w     io.Writer
	out   *termenv.Output
	color bool
}

// NewPrinter creates a printer for f.
func NewPrinter(f *os.File) *Printer {
	return &Printer{
		w:     f,
		out:   termenv.NewOutput(f),
		color: term.IsTerminal(int(f.Fd())),
	}
}

// NewPlainPrinter creates a printer without color, for tests and pipes.
func NewPlainPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Printf writes formatted output verbatim.
func (p *Printer) Printf(format string, args ...any) {
	fmt.Fprintf(p.w, format, args...)
}

// Alert writes a line styled as an error (red when interactive).
func (p *Printer) Alert(format string, args ...any) {
	p.styled(termenv.ANSIRed, format, args...)
}

// Notice writes a line styled as a highlight (yellow when interactive).
func (p *Printer) Notice(format string, args ...any) {
	p.styled(termenv.ANSIYellow, format, args...)
}

func (p *Printer) styled(color termenv.Color, format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	if p.color {
		line = p.out.String(line).Foreground(color).String()
	}
	fmt.Fprintln(p.w, line)
}
