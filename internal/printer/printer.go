// Package printer writes styled status lines for CLI commands.
package printer

import (
	"context"
	"fmt"
	"io"
	"os"

	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/guide/internal/core/styles"
)

type ctxKey struct{}

// Printer writes one status line per call, prefixed with a colored marker.
type Printer struct {
	w io.Writer
}

// New creates a printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// NewContext returns a copy of ctx carrying p.
func NewContext(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx returns the printer stored in ctx, or one writing to stdout.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok && p != nil {
		return p
	}
	return New(os.Stdout)
}

func (p *Printer) line(marker string, style lipgloss.Style, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if marker != "" {
		msg = style.Render(marker) + " " + msg
	}
	_, _ = fmt.Fprintln(p.w, msg)
}

// Printf writes an unmarked line.
func (p *Printer) Printf(format string, args ...any) {
	p.line("", lipgloss.Style{}, format, args...)
}

// Successf writes a line marked as passing.
func (p *Printer) Successf(format string, args ...any) {
	p.line("✔", styles.TextSuccessStyle, format, args...)
}

// Infof writes an informational line.
func (p *Printer) Infof(format string, args ...any) {
	p.line("•", styles.TextPrimaryBoldStyle, format, args...)
}

// Warnf writes a warning line.
func (p *Printer) Warnf(format string, args ...any) {
	p.line("!", styles.TextWarningStyle, format, args...)
}

// Errorf writes a line marked as failing.
func (p *Printer) Errorf(format string, args ...any) {
	p.line("✘", styles.TextErrorStyle, format, args...)
}

// Header writes a bold section header.
func (p *Printer) Header(title string) {
	_, _ = fmt.Fprintln(p.w, styles.CommandHeaderStyle.Render(title))
}
