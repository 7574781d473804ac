// Package report renders statistics and raw trip rows to the terminal.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gookit/color"
)

// SeparatorWidth is the length of the dashed line closing every section.
const SeparatorWidth = 40

var (
	headingStyle = color.New(color.FgCyan, color.OpBold)
	ruleStyle    = color.New(color.FgGray)
	errorStyle   = color.New(color.FgRed, color.OpBold)
	noteStyle    = color.New(color.FgYellow)
)

// Printer writes report text to an output stream.
type Printer struct {
	out   io.Writer
	color bool
	now   func() time.Time
}

// Option configures a Printer.
type Option func(*Printer)

// WithColor turns ANSI styling on or off. Styling is off by default.
func WithColor(enabled bool) Option {
	return func(p *Printer) { p.color = enabled }
}

// WithClock replaces time.Now for the "This took" lines.
func WithClock(now func() time.Time) Option {
	return func(p *Printer) { p.now = now }
}

// New creates a Printer writing to out.
func New(out io.Writer, opts ...Option) *Printer {
	p := &Printer{out: out, now: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Writer exposes the underlying stream, e.g. for prompts sharing the terminal.
func (p *Printer) Writer() io.Writer { return p.out }

// Rule returns the dashed line closing sections and selection rounds.
func Rule() string {
	return strings.Repeat("-", SeparatorWidth)
}

// Separator prints the dashed section rule.
func (p *Printer) Separator() {
	fmt.Fprintln(p.out, p.paint(ruleStyle, Rule()))
}

// Heading prints a section title surrounded by blank lines.
func (p *Printer) Heading(title string) {
	fmt.Fprintf(p.out, "\n%s\n\n", p.paint(headingStyle, title))
}

// Message prints a line of plain text.
func (p *Printer) Message(msg string) {
	fmt.Fprintln(p.out, msg)
}

// Note prints a highlighted informational line.
func (p *Printer) Note(msg string) {
	fmt.Fprintln(p.out, p.paint(noteStyle, msg))
}

// Error prints err for the user.
func (p *Printer) Error(err error) {
	fmt.Fprintf(p.out, "%s %v\n", p.paint(errorStyle, "Error:"), err)
}

func (p *Printer) paint(style color.Style, s string) string {
	if !p.color {
		return s
	}
	return style.Sprint(s)
}
