// Package ui renders narration events as terminal lines, colored with tcell
// styles when the output supports it.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/mageduel/internal/narration"
)

// Printer writes one line per event. It implements narration.Sink.
type Printer struct {
	w     io.Writer
	color bool
	tints map[string]tcell.Color
	err   error
}

// NewPrinter creates a printer writing to w. With color set, lines are
// wrapped in ANSI escapes derived from their tcell style.
func NewPrinter(w io.Writer, color bool) *Printer {
	return &Printer{
		w:     w,
		color: color,
		tints: make(map[string]tcell.Color),
	}
}

// Tint colors every line whose subject is title.
func (p *Printer) Tint(title string, color tcell.Color) {
	if color == tcell.ColorDefault {
		return
	}
	p.tints[title] = color
}

// Emit writes e. The first write error is kept and later events are dropped.
func (p *Printer) Emit(e narration.Event) {
	if p.err != nil {
		return
	}
	var b strings.Builder
	if e.Kind == narration.KindPlayerHP {
		b.WriteString("\n")
	}
	b.WriteString(p.paint(e))
	b.WriteString("\n")
	_, p.err = io.WriteString(p.w, b.String())
}

// Err returns the first write error, if any.
func (p *Printer) Err() error {
	return p.err
}

func (p *Printer) paint(e narration.Event) string {
	if !p.color {
		return e.Text
	}
	style := styleFor(e.Kind)
	if tint, ok := p.tints[e.Subject]; ok && tintable(e.Kind) {
		style = style.Foreground(tint)
	}
	return ansi(style, e.Text)
}

// ansi wraps text in the SGR sequence for style.
func ansi(style tcell.Style, text string) string {
	fg, _, attrs := style.Decompose()

	var codes []string
	if attrs&tcell.AttrBold != 0 {
		codes = append(codes, "1")
	}
	if attrs&tcell.AttrDim != 0 {
		codes = append(codes, "2")
	}
	if fg != tcell.ColorDefault && fg.Valid() {
		r, g, b := fg.RGB()
		codes = append(codes, fmt.Sprintf("38;2;%d;%d;%d", r, g, b))
	}
	if len(codes) == 0 {
		return text
	}
	return "\x1b[" + strings.Join(codes, ";") + "m" + text + "\x1b[0m"
}
