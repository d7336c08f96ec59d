package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/mageduel/internal/narration"
)

func TestPrinterPlain(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)

	narration.Emit(p,
		narration.Event{Kind: narration.KindEncounter, Text: "You encounter a wild Goblin!"},
		narration.Event{Kind: narration.KindPlayerHP, Text: "Your HP: 20"},
		narration.Event{Kind: narration.KindOpponentHP, Text: "Goblin HP: 8"},
	)

	want := "You encounter a wild Goblin!\n\nYour HP: 20\nGoblin HP: 8\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
	if p.Err() != nil {
		t.Errorf("Err() = %v", p.Err())
	}
}

func TestPrinterColor(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, true)
	p.Tint("Goblin", tcell.NewRGBColor(1, 2, 3))

	p.Emit(narration.Event{Kind: narration.KindAttack, Text: "Goblin attacks Novice Mage for 2 damage", Subject: "Goblin"})
	p.Emit(narration.Event{Kind: narration.KindDefeated, Text: "Goblin has been defeated!", Subject: "Goblin"})

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.HasPrefix(lines[0], "\x1b[38;2;1;2;3m") {
		t.Errorf("attack line should carry the goblin tint, got %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "\x1b[1;") {
		t.Errorf("defeat line should be bold, got %q", lines[1])
	}
	for _, line := range lines {
		if !strings.HasSuffix(line, "\x1b[0m") {
			t.Errorf("line not reset: %q", line)
		}
	}
}

func TestAnsiDefaultStyleIsPlain(t *testing.T) {
	if got := ansi(tcell.StyleDefault, "hello"); got != "hello" {
		t.Errorf("ansi(default) = %q, want plain text", got)
	}
}

type failingWriter struct{ writes int }

func (w *failingWriter) Write([]byte) (int, error) {
	w.writes++
	return 0, errors.New("closed")
}

func TestPrinterKeepsFirstError(t *testing.T) {
	w := &failingWriter{}
	p := NewPrinter(w, false)
	p.Emit(narration.Event{Text: "one"})
	p.Emit(narration.Event{Text: "two"})

	if p.Err() == nil {
		t.Fatal("Err() should report the write failure")
	}
	if w.writes != 1 {
		t.Errorf("writes = %d, want 1", w.writes)
	}
}
