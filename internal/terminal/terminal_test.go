package terminal

import (
	"errors"
	"strings"
	"testing"

	"walkthrough/internal/commands"
	"walkthrough/internal/logger"
)

func TestSubmit(t *testing.T) {
	log := logger.InMemory()
	reg := commands.NewRegistry()
	ran := 0
	reg.Register("pos", "", nil, func() error {
		ran++
		return nil
	})
	reg.Register("fail", "", nil, func() error { return errors.New("boom") })
	term := New(log, reg)

	term.Submit("cmd pos")
	term.Submit("hello")
	term.Submit("cmd fail")

	if ran != 1 {
		t.Fatalf("pos ran %d times", ran)
	}
	lines := log.Lines()
	if len(lines) != 5 {
		t.Fatalf("lines = %q", lines)
	}
	if !strings.HasSuffix(lines[0], "> cmd pos") || !strings.HasSuffix(lines[2], `not a command; try "cmd help"`) || !strings.HasSuffix(lines[4], "boom") {
		t.Fatalf("lines = %q", lines)
	}
}

func TestToggle(t *testing.T) {
	term := New(logger.InMemory(), commands.NewRegistry())
	var seen []bool
	term.OnToggle = func(open bool) { seen = append(seen, open) }

	term.inputBuf = "cmd gr"
	term.Toggle()
	term.Toggle()

	if term.IsOpen() || term.inputBuf != "" {
		t.Fatalf("open=%v buf=%q", term.IsOpen(), term.inputBuf)
	}
	if len(seen) != 2 || !seen[0] || seen[1] {
		t.Fatalf("OnToggle calls = %v", seen)
	}
}

func TestTailAndClip(t *testing.T) {
	if got := Tail([]string{"a", "b", "c"}, 2); len(got) != 2 || got[0] != "b" {
		t.Fatalf("Tail = %q", got)
	}
	if got := Tail([]string{"a"}, 2); len(got) != 1 {
		t.Fatalf("Tail = %q", got)
	}
	if got := Clip("abcdefghij", 8); got != "abcde..." {
		t.Fatalf("Clip = %q", got)
	}
	if got := Clip("short", 8); got != "short" {
		t.Fatalf("Clip = %q", got)
	}
	// Never split a multi-byte rune.
	if got := Clip("ééééé", 6); got != "é..." {
		t.Fatalf("Clip = %q", got)
	}
}
