package session

import (
	"bytes"
	"strings"
	"testing"

	"github.com/user/fatsim/pkg/fat"
	"github.com/user/fatsim/pkg/mocks"
	"github.com/user/fatsim/pkg/ports"
	"github.com/user/fatsim/pkg/report"
)

func TestShell_Script(t *testing.T) {
	var out bytes.Buffer
	fs := fat.NewDefault()
	s := New(fs, report.NewTextFormatter(), &out, mocks.NewLogger())

	input := strings.Join([]string{
		"1", "A.TXT", "3000",
		"1", "B.TXT", "1000",
		"2", "A.TXT",
		"3",
		"0",
		"1", "NEVER", "1",
	}, "\n")

	if err := NewShell(s, strings.NewReader(input), &out, false).Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	entries := fs.ListDirectory()
	if len(entries) != 1 || entries[0].Name != "B.TXT" {
		t.Errorf("expected only B.TXT, got %+v", entries)
	}
	if !strings.Contains(out.String(), "B.TXT") {
		t.Error("expected directory listing in output")
	}
}

func TestShell_EndOfInput(t *testing.T) {
	fs := fat.NewDefault()
	s := New(fs, report.NewTextFormatter(), &bytes.Buffer{}, mocks.NewLogger())

	if err := NewShell(s, strings.NewReader("1 A 10"), &bytes.Buffer{}, false).Run(); err != nil {
		t.Fatalf("expected clean exit on EOF, got %v", err)
	}
	if _, ok := fs.Lookup("A"); !ok {
		t.Error("expected A to be allocated before EOF")
	}
}

func TestShell_InvalidInput(t *testing.T) {
	var out bytes.Buffer
	fs := fat.NewDefault()
	s := New(fs, report.NewTextFormatter(), &out, mocks.NewLogger())

	if err := NewShell(s, strings.NewReader("9\n1 A abc\n0\n"), &out, true).Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(fs.ListDirectory()) != 0 {
		t.Error("expected no allocation with an invalid size")
	}
	if !strings.Contains(out.String(), "abc") {
		t.Error("expected the invalid size to be echoed")
	}
	if !strings.Contains(out.String(), "1. ") {
		t.Error("expected the menu to be printed in prompt mode")
	}
}

func TestShell_RejectsHugeSize(t *testing.T) {
	fs := fat.NewDefault()
	log := mocks.NewLogger()
	s := New(fs, report.NewTextFormatter(), &bytes.Buffer{}, log)

	input := "1 HUGE 9223372036854775807 0"
	if err := NewShell(s, strings.NewReader(input), &bytes.Buffer{}, false).Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(fs.ListDirectory()) != 0 {
		t.Errorf("expected HUGE to be rejected, got %+v", fs.ListDirectory())
	}
	if log.Count(ports.LevelWarn) != 1 {
		t.Errorf("expected 1 warning, got %d", log.Count(ports.LevelWarn))
	}
	if err := fs.Check(); err != nil {
		t.Errorf("Check failed: %v", err)
	}
}
