package session

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/user/fatsim/pkg/fat"
	"github.com/user/fatsim/pkg/mocks"
	"github.com/user/fatsim/pkg/ports"
	"github.com/user/fatsim/pkg/report"
)

func newSession(t *testing.T) (*Session, *bytes.Buffer, *mocks.Logger) {
	t.Helper()
	var out bytes.Buffer
	log := mocks.NewLogger()
	return New(fat.NewDefault(), report.NewTextFormatter(), &out, log), &out, log
}

func TestParseOp(t *testing.T) {
	for op, name := range opNames {
		got, err := ParseOp(name)
		if err != nil || got != op {
			t.Errorf("ParseOp(%q) = %v, %v; want %v", name, got, err, op)
		}
	}
	if _, err := ParseOp("format"); err == nil {
		t.Error("expected error for unknown op")
	}
}

func TestRun_DemoScript(t *testing.T) {
	s, out, log := newSession(t)

	result, err := s.Run(context.Background(), DemoScript())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(result.Failures) != 0 {
		t.Errorf("expected no failures, got %+v", result.Failures)
	}
	if result.Steps != len(DemoScript()) {
		t.Errorf("expected %d steps, got %d", len(DemoScript()), result.Steps)
	}

	if stats := s.FileSystem().Stats(); stats.Used != 0 || stats.Free != 12 {
		t.Errorf("expected clean filesystem after demo, got %+v", stats)
	}
	// Four allocations and four deletions.
	if log.Count(ports.LevelInfo) != 8 {
		t.Errorf("expected 8 info messages, got %d", log.Count(ports.LevelInfo))
	}
	if !strings.Contains(out.String(), "DATA_D.LOG") {
		t.Error("expected DATA_D.LOG in rendered output")
	}
}

func TestRun_ContinuesAfterRejection(t *testing.T) {
	s, _, log := newSession(t)

	steps := []Step{
		{Op: OpAllocate, Name: "HUGE", Size: 20 * 1024},
		{Op: OpDelete, Name: "MISSING"},
		{Op: OpAllocate, Name: "OK", Size: 100},
	}
	result, err := s.Run(context.Background(), steps)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(result.Failures) != 2 {
		t.Fatalf("expected 2 failures, got %d", len(result.Failures))
	}
	if !errors.Is(result.Failures[0].Err, fat.ErrFileTooLarge) {
		t.Errorf("expected ErrFileTooLarge, got %v", result.Failures[0].Err)
	}
	if !errors.Is(result.Failures[1].Err, fat.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", result.Failures[1].Err)
	}
	if log.Count(ports.LevelWarn) != 2 {
		t.Errorf("expected 2 warnings, got %d", log.Count(ports.LevelWarn))
	}
	if _, ok := s.FileSystem().Lookup("OK"); !ok {
		t.Error("expected OK to be allocated after earlier failures")
	}
}

func TestRun_Cancelled(t *testing.T) {
	s, _, _ := newSession(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := s.Run(ctx, DemoScript())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if result.Steps != 0 {
		t.Errorf("expected no steps, got %d", result.Steps)
	}
}

func TestApply_ResetAndCheck(t *testing.T) {
	s, _, _ := newSession(t)

	if _, err := s.Apply(Step{Op: OpAllocate, Name: "A", Size: 5000}); err != nil {
		t.Fatal(err)
	}
	outcome, err := s.Apply(Step{Op: OpCheck})
	if err != nil || outcome.Err != nil {
		t.Errorf("expected passing check, got %v / %v", err, outcome.Err)
	}

	if _, err := s.Apply(Step{Op: OpReset}); err != nil {
		t.Fatal(err)
	}
	if len(s.FileSystem().ListDirectory()) != 0 {
		t.Error("expected empty directory after reset")
	}
}

func TestApply_OutputError(t *testing.T) {
	failing := report.FormatFunc(func(snap fat.Snapshot, view report.View) (string, error) {
		return "", errors.New("boom")
	})
	s := New(fat.NewDefault(), failing, &bytes.Buffer{}, mocks.NewLogger())

	if _, err := s.Run(context.Background(), []Step{{Op: OpStats}}); err == nil {
		t.Error("expected output error to stop the run")
	}
}

func TestApply_UnknownOp(t *testing.T) {
	s, _, _ := newSession(t)
	if _, err := s.Apply(Step{Op: Op(99)}); err == nil {
		t.Error("expected error for unknown op")
	}
}

func TestReason(t *testing.T) {
	tests := []error{
		fat.ErrFileTooLarge,
		fat.ErrDirectoryFull,
		fat.ErrInsufficientSpace,
		fat.ErrNotFound,
		fat.ErrInvalidSize,
		&fat.OpError{Op: "delete", Name: "X", Err: fat.ErrConsistencyFault},
	}
	seen := make(map[string]bool)
	for _, err := range tests {
		r := Reason(err)
		if r == "" || seen[r] {
			t.Errorf("expected a distinct reason for %v, got %q", err, r)
		}
		seen[r] = true
	}
	if got := Reason(errors.New("other")); got != "other" {
		t.Errorf("expected passthrough, got %q", got)
	}
}

func TestRun_DemoFill(t *testing.T) {
	s, _, _ := newSession(t)

	if _, err := s.Run(context.Background(), DemoFill()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	stats := s.FileSystem().Stats()
	if stats.Used != 10 || stats.Free != 2 {
		t.Errorf("expected 10 used / 2 free, got %+v", stats)
	}
	chain, err := s.FileSystem().ChainOf("DATA_D.LOG")
	if err != nil {
		t.Fatalf("ChainOf failed: %v", err)
	}
	if len(chain) != 3 || chain[0] != 3 || chain[1] != 4 || chain[2] != 9 {
		t.Errorf("expected DATA_D.LOG in [3 4 9], got %v", chain)
	}
}
