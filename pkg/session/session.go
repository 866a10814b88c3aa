package session

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ideamans/go-l10n"

	"github.com/user/fatsim/pkg/fat"
	"github.com/user/fatsim/pkg/ports"
	"github.com/user/fatsim/pkg/report"
)

// Outcome is the engine-level result of one step. Err holds a rejected
// allocation or deletion, or a failed consistency check.
type Outcome struct {
	Step Step
	Err  error
}

// Result summarises a Run.
type Result struct {
	Steps    int
	Failures []Outcome
}

// Session applies steps to one FileSystem.
type Session struct {
	fs        *fat.FileSystem
	formatter report.Formatter
	out       io.Writer
	logger    ports.Logger
}

// New creates a Session. Display steps are written to out.
func New(fs *fat.FileSystem, formatter report.Formatter, out io.Writer, logger ports.Logger) *Session {
	return &Session{
		fs:        fs,
		formatter: formatter,
		out:       out,
		logger:    logger,
	}
}

// FileSystem returns the filesystem the session drives.
func (s *Session) FileSystem() *fat.FileSystem {
	return s.fs
}

// Run applies steps in order. Rejected operations are logged and collected
// in the result without stopping the run; output errors and cancellation
// stop it.
func (s *Session) Run(ctx context.Context, steps []Step) (Result, error) {
	var result Result

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		result.Steps++
		outcome, err := s.Apply(step)
		if err != nil {
			return result, fmt.Errorf("step %d (%s): %w", result.Steps, step.Op, err)
		}
		if outcome.Err != nil {
			result.Failures = append(result.Failures, outcome)
		}
	}

	return result, nil
}

// Apply runs one step. Rejected operations are logged and reported in the
// outcome; the error return is reserved for output failures.
func (s *Session) Apply(step Step) (Outcome, error) {
	outcome := Outcome{Step: step}

	switch step.Op {
	case OpAllocate:
		outcome.Err = s.allocate(step.Name, step.Size)
	case OpDelete:
		outcome.Err = s.delete(step.Name)
	case OpDirectory:
		return outcome, s.show(report.ViewDirectory)
	case OpTable:
		return outcome, s.show(report.ViewTable)
	case OpStats:
		return outcome, s.show(report.ViewStats)
	case OpReset:
		s.fs.Initialize()
		s.logger.Info("File system initialized")
	case OpCheck:
		outcome.Err = s.check()
	case OpSection:
		_, err := fmt.Fprintf(s.out, "\n\n--- %s ---\n", l10n.T(step.Name))
		return outcome, err
	default:
		return outcome, fmt.Errorf("unknown op %d", step.Op)
	}

	return outcome, nil
}

func (s *Session) allocate(name string, size int) error {
	if err := s.fs.Allocate(name, size); err != nil {
		s.logger.Warn("Cannot allocate '%s': %s", name, Reason(err))
		return err
	}
	clusters := s.fs.Geometry().ClustersFor(size)
	s.logger.Info("File '%s' allocated: %d bytes, %d clusters", name, size, clusters)
	return nil
}

func (s *Session) delete(name string) error {
	if err := s.fs.Delete(name); err != nil {
		s.logger.Warn("Cannot delete '%s': %s", name, Reason(err))
		return err
	}
	s.logger.Info("File '%s' deleted", name)
	return nil
}

func (s *Session) check() error {
	if err := s.fs.Check(); err != nil {
		s.logger.Error("Consistency check failed: %s", err)
		return err
	}
	s.logger.Info("Consistency check passed")
	return nil
}

func (s *Session) show(view report.View) error {
	text, err := s.formatter.Format(s.fs.Snapshot(), view)
	if err != nil {
		return err
	}
	_, err = io.WriteString(s.out, text)
	return err
}

// Reason returns a translated, user-facing description of an engine error.
func Reason(err error) string {
	switch {
	case errors.Is(err, fat.ErrFileTooLarge):
		return l10n.T("the file is too large")
	case errors.Is(err, fat.ErrDirectoryFull):
		return l10n.T("the root directory is full")
	case errors.Is(err, fat.ErrInsufficientSpace):
		return l10n.T("not enough free clusters")
	case errors.Is(err, fat.ErrNotFound):
		return l10n.T("file not found")
	case errors.Is(err, fat.ErrInvalidSize):
		return l10n.T("the size must not be negative")
	case errors.Is(err, fat.ErrConsistencyFault):
		return l10n.F("internal consistency fault: %s", err)
	default:
		return err.Error()
	}
}
