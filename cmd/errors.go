package cmd

import (
	"errors"

	"github.com/shgen/vanityssh/internal/config"
)

// ioError marks a save/output failure, distinct from a *config.Error,
// so ExitCode can tell a configuration problem from a disk problem.
type ioError struct{ err error }

func (e *ioError) Error() string { return e.err.Error() }
func (e *ioError) Unwrap() error { return e.err }

// ErrNotImplemented is returned by the benchmark subcommand: it is a
// documented stub, not a bug.
var ErrNotImplemented = errors.New("benchmark: not implemented")

// ExitCode maps a RunE error to a process exit code: 0 success, 1
// configuration error, 2 I/O error on save, 3 an unimplemented
// subcommand.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var cfgErr *config.Error
	if errors.As(err, &cfgErr) {
		return 1
	}
	var ioErr *ioError
	if errors.As(err, &ioErr) {
		return 2
	}
	if errors.Is(err, ErrNotImplemented) {
		return 3
	}
	return 1
}
