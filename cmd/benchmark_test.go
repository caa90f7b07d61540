package cmd

import (
	"errors"
	"testing"
)

func TestBenchmarkCmdReturnsNotImplemented(t *testing.T) {
	t.Parallel()

	err := benchmarkCmd.RunE(benchmarkCmd, nil)
	if !errors.Is(err, ErrNotImplemented) {
		t.Errorf("benchmarkCmd.RunE() = %v, want ErrNotImplemented", err)
	}
	if ExitCode(err) != 3 {
		t.Errorf("ExitCode(%v) = %d, want 3", err, ExitCode(err))
	}
}
