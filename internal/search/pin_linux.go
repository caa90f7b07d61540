//go:build linux

package search

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// pinToCore pins the calling OS thread to the given logical core.
// Go's runtime doesn't guarantee a goroutine stays on one OS thread,
// so this must be called from inside runtime.LockOSThread; callers
// that skip LockOSThread get a best-effort pin that can drift.
func pinToCore(core int) error {
	var set unix.CPUSet
	set.Zero()
	set.Set(core)
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		return fmt.Errorf("sched_setaffinity: %w", err)
	}
	return nil
}
