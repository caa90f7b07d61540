//go:build !linux

package search

import "errors"

// ErrPinUnsupported is returned by pinToCore on platforms without a
// wired affinity syscall. Pinning failure is logged and ignored by
// the caller — it never blocks the search.
var ErrPinUnsupported = errors.New("search: thread pinning is not supported on this platform")

func pinToCore(core int) error {
	return ErrPinUnsupported
}
