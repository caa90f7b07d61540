package search

import (
	"sync"

	"github.com/shgen/vanityssh/internal/keytypes"
)

// Result is a matched (public, private) key pair.
type Result struct {
	PublicKey  keytypes.OpenSSHPublicKey
	PrivateKey keytypes.OpenSSHPrivateKey
}

// resultSlot is a write-once cell: the first successful Set wins, and
// every later Set is a no-op that reports failure. This is the
// "single-writer-wins" publication contract the search driver relies
// on to guarantee at most one result is ever produced per run.
type resultSlot struct {
	mu     sync.Mutex
	result Result
	isSet  bool
}

// TrySet publishes r if nothing has been published yet. It reports
// whether this call was the one that won.
func (s *resultSlot) TrySet(r Result) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.isSet {
		return false
	}
	s.result = r
	s.isSet = true
	return true
}

// Get returns the published result, if any.
func (s *resultSlot) Get() (Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result, s.isSet
}
