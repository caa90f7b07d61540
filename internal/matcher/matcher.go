// Package matcher evaluates a candidate key's textual representations
// against a set of keywords, using an Aho-Corasick automaton so an
// arbitrary number of keywords costs one linear scan per field instead
// of one scan per keyword.
package matcher

import (
	"fmt"
	"strings"

	"github.com/coregx/ahocorasick"

	"github.com/shgen/vanityssh/internal/keytypes"
	"github.com/shgen/vanityssh/internal/opensshfmt"
	"github.com/shgen/vanityssh/internal/vrand"
)

// MaxKeywords is the upper bound on the keyword set: a bitset of seen
// keyword IDs for the all-keywords policy must fit in a uint64.
const MaxKeywords = 64

// Policy is the search configuration: which fields to probe, in what
// order, and how field/keyword results combine.
type Policy struct {
	Fields      []SearchField
	AllKeywords bool
	AllFields   bool
}

// Matcher holds a compiled keyword automaton and a search policy. The
// automaton is read-only after New returns and is safe to share by
// reference across worker goroutines.
type Matcher struct {
	policy      Policy
	automaton   *ahocorasick.Automaton
	numKeywords int
}

// New compiles keywords into a case-insensitive Aho-Corasick automaton.
// keywords must be non-empty and no longer than MaxKeywords.
func New(keywords []string, policy Policy) (*Matcher, error) {
	if len(keywords) == 0 {
		return nil, fmt.Errorf("matcher: keyword set is empty")
	}
	if len(keywords) > MaxKeywords {
		return nil, fmt.Errorf("matcher: %d keywords exceeds the %d-keyword limit", len(keywords), MaxKeywords)
	}
	if len(policy.Fields) == 0 {
		return nil, fmt.Errorf("matcher: search field list is empty")
	}

	// Keywords are case-folded once here and never mutated again; since
	// the haystacks (base64 keys and fingerprints) are mixed case,
	// matches folds each haystack the same way before scanning it.
	normalized := make([]string, len(keywords))
	for i, kw := range keywords {
		normalized[i] = strings.ToLower(kw)
	}
	keywords = normalized

	automaton, err := ahocorasick.NewBuilder().
		AddStrings(keywords).
		SetMatchKind(ahocorasick.LeftmostFirst).
		Build()
	if err != nil {
		return nil, fmt.Errorf("matcher: build automaton: %w", err)
	}

	return &Matcher{
		policy:      policy,
		automaton:   automaton,
		numKeywords: len(keywords),
	}, nil
}

// SearchMatches probes the formatter's configured fields in order. On
// a match it re-formats the public and private keys (cheap relative to
// the search that produced the candidate) and returns them.
func (m *Matcher) SearchMatches(f *opensshfmt.Formatter, rng *vrand.RNG) (keytypes.OpenSSHPublicKey, keytypes.OpenSSHPrivateKey, bool) {
	var matched bool
	if m.policy.AllFields {
		matched = true
		for _, field := range m.policy.Fields {
			if !m.searchInField(field, f, rng) {
				matched = false
				break
			}
		}
	} else {
		for _, field := range m.policy.Fields {
			if m.searchInField(field, f, rng) {
				matched = true
				break
			}
		}
	}

	if !matched {
		return keytypes.OpenSSHPublicKey{}, keytypes.OpenSSHPrivateKey{}, false
	}

	return f.FormatPublicKey(), f.FormatPrivateKey(rng), true
}

func (m *Matcher) searchInField(field SearchField, f *opensshfmt.Formatter, rng *vrand.RNG) bool {
	switch field {
	case FieldPublicKey:
		return m.matches(f.FormatPublicKey().String())
	case FieldPrivateKey:
		return m.matches(f.FormatPrivateKey(rng).String())
	case FieldSha1Fingerprint:
		return m.matches(f.FormatFingerprint(opensshfmt.FingerprintSHA1))
	case FieldSha256Fingerprint:
		return m.matches(f.FormatFingerprint(opensshfmt.FingerprintSHA256))
	case FieldSha384Fingerprint:
		return m.matches(f.FormatFingerprint(opensshfmt.FingerprintSHA384))
	case FieldSha512Fingerprint:
		return m.matches(f.FormatFingerprint(opensshfmt.FingerprintSHA512))
	default:
		panic(fmt.Sprintf("matcher: unhandled search field %v", field))
	}
}

// matches implements the keyword policy for a single haystack: any
// keyword present (short-circuiting on first hit), or every keyword
// present (tracked with a bitset of the K<=64 keyword IDs seen).
func (m *Matcher) matches(haystack string) bool {
	// The automaton's patterns were case-folded once in New; fold the
	// haystack here too since the library has no built-in
	// case-insensitive mode.
	lower := []byte(strings.ToLower(haystack))

	if !m.policy.AllKeywords {
		return m.automaton.IsMatch(lower)
	}

	var seen uint64
	target := uint64(1)<<uint(m.numKeywords) - 1

	for _, match := range m.automaton.FindAll(lower, -1) {
		seen |= 1 << uint(match.PatternID)
		if seen == target {
			return true
		}
	}
	return false
}
