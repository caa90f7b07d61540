package search

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stats is a point-in-time snapshot of search progress, handed to the
// caller's status callback roughly every StatusInterval.
type Stats struct {
	KeysGenerated int64
	Elapsed       time.Duration
	// OverallRate is KeysGenerated / Elapsed, in keys/sec.
	OverallRate int64
	// InstantRate is (keys since the previous sample) / (time since
	// the previous sample), in keys/sec.
	InstantRate int64
}

// rate divides keys by seconds using shopspring/decimal and rounds
// half-up to the nearest integer, so the displayed rate doesn't pick
// up a different last digit on different platforms' float rounding.
func rate(keys int64, elapsed time.Duration) int64 {
	if elapsed <= 0 {
		return 0
	}
	seconds := decimal.NewFromFloat(elapsed.Seconds())
	if seconds.IsZero() {
		return 0
	}
	result := decimal.NewFromInt(keys).DivRound(seconds, 0)
	return result.IntPart()
}
