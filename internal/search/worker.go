package search

import (
	"context"
	"crypto/ed25519"
	"fmt"

	"github.com/shgen/vanityssh/internal/matcher"
	"github.com/shgen/vanityssh/internal/opensshfmt"
	"github.com/shgen/vanityssh/internal/vrand"
)

// batchCount keys are generated per RNG fill: 256 32-byte seeds
// refilled in one FillBytes call instead of one call per key.
const batchCount = 256

// worker runs one goroutine's share of the search: generate a batch of
// candidate secret keys, try each against the matcher, and either
// publish a result and stop or fall through to the next batch.
func (d *Driver) worker(ctx context.Context, workerID int) error {
	d.pinWorker(workerID)

	m, err := matcher.New(d.opts.Keywords, d.opts.Policy)
	if err != nil {
		return fmt.Errorf("worker-%d: %w", workerID, err)
	}

	rng, err := vrand.FromBestAvailable()
	if err != nil {
		return fmt.Errorf("worker-%d: seed rng: %w", workerID, err)
	}

	formatter := opensshfmt.Empty()

	var batch [batchCount * ed25519.SeedSize]byte

	for {
		if d.stop.Load() {
			return nil
		}
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		rng.FillBytes(batch[:])

		for i := 0; i < batchCount; i++ {
			seed := batch[i*ed25519.SeedSize : (i+1)*ed25519.SeedSize]
			signingKey := ed25519.NewKeyFromSeed(seed)
			formatter.UpdateKeys(signingKey)

			pub, priv, ok := m.SearchMatches(formatter, rng)
			if !ok {
				continue
			}

			d.keysCounter.Add(int64(i + 1))
			if d.slot.TrySet(Result{PublicKey: pub, PrivateKey: priv}) {
				d.stop.Store(true)
				close(d.done)
			}
			return nil
		}

		d.keysCounter.Add(batchCount)
	}
}
