// Package search is the parallel search driver: it spawns one worker
// goroutine per configured thread, each independently generating and
// matching Ed25519 keys, coordinates first-match-wins termination via
// a write-once result slot and a release/acquire stop flag, and
// reports throughput on a fixed interval until a match is found or the
// context is cancelled.
package search

import (
	"context"
	"fmt"
	"log"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/shgen/vanityssh/internal/matcher"
)

// DefaultStatusInterval is the status reporter's sampling period.
const DefaultStatusInterval = 2 * time.Second

// Options configures a search run.
type Options struct {
	Keywords       []string
	Policy         matcher.Policy
	Threads        int
	PinThreads     bool
	StatusInterval time.Duration
}

// Driver coordinates a single search run across Options.Threads workers.
type Driver struct {
	opts Options

	stop        atomic.Bool
	keysCounter atomic.Int64
	slot        resultSlot

	// done is closed by the worker that wins the result slot, so the
	// status loop wakes immediately instead of sleeping out its tick.
	done chan struct{}
}

// NewDriver validates opts and returns a Driver ready to Run once.
func NewDriver(opts Options) (*Driver, error) {
	if opts.Threads < 1 {
		return nil, fmt.Errorf("search: threads must be >= 1, got %d", opts.Threads)
	}
	if opts.StatusInterval <= 0 {
		opts.StatusInterval = DefaultStatusInterval
	}
	// One matcher per worker is enough to validate the shared config
	// up front, instead of only discovering a bad keyword list after
	// spawning goroutines.
	if _, err := matcher.New(opts.Keywords, opts.Policy); err != nil {
		return nil, err
	}
	return &Driver{opts: opts, done: make(chan struct{})}, nil
}

// KeysGenerated returns the number of keys generated so far.
func (d *Driver) KeysGenerated() int64 { return d.keysCounter.Load() }

// Run spawns the workers and the status reporter, and blocks until a
// key is found or ctx is cancelled. onStatus, if non-nil, is invoked
// from a dedicated goroutine roughly every StatusInterval; it must not
// block for long since it shares the run's errgroup lifetime.
func (d *Driver) Run(ctx context.Context, onStatus func(Stats)) (*Result, error) {
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)

	for i := 0; i < d.opts.Threads; i++ {
		workerID := i
		g.Go(func() error { return d.worker(gctx, workerID) })
	}

	if onStatus != nil {
		g.Go(func() error {
			d.statusLoop(gctx, start, onStatus)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if result, ok := d.slot.Get(); ok {
		return &result, nil
	}
	return nil, nil
}

func (d *Driver) statusLoop(ctx context.Context, start time.Time, onStatus func(Stats)) {
	ticker := time.NewTicker(d.opts.StatusInterval)
	defer ticker.Stop()

	var lastKeys int64
	lastSample := start

	for {
		select {
		case <-ctx.Done():
			return
		case <-d.done:
			return
		case now := <-ticker.C:
			if d.stop.Load() {
				return
			}
			keys := d.keysCounter.Load()
			elapsed := now.Sub(start)
			sinceLastSample := now.Sub(lastSample)

			onStatus(Stats{
				KeysGenerated: keys,
				Elapsed:       elapsed,
				OverallRate:   rate(keys, elapsed),
				InstantRate:   rate(keys-lastKeys, sinceLastSample),
			})

			lastKeys = keys
			lastSample = now
		}
	}
}

func (d *Driver) pinWorker(workerID int) {
	if !d.opts.PinThreads {
		return
	}
	// Affinity is a property of an OS thread, not a goroutine; pin the
	// one underlying this goroutine for the rest of its lifetime.
	runtime.LockOSThread()
	if err := pinToCore(workerID); err != nil {
		log.Printf("worker-%d: pin to core %d failed: %v", workerID, workerID, err)
	}
}
