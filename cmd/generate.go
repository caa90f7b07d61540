package cmd

import (
	"context"
	"fmt"
	"log"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mackerelio/go-osstat/cpu"
	"github.com/spf13/cobra"

	"github.com/shgen/vanityssh/display"
	"github.com/shgen/vanityssh/internal/config"
	"github.com/shgen/vanityssh/internal/keepawake"
	"github.com/shgen/vanityssh/internal/output"
	"github.com/shgen/vanityssh/internal/search"
)

var jsonStatus bool

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Search for an Ed25519 key pair matching the configured keywords (default)",
	Args:  cobra.NoArgs,
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().BoolVar(&jsonStatus, "json", false, "print status samples as JSON instead of a status line")
}

// jsonSample is the periodic status-sample shape printed under --json:
// key count, elapsed time, overall rate, plus a CPU-usage field
// sourced from go-osstat.
type jsonSample struct {
	NumKeys    int64   `json:"num_keys"`
	ElapsedSec int64   `json:"elapsed_sec"`
	Rate       int64   `json:"rate"`
	CPUUserPct float64 `json:"usage_cpu_user_pct"`
}

// cpuSampler tracks the previous go-osstat snapshot so successive
// calls can report a CPU-user percentage over the interval between
// them, instead of needing a blocking before/after pair per sample.
type cpuSampler struct {
	prev *cpu.Stats
}

func (c *cpuSampler) userPercent() float64 {
	cur, err := cpu.Get()
	if err != nil {
		return 0
	}
	prev := c.prev
	c.prev = cur
	if prev == nil {
		return 0
	}
	total := float64(cur.Total - prev.Total)
	if total <= 0 {
		return 0
	}
	return math.Floor(float64(cur.User-prev.User) / total * 100)
}

func runGenerate(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	display.Init()
	defer display.Reset()

	fmt.Println(display.ConfigSummary(cfg))

	if cfg.Runtime.KeepAwake {
		release := acquireKeepAwake()
		defer release()
	}

	driver, err := search.NewDriver(search.Options{
		Keywords:   cfg.Keywords,
		Policy:     cfg.Search.Policy(),
		Threads:    cfg.Runtime.Threads,
		PinThreads: cfg.Runtime.PinThreads,
	})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	sampler := &cpuSampler{}
	// Written from the status goroutine; driver.Run joins it before
	// returning, so the read below is ordered after the last write.
	statusPrinted := false
	result, err := driver.Run(ctx, func(s search.Stats) {
		statusPrinted = true
		if jsonStatus {
			fmt.Println(display.FormatJSON(jsonSample{
				NumKeys:    s.KeysGenerated,
				ElapsedSec: int64(s.Elapsed / time.Second),
				Rate:       s.OverallRate,
				CPUUserPct: sampler.userPercent(),
			}))
		} else {
			display.UpdateStatusBar(display.StatusLine(s))
		}
	})
	if err != nil {
		return err
	}
	if statusPrinted && !jsonStatus && !display.IsTTY() {
		// Terminate the carriage-return-overwritten status line.
		fmt.Println()
	}
	if result == nil {
		// Cancelled (e.g. Ctrl+C) before any worker published a match.
		return nil
	}

	if err := output.SaveKeys(cfg.Output.SaveTo, result.PublicKey, result.PrivateKey); err != nil {
		return &ioError{err: err}
	}

	fmt.Println(result.PublicKey.String())
	fmt.Printf("saved to %s\n", cfg.Output.SaveTo)
	return nil
}

// acquireKeepAwake requests the OS not sleep for the duration of the
// search. Failure is logged and discarded: keep-awake is never fatal.
// The returned function releases the request (a no-op if none was
// acquired) and must be deferred so it runs on every exit path.
func acquireKeepAwake() func() {
	handle, err := keepawake.New("vanityssh key search")
	if err != nil {
		log.Printf("keep-awake unavailable: %v", err)
		return func() {}
	}
	if err := handle.PreventSleep(); err != nil {
		log.Printf("keep-awake request failed: %v", err)
	}
	return func() {
		if err := handle.AllowSleep(); err != nil {
			log.Printf("keep-awake release failed: %v", err)
		}
	}
}
