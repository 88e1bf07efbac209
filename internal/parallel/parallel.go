// Package parallel splits independent index ranges across goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls how work is split.
type Config struct {
	Workers  int // goroutines to use; 1 or less runs inline
	MinChunk int // smallest range handed to one goroutine
}

// DefaultConfig uses one worker per schedulable CPU.
func DefaultConfig() Config {
	return Config{
		Workers:  runtime.GOMAXPROCS(0),
		MinChunk: 16,
	}
}

// Sequential runs every range inline on the calling goroutine.
func Sequential() Config {
	return Config{Workers: 1}
}

// Range calls f on disjoint [lo, hi) chunks covering [0, n) and returns once
// all calls have finished. Chunks never overlap, so f may write to
// per-index output without locking.
func Range(n int, cfg Config, f func(lo, hi int)) {
	if n <= 0 {
		return
	}
	workers := max(cfg.Workers, 1)
	chunk := max((n+workers-1)/workers, cfg.MinChunk, 1)
	if workers == 1 || chunk >= n {
		f(0, n)
		return
	}

	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		wg.Add(1)
		go func() {
			defer wg.Done()
			f(lo, hi)
		}()
	}
	wg.Wait()
}
