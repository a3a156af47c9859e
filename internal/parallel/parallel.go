// Package parallel splits index ranges across worker goroutines for the
// compute kernels. A kernel describes its work as f(i) over [0, n) with
// disjoint writes per index; the package decides whether goroutines pay
// off and falls back to the calling goroutine when they do not.
package parallel

import (
	"runtime"
	"sync"
)

// Config bounds how a loop is split across goroutines.
type Config struct {
	// Workers is the number of goroutines to spread the range over.
	Workers int

	// MinPerWorker is the smallest index range worth a goroutine.
	// Ranges that cannot feed at least two workers this much run
	// sequentially.
	MinPerWorker int
}

// Default returns a Config sized to the machine.
func Default() Config {
	return Config{
		Workers:      runtime.NumCPU(),
		MinPerWorker: 16,
	}
}

// For runs f(i) for every i in [0, n). The range is split into
// contiguous chunks, one goroutine per chunk, and For returns once all
// of them finish. f must tolerate being called from multiple goroutines
// at once; indexes within a chunk arrive in increasing order.
func For(n int, cfg Config, f func(i int)) {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.MinPerWorker < 1 {
		cfg.MinPerWorker = 1
	}
	if cfg.Workers == 1 || n < 2*cfg.MinPerWorker {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	chunk := max((n+cfg.Workers-1)/cfg.Workers, cfg.MinPerWorker)
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := start; i < end; i++ {
				f(i)
			}
		}()
	}
	wg.Wait()
}
