// Package parallel provides chunked parallel iteration for filling large
// numeric buffers.
package parallel

import (
	"runtime"
	"sync"
)

// For splits [0, items) across the available CPUs and runs fn on each
// half-open chunk [start, end) concurrently.
func For(items int, fn func(start, end int)) {
	if items == 0 {
		return
	}

	workers := runtime.NumCPU()
	if workers > items {
		workers = items
	}
	chunk := (items + workers - 1) / workers

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		start := i * chunk
		end := start + chunk
		if end > items {
			end = items
		}
		if start >= end {
			continue
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}

// ForWithThreshold runs fn sequentially when items is at or below the
// threshold, avoiding goroutine overhead on small inputs.
func ForWithThreshold(items, threshold int, fn func(start, end int)) {
	if items <= threshold {
		fn(0, items)
		return
	}
	For(items, fn)
}
