package bitgrain

import (
	"runtime"
	"sync"
)

// parallelThreshold is the minimum number of blocks in a plane before the
// façades bother spinning up a worker pool; below it the per-call
// goroutine overhead would dwarf the work being parallelized.
const parallelThreshold = 64

// forEachBlockIndex calls fn(i) for every i in [0, n) using up to
// runtime.GOMAXPROCS(0) workers when n is large enough to be worth it,
// otherwise sequentially on the calling goroutine. fn must be safe to call
// concurrently with disjoint i; forEachBlockIndex itself is a barrier and
// does not return until every call has completed.
//
// Per-block transform and quantization work is embarrassingly parallel;
// this helper is deliberately call-scoped rather than a shared pool object,
// since the package keeps no global state between calls.
func forEachBlockIndex(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	workers := runtime.GOMAXPROCS(0)
	if n < parallelThreshold || workers <= 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunk := (n + workers - 1) / workers
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if start >= n {
			break
		}
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				fn(i)
			}
		}(start, end)
	}
	wg.Wait()
}
