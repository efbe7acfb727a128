package prefetch

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"emotecache/internal/fetcher"
)

// Coordinator manages concurrent fetchers and aggregates results
type Coordinator struct {
	fetchers []fetcher.Fetcher
}

// New creates a new Coordinator with the given fetchers
func New(fetchers []fetcher.Fetcher) *Coordinator {
	return &Coordinator{
		fetchers: fetchers,
	}
}

// Run executes all fetchers concurrently and returns their results,
// sorted by key for stable reporting. Each fetcher runs in its own
// goroutine and sends its result to a shared channel. Individual fetch
// failures are carried in the results, not returned as an error: one
// unreachable provider does not abort the warm-up.
func (c *Coordinator) Run(ctx context.Context) ([]fetcher.Result, error) {
	if len(c.fetchers) == 0 {
		return nil, fmt.Errorf("no fetchers configured")
	}

	resultChan := make(chan fetcher.Result, len(c.fetchers))

	var wg sync.WaitGroup

	for _, f := range c.fetchers {
		wg.Add(1)
		go func(ft fetcher.Fetcher) {
			defer wg.Done()

			emotes, err := ft.Fetch(ctx)

			resultChan <- fetcher.Result{
				Key:    ft.Key(),
				Emotes: emotes,
				Error:  err,
			}
		}(f)
	}

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	results := make([]fetcher.Result, 0, len(c.fetchers))
	for result := range resultChan {
		results = append(results, result)
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Key < results[j].Key
	})

	return results, nil
}
