package capture

import (
	"fmt"
	"sort"
	"sync"

	"driftfield/internal/config"
	"driftfield/internal/field"
)

// Run runs a field headless for ticks ticks and summarises it.
func Run(name string, cfg field.Config, ticks int) Summary {
	f := field.New(cfg)
	var acc visibleStats
	for i := 0; i < ticks; i++ {
		if res := f.Tick(); res.Connected {
			acc.add(res.Visible)
		}
	}
	s := acc.summary(f)
	s.Name = name
	return s
}

// Sweep runs every named preset once per seed with at most workers runs in
// flight. Results are ordered by preset name, then by seed order, whatever
// the worker count.
func Sweep(presets []string, seeds []int64, ticks, workers int) ([]Summary, error) {
	if workers <= 0 {
		workers = 1
	}
	factories := field.Presets()
	names := append([]string(nil), presets...)
	sort.Strings(names)
	for _, name := range names {
		if _, ok := factories[name]; !ok {
			return nil, fmt.Errorf("sweep: %w %q", config.ErrUnknownPreset, name)
		}
	}

	results := make([]Summary, len(names)*len(seeds))
	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)
	for i, name := range names {
		for j, seed := range seeds {
			cfg := factories[name]()
			cfg.Seed = seed
			wg.Add(1)
			sem <- struct{}{}
			go func(slot int, name string, cfg field.Config) {
				defer wg.Done()
				results[slot] = Run(name, cfg, ticks)
				<-sem
			}(i*len(seeds)+j, name, cfg)
		}
	}
	wg.Wait()
	return results, nil
}
