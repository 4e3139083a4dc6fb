// Package metrics keeps rolling-window statistics about deck compilation.
package metrics

import (
	"slices"
	"sync"
	"time"
)

type sample struct {
	at     time.Time
	micros int64
	slides int
}

// CompileSnapshot aggregates the compile samples of the window.
type CompileSnapshot struct {
	Count     int     `json:"count"`
	MinUs     int64   `json:"min_us"`
	MaxUs     int64   `json:"max_us"`
	AvgUs     float64 `json:"avg_us"`
	P50Us     float64 `json:"p50_us"`
	P95Us     float64 `json:"p95_us"`
	P99Us     float64 `json:"p99_us"`
	AvgSlides float64 `json:"avg_slides"`
	MaxSlides int     `json:"max_slides"`
}

// CompileStats tracks recent compile latencies within a rolling window.
// It is safe for concurrent use.
type CompileStats struct {
	mu      sync.Mutex
	samples []sample
	window  time.Duration
	now     func() time.Time
}

func NewCompileStats(window time.Duration) *CompileStats {
	if window <= 0 {
		window = time.Hour
	}
	return &CompileStats{
		samples: make([]sample, 0, 256),
		window:  window,
		now:     time.Now,
	}
}

// Record adds one compilation of a deck with the given slide count.
func (s *CompileStats) Record(d time.Duration, slides int) {
	us := d.Microseconds()
	if us < 0 {
		us = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.pruneLocked(now)
	s.samples = append(s.samples, sample{at: now, micros: us, slides: slides})
}

// Time runs fn, records its duration and returns its result.
func Time[T any](s *CompileStats, fn func() T, slides func(T) int) T {
	start := time.Now()
	v := fn()
	s.Record(time.Since(start), slides(v))
	return v
}

func (s *CompileStats) Snapshot() CompileSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pruneLocked(s.now())
	if len(s.samples) == 0 {
		return CompileSnapshot{}
	}

	values := make([]int64, 0, len(s.samples))
	var sum int64
	var slideSum, slideMax int
	for _, sm := range s.samples {
		values = append(values, sm.micros)
		sum += sm.micros
		slideSum += sm.slides
		slideMax = max(slideMax, sm.slides)
	}
	slices.Sort(values)

	n := float64(len(values))
	return CompileSnapshot{
		Count:     len(values),
		MinUs:     values[0],
		MaxUs:     values[len(values)-1],
		AvgUs:     float64(sum) / n,
		P50Us:     percentile(values, 50),
		P95Us:     percentile(values, 95),
		P99Us:     percentile(values, 99),
		AvgSlides: float64(slideSum) / n,
		MaxSlides: slideMax,
	}
}

func (s *CompileStats) pruneLocked(now time.Time) {
	cutoff := now.Add(-s.window)
	kept := s.samples[:0]
	for _, sm := range s.samples {
		if !sm.at.Before(cutoff) {
			kept = append(kept, sm)
		}
	}
	s.samples = kept
}

// percentile interpolates linearly between the closest ranks.
func percentile(sorted []int64, pct float64) float64 {
	switch {
	case len(sorted) == 0:
		return 0
	case pct <= 0:
		return float64(sorted[0])
	case pct >= 100:
		return float64(sorted[len(sorted)-1])
	}

	rank := float64(len(sorted)-1) * pct / 100
	lower := int(rank)
	if lower+1 >= len(sorted) {
		return float64(sorted[lower])
	}
	lo, hi := float64(sorted[lower]), float64(sorted[lower+1])
	return lo + (hi-lo)*(rank-float64(lower))
}
