// SPDX-License-Identifier: MIT
// Package: paramspace/sampler
//
// options.go: functional options and the resolved sampler configuration.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs;
//     samplers themselves never panic.
//   • Determinism is explicit: WithSeed or WithRand. Without either, a
//     time-seeded source is used and repeated calls are independent draws.
//   • Every sampler built from one option list shares one locked RNG, so
//     composite samplers (NewUniform) draw from a single stream.

package sampler

import (
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"
)

// Option customizes sampler construction.
type Option func(*config)

const defaultMaxRetries = 100 // truncated-normal rejection attempts before clipping

type config struct {
	rng        *lockedRand
	logger     *slog.Logger
	maxRetries int
}

// WithSeed draws from a new source seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = newLockedRand(rand.New(rand.NewSource(seed)))
	}
}

// WithRand draws from r. r is owned by the sampler from then on; it is
// locked on every draw but must not be used elsewhere concurrently.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("sampler: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = newLockedRand(r)
	}
}

// WithLogger sends Debug events (rows drawn, rows gated out, clipped draws) to l.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("sampler: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// WithMaxRetries bounds truncated-normal rejection sampling; after n misses
// the draw is clipped into bounds. Panics if n < 1.
func WithMaxRetries(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("sampler: WithMaxRetries(%d)", n))
	}
	return func(c *config) {
		c.maxRetries = n
	}
}

// newConfig applies opts in order (last wins) over the defaults.
func newConfig(opts ...Option) config {
	cfg := config{maxRetries: defaultMaxRetries}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = newLockedRand(rand.New(rand.NewSource(time.Now().UnixNano())))
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.DiscardHandler)
	}

	return cfg
}

// lockedRand serializes access to a *rand.Rand, which is not goroutine-safe.
type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func newLockedRand(r *rand.Rand) *lockedRand { return &lockedRand{r: r} }

// do runs fn with exclusive access to the source.
func (l *lockedRand) do(fn func(r *rand.Rand)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(l.r)
}
