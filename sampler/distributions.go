// SPDX-License-Identifier: MIT
// Package: paramspace/sampler
//
// distributions.go: value generators over a parameter's domain.
//
// A drawFn produces one raw value from an RNG. Factories validate their
// arguments up front and return an error; the returned generator never fails.
//
// Determinism:
//   • Every generator consumes the RNG in a fixed pattern, so a seeded source
//     reproduces the same stream of values.

package sampler

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/paramspace/design"
	"github.com/katalvlaran/paramspace/param"
)

// drawFn produces one value for a bound parameter.
type drawFn func(r *rand.Rand) any

// uniformFn draws uniformly from p's domain: [lower, upper] for Real,
// {lower..upper} for Integer, the level set for Categorical/Boolean.
func uniformFn(p *param.Parameter) (drawFn, error) {
	if !p.IsBounded() {
		return nil, fmt.Errorf("uniform(%s): %s domain: %w", p.ID(), p.Kind(), design.ErrEmptySamplingDomain)
	}
	switch p.Kind() {
	case param.Real:
		lo, hi := p.Lower(), p.Upper()
		return func(r *rand.Rand) any {
			if lo == hi {
				return lo
			}
			return lerp(lo, hi, r.Float64())
		}, nil
	case param.Integer:
		lo, n := int64(p.Lower()), int64(p.Upper())-int64(p.Lower())+1
		return func(r *rand.Rand) any {
			return int(lo + r.Int63n(n))
		}, nil
	default:
		return levelsFn(p)
	}
}

// levelsFn draws uniformly from the categorical domain of p.
func levelsFn(p *param.Parameter) (drawFn, error) {
	if !p.IsCategorical() {
		return nil, fmt.Errorf("categorical(%s): %s: %w", p.ID(), p.Kind(), ErrKindMismatch)
	}
	levels := p.DomainValues()
	if len(levels) == 0 {
		return nil, fmt.Errorf("categorical(%s): %w", p.ID(), design.ErrEmptySamplingDomain)
	}
	return func(r *rand.Rand) any {
		return levels[r.Intn(len(levels))]
	}, nil
}

// truncNormalFn draws from N(mean, sd) restricted to [lower, upper] by
// rejection; after maxRetries misses the last draw is clipped into range.
// NaN mean defaults to the midpoint, NaN sd to a quarter of the range.
// Integer parameters get the rounded value. onClip is called on every clip.
func truncNormalFn(p *param.Parameter, mean, sd float64, maxRetries int, onClip func(x float64)) (drawFn, error) {
	if !p.IsNumeric() {
		return nil, fmt.Errorf("truncnormal(%s): %s: %w", p.ID(), p.Kind(), ErrKindMismatch)
	}
	if !p.IsBounded() {
		return nil, fmt.Errorf("truncnormal(%s): unbounded: %w", p.ID(), design.ErrEmptySamplingDomain)
	}
	lo, hi := p.Lower(), p.Upper()
	if math.IsNaN(mean) {
		mean = lo/2 + hi/2
	}
	if math.IsNaN(sd) {
		sd = hi/4 - lo/4
	}
	if sd < 0 || math.IsInf(sd, 0) || math.IsInf(mean, 0) {
		return nil, fmt.Errorf("truncnormal(%s): mean=%g sd=%g: %w", p.ID(), mean, sd, ErrInvalidDistribution)
	}
	integer := p.Kind() == param.Integer

	return func(r *rand.Rand) any {
		x := mean
		accepted := sd == 0 && x >= lo && x <= hi
		for i := 0; i < maxRetries && !accepted && sd > 0; i++ {
			x = mean + sd*r.NormFloat64()
			accepted = x >= lo && x <= hi
		}
		if !accepted {
			x = math.Min(math.Max(x, lo), hi)
			if onClip != nil {
				onClip(x)
			}
		}
		if integer {
			return int(math.Round(x))
		}
		return x
	}, nil
}

// lerp maps u ∈ [0, 1] onto [lo, hi] without forming hi-lo, so bounds near
// ±MaxFloat64 stay finite. The result is clamped to [lo, hi].
func lerp(lo, hi, u float64) float64 {
	x := lo*(1-u) + hi*u
	return math.Min(math.Max(x, lo), hi)
}
