// SPDX-License-Identifier: MIT
// Package: paramspace/sampler
//
// sampler.go: the Sampler contract and the 1D variants.
//
// Contract:
//   • Sample(n) requires n ≥ 0; n == 0 yields an empty Design.
//   • A sampler is bound at construction to one Parameter (1D) or one
//     ParamSet (combinators) and holds a snapshot of it.
//   • The family is closed: Uniform, Categorical, TruncNormal, Custom,
//     Joint and Hierarchical are the only implementations.
//   • A constructed sampler is safe for concurrent Sample calls.
//   • Draws are checked against the parameter whenever it carries a custom
//     check, so a Sample either succeeds with legal values or fails.

package sampler

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/paramspace/design"
	"github.com/katalvlaran/paramspace/param"
	"github.com/katalvlaran/paramspace/paramset"
)

// Sampler produces random Designs over a bound ParamSet.
type Sampler interface {
	// Sample draws n rows.
	Sample(n int) (*design.Design, error)
	// ParamSet returns the set the produced Designs are bound to.
	ParamSet() *paramset.ParamSet

	sealed()
}

// Sampler1D is a Sampler bound to a single Parameter.
type Sampler1D interface {
	Sampler
	// Param returns the bound parameter.
	Param() *param.Parameter
	// Draw produces one value.
	Draw() (any, error)
}

// oneDim implements every 1D variant; variants differ only in their drawFn.
type oneDim struct {
	name  string
	p     *param.Parameter
	ps    *paramset.ParamSet
	draw  drawFn
	check bool // validate each draw against p; set when p carries a custom check
	cfg   config
}

var _ Sampler1D = (*oneDim)(nil)

func newOneDim(name string, p *param.Parameter, cfg config, fn func(config) (drawFn, error)) (*oneDim, error) {
	if p == nil {
		return nil, fmt.Errorf("%s: %w", name, ErrNilParameter)
	}
	draw, err := fn(cfg)
	if err != nil {
		return nil, err
	}
	ps, err := paramset.New(p)
	if err != nil {
		return nil, fmt.Errorf("%s(%s): %w", name, p.ID(), err)
	}

	return &oneDim{name: name, p: p, ps: ps, draw: draw, check: p.HasCustomCheck(), cfg: cfg}, nil
}

// NewUniform1D samples uniformly from a bounded parameter's domain.
// A draw failing p's custom check fails with ErrDrawRejected; it is not retried.
// Errors: ErrNilParameter, design.ErrEmptySamplingDomain.
func NewUniform1D(p *param.Parameter, opts ...Option) (Sampler1D, error) {
	return as1D(newUniform1D(p, newConfig(opts...)))
}

func newUniform1D(p *param.Parameter, cfg config) (*oneDim, error) {
	return newOneDim("Uniform1D", p, cfg, func(config) (drawFn, error) { return uniformFn(p) })
}

// NewCategorical1D samples uniformly from a Categorical or Boolean parameter's levels.
// Errors: ErrNilParameter, ErrKindMismatch.
func NewCategorical1D(p *param.Parameter, opts ...Option) (Sampler1D, error) {
	return as1D(newOneDim("Categorical1D", p, newConfig(opts...), func(config) (drawFn, error) { return levelsFn(p) }))
}

// NewTruncNormal1D samples N(mean, sd) truncated to a bounded numeric
// parameter's range. Pass math.NaN() for mean or sd to use the midpoint and
// a quarter of the range respectively.
// Errors: ErrNilParameter, ErrKindMismatch, design.ErrEmptySamplingDomain,
// ErrInvalidDistribution.
func NewTruncNormal1D(p *param.Parameter, mean, sd float64, opts ...Option) (Sampler1D, error) {
	return as1D(newOneDim("TruncNormal1D", p, newConfig(opts...), func(cfg config) (drawFn, error) {
		return truncNormalFn(p, mean, sd, cfg.maxRetries, func(x float64) {
			cfg.logger.Debug("truncated normal draw clipped", "param", p.ID(), "value", x)
		})
	}))
}

// NewCustom1D samples with fn. Every value fn returns is validated against p;
// an invalid value fails the draw with ErrDrawRejected. Custom is the only
// variant that can sample Opaque or unbounded parameters.
// Errors: ErrNilParameter, ErrNilDrawFunc.
func NewCustom1D(p *param.Parameter, fn func(r *rand.Rand) any, opts ...Option) (Sampler1D, error) {
	s, err := newOneDim("Custom1D", p, newConfig(opts...), func(config) (drawFn, error) {
		if fn == nil {
			return nil, fmt.Errorf("Custom1D(%s): %w", p.ID(), ErrNilDrawFunc)
		}
		return fn, nil
	})
	if err != nil {
		return nil, err
	}
	s.check = true

	return s, nil
}

// as1D avoids handing out a typed-nil interface on error.
func as1D(s *oneDim, err error) (Sampler1D, error) {
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (s *oneDim) sealed() {}

// Param returns the bound parameter.
func (s *oneDim) Param() *param.Parameter { return s.p }

// ParamSet returns the single-parameter set produced Designs are bound to.
func (s *oneDim) ParamSet() *paramset.ParamSet { return s.ps }

// Draw produces one value.
func (s *oneDim) Draw() (any, error) {
	var v any
	s.cfg.rng.do(func(r *rand.Rand) { v = s.draw(r) })
	if s.check {
		if viol := s.p.CheckValue(v); viol != nil {
			return nil, fmt.Errorf("%s: %w: %w", s.name, ErrDrawRejected, viol)
		}
	}

	return v, nil
}

// Sample draws n values into a one-column Design.
func (s *oneDim) Sample(n int) (*design.Design, error) {
	if n < 0 {
		return nil, fmt.Errorf("%s.Sample(%d): %w", s.name, n, ErrNegativeSize)
	}
	rows := make([][]any, n)
	for i := range rows {
		v, err := s.Draw()
		if err != nil {
			return nil, err
		}
		rows[i] = []any{v}
	}
	s.cfg.logger.Debug("sampled", "sampler", s.name, "param", s.p.ID(), "rows", n)

	return design.New(s.ps, rows)
}
