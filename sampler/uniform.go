// SPDX-License-Identifier: MIT
// Package: paramspace/sampler
//
// uniform.go: one-call random designs over a whole ParamSet.

package sampler

import (
	"fmt"

	"github.com/katalvlaran/paramspace/design"
	"github.com/katalvlaran/paramspace/paramset"
)

// NewUniform builds a Hierarchical sampler with a Uniform1D sampler for
// every parameter of ps. All members share one RNG, so WithSeed makes the
// whole design reproducible.
// Errors: design.ErrNilParamSet, design.ErrEmptySamplingDomain.
func NewUniform(ps *paramset.ParamSet, opts ...Option) (*Hierarchical, error) {
	if ps == nil {
		return nil, design.ErrNilParamSet
	}
	cfg := newConfig(opts...)
	params := ps.Params()
	samplers := make([]Sampler1D, len(params))
	for i, p := range params {
		s, err := newUniform1D(p, cfg)
		if err != nil {
			return nil, fmt.Errorf("NewUniform: %w", err)
		}
		samplers[i] = s
	}

	return newHierarchical(ps, samplers, cfg)
}

// RandomDesign draws n dependency-respecting uniform rows from ps.
func RandomDesign(ps *paramset.ParamSet, n int, opts ...Option) (*design.Design, error) {
	s, err := NewUniform(ps, opts...)
	if err != nil {
		return nil, err
	}

	return s.Sample(n)
}
