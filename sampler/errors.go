// SPDX-License-Identifier: MIT
// Package: paramspace/sampler
//
// errors.go: sentinel errors for sampler construction and sampling.
// Domain errors shared with the grid generator live in package design
// (design.ErrEmptySamplingDomain) and are returned unwrapped-compatible here.

package sampler

import "errors"

var (
	// ErrNegativeSize indicates Sample(n) with n < 0.
	ErrNegativeSize = errors.New("sampler: negative sample size")

	// ErrNilParameter indicates a 1D sampler constructed over a nil parameter.
	ErrNilParameter = errors.New("sampler: nil parameter")

	// ErrNilSampler indicates a nil entry among combinator samplers.
	ErrNilSampler = errors.New("sampler: nil sampler")

	// ErrKindMismatch indicates a 1D variant bound to a parameter kind it cannot draw.
	ErrKindMismatch = errors.New("sampler: parameter kind not supported by this sampler")

	// ErrInvalidDistribution indicates meaningless distribution arguments (e.g. sd < 0).
	ErrInvalidDistribution = errors.New("sampler: invalid distribution arguments")

	// ErrNilDrawFunc indicates a custom sampler without a draw function.
	ErrNilDrawFunc = errors.New("sampler: nil draw function")

	// ErrDrawRejected indicates a custom draw that failed validation against its parameter.
	ErrDrawRejected = errors.New("sampler: drawn value rejected")

	// ErrSamplerOverlap indicates two joint samplers bound to the same parameter id.
	ErrSamplerOverlap = errors.New("sampler: samplers overlap on a parameter")

	// ErrDependentSamplers indicates a dependency edge between parameters of different joint samplers.
	ErrDependentSamplers = errors.New("sampler: joint samplers are not independent")

	// ErrMissingSampler indicates a hierarchical set parameter without a 1D sampler.
	ErrMissingSampler = errors.New("sampler: parameter has no sampler")

	// ErrSamplerMismatch indicates a 1D sampler whose parameter is not the one declared in the set.
	ErrSamplerMismatch = errors.New("sampler: sampler bound to a foreign parameter")
)
