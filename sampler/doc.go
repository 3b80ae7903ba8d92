// Package sampler draws random Designs from parameters and parameter sets.
//
// The family is closed:
//
//	NewUniform1D / NewCategorical1D / NewTruncNormal1D / NewCustom1D   // one Parameter
//	NewJoint(ctx, samplers...)             // independent members, column union
//	NewHierarchical(ps, samplers, opts...) // dependency-aware, one 1D sampler per parameter
//
// NewUniform and RandomDesign wrap the common case: a Hierarchical sampler
// with uniform draws for every parameter.
//
//	d, err := sampler.RandomDesign(ps, 100, sampler.WithSeed(42))
//	for _, a := range d.Transpose(true) { ... }
//
// Parameters whose gate is unmet in a row are left design.NotSampled and
// are absent after Transpose. Every row of a sampler Design passes
// ps.Check before the trafo is applied; a draw failing a parameter's custom
// check fails the whole Sample with ErrDrawRejected.
//
// Samplers are safe for concurrent use; draws are serialized on the
// sampler's RNG. Use WithSeed for reproducible designs.
package sampler
