// Package design holds tabular experiment designs and the deterministic grid
// generator.
//
// A Design is a table of raw (pre-trafo) rows, one column per parameter of the
// ParamSet it was generated from. Inactive cells hold the NotSampled marker,
// which Transpose turns into true absence:
//
//	d, _ := design.Grid(ps, 5)
//	for _, a := range d.Transpose(true) { // trafo applied, not re-validated
//		run(a)
//	}
//
// Grid enumerates the full Cartesian product of every parameter's grid points
// and does not apply dependency edges; use Design.Violations to filter.
// Random designs come from package sampler.
package design
