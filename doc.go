// Package paramspace describes hyperparameter search spaces and turns them
// into concrete configurations.
//
// The pieces, bottom-up:
//
//	param/       typed Parameter declarations (int, real, categorical, bool, opaque),
//	             value checks, Conditions
//	depgraph/    the acyclic dependency graph between parameters
//	paramset/    ParamSet: ordered parameters + conditional dependencies,
//	             Check/Test/Assert, values slot, Subset/Clone/Repeat, trafo
//	design/      Design tables, Transpose, deterministic Grid generation
//	sampler/     1D samplers, Joint and Hierarchical combinators, RandomDesign
//	decl/        YAML / HCL declaration files and JavaScript trafo scripts
//	cmd/paramgen command-line design generator
//
// A minimal round trip:
//
//	booster, _ := param.NewCategorical("booster", []string{"gbtree", "gblinear"})
//	depth, _ := param.NewInt("max_depth", 1, 10)
//	ps, _ := paramset.New(booster, depth)
//	_ = ps.AddDependency("max_depth", "booster", param.Equals("gbtree"))
//
//	d, _ := sampler.RandomDesign(ps, 50, sampler.WithSeed(1))
//	for _, a := range d.Transpose(true) {
//		fit(a) // max_depth is present only when booster == gbtree
//	}
//
// Absent parameters are always legal; a present parameter whose gate is unmet
// is a DependencyUnmet violation. Grid designs enumerate every combination and
// do not apply gates; see design.Grid.
package paramspace
