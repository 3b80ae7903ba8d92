// Package paramset aggregates parameters into an ordered, dependency-aware
// parameter set.
//
// Building:
//
//	ps, _ := paramset.New(a, d, b)
//	ps.AddDependency("d", "a", param.Equals(false))  // d only when a == false
//	ps.AddDependency("b", "d", param.AnyOf("x", "y"))
//
// Mutation (in place; every alias observes it):
//
//	Add(p) / AddSet(other)   // duplicate ids are rejected
//	Subset(ids...)           // keeps named ids and surviving edges
//	AddDependency(...)       // rejects self-loops and cycles, even transitive ones
//	SetValues(a)             // re-validated; unchanged on failure
//	SetTrafo(fn)
//
// Clone() is the only way to get an independent set.
//
// Validation of an Assignment (map id → value):
//
//	Check(a) *param.Violation // nil on success
//	Test(a)  bool
//	Assert(a) error
//
// A parameter that is absent from an assignment is always legal. A present
// parameter whose gate is not met yields DependencyUnmet on that parameter.
//
// Inspection: IDs, Params, ParamRecords, DepRecords, Deps, TopologicalOrder,
// IDsWithTag, Defaults. Exports are snapshots and cannot corrupt the set.
//
// A ParamSet is not safe for concurrent mutation.
package paramset
