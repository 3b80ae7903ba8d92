// Package param declares single typed parameters and the conditions that gate
// one parameter on another's value.
//
// A Parameter is one of five kinds:
//
//	Integer      – whole numbers on [lower, upper]          NewInt
//	Real         – floating-point numbers on [lower, upper] NewReal
//	Categorical  – one of an ordered set of string levels   NewCategorical
//	Boolean      – true / false                             NewBool
//	Opaque       – anything, validated by a CheckFunc       NewOpaque
//
// Every parameter may carry a default, a set of special values accepted
// unconditionally, tags for grouping, and a custom check that further
// restricts legal values.
//
// Validation:
//
//	CheckValue(v) *Violation   // nil on success, data otherwise
//	Test(v)       bool
//	Assert(v)     error        // wraps the Violation
//
// A *Violation unwraps to one of ErrTypeViolation, ErrBoundsViolation,
// ErrLevelViolation, ErrCustomCheckFailure (and, for sets, ErrDependencyUnmet,
// ErrUnknownParameterID), so callers can use errors.Is.
//
// Conditions:
//
//	Equals(v)      // dependee == v
//	AnyOf(vs...)   // dependee ∈ vs
//
// Parameters are immutable after construction; use WithID to derive a renamed copy.
package param
