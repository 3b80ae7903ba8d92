// Package decl loads parameter sets from YAML or HCL declaration files.
//
//	ps, err := decl.Load("space.yaml") // or .yml / .hcl
//
// A declaration lists parameters, dependency gates and an optional
// JavaScript trafo. Declarations are validated structurally before any
// parameter is built; Build then applies the same construction rules as the
// programmatic API (bounds, levels, defaults, acyclic dependencies).
//
// Opaque parameters declared in files accept any value: custom checks have
// no file representation.
package decl
