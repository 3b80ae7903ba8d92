// Package depgraph stores the conditional-dependency graph of a parameter set.
//
// Vertices are parameter ids; a directed edge dependee→depender carries the
// param.Condition that the dependee's value must satisfy for the depender to
// be active. The graph is acyclic by construction:
//
//	AddEdge(dependee, depender, cond)  // rejects self-loops and any edge that
//	                                   // would close a cycle, even transitively
//
// Queries:
//
//	Vertices()        // insertion order
//	Edges()           // snapshot copies; editing them never touches the graph
//	EdgesInto(id)     // the gates of id
//	Parents(id)       // distinct dependees of id
//	TopologicalSort() // dependees first, insertion order as tie-break
//	Reachable(a, b)
//
// Cloning:
//
//	Clone()           // deep copy of vertices and edges
//
// The graph is not synchronized; it is owned by exactly one ParamSet.
package depgraph
