// Package lattice turns a normalized graph-database query pattern into an
// executable traversal plan.
//
// A query pattern arrives as a small directed multigraph (package pgraph):
// Thing and Type vertices carrying index-eligibility hints, joined by
// reified forward/backward edge pairs so either direction of a pattern
// edge is a candidate traversal step. Planning answers three questions at
// once:
//
//   - which vertices can serve as traversal roots (those reachable by an
//     index lookup rather than a full scan),
//   - which direction to walk each pattern edge so that every non-root
//     vertex is reached exactly once from some selected root, and
//   - which of several feasible root/direction combinations is cheapest,
//     using schema statistics (package schema) to cost each candidate.
//
// Root and direction selection is encoded as a 0/1 linear program (package
// milp) built over per-vertex flow-conservation constraints, solved by a
// pluggable backend (package solver; the default is a branch-and-bound
// search, no external MILP library required). The winning assignment is
// decoded back onto the pattern graph as a rooted forest and returned as a
// Plan: a root set, a topological visitation order, and the selected
// directed edges.
//
//	pattern := patternbuilder.New().
//		Thing("a", patternbuilder.WithIID("0xAB")).
//		Thing("b", patternbuilder.WithTypes("person")).
//		Chain("related", "a", "b").
//		Graph()
//
//	plan, err := planner.Plan(ctx, pattern, schemaGraph, guard)
//
// The tests of package planner run complete end-to-end scenarios.
package lattice
