// Package core provides a small, thread-safe directed Graph whose arcs carry
// integer weights, used to reason about arc selections in routing problems.
//
// The Graph G = (V,A) keeps two weighted adjacency indexes:
//
//	out[from][to] = weight
//	in[to][from]  = weight
//
// so both the outgoing and the incoming weighted degree of a vertex are
// O(deg(v)) queries, without scanning the whole arc catalog.
//
// Vertices are positive integers (1-indexed node labels). A weight of zero
// is a legal arc: the arc is present but contributes nothing to a weighted
// degree. Self-loops are rejected.
//
// Core Methods:
//
//	AddVertex(id int) error                    // O(1)
//	AddArc(from, to int, weight int64) error   // O(1)
//	Weight(from, to int) (int64, error)        // O(1)
//	Degree(id int) (in, out int64, err error)  // O(deg(v))
//	Vertices() []int                           // O(V log V), ascending
//	VertexCount() int, ArcCount() int          // O(1)
//
// Errors:
//
//	ErrInvalidVertexID    - vertex ID ≤ 0.
//	ErrVertexNotFound     - requested vertex does not exist.
//	ErrArcNotFound        - requested arc does not exist.
//	ErrLoopNotAllowed     - from == to.
//	ErrMultiArcNotAllowed - a second AddArc for the same ordered pair.
//	ErrWeightOverflow     - a weighted degree does not fit in int64.
//
// Concurrency:
//
//	A single sync.RWMutex guards all state; queries take the read lock.
package core
