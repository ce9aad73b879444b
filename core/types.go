package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidVertexID indicates a vertex ID outside the positive range.
	ErrInvalidVertexID = errors.New("core: vertex ID must be positive")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrArcNotFound indicates an operation referenced a non-existent arc.
	ErrArcNotFound = errors.New("core: arc not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiArcNotAllowed indicates a second arc for an ordered pair that already has one.
	ErrMultiArcNotAllowed = errors.New("core: parallel arcs not allowed")

	// ErrWeightOverflow indicates a weighted degree outside the int64 range.
	ErrWeightOverflow = errors.New("core: weighted degree overflows int64")
)

// Graph is a directed, weighted, simple graph over positive integer vertices.
// mu guards every field below it.
type Graph struct {
	mu sync.RWMutex

	vertices map[int]struct{}
	out      map[int]map[int]int64 // out[from][to] = weight
	in       map[int]map[int]int64 // in[to][from]  = weight
	arcCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices: make(map[int]struct{}),
		out:      make(map[int]map[int]int64),
		in:       make(map[int]map[int]int64),
	}
}
