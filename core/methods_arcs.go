// File: methods_arcs.go
// Role: Arc lifecycle & queries: AddArc/Weight/ArcCount.

package core

// AddArc inserts the arc from→to with the given weight, creating missing
// endpoints.
//
// Steps:
//  1. Validate IDs and reject self-loops.
//  2. Lock mu, ensure both endpoints exist.
//  3. Reject a second arc for the same ordered pair.
//  4. Record the weight in both the out and in indexes.
//
// Errors:
//   - ErrInvalidVertexID, ErrLoopNotAllowed, ErrMultiArcNotAllowed.
//
// Complexity: O(1) amortized.
func (g *Graph) AddArc(from, to int, weight int64) error {
	if from <= 0 || to <= 0 {
		return ErrInvalidVertexID
	}
	if from == to {
		return ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(from)
	g.addVertexLocked(to)
	if _, exists := g.out[from][to]; exists {
		return ErrMultiArcNotAllowed
	}
	g.out[from][to] = weight
	g.in[to][from] = weight
	g.arcCount++

	return nil
}

// Weight returns the weight of from→to.
//
// Errors:
//   - ErrArcNotFound if the arc does not exist.
func (g *Graph) Weight(from, to int) (int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	w, ok := g.out[from][to]
	if !ok {
		return 0, ErrArcNotFound
	}

	return w, nil
}

// ArcCount returns |A|.
func (g *Graph) ArcCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.arcCount
}
