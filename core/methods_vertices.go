// File: methods_vertices.go
// Role: Vertex lifecycle & queries: AddVertex/Vertices/VertexCount/Degree.
// Determinism:
//   - Vertices() returns IDs sorted ascending.

package core

import "slices"

// AddVertex registers id. Adding an existing vertex is a no-op.
//
// Errors:
//   - ErrInvalidVertexID: if id ≤ 0.
//
// Complexity:
//   - Time O(1) amortized.
func (g *Graph) AddVertex(id int) error {
	if id <= 0 {
		return ErrInvalidVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id)

	return nil
}

// addVertexLocked bootstraps the vertex and its adjacency buckets. Caller holds mu.
func (g *Graph) addVertexLocked(id int) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = struct{}{}
	g.out[id] = make(map[int]int64)
	g.in[id] = make(map[int]int64)
}

// Vertices returns all vertex IDs in ascending order.
//
// Complexity:
//   - Time O(V log V), Space O(V).
func (g *Graph) Vertices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]int, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// Degree returns the weighted degree components of the given vertex:
//
//   - in:  sum of weights of arcs u→id
//   - out: sum of weights of arcs id→v
//
// Errors:
//   - ErrInvalidVertexID: if id ≤ 0.
//   - ErrVertexNotFound: if the vertex does not exist.
//   - ErrWeightOverflow: if either sum leaves the int64 range.
//
// Complexity:
//   - Time O(deg(v)), Space O(1).
func (g *Graph) Degree(id int) (in, out int64, err error) {
	if id <= 0 {
		return 0, 0, ErrInvalidVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, 0, ErrVertexNotFound
	}
	if in, err = sumWeights(g.in[id]); err != nil {
		return 0, 0, err
	}
	if out, err = sumWeights(g.out[id]); err != nil {
		return 0, 0, err
	}

	return in, out, nil
}

// sumWeights adds the weights of one adjacency bucket, failing instead of
// wrapping around.
func sumWeights(bucket map[int]int64) (int64, error) {
	var total int64
	for _, w := range bucket {
		next := total + w
		if (w > 0 && next < total) || (w < 0 && next > total) {
			return 0, ErrWeightOverflow
		}
		total = next
	}

	return total, nil
}
