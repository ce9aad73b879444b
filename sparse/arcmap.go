package sparse

import (
	"cmp"
	"slices"
)

// Arc is an ordered node pair (From, To).
type Arc struct {
	From, To int
}

// compareArc orders arcs by From, then To.
func compareArc(a, b Arc) int {
	if c := cmp.Compare(a.From, b.From); c != 0 {
		return c
	}

	return cmp.Compare(a.To, b.To)
}

// ArcMap maps arcs to int64 values with an implicit zero default.
// The zero value is not usable; call NewArcMap.
type ArcMap struct {
	m map[Arc]int64
}

// NewArcMap returns an empty ArcMap.
func NewArcMap() *ArcMap {
	return &ArcMap{m: make(map[Arc]int64)}
}

// Get returns the value stored for (from, to), or 0 if absent.
func (a *ArcMap) Get(from, to int) int64 {
	return a.m[Arc{From: from, To: to}]
}

// Set stores v for (from, to), overwriting any earlier value.
func (a *ArcMap) Set(from, to int, v int64) {
	a.m[Arc{From: from, To: to}] = v
}

// Len returns the number of keys ever written.
func (a *ArcMap) Len() int { return len(a.m) }

// Keys returns all written arcs ordered by (From, To).
func (a *ArcMap) Keys() []Arc {
	keys := make([]Arc, 0, len(a.m))
	for k := range a.m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, compareArc)

	return keys
}
