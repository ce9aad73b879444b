package sparse

import (
	"cmp"
	"slices"
)

// CommodityArc identifies the flow of one commodity on one arc.
type CommodityArc struct {
	Commodity int
	From, To  int
}

// compareCommodityArc orders keys by Commodity, then From, then To.
func compareCommodityArc(a, b CommodityArc) int {
	if c := cmp.Compare(a.Commodity, b.Commodity); c != 0 {
		return c
	}
	if c := cmp.Compare(a.From, b.From); c != 0 {
		return c
	}

	return cmp.Compare(a.To, b.To)
}

// FlowMap maps (commodity, arc) triples to int64 values with an implicit
// zero default. The zero value is not usable; call NewFlowMap.
type FlowMap struct {
	m map[CommodityArc]int64
}

// NewFlowMap returns an empty FlowMap.
func NewFlowMap() *FlowMap {
	return &FlowMap{m: make(map[CommodityArc]int64)}
}

// Get returns the flow of commodity k on (from, to), or 0 if absent.
func (f *FlowMap) Get(k, from, to int) int64 {
	return f.m[CommodityArc{Commodity: k, From: from, To: to}]
}

// Set stores v for commodity k on (from, to), overwriting any earlier value.
func (f *FlowMap) Set(k, from, to int, v int64) {
	f.m[CommodityArc{Commodity: k, From: from, To: to}] = v
}

// Len returns the number of keys ever written.
func (f *FlowMap) Len() int { return len(f.m) }

// Keys returns all written keys ordered by (Commodity, From, To).
func (f *FlowMap) Keys() []CommodityArc {
	keys := make([]CommodityArc, 0, len(f.m))
	for k := range f.m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, compareCommodityArc)

	return keys
}
