// Package sparse provides default-zero integer maps keyed by directed arcs
// and by (commodity, arc) triples.
//
// Lookups of absent keys return 0. An explicit zero and an absent key are
// indistinguishable through Get; only Len and Keys reveal which keys were
// written. Keys returns entries in a fixed lexicographic order so callers
// that iterate produce deterministic output.
//
// The maps do no bounds checking; callers validate indices before Set.
package sparse
