// Package verify decides whether a candidate solution of the
// degree-constrained multi-commodity network-flow benchmark is feasible.
//
// Checks, in pipeline order:
//
//   - Out-degree: Σ_j x[(i,j)] == Degree for every node i.
//   - In-degree:  Σ_j x[(j,i)] == Degree for every node i.
//   - Flow conservation: for commodity k and node i ≠ k,
//     Σ_{j≠i} f[(k,j,i)] − Σ_{j≠i,j≠k} f[(k,i,j)] == demand[k][i]·Scale.
//     Flow leaving i toward k is not outflow: k is the commodity's sink.
//   - Capacity: x[(i,j)] == 0 ⇒ f[(k,i,j)] == 0 for every commodity k ≠ j.
//   - Objective: max over arcs of Σ_{k≠j} f[(k,i,j)] compared to the claimed z.
//
// The first four checks are fail-fast: the first violation ends the run with
// an Invalid verdict carrying a Violation. The objective check runs only
// when they all pass and never changes the verdict; a mismatch is a warning.
// Input that cannot be parsed yields an Error verdict, which is distinct
// from Invalid.
//
// All arithmetic is exact int64 on values already scaled by Options.Scale.
// Every loop runs in ascending index order, so a given input always yields
// the same Result and the same diagnostic text.
//
// Complexity: O(n³) for flow conservation and objective reconciliation,
// O(n²·n) for capacity, O(n²) for degrees.
package verify
