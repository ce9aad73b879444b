// Package netcheck verifies solutions of the degree-constrained
// multi-commodity network-flow benchmark.
//
// A solution selects directed arcs (x) so that every node has exactly two
// outgoing and two incoming arcs, routes every commodity (f) through the
// selected arcs only, and claims an objective (z) equal to the largest total
// flow carried by any arc.
//
// Layout:
//
//	matrix/   dense int64 storage for the demand table
//	sparse/   default-zero arc and flow maps
//	core/     directed weighted arc graph used for degree checks
//	instance/ demand matrix parser and node-count bounds
//	solution/ solver output parser (z, x#i#j, f#k#i#j lines)
//	verify/   degree, conservation, capacity and objective checks plus the pipeline
//	report/   text and YAML rendering of a Result
//	config/   TOML file + NETCHECK_* environment settings
//	logging/  zap logger with optional lumberjack rotation
//	cmd/check_network/ the command-line checker
package netcheck
