// Package report renders a verify.Result for people (Text) or for batch
// tooling (YAML).
//
// Text output of an invalid solution:
//
//	INVALID: Node 3 has out-degree 1 (expected 2)
//	INVALID: Solution verification failed
//
// Text output of a valid solution with an objective mismatch:
//
//	Computed maximum flow: 3000
//	Solution objective value: 2000
//	WARNING: Computed objective (3000) doesn't match solution objective (2000)
//	VALID: Solution successfully verified
//
// Both renderers are pure functions of the Result, so the same Result
// always produces byte-identical output.
package report
