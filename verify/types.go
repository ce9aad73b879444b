package verify

import (
	"errors"
	"fmt"
)

// ErrShape reports an instance/solution pair whose dimensions disagree.
var ErrShape = errors.New("verify: instance and solution dimensions disagree")

// Verdict is the overall outcome of a run.
type Verdict int

const (
	// Valid: every structural and flow check passed.
	Valid Verdict = iota
	// Invalid: a well-formed solution violates a constraint.
	Invalid
	// Error: the input could not be evaluated at all.
	Error
)

func (v Verdict) String() string {
	switch v {
	case Valid:
		return "VALID"
	case Invalid:
		return "INVALID"
	case Error:
		return "ERROR"
	default:
		return fmt.Sprintf("Verdict(%d)", int(v))
	}
}

// Kind classifies a Violation.
type Kind string

const (
	KindDegree       Kind = "degree"
	KindConservation Kind = "flow"
	KindCapacity     Kind = "capacity"
)

// Direction of a degree check.
type Direction string

const (
	Out Direction = "out"
	In  Direction = "in"
)

// Violation is a failed constraint. String is the one-line headline;
// Details holds continuation lines (possibly none).
type Violation interface {
	Kind() Kind
	String() string
	Details() []string
}

// DegreeViolation: node Node has weighted Direction-degree Observed ≠ Expected.
type DegreeViolation struct {
	Node      int       `yaml:"node"`
	Direction Direction `yaml:"direction"`
	Observed  int64     `yaml:"observed"`
	Expected  int64     `yaml:"expected"`
}

func (v DegreeViolation) Kind() Kind { return KindDegree }

func (v DegreeViolation) String() string {
	return fmt.Sprintf("Node %d has %s-degree %d (expected %d)", v.Node, v.Direction, v.Observed, v.Expected)
}

func (v DegreeViolation) Details() []string { return nil }

// ConservationViolation: commodity Commodity is unbalanced at node Node.
type ConservationViolation struct {
	Commodity int   `yaml:"commodity"`
	Node      int   `yaml:"node"`
	FlowIn    int64 `yaml:"flow_in"`
	FlowOut   int64 `yaml:"flow_out"`
	Net       int64 `yaml:"net"`
	Expected  int64 `yaml:"expected"`
}

func (v ConservationViolation) Kind() Kind { return KindConservation }

func (v ConservationViolation) String() string {
	return fmt.Sprintf("Flow conservation violated for commodity %d at node %d", v.Commodity, v.Node)
}

func (v ConservationViolation) Details() []string {
	return []string{fmt.Sprintf("Flow in: %d, Flow out: %d, Net: %d, Expected: %d", v.FlowIn, v.FlowOut, v.Net, v.Expected)}
}

// CapacityViolation: commodity Commodity carries Flow on the unselected arc From→To.
type CapacityViolation struct {
	Commodity int   `yaml:"commodity"`
	From      int   `yaml:"from"`
	To        int   `yaml:"to"`
	Flow      int64 `yaml:"flow"`
}

func (v CapacityViolation) Kind() Kind { return KindCapacity }

func (v CapacityViolation) String() string {
	return fmt.Sprintf("Flow %d on non-existent edge (%d, %d)", v.Flow, v.From, v.To)
}

func (v CapacityViolation) Details() []string {
	return []string{fmt.Sprintf("Commodity: %d", v.Commodity)}
}

// Objective is the informational comparison between the implied objective
// (largest total flow on a single arc) and the solver's claim.
type Objective struct {
	Implied int64 `yaml:"implied"`
	Claimed int64 `yaml:"claimed"`
	// Arc carrying Implied; zero when no arc carries flow.
	From int `yaml:"from,omitempty"`
	To   int `yaml:"to,omitempty"`
}

// Mismatch reports whether the claim differs from the implied value.
func (o Objective) Mismatch() bool { return o.Implied != o.Claimed }

// Warning returns the mismatch warning, or "" when the values agree.
func (o Objective) Warning() string {
	if !o.Mismatch() {
		return ""
	}

	return fmt.Sprintf("Computed objective (%d) doesn't match solution objective (%d)", o.Implied, o.Claimed)
}

// Result is the outcome of one run.
//   - Valid:   Objective set, Violation nil.
//   - Invalid: Violation set, Objective nil (checking stopped early).
//   - Error:   Err set.
type Result struct {
	Verdict   Verdict
	Violation Violation
	Objective *Objective
	Err       error
}

// Failed wraps an error as an Error verdict.
func Failed(err error) Result {
	return Result{Verdict: Error, Err: err}
}
