package solution

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/netcheck/instance"
)

const (
	commentPrefix = "#"
	varSep        = "#"
	objectiveName = "z"
	arcPrefix     = "x" + varSep
	flowPrefix    = "f" + varSep

	maxLineBytes = 1 << 20
)

// lineKind is the result of classifying one trimmed line.
type lineKind int

const (
	lineSkip lineKind = iota
	lineObjective
	lineArc
	lineFlow
)

// classify inspects the discriminating prefix of a trimmed line. It does
// not validate the rest of the line; extractors do that.
func classify(line string) lineKind {
	switch {
	case line == "" || strings.HasPrefix(line, commentPrefix):
		return lineSkip
	case strings.HasPrefix(line, objectiveName):
		return lineObjective
	case strings.HasPrefix(line, arcPrefix):
		return lineArc
	case strings.HasPrefix(line, flowPrefix):
		return lineFlow
	default:
		return lineSkip
	}
}

// stats counts what a parse consumed, for debug logging.
type stats struct {
	objectives, arcs, flows, ignored int
}

// Parse reads a solution for an instance of n nodes from r.
//
// Errors:
//   - *IndexError (errors.Is ErrIndex) for a directive with out-of-range indices.
//   - ErrValue (wrapped) for a value above instance.MaxValue.
//   - *instance.IOError if r fails mid-read.
func Parse(r io.Reader, n int, opts ...Option) (*Solution, error) {
	o := gatherOptions(opts...)
	sol := New(n)
	var st stats

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())

		var (
			matched bool
			err     error
		)
		switch classify(line) {
		case lineSkip:
			continue
		case lineObjective:
			matched, err = sol.parseObjective(line)
			if matched {
				st.objectives++
			}
		case lineArc:
			matched, err = sol.parseArc(line)
			if matched {
				st.arcs++
			}
		case lineFlow:
			matched, err = sol.parseFlow(line)
			if matched {
				st.flows++
			}
		}
		if err != nil {
			return nil, err
		}
		if !matched {
			st.ignored++
			o.logger.Debug("ignoring unrecognized solution line", zap.String("line", line))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, &instance.IOError{Err: err}
	}

	o.logger.Debug("solution parsed",
		zap.Int("n", n),
		zap.Int("objectives", st.objectives),
		zap.Int("arcs", st.arcs),
		zap.Int("flows", st.flows),
		zap.Int("ignored", st.ignored),
		zap.Int("x_entries", sol.X.Len()),
		zap.Int("f_entries", sol.F.Len()),
	)

	return sol, nil
}

// parseObjective handles "z <int>".
func (s *Solution) parseObjective(line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 || fields[0] != objectiveName || !isDigits(fields[1]) {
		return false, nil
	}
	v, err := parseValue(objectiveName, fields[1])
	if err != nil {
		return true, err
	}
	s.Z = v

	return true, nil
}

// parseArc handles "x#<i>#<j> <int>".
func (s *Solution) parseArc(line string) (bool, error) {
	name, idx, raw, ok := splitDirective(line, arcPrefix, 2)
	if !ok {
		return false, nil
	}
	i, j := idx[0], idx[1]
	if !inRange(i, s.N) || !inRange(j, s.N) || i == j {
		return true, &IndexError{Var: name, N: s.N}
	}
	v, err := parseValue(name, raw)
	if err != nil {
		return true, err
	}
	s.X.Set(i, j, v)

	return true, nil
}

// parseFlow handles "f#<k>#<i>#<j> <int>".
func (s *Solution) parseFlow(line string) (bool, error) {
	name, idx, raw, ok := splitDirective(line, flowPrefix, 3)
	if !ok {
		return false, nil
	}
	k, i, j := idx[0], idx[1], idx[2]
	if !inRange(k, s.N) || !inRange(i, s.N) || !inRange(j, s.N) || i == j {
		return true, &IndexError{Var: name, N: s.N}
	}
	v, err := parseValue(name, raw)
	if err != nil {
		return true, err
	}
	s.F.Set(k, i, j, v)

	return true, nil
}

// splitDirective matches "<prefix><d>#<d>... <d>" with exactly arity
// indices. Indices too large for an int are mapped to -1 so the caller's
// range check reports them.
func splitDirective(line, prefix string, arity int) (name string, idx []int, value string, ok bool) {
	fields := strings.Fields(line)
	if len(fields) != 2 || !isDigits(fields[1]) {
		return "", nil, "", false
	}
	name = fields[0]
	parts := strings.Split(strings.TrimPrefix(name, prefix), varSep)
	if len(parts) != arity {
		return "", nil, "", false
	}

	idx = make([]int, arity)
	for p, part := range parts {
		if !isDigits(part) {
			return "", nil, "", false
		}
		v, err := strconv.Atoi(part)
		if err != nil {
			v = -1
		}
		idx[p] = v
	}

	return name, idx, fields[1], true
}

func parseValue(name, raw string) (int64, error) {
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v > instance.MaxValue {
		return 0, fmt.Errorf("%w: %s = %s (max %d)", ErrValue, name, raw, instance.MaxValue)
	}

	return v, nil
}

func inRange(v, n int) bool { return v >= 1 && v <= n }

// isDigits reports whether s is a non-empty run of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
