package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/netcheck/verify"
)

// Format selects a renderer.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("report: unknown format")

// ParseFormat maps a case-insensitive name to a Format. "" means text.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatText:
		return FormatText, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q (want %q or %q)", ErrUnknownFormat, s, FormatText, FormatYAML)
	}
}

// Write renders res to w in format f.
func Write(w io.Writer, res verify.Result, f Format) error {
	switch f {
	case FormatYAML:
		return YAML(w, res)
	case FormatText, "":
		return Text(w, res)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// Text writes the line-oriented human report.
func Text(w io.Writer, res verify.Result) error {
	var lines []string
	switch res.Verdict {
	case verify.Valid:
		if obj := res.Objective; obj != nil {
			lines = append(lines,
				fmt.Sprintf("Computed maximum flow: %d", obj.Implied),
				fmt.Sprintf("Solution objective value: %d", obj.Claimed),
			)
			if obj.Mismatch() {
				lines = append(lines, "WARNING: "+obj.Warning())
			}
		}
		lines = append(lines, "VALID: Solution successfully verified")
	case verify.Invalid:
		if v := res.Violation; v != nil {
			lines = append(lines, "INVALID: "+v.String())
			for _, d := range v.Details() {
				lines = append(lines, "  "+d)
			}
		}
		lines = append(lines, "INVALID: Solution verification failed")
	default:
		lines = append(lines, "ERROR: "+errorText(res.Err))
	}

	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}

// document is the YAML shape of a Result.
type document struct {
	Verdict   string             `yaml:"verdict"`
	Violation *violationDocument `yaml:"violation,omitempty"`
	Objective *objectiveDocument `yaml:"objective,omitempty"`
	Error     string             `yaml:"error,omitempty"`
}

type violationDocument struct {
	Kind    string           `yaml:"kind"`
	Message string           `yaml:"message"`
	Details []string         `yaml:"details,omitempty"`
	Data    verify.Violation `yaml:"data"`
}

type objectiveDocument struct {
	verify.Objective `yaml:",inline"`
	Mismatch         bool   `yaml:"mismatch"`
	Warning          string `yaml:"warning,omitempty"`
}

// YAML writes a machine-readable report.
func YAML(w io.Writer, res verify.Result) error {
	doc := document{Verdict: res.Verdict.String()}
	if v := res.Violation; v != nil {
		doc.Violation = &violationDocument{
			Kind:    string(v.Kind()),
			Message: v.String(),
			Details: v.Details(),
			Data:    v,
		}
	}
	if obj := res.Objective; obj != nil {
		doc.Objective = &objectiveDocument{Objective: *obj, Mismatch: obj.Mismatch(), Warning: obj.Warning()}
	}
	if res.Verdict == verify.Error {
		doc.Error = errorText(res.Err)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("report: encode yaml: %w", err)
	}

	return enc.Close()
}

func errorText(err error) string {
	if err == nil {
		return "unknown error"
	}

	return err.Error()
}
