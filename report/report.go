// Package report renders the outcome of a solve.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"

	"q.log/tableau-simplex/simplex"
)

type Format string

const (
	Text Format = "text"
	YAML Format = "yaml"
	JSON Format = "json"
)

// ParseFormat validates an output format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case Text, YAML, JSON:
		return f, nil
	}
	return "", errors.Errorf("report: unknown format %q", s)
}

const (
	StatusOptimal    = "optimal"
	StatusUnbounded  = "unbounded"
	StatusInfeasible = "infeasible"
)

// Report is the printable outcome of a solve.
type Report struct {
	Status      string    `json:"status"`
	Value       *float64  `json:"value,omitempty"`
	Solution    []float64 `json:"solution,omitempty"`
	Certificate []float64 `json:"certificate"`
	Iterations  int       `json:"iterations,omitempty"`
}

// FromResult reports an optimal solve.
func FromResult(res *simplex.Result) *Report {
	v := res.Value
	return &Report{
		Status:      StatusOptimal,
		Value:       &v,
		Solution:    res.Solution,
		Certificate: res.Certificate,
		Iterations:  res.Iterations,
	}
}

// FromError reports an unbounded or infeasible solve. Any other error is
// returned unchanged.
func FromError(err error) (*Report, error) {
	var unbounded *simplex.UnboundedError
	if errors.As(err, &unbounded) {
		return &Report{Status: StatusUnbounded, Certificate: unbounded.Certificate}, nil
	}
	var infeasible *simplex.InfeasibleError
	if errors.As(err, &infeasible) {
		return &Report{Status: StatusInfeasible, Certificate: infeasible.Certificate}, nil
	}
	return nil, err
}

// Write renders r to w. The text layout is one item per line: status, then
// for optimal solves the value and the solution, then the certificate.
// Numbers are printed with one decimal place.
func (r *Report) Write(w io.Writer, format Format) error {
	var out []byte
	var err error
	switch format {
	case Text:
		out = []byte(r.text())
	case YAML:
		out, err = yaml.Marshal(r)
	case JSON:
		out, err = json.MarshalIndent(r, "", "  ")
		out = append(out, '\n')
	default:
		return errors.Errorf("report: unknown format %q", format)
	}
	if err != nil {
		return errors.Wrapf(err, "report: render %s", format)
	}
	_, err = w.Write(out)
	return err
}

func (r *Report) text() string {
	var b strings.Builder
	fmt.Fprintln(&b, r.Status)
	if r.Value != nil {
		fmt.Fprintln(&b, formatNumber(*r.Value))
		fmt.Fprintln(&b, FormatVector(r.Solution))
	}
	fmt.Fprintln(&b, FormatVector(r.Certificate))
	return b.String()
}

// FormatVector prints v space-separated with one decimal place.
func FormatVector(v []float64) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = formatNumber(x)
	}
	return strings.Join(parts, " ")
}

func formatNumber(x float64) string {
	s := strconv.FormatFloat(x, 'f', 1, 64)
	if s == "-0.0" {
		return "0.0"
	}
	return s
}
