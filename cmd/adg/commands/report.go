package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/adg/engine"
)

// ErrUnknownFormat reports a --format value other than text or yaml.
var ErrUnknownFormat = errors.New("unknown report format")

// checkFormat accepts the formats writeReport can render.
func checkFormat(format string) error {
	switch strings.ToLower(format) {
	case "yaml", "yml", "text", "":
		return nil
	}

	return fmt.Errorf("%w %q", ErrUnknownFormat, format)
}

// Report is the serialisable summary of a run.
type Report struct {
	Config     string          `yaml:"config"`
	Candidates int             `yaml:"candidates"`
	Rejected   int             `yaml:"rejected"`
	Reasons    map[string]int  `yaml:"reasons,omitempty"`
	Diagrams   []DiagramReport `yaml:"diagrams"`
}

// DiagramReport describes one diagram of a Report.
type DiagramReport struct {
	Index         int      `yaml:"index"`
	Key           string   `yaml:"key"`
	Family        string   `yaml:"family"`
	MaxRank       int      `yaml:"max_rank"`
	Excitation    int      `yaml:"excitation"`
	Symmetry      int      `yaml:"symmetry"`
	Automorphisms int      `yaml:"automorphisms"`
	Conjugate     *int     `yaml:"conjugate,omitempty"`
	Matrix        [][]int  `yaml:"matrix,flow"`
	Terms         []string `yaml:"terms"`
	Integrated    []string `yaml:"integrated,omitempty"`
}

func buildReport(res *engine.Result) Report {
	r := Report{
		Config:     res.Config.String(),
		Candidates: res.Candidates,
		Rejected:   res.Rejected,
		Reasons:    res.Reasons,
		Diagrams:   make([]DiagramReport, len(res.Diagrams)),
	}
	for i, d := range res.Diagrams {
		dr := DiagramReport{
			Index:         i,
			Key:           d.Key(),
			Family:        d.Family().String(),
			MaxRank:       d.MaxRank(),
			Excitation:    d.Excitation(),
			Symmetry:      d.SymmetryFactor(),
			Automorphisms: d.Automorphisms(),
			Matrix:        d.Graph().Matrix(),
		}
		if j, ok := d.Conjugate(); ok {
			dr.Conjugate = &j
		}
		for _, t := range d.Expression().Terms() {
			dr.Terms = append(dr.Terms, t.String())
		}
		for _, t := range d.Expression().Integrated() {
			dr.Integrated = append(dr.Integrated, t.String())
		}
		r.Diagrams[i] = dr
	}

	return r
}

func writeReport(w io.Writer, format string, r Report) error {
	switch strings.ToLower(format) {
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		return enc.Close()
	case "text", "":
		return writeText(w, r)
	}

	return checkFormat(format)
}

func writeText(w io.Writer, r Report) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d diagrams (%d candidates, %d rejected)\n", r.Config, len(r.Diagrams), r.Candidates, r.Rejected)
	for _, d := range r.Diagrams {
		fmt.Fprintf(&b, "\nDiagram %d  %s\n", d.Index+1, d.Key)
		fmt.Fprintf(&b, "  family %s, max rank %d, excitation %d, symmetry %d",
			d.Family, d.MaxRank, d.Excitation, d.Symmetry)
		if d.Conjugate != nil {
			fmt.Fprintf(&b, ", conjugate %d", *d.Conjugate+1)
		}
		b.WriteByte('\n')
		fmt.Fprintf(&b, "  matrix %v\n", d.Matrix)
		for _, t := range d.Terms {
			fmt.Fprintf(&b, "  %s\n", t)
		}
		for _, t := range d.Integrated {
			fmt.Fprintf(&b, "  = %s\n", t)
		}
	}
	_, err := io.WriteString(w, b.String())

	return err
}
