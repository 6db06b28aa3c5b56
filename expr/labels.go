package expr

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/adg/diagram"
)

const (
	holeLetters     = "abcdefghijklmno"
	particleLetters = "pqrstuvwxy"
)

// Labels names every line of d by index: holes a, b, c, … and particles p, q,
// r, … in line order, or k1, k2, … for quasi-particle lines. Letters wrap with
// a numeric suffix once exhausted.
func Labels(d *diagram.Diagram) []string {
	labels := make([]string, d.NumLines())
	holes, particles := 0, 0
	for i, l := range d.Lines() {
		switch l.Role {
		case diagram.QuasiParticle:
			labels[i] = fmt.Sprintf("k%d", i+1)
		case diagram.Hole:
			labels[i] = letter(holeLetters, holes)
			holes++
		default:
			labels[i] = letter(particleLetters, particles)
			particles++
		}
	}

	return labels
}

func letter(set string, n int) string {
	if n < len(set) {
		return set[n : n+1]
	}

	return fmt.Sprintf("%c%d", set[n%len(set)], n/len(set))
}

// MatrixElements renders one factor per vertex: <out|H|in> for time-ordered
// particle/hole diagrams, Kind^{out in}_{labels} for quasi-particle diagrams.
func MatrixElements(d *diagram.Diagram, labels []string) []string {
	out := make([]string, d.Order())
	for v := 0; v < d.Order(); v++ {
		outs := pick(labels, d.OutLines(v))
		ins := pick(labels, d.InLines(v))
		if d.QuasiParticles() {
			out[v] = fmt.Sprintf("%s^{%d%d}_{%s}", d.Vertex(v).Kind, len(outs), len(ins),
				strings.Join(append(outs, ins...), " "))
			continue
		}
		out[v] = fmt.Sprintf("<%s|%s|%s>", strings.Join(outs, ""), d.Vertex(v).Kind, strings.Join(ins, ""))
	}

	return out
}

func pick(labels []string, idx []int) []string {
	out := make([]string, len(idx))
	for i, l := range idx {
		out[i] = labels[l]
	}

	return out
}
