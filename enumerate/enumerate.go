package enumerate

import (
	"iter"

	"github.com/katalvlaran/adg/diagram"
	"github.com/katalvlaran/adg/rules"
	"github.com/katalvlaran/adg/theory"
)

// Shapes returns the vertex spec sequences explored for cfg, in the order the
// enumerator visits them.
func Shapes(cfg *theory.Config) [][]diagram.VertexSpec {
	n := cfg.Order()
	var heads []diagram.VertexSpec
	if cfg.Formalism().HasObservable() {
		for _, r := range cfg.ObservableRanks() {
			heads = append(heads, diagram.VertexSpec{Kind: diagram.Observable, Rank: r})
		}
		n--
	}

	var tails [][]diagram.VertexSpec
	ranks := cfg.Ranks()
	var grow func(prefix []diagram.VertexSpec, from int)
	grow = func(prefix []diagram.VertexSpec, from int) {
		if len(prefix) == n {
			tails = append(tails, append([]diagram.VertexSpec(nil), prefix...))
			return
		}
		for k := from; k < len(ranks); k++ {
			grow(append(prefix, diagram.VertexSpec{Kind: diagram.Interaction, Rank: ranks[k]}), k)
		}
	}
	grow(make([]diagram.VertexSpec, 0, n), 0)

	if heads == nil {
		return tails
	}
	shapes := make([][]diagram.VertexSpec, 0, len(heads)*len(tails))
	for _, h := range heads {
		for _, t := range tails {
			shapes = append(shapes, append([]diagram.VertexSpec{h}, t...))
		}
	}

	return shapes
}

// filler is the backtracking state for one vertex shape.
type filler struct {
	specs []diagram.VertexSpec
	rs    *rules.RuleSet
	opts  []diagram.Option
	yield func(*diagram.Diagram) bool
}

// Candidates lazily yields every saturated labelled candidate for cfg.
// Shapes that cannot saturate simply contribute nothing.
func Candidates(cfg *theory.Config) iter.Seq[*diagram.Diagram] {
	rs := rules.For(cfg)
	var opts []diagram.Option
	if cfg.Formalism().TimeDependent() {
		opts = append(opts, diagram.WithQuasiParticles())
	}

	return func(yield func(*diagram.Diagram) bool) {
		for _, specs := range Shapes(cfg) {
			if !balanced(specs) {
				continue
			}
			f := &filler{specs: specs, rs: rs, opts: opts, yield: yield}
			if !f.fill(diagram.NewBuilder(specs), 0, 1) {
				return
			}
		}
	}
}

// balanced rejects shapes where one vertex needs more line ends than all the
// others can offer together.
func balanced(specs []diagram.VertexSpec) bool {
	total := 0
	for _, s := range specs {
		total += s.Rank
	}
	for _, s := range specs {
		if 2*s.Rank > total {
			return false
		}
	}

	return true
}

// fill assigns line counts to pair (i, j) and recurses row-major. It returns
// false once the consumer has stopped.
func (f *filler) fill(b *diagram.Builder, i, j int) bool {
	n := len(f.specs)
	if i >= n-1 {
		if !b.Saturated() {
			return true
		}
		d, err := b.Build(f.opts...)
		if err != nil {
			// Saturated builders always form valid diagrams.
			return true
		}

		return f.yield(d)
	}

	ni, nj := i, j+1
	if nj == n {
		ni, nj = i+1, i+2
	}
	last := j == n-1

	budget := min(b.Remaining(i), b.Remaining(j))
	for total := 0; total <= budget; total++ {
		// 1) the row of i closes on its last pair
		if last && total != b.Remaining(i) {
			continue
		}
		for fwd := total; fwd >= 0; fwd-- {
			bwd := total - fwd
			if !f.rs.Attach(f.specs[i].Kind, f.specs[j].Kind, fwd, bwd) {
				continue
			}
			next := b.Clone()
			next.Connect(i, j, fwd)
			next.Connect(j, i, bwd)
			if !f.fill(next, ni, nj) {
				return false
			}
		}
	}

	return true
}
