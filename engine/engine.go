package engine

import (
	"cmp"
	"context"
	"fmt"
	"runtime"
	"slices"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/adg/canon"
	"github.com/katalvlaran/adg/classify"
	"github.com/katalvlaran/adg/enumerate"
	"github.com/katalvlaran/adg/expr"
	"github.com/katalvlaran/adg/rules"
	"github.com/katalvlaran/adg/theory"
)

// verdicts records the filter outcome of every class.
type verdicts struct {
	mu      sync.Mutex
	reasons map[string]string // key → rejection reason
}

func (v *verdicts) reject(key string, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.reasons[key] = rules.Reason(err).Error()
}

// Generate derives every valid diagram of cfg with its expression.
//
// Implementation:
//   - Stage 1: enumerate candidates and fan them out to a bounded errgroup;
//     each worker canonicalizes, inserts into the table and filters new classes.
//   - Stage 2: annotate and synthesize the kept classes in parallel.
//   - Stage 3: order the result and pair conjugates.
//
// Errors: the context error on cancellation, expr.ErrInternalConsistency when
// a kept diagram admits no expression.
func Generate(ctx context.Context, cfg *theory.Config, opts ...Option) (*Result, error) {
	o := options{logger: zap.NewNop(), workers: cfg.Workers()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers <= 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}
	log := o.logger.With(zap.Stringer("config", cfg))
	log.Debug("starting generation", zap.Int("workers", o.workers))

	// Stage 1: candidates → classes
	rs := rules.For(cfg)
	table := canon.NewTable()
	verdict := &verdicts{reasons: make(map[string]string)}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	candidates := 0
	for d := range enumerate.Candidates(cfg) {
		if gctx.Err() != nil {
			break
		}
		candidates++
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			form := canon.Canonicalize(d)
			rep, err := d.Permute(form.Perm)
			if err != nil {
				return err
			}
			if _, inserted := table.Insert(form.Key, rep); inserted {
				if err := rs.Check(rep); err != nil {
					verdict.reject(form.Key, err)
				}
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("engine: canonicalization: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}

	var kept []canon.Entry
	reasons := make(map[string]int)
	for _, e := range table.Entries() {
		if r, bad := verdict.reasons[e.Key]; bad {
			reasons[r]++
			continue
		}
		kept = append(kept, e)
	}
	log.Debug("deduplicated candidates",
		zap.Int("candidates", candidates),
		zap.Int("classes", table.Len()),
		zap.Int("kept", len(kept)))

	// Stage 2: per-diagram annotation and synthesis
	out := make([]*Diagram, len(kept))
	g, gctx = errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i, e := range kept {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			d, err := annotate(e)
			if err != nil {
				return err
			}
			out[i] = d

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Error("synthesis failed", zap.Error(err))
		return nil, fmt.Errorf("engine: synthesis: %w", err)
	}

	// Stage 3: ordering and conjugate pairing
	slices.SortFunc(out, func(a, b *Diagram) int {
		return cmp.Or(
			cmp.Compare(a.ann.Family, b.ann.Family),
			cmp.Compare(a.ann.MaxRank, b.ann.MaxRank),
			cmp.Compare(a.key, b.key),
		)
	})
	keys := make([]string, len(out))
	conj := make([]string, len(out))
	for i, d := range out {
		keys[i], conj[i] = d.key, d.ann.ConjugateKey
	}
	for i, j := range classify.Pair(keys, conj) {
		out[i].conjugate = j
	}

	res := &Result{
		Config:     cfg,
		Diagrams:   out,
		Candidates: candidates,
		Rejected:   table.Len() - len(kept),
		Reasons:    reasons,
	}
	log.Info("generation complete",
		zap.Int("diagrams", len(out)),
		zap.Int("candidates", candidates),
		zap.Int("rejected", res.Rejected))

	return res, nil
}

// annotate classifies a kept class and synthesizes its expression.
func annotate(e canon.Entry) (*Diagram, error) {
	form := canon.Canonicalize(e.Diagram)
	sym := canon.SymmetryFactor(e.Diagram, form)
	ex, err := expr.Synthesize(e.Diagram, sym)
	if err != nil {
		return nil, err
	}

	return &Diagram{
		graph:         e.Diagram,
		key:           e.Key,
		automorphisms: form.Automorphisms,
		symmetry:      sym,
		merged:        e.Count,
		ann:           classify.Annotate(e.Diagram),
		conjugate:     -1,
		expression:    ex,
	}, nil
}
