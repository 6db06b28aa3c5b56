// Package adg derives the diagrams of many-body perturbation theory and their
// algebraic expressions.
//
// Given a formalism (time-independent MBPT or time-dependent Bogoliubov
// BMBPT), a perturbative order and the allowed vertex body-ranks, adg
// enumerates every candidate diagram, merges isomorphic ones, discards the
// unphysical ones and writes down the closed-form expression of each survivor.
//
// Packages
//
//	theory/     immutable, validated Theory Configuration
//	diagram/    arena graph model: vertices, oriented lines, Builder
//	bfs/, dfs/  connectivity, cycles, topological orders, time orderings
//	enumerate/  lazy candidate iterator
//	canon/      canonical forms, automorphisms, symmetry factors, dedup table
//	rules/      formalism-specific validity filter
//	classify/   excitation level, conjugates, families, time-tree detection
//	expr/       matrix elements, denominators, signs, time integration
//	engine/     the concurrent pipeline tying everything together
//	cmd/adg/    command-line front end
//
// Quick example:
//
//	cfg, _ := theory.New(theory.MBPT, 2, []int{2})
//	res, _ := engine.Generate(ctx, cfg)
//	for _, d := range res.Diagrams {
//		fmt.Print(d.Expression())
//	}
//
//	+1/6 <pqr|H|a> <a|H|pqr> / (ε_a-ε_p-ε_q-ε_r)
//	+1/4 <pq|H|ab> <ab|H|pq> / (ε_a+ε_b-ε_p-ε_q)
//
// Install the CLI with
//
//	go install github.com/katalvlaran/adg/cmd/adg@latest
package adg
