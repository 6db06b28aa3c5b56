package engine_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/adg/engine"
	"github.com/katalvlaran/adg/theory"
)

// ExampleGenerate derives the second-order MBPT diagrams built from two-body
// vertices.
func ExampleGenerate() {
	cfg, err := theory.New(theory.MBPT, 2, []int{2})
	if err != nil {
		fmt.Println(err)
		return
	}
	res, err := engine.Generate(context.Background(), cfg)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, d := range res.Diagrams {
		fmt.Print(d.Expression())
	}
	// Output:
	// +1/6 <pqr|H|a> <a|H|pqr> / (ε_a-ε_p-ε_q-ε_r)
	// +1/4 <pq|H|ab> <ab|H|pq> / (ε_a+ε_b-ε_p-ε_q)
}
