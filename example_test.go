package astarpa_test

import (
	"fmt"

	astarpa "github.com/RagnarGrootKoerkamp/astar-pairwise-aligner"
)

func ExampleAlign() {
	res, err := astarpa.Align("GATTACA", "GATCACA")
	if err != nil {
		panic(err)
	}
	fmt.Println(res.Cost, res.Cigar)
	// Output:
	// 1 3=1X3=
}

func ExampleAlign_heuristic() {
	res, err := astarpa.Align("GATTACA", "GATCACA", astarpa.WithHeuristic(astarpa.NoHeuristic))
	if err != nil {
		panic(err)
	}
	fmt.Println(res.Cost)
	// Output:
	// 1
}
