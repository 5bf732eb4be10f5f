// Command astarpa aligns two sequences under unit-cost edit distance and prints the cost and
// CIGAR script.
package main

import "os"

func main() {
	if err := execute(); err != nil {
		os.Exit(1)
	}
}
