// Package astarpa computes optimal global pairwise sequence alignments under unit-cost edit
// distance (Levenshtein), returning both the edit cost and a CIGAR-style edit script realizing
// it.
//
// The search is an A* walk over the implicit edit graph of the two sequences, guided by a seed
// heuristic that stays admissible and consistent as matches are consumed and pruned from it. For
// sequences with a low to moderate edit rate this keeps the number of expanded vertices close to
// linear in sequence length, where a plain dynamic-programming aligner is quadratic.
//
// By default [Align] uses the ordered seed heuristic with a gap-cost lower bound ([GCSH]); use
// [WithHeuristic] to select [SH] or [CSH] instead, or [NoHeuristic] to fall back to plain
// Dijkstra (useful mainly as a correctness baseline, see internal/astar's tests).
package astarpa
