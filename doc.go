// Package hashiwokakero solves the Hashiwokakero ("bridges") puzzle: given
// a rectangular grid of islands with bridge demands, it finds a set of
// straight bridges joining them such that every island's demand is met,
// no two bridges cross, no pair of islands carries more than two bridges,
// and every island is reachable from every other.
//
// 🌉 What's in this module?
//
//	A CNF-based constraint solver with four interchangeable backends:
//
//	  • geometry  — candidate edges and the crossing relation
//	  • cnf       — two-variable-per-edge CNF encoding
//	  • solve/... — CDCL (gini), DPLL, A*, and brute-force backends
//	  • connectivity — the blocking-clause refinement loop that turns a
//	    demand-satisfying model into a globally connected one
//	  • decode / validate / render — model → bridges → checked output
//
// Under the hood, `reach` is the adjacency-list-plus-breadth-first-search
// substrate `connectivity` and `validate` both build on to test whether a
// candidate solution's islands form one connected component.
//
//	go get github.com/katalvlaran/hashiwokakero
package hashiwokakero
