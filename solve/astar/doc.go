// Package astar implements a best-first search over partial CNF
// assignments, using the count of currently unsatisfied clauses as a
// heuristic. It is not admissible in the classical sense and makes no
// optimality claim; it is used only to reach some satisfying leaf
// within its deadline.
package astar
