// Package dpll implements a Davis–Putnam–Logemann–Loveland backtracking
// search with unit propagation and a dynamic most-constrained-variable
// ordering.
package dpll
