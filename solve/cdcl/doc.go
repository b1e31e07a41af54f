// Package cdcl wraps a conflict-driven-clause-learning SAT engine
// (github.com/go-air/gini) as a reference oracle solver, used the same
// way the other backends are: fed the current clause set, returning a
// verdict and a model on SAT.
package cdcl
