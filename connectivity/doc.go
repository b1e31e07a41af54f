// Package connectivity wraps any solve.Solver with the refinement loop:
// it re-solves the growing clause set, decodes each model, and tests
// global connectivity over the active edges by breadth-first search
// from island 0, reusing this module's own BFS implementation. On a
// disconnected model it appends the model's negation as a blocking
// clause and tries again.
package connectivity
