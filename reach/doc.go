// Package reach is the global-connectivity substrate shared by the
// connectivity refinement loop and the final validator: an adjacency
// list over island indices built from whichever edges carry a bridge,
// and a breadth-first search from island 0 over it.
package reach
