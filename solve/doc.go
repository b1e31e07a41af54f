// Package solve declares the shared interface and option set that
// every CNF-level search backend (DPLL, A*, CDCL) implements, so the
// connectivity refinement loop can wrap any of them interchangeably.
package solve
