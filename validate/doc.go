// Package validate re-checks a candidate multiplicity map against the
// puzzle it claims to solve, independent of whichever solver produced
// it: demand equality, the 0/1/2 multiplicity bound, no crossing among
// active edges, then global connectivity. The first failing check
// names itself; validation never panics on a malformed map.
package validate
