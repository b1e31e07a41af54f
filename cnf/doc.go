// Package cnf represents propositional formulas in conjunctive normal
// form and encodes a Hashiwokakero instance into one.
package cnf
