// Package decode turns a satisfying CNF model into a multiplicity map:
// {edge index -> bridge count}, omitting edges with multiplicity 0.
package decode
