// Package orchestrate is the batch driver that threads a parsed grid
// through preflight, encoding, solving, connectivity refinement,
// decoding, validation, and rendering, across every selected solver
// and every input file, and assembles the run into the summary JSON
// shape described by the external interface.
package orchestrate
