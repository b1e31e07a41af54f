// Package geometry computes candidate bridge edges between islands and
// the crossing relation over those edges.
//
// A candidate edge is a pair of islands sharing a row or column with no
// other island strictly between them. Two edges cross iff one is
// horizontal, the other vertical, and each strictly straddles the
// other's fixed coordinate; collinear edges never cross, and
// overlapping collinear edges cannot arise under the no-intermediate-
// island rule.
package geometry
