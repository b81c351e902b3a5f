// SPDX-License-Identifier: MIT

// Package assign turns OD demand and mode-choice probabilities into
// per-link trip volumes and the derived metrics built on them.
//
// Demand is keyed by node *names* (the OD file's vocabulary), while links
// reference nodes by ID; translation goes through the Network's id↔name
// registry exactly once, inside Assign. A missing demand entry is a
// reportable error naming the OD pair, never a silent zero.
//
// Scenario state (volumes, pkm, current travel times, probabilities) lives
// in State, a set of columns parallel to Network.Links(). The Network
// itself is never mutated: a fresh State starts every scenario at free-flow
// times, and the equilibrium driver rewrites the columns once per round.
//
// Derived metrics:
//
//	volume(link) = demand(origin, destination) · probability(link)
//	pkm(link)    = volume(link) · distance(link)
//	aggregate travel time = Σ volume(link) · time(link)
//
// Errors:
//
//	ErrMissingDemand - an OD pair referenced by links has no demand entry.
//	ErrShapeMismatch - a probability/state column does not match the link table.
package assign
