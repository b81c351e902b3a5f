// SPDX-License-Identifier: MIT

// Package core defines the central Node, Link, Mode, and Network types for
// transport demand modelling, and provides a validating builder that turns
// named, geo-located nodes into an immutable directed link table.
//
// A Network is a flat table of directed links. For every unordered pair of
// connected nodes and every mode serving that pair there are exactly two
// link rows, one per direction. Links carry only base attributes (distance,
// free-flow time, cost, capacity); per-scenario derived values (volumes,
// congested times, probabilities) live outside core and never mutate the
// network.
//
// Geometry is great-circle: link distance is the haversine distance between
// the endpoint coordinates. Free-flow time and monetary cost are derived
// from the per-mode behaviour table (ModeSpec): time = distance / speed,
// cost = fare(distance).
//
// Concurrency: a built Network is immutable, so it may be shared freely
// across goroutines. The Builder itself is not safe for concurrent use.
//
// Errors:
//
//	ErrNoNodes       - Build called with an empty node set.
//	ErrDuplicateNode - a node name registered twice.
//	ErrUnknownNode   - Connect referenced a name that was never added.
//	ErrSelfLink      - Connect called with the same node on both ends.
//	ErrUnknownMode   - a mode without a ModeSpec entry.
package core
