// SPDX-License-Identifier: MIT

// This file declares the immutable Network and its read-only query surface:
// node/link enumeration, the bidirectional id↔name registry, the per-mode
// behaviour table, and the OD-group index consumed by mode choice.
package core

import "fmt"

// Network is an immutable node/link table plus lookup indexes.
//
// Determinism:
//   - Nodes() enumerates in insertion order (dense ascending IDs).
//   - Links() enumerates in creation order; a link's position in that slice
//     is its stable link index, used by scenario state to attach derived
//     columns without mutating the Network.
//   - Groups() enumerates OD groups ordered by (From, To) ascending, and
//     links within a group by mode ascending.
type Network struct {
	nodes  []Node
	links  []Link
	byName map[string]NodeID
	specs  map[Mode]ModeSpec
	groups []Group
}

// Group is the set of parallel links connecting one ordered OD pair —
// one link per mode. Mode choice is computed independently per group.
type Group struct {
	// From and To identify the ordered OD pair.
	From, To NodeID

	// Links holds the indexes into Network.Links() of the parallel links,
	// ordered by mode ascending.
	Links []int
}

// NumNodes returns the number of nodes. O(1).
func (n *Network) NumNodes() int { return len(n.nodes) }

// NumLinks returns the number of directed link rows. O(1).
func (n *Network) NumLinks() int { return len(n.links) }

// Nodes returns the node table in insertion order.
// The returned slice is shared; callers must not modify it.
func (n *Network) Nodes() []Node { return n.nodes }

// Links returns the directed link table in creation order.
// The returned slice is shared; callers must not modify it.
func (n *Network) Links() []Link { return n.links }

// Groups returns the OD-group index, ordered by (From, To) ascending.
// The returned slice is shared; callers must not modify it.
func (n *Network) Groups() []Group { return n.groups }

// NameOf translates a node ID to its unique name.
// Returns ErrUnknownNode for IDs outside the node table.
func (n *Network) NameOf(id NodeID) (string, error) {
	if id < 0 || int(id) >= len(n.nodes) {
		return "", fmt.Errorf("%w: id %d", ErrUnknownNode, id)
	}

	return n.nodes[id].Name, nil
}

// IDOf translates a node name to its ID.
// Returns ErrUnknownNode for names never registered.
func (n *Network) IDOf(name string) (NodeID, error) {
	id, ok := n.byName[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownNode, name)
	}

	return id, nil
}

// Spec returns the behaviour-table entry for mode m.
// Returns ErrUnknownMode when m has no entry.
func (n *Network) Spec(m Mode) (ModeSpec, error) {
	spec, ok := n.specs[m]
	if !ok {
		return ModeSpec{}, fmt.Errorf("%w: %s", ErrUnknownMode, m)
	}

	return spec, nil
}

// Congestible reports whether links of mode m are subject to congested
// travel time. Unknown modes report false.
func (n *Network) Congestible(m Mode) bool {
	spec, ok := n.specs[m]

	return ok && spec.Congestible
}
