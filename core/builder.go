// SPDX-License-Identifier: MIT

// This file declares the Builder: staged, validating construction of an
// immutable Network from named nodes and pairwise mode connections.
package core

import (
	"fmt"
	"sort"
)

// Option configures a Builder before nodes and connections are added.
type Option func(b *Builder)

// WithModeSpec overrides (or adds) one entry of the per-mode behaviour
// table. Later options win. The entry is validated at Build time.
func WithModeSpec(spec ModeSpec) Option {
	return func(b *Builder) { b.specs[spec.Mode] = spec }
}

// Builder accumulates nodes and connections, then Build validates and
// freezes them into a Network. Not safe for concurrent use.
type Builder struct {
	nodes   []Node
	byName  map[string]NodeID
	pairs   []pairConn
	seen    map[pairKey]bool
	specs   map[Mode]ModeSpec
	lastErr error
}

// pairConn records one requested unordered connection with its modes.
type pairConn struct {
	a, b  NodeID
	modes []Mode
}

// pairKey identifies an unordered node pair + mode for idempotence checks.
type pairKey struct {
	lo, hi NodeID
	mode   Mode
}

// NewBuilder returns an empty Builder with the default behaviour table
// (Car: congestible, fare 0.12·d; Rail: free-flow, fare 0.7·d^0.8).
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		byName: make(map[string]NodeID),
		seen:   make(map[pairKey]bool),
		specs:  defaultSpecs(),
	}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// AddNode registers a named node and returns its dense ID.
// Duplicate names return ErrDuplicateNode (and are also reported by Build).
func (b *Builder) AddNode(name string, lat, lon float64) (NodeID, error) {
	if _, dup := b.byName[name]; dup {
		err := fmt.Errorf("%w: %q", ErrDuplicateNode, name)
		b.lastErr = err

		return 0, err
	}

	id := NodeID(len(b.nodes))
	b.nodes = append(b.nodes, Node{ID: id, Name: name, Lat: lat, Lon: lon})
	b.byName[name] = id

	return id, nil
}

// Connect requests links between two named nodes for the given modes.
// For every mode, Build will create exactly two directed link rows (one per
// direction). Repeating a (pair, mode) combination is idempotent: the rows
// are created once.
//
// Errors: ErrUnknownNode for unregistered names, ErrSelfLink for a == b.
// Errors are also latched and re-reported by Build, so fluent call chains
// may defer checking to a single place.
func (b *Builder) Connect(a, bName string, modes ...Mode) error {
	aID, okA := b.byName[a]
	bID, okB := b.byName[bName]
	if !okA || !okB {
		missing := a
		if okA {
			missing = bName
		}
		err := fmt.Errorf("%w: %q", ErrUnknownNode, missing)
		b.lastErr = err

		return err
	}
	if aID == bID {
		err := fmt.Errorf("%w: %q", ErrSelfLink, a)
		b.lastErr = err

		return err
	}

	// Keep only modes not seen for this unordered pair.
	fresh := make([]Mode, 0, len(modes))
	for _, m := range modes {
		key := pairKey{lo: min(aID, bID), hi: max(aID, bID), mode: m}
		if b.seen[key] {
			continue
		}
		b.seen[key] = true
		fresh = append(fresh, m)
	}
	if len(fresh) > 0 {
		sort.Slice(fresh, func(i, j int) bool { return fresh[i] < fresh[j] })
		b.pairs = append(b.pairs, pairConn{a: aID, b: bID, modes: fresh})
	}

	return nil
}

// Build validates the accumulated state and returns an immutable Network.
//
// Validation (in order):
//  1. Any latched AddNode/Connect error is re-reported (fail fast).
//  2. The node set must be non-empty (ErrNoNodes).
//  3. Every referenced mode must have a ModeSpec (ErrUnknownMode).
//
// Link attributes are derived here: distance by great-circle geometry,
// free-flow time from the mode speed, cost from the mode fare, capacity
// from the mode default.
//
// Complexity: O(N + P·M + L log L) for N nodes, P pairs, M modes per pair,
// L links (group-index sort).
func (b *Builder) Build() (*Network, error) {
	// 1) Fail fast on any construction error seen so far.
	if b.lastErr != nil {
		return nil, b.lastErr
	}

	// 2) A network without nodes cannot carry demand.
	if len(b.nodes) == 0 {
		return nil, ErrNoNodes
	}

	// 3) Every mode referenced by a connection needs a behaviour entry.
	for _, pc := range b.pairs {
		for _, m := range pc.modes {
			if _, ok := b.specs[m]; !ok {
				return nil, fmt.Errorf("%w: %s", ErrUnknownMode, m)
			}
		}
	}

	// 4) Materialize directed link rows: for each pair and mode, both
	//    directions, in creation order.
	links := make([]Link, 0, 2*len(b.seen))
	for _, pc := range b.pairs {
		for _, m := range pc.modes {
			spec := b.specs[m]
			na, nb := b.nodes[pc.a], b.nodes[pc.b]
			dist := GreatCircleKm(na.Lat, na.Lon, nb.Lat, nb.Lon)
			base := Link{
				Mode:         m,
				DistanceKm:   dist,
				FreeFlowTime: dist / spec.SpeedKmh,
				Cost:         spec.Fare(dist),
				Capacity:     spec.Capacity,
			}

			fwd := base
			fwd.From, fwd.To = pc.a, pc.b
			rev := base
			rev.From, rev.To = pc.b, pc.a
			links = append(links, fwd, rev)
		}
	}

	net := &Network{
		nodes:  b.nodes,
		links:  links,
		byName: b.byName,
		specs:  b.specs,
	}
	net.groups = buildGroups(links)

	return net, nil
}

// buildGroups indexes links by ordered OD pair, groups sorted by (From, To)
// ascending and links within a group by mode ascending.
func buildGroups(links []Link) []Group {
	byPair := make(map[[2]NodeID][]int)
	for i, l := range links {
		key := [2]NodeID{l.From, l.To}
		byPair[key] = append(byPair[key], i)
	}

	groups := make([]Group, 0, len(byPair))
	for key, idxs := range byPair {
		sort.Slice(idxs, func(i, j int) bool { return links[idxs[i]].Mode < links[idxs[j]].Mode })
		groups = append(groups, Group{From: key[0], To: key[1], Links: idxs})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].From != groups[j].From {
			return groups[i].From < groups[j].From
		}

		return groups[i].To < groups[j].To
	})

	return groups
}
