// SPDX-License-Identifier: MIT

// This file declares Node, Link, Mode, ModeSpec, FareFunc,
// sentinel errors, and the default per-mode behaviour table.
package core

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for network construction.
var (
	// ErrNoNodes indicates Build was called before any node was added.
	ErrNoNodes = errors.New("core: network has no nodes")

	// ErrDuplicateNode indicates two nodes were registered under the same name.
	ErrDuplicateNode = errors.New("core: duplicate node name")

	// ErrUnknownNode indicates an operation referenced a node name that was never added.
	ErrUnknownNode = errors.New("core: node not found")

	// ErrSelfLink indicates Connect was called with identical endpoints.
	ErrSelfLink = errors.New("core: self-link not allowed")

	// ErrUnknownMode indicates a mode has no ModeSpec entry in the builder.
	ErrUnknownMode = errors.New("core: mode has no spec")
)

// NodeID uniquely identifies a Node within its Network.
// IDs are assigned densely in insertion order, starting at 0.
type NodeID int

// Node represents a named, geo-located point in the network.
// Nodes are immutable once the Network is built.
type Node struct {
	// ID is the unique identifier for this Node.
	ID NodeID

	// Name is the unique human-readable identifier. Demand matrices are
	// keyed by Name, links by ID; the Network owns the translation.
	Name string

	// Lat and Lon are the node coordinates in decimal degrees.
	Lat, Lon float64
}

// Mode enumerates the closed set of travel modes.
type Mode int

const (
	// Car is the road mode; it is congestible by default.
	Car Mode = iota

	// Rail is the rail mode; it runs at free-flow time regardless of load.
	Rail

	numModes // sentinel for iteration; keep last
)

// String returns the lowercase mode name, or "mode(N)" for unknown values.
func (m Mode) String() string {
	switch m {
	case Car:
		return "car"
	case Rail:
		return "rail"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Modes returns all declared modes in declaration order.
func Modes() []Mode {
	all := make([]Mode, 0, int(numModes))
	for m := Mode(0); m < numModes; m++ {
		all = append(all, m)
	}

	return all
}

// FareFunc maps a link distance (km) to a monetary cost (currency units).
type FareFunc func(distanceKm float64) float64

// ModeSpec is the per-mode behaviour table entry. Row-wise "if mode == car"
// branching is expressed once here instead of at every call site.
//
// Fields:
//   - Mode:        which mode this spec describes.
//   - SpeedKmh:    free-flow speed; FreeFlowTime = DistanceKm / SpeedKmh (hours).
//   - Congestible: whether congested travel time applies to this mode's links.
//   - Fare:        distance → cost function for this mode.
//   - Capacity:    default per-link capacity (trips/period); may be
//     overridden per scenario without rebuilding the network.
type ModeSpec struct {
	Mode        Mode
	SpeedKmh    float64
	Congestible bool
	Fare        FareFunc
	Capacity    float64
}

// Default behaviour-table constants.
const (
	// DefaultCarSpeedKmh is the free-flow road speed.
	DefaultCarSpeedKmh = 100.0

	// DefaultRailSpeedKmh is the free-flow rail speed.
	DefaultRailSpeedKmh = 150.0

	// DefaultCapacity is the per-link capacity assigned when a ModeSpec
	// does not override it (trips/period).
	DefaultCapacity = 500.0

	// carFarePerKm is the road cost slope: fare = 0.12 · distance.
	carFarePerKm = 0.12

	// railFareScale and railFareExp shape the degressive rail tariff:
	// fare = 0.7 · distance^0.8.
	railFareScale = 0.7
	railFareExp   = 0.8
)

// CarFare is the default road fare: 0.12 · distance.
func CarFare(distanceKm float64) float64 { return carFarePerKm * distanceKm }

// RailFare is the default degressive rail fare: 0.7 · distance^0.8.
func RailFare(distanceKm float64) float64 {
	return railFareScale * math.Pow(distanceKm, railFareExp)
}

// defaultSpecs returns the built-in behaviour table, one entry per mode.
func defaultSpecs() map[Mode]ModeSpec {
	return map[Mode]ModeSpec{
		Car: {
			Mode:        Car,
			SpeedKmh:    DefaultCarSpeedKmh,
			Congestible: true,
			Fare:        CarFare,
			Capacity:    DefaultCapacity,
		},
		Rail: {
			Mode:        Rail,
			SpeedKmh:    DefaultRailSpeedKmh,
			Congestible: false,
			Fare:        RailFare,
			Capacity:    DefaultCapacity,
		},
	}
}

// Link is one directed network edge row: a (from, to, mode) triple plus its
// base level-of-service attributes. Base attributes never change after
// Build; scenario state (volume, congested time, probability) is tracked
// per link index outside core.
type Link struct {
	// From and To are the endpoint node IDs.
	From, To NodeID

	// Mode is the travel mode served by this link.
	Mode Mode

	// DistanceKm is the great-circle distance between the endpoints.
	DistanceKm float64

	// FreeFlowTime is the uncongested travel time in hours.
	FreeFlowTime float64

	// Cost is the monetary fare for traversing this link.
	Cost float64

	// Capacity is the link capacity in trips/period.
	Capacity float64
}
