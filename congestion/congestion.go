// SPDX-License-Identifier: MIT

// Package congestion implements the Smock-type capacity-restrained travel
// time function and its application to the congestible links of a network.
//
// The formula is
//
//	time = 0.5 · freeFlow · exp(volume / capacity)
//
// It is strictly increasing in volume and in 1/capacity. Note the exact
// shape: at volume = 0 it yields 0.5 · freeFlow, NOT the free-flow time —
// lightly loaded links run faster than the nominal timetable. This is a
// property of the Smock curve as used here and is reproduced exactly; do
// not substitute a BPR-style curve that anchors at freeFlow.
//
// Errors:
//
//	ErrInvalidCapacity - capacity ≤ 0 (domain error, division would be meaningless).
//	ErrNegativeVolume  - volume < 0.
package congestion

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/fourstep/assign"
	"github.com/katalvlaran/fourstep/core"
)

// Sentinel errors for the congestion function.
var (
	// ErrInvalidCapacity indicates a non-positive capacity.
	ErrInvalidCapacity = errors.New("congestion: capacity must be positive")

	// ErrNegativeVolume indicates a negative traffic volume.
	ErrNegativeVolume = errors.New("congestion: volume must be non-negative")
)

// smockFactor is the fixed leading coefficient of the Smock curve.
const smockFactor = 0.5

// CongestedTime returns the Smock congested travel time
// 0.5 · freeFlow · exp(volume/capacity).
//
// Preconditions: capacity > 0 (ErrInvalidCapacity), volume ≥ 0
// (ErrNegativeVolume). Complexity: O(1).
func CongestedTime(volume, capacity, freeFlow float64) (float64, error) {
	if capacity <= 0 {
		return 0, fmt.Errorf("%w: got %g", ErrInvalidCapacity, capacity)
	}
	if volume < 0 {
		return 0, fmt.Errorf("%w: got %g", ErrNegativeVolume, volume)
	}

	return smockFactor * freeFlow * math.Exp(volume/capacity), nil
}

// Apply rewrites st.Time for every link whose mode is congestible,
// using the link's current st.Volume and its capacity scaled by factor
// (a scenario knob: 1 leaves capacities as built, 0.9 models e.g. lorry
// impact). Non-congestible links are reset to free-flow time.
//
// factor must be positive; a failing link aborts with its index and OD
// endpoints in the error.
//
// Complexity: O(L) for L links.
func Apply(net *core.Network, st *assign.State, factor float64) error {
	if factor <= 0 {
		return fmt.Errorf("%w: capacity factor %g", ErrInvalidCapacity, factor)
	}

	for i, l := range net.Links() {
		if !net.Congestible(l.Mode) {
			st.Time[i] = l.FreeFlowTime

			continue
		}

		t, err := CongestedTime(st.Volume[i], l.Capacity*factor, l.FreeFlowTime)
		if err != nil {
			return fmt.Errorf("link %d (%d→%d, %s): %w", i, l.From, l.To, l.Mode, err)
		}
		st.Time[i] = t
	}

	return nil
}
