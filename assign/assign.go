// SPDX-License-Identifier: MIT

package assign

import (
	"fmt"

	"github.com/katalvlaran/fourstep/core"
	"gonum.org/v1/gonum/floats"
)

// Assign distributes OD demand over the link table according to the
// probabilities already stored in st.Prob, filling st.Volume and st.PKM,
// and returns the aggregate travel time Σ volume·time over all links.
//
// Demand is looked up by node names; the translation uses the network's
// registry. Every OD pair referenced by a link must have a demand entry
// (ErrMissingDemand, with the pair named); any failing row aborts the
// whole assignment.
//
// Complexity: O(L) time for L links, O(L) scratch space.
func Assign(net *core.Network, dem Demand, st *State) (float64, error) {
	links := net.Links()

	// 1) Validate column shapes up front.
	if len(st.Prob) != len(links) || len(st.Time) != len(links) {
		return 0, fmt.Errorf("%w: %d probs / %d times for %d links",
			ErrShapeMismatch, len(st.Prob), len(st.Time), len(links))
	}

	// 2) Per-link volume and pkm. Name translation cannot fail for IDs
	//    that came out of the builder, but the errors are still routed:
	//    a corrupted state must not pass silently.
	for i, l := range links {
		origin, err := net.NameOf(l.From)
		if err != nil {
			return 0, err
		}
		dest, err := net.NameOf(l.To)
		if err != nil {
			return 0, err
		}

		trips, err := dem.Trips(origin, dest)
		if err != nil {
			return 0, fmt.Errorf("link %d (%s): %w", i, l.Mode, err)
		}

		st.Volume[i] = trips * st.Prob[i]
		st.PKM[i] = st.Volume[i] * l.DistanceKm
	}

	// 3) Aggregate travel time Σ volume·time.
	products := make([]float64, len(links))
	copy(products, st.Volume)
	floats.Mul(products, st.Time)

	return floats.Sum(products), nil
}

// TotalPKM returns the network-wide passenger-kilometres of the current
// state. O(L).
func TotalPKM(st *State) float64 { return floats.Sum(st.PKM) }

// TotalVolume returns the network-wide assigned trip volume. O(L).
func TotalVolume(st *State) float64 { return floats.Sum(st.Volume) }
