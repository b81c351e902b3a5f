// SPDX-License-Identifier: MIT

package equilibrium

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fourstep/assign"
	"github.com/katalvlaran/fourstep/congestion"
	"github.com/katalvlaran/fourstep/core"
	"github.com/katalvlaran/fourstep/logit"
	"gonum.org/v1/gonum/stat"
)

// Run executes the mode-choice / assignment / congestion fixed-point loop
// for one scenario and returns the state after the final round.
//
// Preconditions and validation (in order):
//  1. net must be non-nil (ErrNilNetwork).
//  2. dem must be non-nil (ErrNilDemand).
//
// Each round recomputes probabilities from current times, volumes from the
// new probabilities, and congested times from the new volumes; see the
// package documentation for the ordering contract. Errors from any stage
// (missing demand entries, invalid capacities, bad attributes) abort the
// run immediately with the failing round's partial state discarded.
//
// Complexity: O(R · (G·K + L)) time for R rounds, G groups of ≤ K modes,
// L links; O(L) space beyond the returned state.
func Run(net *core.Network, dem assign.Demand, opts ...Option) (Result, error) {
	// 1) Build and validate options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if net == nil {
		return Result{}, ErrNilNetwork
	}
	if dem == nil {
		return Result{}, ErrNilDemand
	}

	// 3) Fresh scenario state: free-flow times, zero volumes.
	st := assign.NewState(net)
	links := net.Links()
	prevVol := make([]float64, len(links))

	res := Result{State: st, Stats: make([]RoundStats, 0, cfg.Rounds)}

	for round := 1; round <= cfg.Rounds; round++ {
		// 4) Mode choice per OD-mode group from current times.
		if err := choiceStep(net, st, cfg.Attributes); err != nil {
			return Result{}, fmt.Errorf("round %d: %w", round, err)
		}

		// 5) Volumes and pkm from the new probabilities.
		copy(prevVol, st.Volume)
		aggTime, err := assign.Assign(net, dem, st)
		if err != nil {
			return Result{}, fmt.Errorf("round %d: %w", round, err)
		}

		// 6) Congested times from the new volumes.
		if err = congestion.Apply(net, st, cfg.CapacityFactor); err != nil {
			return Result{}, fmt.Errorf("round %d: %w", round, err)
		}

		// 7) Publish round statistics.
		stats := RoundStats{
			Round:         round,
			MeanProb:      meanProbByMode(net, st),
			AggregateTime: aggTime,
			MaxRelChange:  maxRelChange(prevVol, st.Volume),
		}
		res.Stats = append(res.Stats, stats)
		res.Rounds = round
		if cfg.OnRound != nil {
			cfg.OnRound(stats)
		}

		// 8) Optional early stop; disabled when Epsilon == 0.
		if cfg.Epsilon > 0 && stats.MaxRelChange < cfg.Epsilon {
			res.Converged = true

			break
		}
	}

	return res, nil
}

// choiceStep recomputes st.Prob for every OD-mode group. Attribute names
// resolve against the link table and the current state: "time" reads the
// congestion-adjusted column, "cost" and "distance" the immutable base.
func choiceStep(net *core.Network, st *assign.State, attrs []logit.Attribute) error {
	links := net.Links()
	for _, g := range net.Groups() {
		src := func(i int, name string) (float64, bool) {
			li := g.Links[i]
			switch name {
			case AttrTime:
				return st.Time[li], true
			case AttrCost:
				return links[li].Cost, true
			case AttrDistance:
				return links[li].DistanceKm, true
			default:
				return 0, false
			}
		}

		probs, err := logit.GroupProbabilities(len(g.Links), attrs, src)
		if err != nil {
			return fmt.Errorf("group %d→%d: %w", g.From, g.To, err)
		}
		for j, li := range g.Links {
			st.Prob[li] = probs[j]
		}
	}

	return nil
}

// meanProbByMode averages the choice probability over all links of each
// mode present in the network.
func meanProbByMode(net *core.Network, st *assign.State) map[core.Mode]float64 {
	byMode := make(map[core.Mode][]float64)
	for i, l := range net.Links() {
		byMode[l.Mode] = append(byMode[l.Mode], st.Prob[i])
	}

	means := make(map[core.Mode]float64, len(byMode))
	for m, probs := range byMode {
		means[m] = stat.Mean(probs, nil)
	}

	return means
}

// maxRelChange returns max_i |cur_i − prev_i| / max(prev_i, relChangeFloor).
// The floor keeps the statistic finite for links that carried no volume in
// the previous round.
func maxRelChange(prev, cur []float64) float64 {
	maxRel := 0.0
	for i := range cur {
		rel := math.Abs(cur[i]-prev[i]) / math.Max(prev[i], relChangeFloor)
		if rel > maxRel {
			maxRel = rel
		}
	}

	return maxRel
}
