package assign

import "github.com/katalvlaran/fourstep/core"

// State holds the per-scenario derived columns, parallel to
// Network.Links(): index i of every column describes link i. Base link
// attributes are never touched; a new State resets a scenario to free-flow
// conditions.
type State struct {
	// Volume is the assigned trip volume per link (trips/period).
	Volume []float64

	// PKM is passenger-kilometres per link: volume · distance.
	PKM []float64

	// Time is the current travel time per link (hours). Starts at
	// free-flow time; the congestion stage rewrites congestible links.
	Time []float64

	// Prob is the latest mode-choice probability per link within its
	// OD group.
	Prob []float64
}

// NewState allocates columns for net and seeds Time with free-flow times.
func NewState(net *core.Network) *State {
	n := net.NumLinks()
	st := &State{
		Volume: make([]float64, n),
		PKM:    make([]float64, n),
		Time:   make([]float64, n),
		Prob:   make([]float64, n),
	}
	for i, l := range net.Links() {
		st.Time[i] = l.FreeFlowTime
	}

	return st
}
