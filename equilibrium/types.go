package equilibrium

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/fourstep/assign"
	"github.com/katalvlaran/fourstep/core"
	"github.com/katalvlaran/fourstep/logit"
)

// Sentinel errors for driver configuration and inputs.
var (
	// ErrNilNetwork indicates Run received a nil network.
	ErrNilNetwork = errors.New("equilibrium: network is nil")

	// ErrNilDemand indicates Run received a nil demand matrix.
	ErrNilDemand = errors.New("equilibrium: demand matrix is nil")
)

// Defaults for the iteration driver.
const (
	// DefaultRounds is the fixed iteration bound inherited from the
	// classroom exercise. It is a bound, not a convergence guarantee.
	DefaultRounds = 10

	// DefaultTimeWeight is the default disutility weight on travel time
	// when no attribute set is configured.
	DefaultTimeWeight = 1.5

	// AttrTime, AttrCost and AttrDistance are the recognised
	// level-of-service attribute names.
	AttrTime     = "time"
	AttrCost     = "cost"
	AttrDistance = "distance"

	// relChangeFloor is the denominator floor (in trips) for the relative
	// volume-change statistic, keeping it finite on previously empty links.
	relChangeFloor = 1.0
)

// RoundStats is the per-round diagnostic snapshot handed to OnRound.
type RoundStats struct {
	// Round is the 1-based round index.
	Round int

	// MeanProb is the mean mode-choice probability per mode, averaged
	// over all links of that mode.
	MeanProb map[core.Mode]float64

	// AggregateTime is Σ volume·time over all links, in trip-hours.
	AggregateTime float64

	// MaxRelChange is the largest per-link relative volume change versus
	// the previous round, |ΔV| / max(V_prev, 1).
	MaxRelChange float64
}

// Result is the final driver state after the last executed round.
type Result struct {
	// State holds the final per-link columns (volumes, pkm, times, probs).
	State *assign.State

	// Rounds is the number of rounds actually executed.
	Rounds int

	// Converged reports whether an Epsilon early-stop fired. Always false
	// when Epsilon is disabled.
	Converged bool

	// Stats collects one RoundStats per executed round.
	Stats []RoundStats
}

// Options configures one scenario run. Construct with DefaultOptions and
// adjust via the WithX option setters, which validate their inputs and
// panic on programmer error (out-of-domain parameters).
type Options struct {
	// Rounds is the fixed iteration bound (> 0).
	Rounds int

	// Epsilon enables early stopping when > 0: the loop ends once
	// MaxRelChange < Epsilon. 0 disables the check (the exercise default).
	Epsilon float64

	// CapacityFactor scales every congestible link's capacity for this
	// scenario (> 0); e.g. 0.9 models capacity lost to lorry traffic.
	CapacityFactor float64

	// Attributes is the weighted level-of-service set fed to mode choice.
	Attributes []logit.Attribute

	// OnRound, when non-nil, receives every round's statistics.
	OnRound func(RoundStats)
}

// DefaultOptions returns the classroom defaults: 10 rounds, no convergence
// check, unscaled capacities, time-only disutility with weight 1.5.
func DefaultOptions() Options {
	return Options{
		Rounds:         DefaultRounds,
		Epsilon:        0,
		CapacityFactor: 1,
		Attributes:     []logit.Attribute{{Name: AttrTime, Weight: DefaultTimeWeight}},
	}
}

// Option mutates Options before a run.
type Option func(*Options)

// WithRounds sets the fixed iteration bound. Panics if n <= 0.
func WithRounds(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("equilibrium: WithRounds(%d): rounds must be positive", n))
	}

	return func(o *Options) { o.Rounds = n }
}

// WithEpsilon enables early stopping on max relative volume change.
// Panics if eps < 0; 0 disables the check.
func WithEpsilon(eps float64) Option {
	if eps < 0 {
		panic(fmt.Sprintf("equilibrium: WithEpsilon(%g): epsilon must be non-negative", eps))
	}

	return func(o *Options) { o.Epsilon = eps }
}

// WithCapacityFactor scales congestible capacities for this scenario.
// Panics if f <= 0.
func WithCapacityFactor(f float64) Option {
	if f <= 0 {
		panic(fmt.Sprintf("equilibrium: WithCapacityFactor(%g): factor must be positive", f))
	}

	return func(o *Options) { o.CapacityFactor = f }
}

// WithAttributes replaces the level-of-service attribute set.
// Panics on an empty set.
func WithAttributes(attrs ...logit.Attribute) Option {
	if len(attrs) == 0 {
		panic("equilibrium: WithAttributes: at least one attribute required")
	}

	return func(o *Options) { o.Attributes = attrs }
}

// WithOnRound installs the per-round statistics hook.
func WithOnRound(fn func(RoundStats)) Option {
	return func(o *Options) { o.OnRound = fn }
}
