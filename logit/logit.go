// SPDX-License-Identifier: MIT

package logit

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ChoiceProbabilities computes MNL choice probabilities from a values
// matrix and a weight vector.
//
// values[i][k] is the k-th level-of-service attribute of alternative i;
// weights[k] is its disutility weight. Every row must have len(weights)
// entries, and all entries must be finite.
//
// Returns one probability per row, in row order, summing to 1 within
// SumTolerance.
//
// Complexity: O(N·K) time, O(N) space, for N alternatives and K attributes.
func ChoiceProbabilities(values [][]float64, weights []float64) ([]float64, error) {
	// 1) Validate shape.
	if len(values) == 0 {
		return nil, ErrEmptyGroup
	}
	if len(weights) == 0 {
		return nil, ErrNoAttributes
	}

	// 2) Accumulate disutilities, failing fast on bad rows or values.
	utils := make([]float64, len(values))
	for i, row := range values {
		if len(row) != len(weights) {
			return nil, fmt.Errorf("%w: alternative %d has %d values for %d weights",
				ErrAttributeMismatch, i, len(row), len(weights))
		}
		var v float64
		for k, a := range row {
			if math.IsNaN(a) || math.IsInf(a, 0) {
				return nil, fmt.Errorf("%w: alternative %d, attribute %d = %v",
					ErrNonFinite, i, k, a)
			}
			v -= weights[k] * a
		}
		utils[i] = v
	}

	return softmax(utils), nil
}

// GroupProbabilities computes MNL choice probabilities for a group of n
// alternatives whose named attributes are resolved through src. attrs pairs
// each attribute name with its weight; a name src cannot resolve yields
// ErrAttributeMismatch, a non-finite resolved value ErrNonFinite.
//
// This is the facade the equilibrium driver calls once per OD-mode group
// and round; src typically closes over the link table and the current
// scenario state.
func GroupProbabilities(n int, attrs []Attribute, src Source) ([]float64, error) {
	if n <= 0 {
		return nil, ErrEmptyGroup
	}
	if len(attrs) == 0 {
		return nil, ErrNoAttributes
	}

	utils := make([]float64, n)
	for i := 0; i < n; i++ {
		var v float64
		for _, attr := range attrs {
			a, ok := src(i, attr.Name)
			if !ok {
				return nil, fmt.Errorf("%w: attribute %q absent on alternative %d",
					ErrAttributeMismatch, attr.Name, i)
			}
			if math.IsNaN(a) || math.IsInf(a, 0) {
				return nil, fmt.Errorf("%w: attribute %q on alternative %d = %v",
					ErrNonFinite, attr.Name, i, a)
			}
			v -= attr.Weight * a
		}
		utils[i] = v
	}

	return softmax(utils), nil
}

// softmax turns finite utilities into probabilities via the log-sum-exp
// trick: p_i = exp(v_i − LSE(v)). Shifting by LSE keeps every exponent
// ≤ 0, so exp cannot overflow regardless of the utility magnitudes.
func softmax(utils []float64) []float64 {
	lse := floats.LogSumExp(utils)

	probs := make([]float64, len(utils))
	for i, v := range utils {
		probs[i] = math.Exp(v - lse)
	}

	return probs
}
