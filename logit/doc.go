// SPDX-License-Identifier: MIT

// Package logit implements multinomial-logit (MNL) mode choice over
// level-of-service attributes.
//
// Given a group of competing alternatives (the parallel links of one OD
// pair, one per mode) and a weighted attribute list, the model computes
//
//	v_i = -Σ_k weight_k · attribute_{ik}      (disutility form)
//	p_i = exp(v_i) / Σ_j exp(v_j)
//
// Attributes are costs: utility decreases as they grow. The softmax is
// evaluated as exp(v_i − logsumexp(v)) so that large disutilities cannot
// overflow exp. Probabilities always sum to 1 within 1e-9 and are strictly
// inside (0,1) for finite inputs; equal disutilities yield the uniform
// split 1/N.
//
// Two entry points are provided:
//
//   - ChoiceProbabilities — the raw kernel over a values matrix and a
//     weight vector, for callers that already assembled the numbers.
//   - GroupProbabilities — the group facade used by the equilibrium
//     driver: attributes are resolved by name through a Source callback,
//     so congested travel times can shadow free-flow times without this
//     package knowing about scenario state.
//
// Errors:
//
//	ErrEmptyGroup        - the group has no alternatives.
//	ErrNoAttributes      - the attribute list is empty.
//	ErrAttributeMismatch - value row length differs from the weight vector,
//	                       or a named attribute is absent on some link.
//	ErrNonFinite         - an attribute value is NaN or ±Inf.
package logit
