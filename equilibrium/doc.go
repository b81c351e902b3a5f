// SPDX-License-Identifier: MIT

// Package equilibrium drives the capacity-restrained fixed-point loop
// between mode choice, trip assignment, and congestion.
//
// Each round, in strict order:
//
//  1. recompute mode-choice probabilities per OD-mode group from the
//     current travel times (logit),
//  2. recompute per-link volumes and pkm from demand and the new
//     probabilities (assign),
//  3. recompute congested travel times for congestible modes from the new
//     volumes and the scenario-scaled capacities (congestion),
//  4. publish RoundStats (mean probability per mode, aggregate travel
//     time, max relative volume change) through the OnRound hook.
//
// Read-after-write ordering matters: round k's volumes depend on round k's
// probabilities, which depend on round k−1's times.
//
// The loop runs a fixed number of rounds (default 10) and makes no
// equilibrium claim. That bound is an explicit, configurable choice, not a
// convergence criterion; callers wanting one can set WithEpsilon to stop
// early once the max relative volume change drops below their threshold.
//
// Level-of-service attributes are referenced by name: "time" resolves to
// the current (possibly congested) travel time, "cost" to the link fare,
// "distance" to the link length.
package equilibrium
