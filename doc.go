// Package fourstep is an in-memory toolkit for elementary transport demand
// modelling — from network primitives to mode choice, trip assignment and
// capacity-restrained equilibrium.
//
// 🚀 What is fourstep?
//
//	A small, deterministic library that brings together:
//		• Core primitives: nodes, directed mode links, great-circle geometry
//		• Mode choice: multinomial logit over level-of-service attributes
//		• Assignment: OD demand → per-link volumes, pkm, travel time
//		• Congestion: Smock-type capacity-restrained travel time
//		• Equilibrium: a bounded fixed-point loop tying them together
//
// ✨ Why choose fourstep?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – no global state, stable link ordering, no randomness
//   - Pure computation – no I/O inside the iteration loop, no cgo
//   - Extensible – an OnRound hook exposes every iteration's statistics
//
// Under the hood, everything is organized under six subpackages:
//
//	core/        — Node, Link, Mode, Network types & the immutable builder
//	logit/       — multinomial-logit choice probabilities
//	assign/      — demand matrices and volume/pkm assignment
//	congestion/  — Smock-type congested travel time
//	equilibrium/ — the fixed-point iteration driver & scenarios
//	odcsv/       — loading OD demand matrices from CSV
//
// Quick ASCII example:
//
//	A ═════ B        two nodes, two modes: every unordered pair
//	 (car)           carries one directed link per mode and
//	 (rail)          direction — four link rows in total.
//
// Demand splits across the parallel links by logit choice; car links are
// then slowed by congestion, which feeds back into the next round's choice.
// Dive into README.md and examples/ for full scenario walk-throughs.
//
//	go get github.com/katalvlaran/fourstep
package fourstep
