// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for builders and numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior is opt-in: Generate draws from the process-wide
//     math/rand source unless WithSeed/WithRand is given.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math/rand"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the absolute tolerance used by Equal.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicRandNil = "matrix: WithRand(nil)"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	rng            *rand.Rand // nil → process-wide math/rand source
	validateNaNInf bool       // DefaultValidateNaNInf
}

// WithRand provides an explicit RNG for Generate.
// Panics on nil; prefer WithSeed for reproducible runs.
// Complexity: O(1).
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic(panicRandNil)
	}
	return func(o *Options) {
		o.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
// Complexity: O(1).
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.rng = rand.New(rand.NewSource(seed))
	}
}

// WithValidateNaNInf sets the numeric policy of matrices created by
// NewDenseFrom and Generate. When on, Set/Apply reject NaN and ±Inf.
func WithValidateNaNInf(on bool) Option {
	return func(o *Options) {
		o.validateNaNInf = on
	}
}

// gatherOptions applies opts in order over the documented defaults.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := Options{
		rng:            nil,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// float64 draws a uniform value in [0,1) from the configured source.
func (o Options) float64() float64 {
	if o.rng == nil {
		return rand.Float64() // process-wide source, goroutine-safe
	}

	return o.rng.Float64()
}
