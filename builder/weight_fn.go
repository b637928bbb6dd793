// Package builder provides internal helper functions and types
// for configuring edge‐weight distributions in graph constructors.
package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// WeightFn produces an edge weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed; panics in constructors
// indicate programmer error in configuration.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns the constant DefaultEdgeWeight.
// Complexity: O(1) time, O(1) space. Never panics.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields the provided value.
// Panics if value < 0.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %g", value))
	}
	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [lo, hi).
// Panics if lo < 0 or hi < lo.
// If rng is nil, yields DefaultEdgeWeight to maintain deterministic fallback.
func UniformWeightFn(lo, hi float64) WeightFn {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%g, max=%g", lo, hi))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		if hi == lo {
			return lo
		}

		return lo + rng.Float64()*(hi-lo)
	}
}

// NormalWeightFn returns a WeightFn sampling from N(mean, stddev),
// rounded to the nearest integer and clipped at 0.
// Panics if stddev < 0. If rng is nil, yields DefaultEdgeWeight.
func NormalWeightFn(mean, stddev float64) WeightFn {
	if stddev < 0 {
		panic(fmt.Sprintf("NormalWeightFn: stddev must be ≥ 0, got %f", stddev))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return math.Max(0, math.Round(rng.NormFloat64()*stddev+mean))
	}
}

// ExponentialWeightFn returns a WeightFn sampling from an exponential
// distribution with rate λ, rounded to the nearest integer.
// Panics if rate ≤ 0. If rng is nil, yields DefaultEdgeWeight.
func ExponentialWeightFn(rate float64) WeightFn {
	if rate <= 0 {
		panic(fmt.Sprintf("ExponentialWeightFn: rate must be > 0, got %f", rate))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return math.Round(rng.ExpFloat64() / rate)
	}
}

// WithConstantWeight sets a fixed edge weight via ConstantWeightFn.
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight sets weights ∼ U[lo,hi) via UniformWeightFn.
func WithUniformWeight(lo, hi float64) BuilderOption {
	return WithWeightFn(UniformWeightFn(lo, hi))
}

// WithNormalWeight sets weights ∼ N(mean,stddev) via NormalWeightFn.
func WithNormalWeight(mean, stddev float64) BuilderOption {
	return WithWeightFn(NormalWeightFn(mean, stddev))
}

// WithExponentialWeight sets weights ∼ Exp(rate) via ExponentialWeightFn.
func WithExponentialWeight(rate float64) BuilderOption {
	return WithWeightFn(ExponentialWeightFn(rate))
}
