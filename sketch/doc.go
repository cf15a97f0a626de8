// Package sketch provides the CardinalityEstimator used for approximate distinct counts.
// It uses https://github.com/axiomhq/hyperloglog for the sketch itself, and
// https://github.com/cespare/xxhash to hash values into a seed-dependent hash space.
package sketch
