// Package kernel provides core domain primitives shared across the domain
// model.
//
// It currently contains UUID, a value object for unique identifiers with
// validation and comparison capabilities. The primitives are immutable and
// thread-safe, and enforce construction through factory functions so that
// domain objects are always in a valid state.
package kernel
