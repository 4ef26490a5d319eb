/*
Package swiftutils provides terse convenience extensions over Go's built-in
container and numeric types.

# Overview

Swiftutils collects the small helpers that otherwise get rewritten in every
project: eager sequence combinators, nil-safe optional handling,
type-appropriate default values, a real-valued root/power family, and a
handful of numeric predicates and constants. Every function is a pure,
synchronous computation over in-memory values; there is no I/O, no shared
state, and no concurrency.

# Sequence Operations

All combinators are eager, order-preserving, and allocate their result;
inputs are never mutated:

	squares := swiftutils.Mapped(nums, swiftutils.Squared)
	evens := swiftutils.Filtered(nums, swiftutils.IsEven)
	total := swiftutils.Reduced(nums, 0, func(acc, n int) int { return acc + n })
	ranked := swiftutils.SortedBy(scores, func(a, b int) bool { return a > b })

SortedBy is stable: elements that compare equal keep their relative order.

# Optionals and Defaults

Optionals are pointers. Two policies coexist, and the names say which one
you get:

	name := swiftutils.Coalesce(maybeName)    // "" when nil - silent default
	name, err := swiftutils.Unwrap(maybeName) // *EmptyValueError when nil - loud

Default produces a type-appropriate zero-equivalent: 0 for numbers, the
empty string, a non-nil empty slice or map, the Unix epoch for time.Time.
Types may override it by implementing Defaulter.

# Roots and Powers

Root generalizes the square and cube roots to arbitrary real degrees,
returning real roots of negative radicands for odd integer degrees:

	swiftutils.Root(243, 5)  // 3
	swiftutils.Root(-243, 5) // -3
	swiftutils.Root(-64, 2)  // NaN

Numeric domain errors never produce a Go error; they surface as the IEEE
NaN sentinel and propagate silently through further arithmetic.

# Available API

Sequences:

  - Mapped, Filtered, Reduced, ReducedFromDefault
  - ForEach, ForEachIndexed, SortedBy
  - Contains, AllSatisfy, IsEmpty, IsNotEmpty

Optionals and defaults:

  - Default, Defaulter, Coalesce, Or
  - Unwrap, MustUnwrap, ErrEmptyValue, EmptyValueError

Numerics:

  - Root, SquareRoot, CubeRoot, FourthRoot, Power, Squared, Cubed
  - Sign, IsEven, IsOdd, IsZero, IsNaN, Percent
  - Half, Third, Quarter, TwoThirds, ThreeQuarters, Pi, E

Strings and maps:

  - StringOf, Value, ValueOr
*/
package swiftutils
