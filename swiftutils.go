// Package swiftutils provides terse convenience extensions over Go's
// built-in container and numeric types.
//
// The package collects the small helpers that otherwise get rewritten in
// every project: eager map/filter/reduce/sort combinators over slices,
// nil-safe optional handling, type-appropriate default values, a real-valued
// root/power family, and a handful of numeric predicates and constants.
//
// # Quick Start
//
//	squares := swiftutils.Mapped([]int{1, 2, 3, 4}, swiftutils.Squared)
//	sum := swiftutils.Reduced(squares, 0, func(acc, n int) int { return acc + n })
//	// sum == 30
//
//	name := swiftutils.Coalesce(maybeName) // "" if maybeName is nil
//
//	swiftutils.Root(-243, 5) // -3: real odd root of a negative radicand
//
// # Design Notes
//
// Every combinator is eager, order-preserving, and allocates its result;
// inputs are never mutated. Numeric domain errors surface as the IEEE NaN
// sentinel and propagate silently through further arithmetic. The one loud
// failure in the package is Unwrap on a nil optional, which returns an
// *EmptyValueError.
package swiftutils

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"sort"
	"time"
)

// ============================================================================
// Constraints
// ============================================================================

// The constraint interfaces below mirror golang.org/x/exp/constraints.
// They are defined locally to keep the package dependency-free.

// Signed is any signed integer type.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is any unsigned integer type.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is any integer type.
type Integer interface {
	Signed | Unsigned
}

// Float is any floating-point type.
type Float interface {
	~float32 | ~float64
}

// Number is any built-in numeric type.
type Number interface {
	Integer | Float
}

// ============================================================================
// Function Types
// ============================================================================

// Predicate reports whether a value satisfies some condition.
type Predicate[T any] func(T) bool

// Transform maps a value of one type to another.
type Transform[T, U any] func(T) U

// Accumulator folds one element into a running accumulation.
type Accumulator[A, T any] func(acc A, v T) A

// Less orders two values; it must be a strict weak ordering.
type Less[T any] func(a, b T) bool

// ============================================================================
// Sequence Operations
// ============================================================================

// Mapped applies transform to each element of s and returns the results as
// a new slice. The result has the same length and order as the input.
//
// Example:
//
//	Mapped([]int{1, 2, 3}, func(n int) int { return n * n }) // [1 4 9]
func Mapped[T, U any](s []T, transform Transform[T, U]) []U {
	out := make([]U, len(s))
	for i, v := range s {
		out[i] = transform(v)
	}
	return out
}

// Filtered returns a new slice holding the elements of s that satisfy
// keep, preserving their relative order. The result is empty but non-nil
// when no element matches.
func Filtered[T any](s []T, keep Predicate[T]) []T {
	out := make([]T, 0, len(s))
	for _, v := range s {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// Reduced folds s left-to-right into a single value, starting from
// initial. An empty input returns initial unchanged.
//
// Example:
//
//	Reduced([]int{1, 2, 3}, 0, func(acc, n int) int { return acc + n }) // 6
func Reduced[T, A any](s []T, initial A, accumulate Accumulator[A, T]) A {
	acc := initial
	for _, v := range s {
		acc = accumulate(acc, v)
	}
	return acc
}

// ReducedFromDefault is Reduced seeded with Default for the accumulator
// type: zero for numbers, the empty string for strings, and so on.
func ReducedFromDefault[T, A any](s []T, accumulate Accumulator[A, T]) A {
	return Reduced(s, Default[A](), accumulate)
}

// ForEach calls visit once per element, left to right.
func ForEach[T any](s []T, visit func(T)) {
	for _, v := range s {
		visit(v)
	}
}

// ForEachIndexed calls visit once per element with its index, left to
// right.
func ForEachIndexed[T any](s []T, visit func(i int, v T)) {
	for i, v := range s {
		visit(i, v)
	}
}

// SortedBy returns a stably sorted copy of s ordered by less. The input is
// never mutated, and elements that compare equal keep their relative
// order. Pass a ">" predicate for descending order.
//
// Example:
//
//	SortedBy([]int{3, 1, 2}, func(a, b int) bool { return a < b }) // [1 2 3]
//	SortedBy([]int{3, 1, 2}, func(a, b int) bool { return a > b }) // [3 2 1]
func SortedBy[T any](s []T, less Less[T]) []T {
	out := make([]T, len(s))
	copy(out, s)
	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i], out[j])
	})
	return out
}

// Contains reports whether any element of s satisfies pred.
func Contains[T any](s []T, pred Predicate[T]) bool {
	for _, v := range s {
		if pred(v) {
			return true
		}
	}
	return false
}

// AllSatisfy reports whether every element of s satisfies pred. It is
// vacuously true for an empty slice.
func AllSatisfy[T any](s []T, pred Predicate[T]) bool {
	for _, v := range s {
		if !pred(v) {
			return false
		}
	}
	return true
}

// IsEmpty reports whether s has no elements.
func IsEmpty[T any](s []T) bool {
	return len(s) == 0
}

// IsNotEmpty reports whether s has at least one element.
func IsNotEmpty[T any](s []T) bool {
	return len(s) > 0
}

// ============================================================================
// Default Values & Coalescing
// ============================================================================

// Defaulter lets a type carry its own default value. A type implementing
// Defaulter overrides the built-in table used by Default; DefaultValue
// must return a value assignable to the receiver's type.
type Defaulter interface {
	DefaultValue() any
}

// Default returns the canonical default for T:
//
//   - the zero value for numbers, strings, and booleans
//   - a non-nil empty slice or map for collection types
//   - the Unix epoch for time.Time
//   - the value reported by DefaultValue for Defaulter implementations
//   - the plain zero value for everything else
func Default[T any]() T {
	var zero T
	if d, ok := any(zero).(Defaulter); ok {
		if v, ok := d.DefaultValue().(T); ok {
			return v
		}
	}
	if _, ok := any(zero).(time.Time); ok {
		return any(time.Unix(0, 0).UTC()).(T)
	}
	switch rt := reflect.TypeOf(&zero).Elem(); rt.Kind() {
	case reflect.Slice:
		return reflect.MakeSlice(rt, 0, 0).Interface().(T)
	case reflect.Map:
		return reflect.MakeMap(rt).Interface().(T)
	}
	return zero
}

// Coalesce dereferences p, substituting Default for a nil pointer.
//
// Example:
//
//	var n *int
//	Coalesce(n) // 0
func Coalesce[T any](p *T) T {
	if p == nil {
		return Default[T]()
	}
	return *p
}

// Or dereferences p, substituting fallback for a nil pointer.
func Or[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}

// ============================================================================
// Optional Handling
// ============================================================================

// ErrEmptyValue is the sentinel reported when a nil optional is unwrapped.
var ErrEmptyValue = errors.New("empty value")

// EmptyValueError reports a force-unwrap of a nil optional. It wraps
// ErrEmptyValue, so errors.Is(err, ErrEmptyValue) matches.
type EmptyValueError struct {
	typeName string
}

func (e *EmptyValueError) Error() string {
	return fmt.Sprintf("unwrap of nil *%s: %s", e.typeName, ErrEmptyValue)
}

func (e *EmptyValueError) Unwrap() error {
	return ErrEmptyValue
}

// Unwrap dereferences p, returning an *EmptyValueError when p is nil.
// Unlike Coalesce, an absent value here is a violation to surface, not a
// condition to paper over with a default.
func Unwrap[T any](p *T) (T, error) {
	if p == nil {
		var zero T
		return zero, &EmptyValueError{typeName: fmt.Sprintf("%T", zero)}
	}
	return *p, nil
}

// MustUnwrap is Unwrap that panics on a nil optional. Reserve it for
// initialization paths where absence is a programming error.
func MustUnwrap[T any](p *T) T {
	v, err := Unwrap(p)
	if err != nil {
		panic(err)
	}
	return v
}

// ============================================================================
// Root / Power Evaluator
// ============================================================================

// Root returns the principal degree-th root of x, generalizing the square
// and cube roots to arbitrary real degrees.
//
// Negative radicands have real roots only for odd integer degrees, where
// the result is the negation of the root of |x|. A negative radicand with
// an even or non-integer degree yields NaN, as does a degree of zero; no
// error is ever returned. Root(0, n) is 0 for any nonzero n.
//
// Example:
//
//	Root(243, 5)  // 3
//	Root(-243, 5) // -3
//	Root(-64, 2)  // NaN
func Root(x, degree float64) float64 {
	if degree == 0 {
		return math.NaN()
	}
	if x < 0 && isOddInteger(degree) {
		return -math.Pow(-x, 1/degree)
	}
	return math.Pow(x, 1/degree)
}

// isOddInteger reports whether n is an integral value with an odd residue
// modulo 2.
func isOddInteger(n float64) bool {
	if n != math.Trunc(n) {
		return false
	}
	return math.Abs(math.Mod(n, 2)) == 1
}

// SquareRoot returns the square root of x via Root with degree 2.
func SquareRoot(x float64) float64 {
	return Root(x, 2)
}

// CubeRoot returns the cube root of x via Root with degree 3. Negative
// radicands yield negative real roots.
func CubeRoot(x float64) float64 {
	return Root(x, 3)
}

// FourthRoot returns the fourth root of x via Root with degree 4.
func FourthRoot(x float64) float64 {
	return Root(x, 4)
}

// Power raises x to an arbitrary real exponent.
func Power(x, exponent float64) float64 {
	return math.Pow(x, exponent)
}

// Squared returns n * n.
func Squared[N Number](n N) N {
	return n * n
}

// Cubed returns n * n * n.
func Cubed[N Number](n N) N {
	return n * n * n
}

// ============================================================================
// Numeric Predicates
// ============================================================================

// Sign returns -1, 0, or 1 according to the sign of n.
func Sign[N Number](n N) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}

// IsEven reports whether n is divisible by two.
func IsEven[I Integer](n I) bool {
	return n%2 == 0
}

// IsOdd reports whether n is not divisible by two.
func IsOdd[I Integer](n I) bool {
	return n%2 != 0
}

// IsZero reports whether n is zero.
func IsZero[N Number](n N) bool {
	return n == 0
}

// IsNaN reports whether f is an IEEE "not-a-number" value.
func IsNaN[F Float](f F) bool {
	return f != f
}

// Percent converts a percentage to its fractional value.
//
// Example:
//
//	Percent(75) // 0.75
func Percent(p float64) float64 {
	return p / 100
}

// ============================================================================
// Constants
// ============================================================================

// Common fractions, named for readability at call sites.
const (
	Half          = 0.5
	Third         = 1.0 / 3.0
	Quarter       = 0.25
	TwoThirds     = 2.0 / 3.0
	ThreeQuarters = 0.75
)

// Pi and E re-export the math constants so numeric call sites need only
// this package.
const (
	Pi = math.Pi
	E  = math.E
)

// ============================================================================
// Strings & Maps
// ============================================================================

// StringOf converts any value to its string representation.
func StringOf(v any) string {
	return fmt.Sprint(v)
}

// Value looks up key in m, coalescing an absent key to Default for the
// value type.
//
// Example:
//
//	m := map[string]int{"a": 1}
//	Value(m, "a") // 1
//	Value(m, "b") // 0
func Value[K comparable, V any](m map[K]V, key K) V {
	if v, ok := m[key]; ok {
		return v
	}
	return Default[V]()
}

// ValueOr looks up key in m, substituting fallback for an absent key.
func ValueOr[K comparable, V any](m map[K]V, key K, fallback V) V {
	if v, ok := m[key]; ok {
		return v
	}
	return fallback
}
