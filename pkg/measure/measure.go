// Package measure provides exact fixed-point quantity types for geodetic
// computation: Angle, Length, Duration and Speed, plus the generic contract
// that gives all of them a single shared arithmetic and comparison
// implementation.
//
// Every quantity type stores one signed 64-bit count of its resolution unit
// (microarcseconds for Angle, micrometres for Length, and so on). The only
// rounding happens at construction, when a floating-point amount in the
// type's default unit is quantized half away from zero onto the resolution
// grid; from then on all addition, subtraction, negation and comparison is
// exact integer arithmetic, so repeated operations never drift.
//
// Invariants:
//   - Each quantity type has exactly one resolution scale, fixed at compile
//     time, so raw counts of the same type always combine without rescaling.
//   - Equality, ordering and hashing derive solely from the raw count.
//   - Values are immutable; every operation returns a new value.
package measure

import "math"

// Measure is the contract shared by every quantity type in this package.
// A conforming type supplies only these four conversion primitives; the
// package-level arithmetic and comparison functions derive everything else
// from them, identically for every type.
type Measure[T any] interface {
	// FromDefaultUnits builds a value of the same quantity type from an
	// amount in the type's default unit, rounding half away from zero to
	// the nearest resolution unit. The receiver only selects the type; its
	// value is ignored.
	FromDefaultUnits(amount float64) T

	// FromResolutionUnits builds a value from an exact resolution-unit
	// count. The receiver only selects the type; its value is ignored.
	FromResolutionUnits(count int64) T

	// DefaultUnits returns the quantity in its default unit, the lossy
	// float64 view of the exact count.
	DefaultUnits() float64

	// ResolutionUnits returns the exact resolution-unit count.
	ResolutionUnits() int64
}

// Add returns a + b. The sum is computed on the raw resolution counts and
// never re-enters floating point, so it is exact.
func Add[T Measure[T]](a, b T) T {
	return a.FromResolutionUnits(a.ResolutionUnits() + b.ResolutionUnits())
}

// Subtract returns a - b, computed exactly on the raw resolution counts.
// The result may be negative.
func Subtract[T Measure[T]](a, b T) T {
	return a.FromResolutionUnits(a.ResolutionUnits() - b.ResolutionUnits())
}

// Multiply scales a by factor. The product is computed in the default unit
// and re-quantized through FromDefaultUnits, so exactly one rounding step
// (half away from zero) applies.
func Multiply[T Measure[T]](a T, factor float64) T {
	return a.FromDefaultUnits(a.DefaultUnits() * factor)
}

// Divide scales a by 1/divisor with the same single rounding step as
// Multiply. Dividing a non-zero quantity by zero saturates at the
// representable extremes; dividing zero by zero yields the zero quantity.
func Divide[T Measure[T]](a T, divisor float64) T {
	return a.FromDefaultUnits(a.DefaultUnits() / divisor)
}

// Negate returns -a by negating the raw resolution count.
func Negate[T Measure[T]](a T) T {
	return a.FromResolutionUnits(-a.ResolutionUnits())
}

// Abs returns the magnitude of a.
func Abs[T Measure[T]](a T) T {
	if a.ResolutionUnits() < 0 {
		return Negate(a)
	}
	return a
}

// Compare orders two quantities by their raw resolution counts. It returns
// -1 when a < b, 0 when a == b and +1 when a > b.
func Compare[T Measure[T]](a, b T) int {
	switch {
	case a.ResolutionUnits() < b.ResolutionUnits():
		return -1
	case a.ResolutionUnits() > b.ResolutionUnits():
		return +1
	default:
		return 0
	}
}

// Equal reports whether a and b hold the same resolution count.
func Equal[T Measure[T]](a, b T) bool {
	return a.ResolutionUnits() == b.ResolutionUnits()
}

// Less reports whether a is strictly below b.
func Less[T Measure[T]](a, b T) bool {
	return a.ResolutionUnits() < b.ResolutionUnits()
}

// Greater reports whether a is strictly above b.
func Greater[T Measure[T]](a, b T) bool {
	return a.ResolutionUnits() > b.ResolutionUnits()
}

// Zero returns the zero quantity of type T, equal to building the type from
// 0 default units.
func Zero[T Measure[T]]() T {
	var zero T
	return zero
}

// IsZero reports whether a holds a zero resolution count.
func IsZero[T Measure[T]](a T) bool {
	return a.ResolutionUnits() == 0
}

// IsPositive reports whether a is strictly above zero.
func IsPositive[T Measure[T]](a T) bool {
	return a.ResolutionUnits() > 0
}

// IsNegative reports whether a is strictly below zero.
func IsNegative[T Measure[T]](a T) bool {
	return a.ResolutionUnits() < 0
}

// float64(math.MaxInt64) rounds up to 2^63, so v >= maxCount means the
// rounded value no longer fits in an int64.
const (
	maxCount = float64(math.MaxInt64)
	minCount = float64(math.MinInt64)
)

// quantize converts an amount in default units to a resolution count using
// the type's fixed scale. math.Round rounds half away from zero, the single
// rounding policy of the package. The conversion is total: NaN collapses to
// a zero count and out-of-range magnitudes saturate at the int64 extremes.
func quantize(amount, scale float64) int64 {
	v := math.Round(amount * scale)
	switch {
	case math.IsNaN(v):
		return 0
	case v >= maxCount:
		return math.MaxInt64
	case v <= minCount:
		return math.MinInt64
	}
	return int64(v)
}
