package measure

import (
	"fmt"
	"math"
)

// Microarcsecond sizes of the DMS components of an Angle.
const (
	uasPerDegree    = 3_600_000_000
	uasPerArcminute = 60_000_000
	uasPerArcsecond = 1_000_000
	uasPerMas       = 1_000
)

// Angle is a signed angle with a resolution of one microarcsecond. Used as
// a latitude or longitude this gives a precision of about 0.03 millimetres
// at the equator. Angles are linear quantities, not compass bearings: they
// are never reduced modulo a full turn, so 540 degrees and 180 degrees are
// different values.
//
// Invariants:
//   - The microarcsecond count is always whole. The single rounding from a
//     floating-point input happens at construction, never afterwards.
//   - Equality and ordering derive solely from the count, so Angle values
//     compare with == and work as map keys.
//   - The sign lives on the count. Component accessors other than
//     WholeDegrees report magnitudes and are never negative.
//
// The zero value is the zero angle. The default unit is the decimal degree
// and the resolution unit is the microarcsecond.
type Angle struct {
	uas int64
}

// FromDecimalDegrees returns the Angle closest to deg decimal degrees,
// rounding half away from zero to the nearest microarcsecond. This is the
// one point where floating-point precision collapses into the exact
// representation. The constructor is total: NaN yields the zero angle and
// magnitudes beyond the representable range saturate at the extremes.
func FromDecimalDegrees(deg float64) Angle {
	return Angle{uas: quantize(deg, uasPerDegree)}
}

// FromRadians returns the Angle closest to rad radians, quantized with the
// same single rounding as FromDecimalDegrees.
func FromRadians(rad float64) Angle {
	return FromDecimalDegrees(rad / math.Pi * 180)
}

// FromDMS builds an Angle from whole degrees, arcminutes and decimal
// arcseconds. As in conventional DMS notation the minutes and seconds are
// magnitudes; only the degrees argument carries the sign, so -154°3′42.5″
// is FromDMS(-154, 3, 42.5).
//
// Invariants enforced:
//   - minutes must lie in [0, 59], otherwise ErrInvalidArcMinutes.
//   - seconds must satisfy 0 <= seconds < 60, otherwise
//     ErrInvalidArcSeconds. Exactly 60 would carry into the next arcminute
//     and is rejected; NaN fails the same range check.
func FromDMS(degrees, minutes int64, seconds float64) (Angle, error) {
	if minutes < 0 || minutes > 59 {
		return Angle{}, ErrInvalidArcMinutes
	}
	if !(seconds >= 0 && seconds < 60) {
		return Angle{}, ErrInvalidArcSeconds
	}
	deg := math.Abs(float64(degrees)) + float64(minutes)/60 + seconds/3600
	if degrees < 0 {
		deg = -deg
	}
	return FromDecimalDegrees(deg), nil
}

// Microarcseconds returns the exact signed count of microarcseconds.
func (a Angle) Microarcseconds() int64 {
	return a.uas
}

// DecimalDegrees returns the angle in decimal degrees, the lossy float64
// view of the exact count.
func (a Angle) DecimalDegrees() float64 {
	return float64(a.uas) / uasPerDegree
}

// Radians returns the angle in radians.
func (a Angle) Radians() float64 {
	return a.DecimalDegrees() * math.Pi / 180
}

// WholeDegrees returns the degree component of the angle: the count of
// whole degrees truncated toward zero, carrying the angle's sign. For
// -154.915 degrees it returns -154. This is the only component accessor
// that is signed; the sub-degree accessors report magnitudes.
func (a Angle) WholeDegrees() int64 {
	d := int64(a.field(uasPerDegree, 0))
	if a.uas < 0 {
		return -d
	}
	return d
}

// Arcminutes returns the arcminute component of the angle's magnitude,
// in [0, 59].
func (a Angle) Arcminutes() int {
	return int(a.field(uasPerArcminute, 60))
}

// Arcseconds returns the arcsecond component of the angle's magnitude,
// in [0, 59].
func (a Angle) Arcseconds() int {
	return int(a.field(uasPerArcsecond, 60))
}

// Arcmilliseconds returns the milliarcsecond component of the angle's
// magnitude, in [0, 999].
func (a Angle) Arcmilliseconds() int {
	return int(a.field(uasPerMas, 1000))
}

// field extracts one DMS component of the angle's magnitude: the count of
// whole units of size div, reduced modulo the component period when mod is
// non-zero. Pure integer arithmetic, exact over the whole int64 range. The
// magnitude is taken in uint64 so the minimum count negates cleanly.
func (a Angle) field(div, mod uint64) uint64 {
	mag := uint64(a.uas)
	if a.uas < 0 {
		mag = uint64(-a.uas)
	}
	f := mag / div
	if mod != 0 {
		f %= mod
	}
	return f
}

// FromDefaultUnits implements Measure. The default unit of Angle is the
// decimal degree.
func (Angle) FromDefaultUnits(amount float64) Angle {
	return FromDecimalDegrees(amount)
}

// FromResolutionUnits implements Measure. The resolution unit of Angle is
// the microarcsecond.
func (Angle) FromResolutionUnits(count int64) Angle {
	return Angle{uas: count}
}

// DefaultUnits implements Measure; equivalent to DecimalDegrees.
func (a Angle) DefaultUnits() float64 {
	return a.DecimalDegrees()
}

// ResolutionUnits implements Measure; equivalent to Microarcseconds.
func (a Angle) ResolutionUnits() int64 {
	return a.uas
}

// String renders the angle in signed DMS notation with six fractional
// arcsecond digits, one decimal digit per microarcsecond. The rendering is
// derived from the integer count alone, so distinct angles always render
// differently and the sign survives even when the degree component is zero,
// as in "-0°30′00.000000″".
func (a Angle) String() string {
	sign := ""
	if a.uas < 0 {
		sign = "-"
	}
	return fmt.Sprintf("%s%d°%02d′%02d.%06d″",
		sign,
		a.field(uasPerDegree, 0),
		a.Arcminutes(),
		a.Arcseconds(),
		a.field(1, uasPerArcsecond))
}
