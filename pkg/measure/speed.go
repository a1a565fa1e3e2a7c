package measure

import "fmt"

// Micrometre-per-second sizes of the supported speed units. A knot is one
// nautical mile (1852 m) per hour, which is not a whole number of
// micrometres per second.
const (
	umpsPerMetrePerSecond   = 1_000_000
	umpsPerKilometrePerHour = 1_000_000_000.0 / 3600
	umpsPerKnot             = 1_852_000_000.0 / 3600
)

// Speed is a signed speed with a resolution of one micrometre per second.
// The default unit is the metre per second and the resolution unit is the
// micrometre per second. The zero value is the zero speed.
type Speed struct {
	umps int64
}

// FromMetresPerSecond returns the Speed closest to mps metres per second,
// rounding half away from zero to the nearest micrometre per second.
// Total: NaN yields the zero speed and out-of-range magnitudes saturate.
func FromMetresPerSecond(mps float64) Speed {
	return Speed{umps: quantize(mps, umpsPerMetrePerSecond)}
}

// FromKilometresPerHour returns the Speed closest to kph kilometres per
// hour.
func FromKilometresPerHour(kph float64) Speed {
	return Speed{umps: quantize(kph, umpsPerKilometrePerHour)}
}

// FromKnots returns the Speed closest to kn knots.
func FromKnots(kn float64) Speed {
	return Speed{umps: quantize(kn, umpsPerKnot)}
}

// MicrometresPerSecond returns the exact signed count of micrometres per
// second.
func (s Speed) MicrometresPerSecond() int64 {
	return s.umps
}

// MetresPerSecond returns the speed in metres per second, the lossy
// float64 view of the exact count.
func (s Speed) MetresPerSecond() float64 {
	return float64(s.umps) / umpsPerMetrePerSecond
}

// KilometresPerHour returns the speed in kilometres per hour.
func (s Speed) KilometresPerHour() float64 {
	return float64(s.umps) / umpsPerKilometrePerHour
}

// Knots returns the speed in knots.
func (s Speed) Knots() float64 {
	return float64(s.umps) / umpsPerKnot
}

// FromDefaultUnits implements Measure; the default unit of Speed is the
// metre per second.
func (Speed) FromDefaultUnits(amount float64) Speed {
	return FromMetresPerSecond(amount)
}

// FromResolutionUnits implements Measure; the resolution unit of Speed is
// the micrometre per second.
func (Speed) FromResolutionUnits(count int64) Speed {
	return Speed{umps: count}
}

// DefaultUnits implements Measure; equivalent to MetresPerSecond.
func (s Speed) DefaultUnits() float64 {
	return s.MetresPerSecond()
}

// ResolutionUnits implements Measure; equivalent to MicrometresPerSecond.
func (s Speed) ResolutionUnits() int64 {
	return s.umps
}

// String renders the speed as metres per second with six fractional
// digits, one per micrometre per second, derived from the integer count
// alone.
func (s Speed) String() string {
	sign := ""
	mag := uint64(s.umps)
	if s.umps < 0 {
		sign = "-"
		mag = uint64(-s.umps)
	}
	return fmt.Sprintf("%s%d.%06dm/s", sign, mag/umpsPerMetrePerSecond, mag%umpsPerMetrePerSecond)
}
