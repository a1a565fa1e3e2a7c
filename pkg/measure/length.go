package measure

import "fmt"

// Micrometre sizes of the supported length units. A nautical mile is
// exactly 1852 metres.
const (
	umPerMetre        = 1_000_000
	umPerKilometre    = 1_000_000_000
	umPerNauticalMile = 1_852_000_000
)

// Length is a signed distance with a resolution of one micrometre. The
// default unit is the metre and the resolution unit is the micrometre.
// The zero value is the zero length.
type Length struct {
	um int64
}

// FromMetres returns the Length closest to m metres, rounding half away
// from zero to the nearest micrometre. Total: NaN yields the zero length
// and out-of-range magnitudes saturate.
func FromMetres(m float64) Length {
	return Length{um: quantize(m, umPerMetre)}
}

// FromKilometres returns the Length closest to km kilometres.
func FromKilometres(km float64) Length {
	return Length{um: quantize(km, umPerKilometre)}
}

// FromNauticalMiles returns the Length closest to nm nautical miles.
func FromNauticalMiles(nm float64) Length {
	return Length{um: quantize(nm, umPerNauticalMile)}
}

// Micrometres returns the exact signed count of micrometres.
func (l Length) Micrometres() int64 {
	return l.um
}

// Metres returns the length in metres, the lossy float64 view of the exact
// count.
func (l Length) Metres() float64 {
	return float64(l.um) / umPerMetre
}

// Kilometres returns the length in kilometres.
func (l Length) Kilometres() float64 {
	return float64(l.um) / umPerKilometre
}

// NauticalMiles returns the length in nautical miles.
func (l Length) NauticalMiles() float64 {
	return float64(l.um) / umPerNauticalMile
}

// FromDefaultUnits implements Measure; the default unit of Length is the
// metre.
func (Length) FromDefaultUnits(amount float64) Length {
	return FromMetres(amount)
}

// FromResolutionUnits implements Measure; the resolution unit of Length is
// the micrometre.
func (Length) FromResolutionUnits(count int64) Length {
	return Length{um: count}
}

// DefaultUnits implements Measure; equivalent to Metres.
func (l Length) DefaultUnits() float64 {
	return l.Metres()
}

// ResolutionUnits implements Measure; equivalent to Micrometres.
func (l Length) ResolutionUnits() int64 {
	return l.um
}

// String renders the length as metres with six fractional digits, one per
// micrometre, derived from the integer count alone so distinct lengths
// always render differently.
func (l Length) String() string {
	sign := ""
	mag := uint64(l.um)
	if l.um < 0 {
		sign = "-"
		mag = uint64(-l.um)
	}
	return fmt.Sprintf("%s%d.%06dm", sign, mag/umPerMetre, mag%umPerMetre)
}
