package measure

import "time"

// Nanosecond sizes of the supported duration units.
const (
	nsPerSecond      = 1_000_000_000
	nsPerMillisecond = 1_000_000
)

// Duration is a signed span of time with a resolution of one nanosecond,
// the same representation as time.Duration so the two convert without
// loss. The default unit is the second and the resolution unit is the
// nanosecond. The zero value is the zero duration.
type Duration struct {
	ns int64
}

// FromSeconds returns the Duration closest to s seconds, rounding half
// away from zero to the nearest nanosecond. Total: NaN yields the zero
// duration and out-of-range magnitudes saturate.
func FromSeconds(s float64) Duration {
	return Duration{ns: quantize(s, nsPerSecond)}
}

// FromMilliseconds returns the Duration closest to ms milliseconds.
func FromMilliseconds(ms float64) Duration {
	return Duration{ns: quantize(ms, nsPerMillisecond)}
}

// FromStdDuration converts a time.Duration exactly.
func FromStdDuration(d time.Duration) Duration {
	return Duration{ns: int64(d)}
}

// Nanoseconds returns the exact signed count of nanoseconds.
func (d Duration) Nanoseconds() int64 {
	return d.ns
}

// Seconds returns the duration in seconds, the lossy float64 view of the
// exact count.
func (d Duration) Seconds() float64 {
	return float64(d.ns) / nsPerSecond
}

// Milliseconds returns the duration in milliseconds.
func (d Duration) Milliseconds() float64 {
	return float64(d.ns) / nsPerMillisecond
}

// Std converts to time.Duration exactly.
func (d Duration) Std() time.Duration {
	return time.Duration(d.ns)
}

// FromDefaultUnits implements Measure; the default unit of Duration is the
// second.
func (Duration) FromDefaultUnits(amount float64) Duration {
	return FromSeconds(amount)
}

// FromResolutionUnits implements Measure; the resolution unit of Duration
// is the nanosecond.
func (Duration) FromResolutionUnits(count int64) Duration {
	return Duration{ns: count}
}

// DefaultUnits implements Measure; equivalent to Seconds.
func (d Duration) DefaultUnits() float64 {
	return d.Seconds()
}

// ResolutionUnits implements Measure; equivalent to Nanoseconds.
func (d Duration) ResolutionUnits() int64 {
	return d.ns
}

// String renders the duration in time.Duration notation, "1.5s" or
// "-250ms".
func (d Duration) String() string {
	return d.Std().String()
}
