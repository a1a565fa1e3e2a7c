package measure_test

import (
	"math"
	"testing"

	"github.com/amirasaad/geodesy/pkg/measure"
	"github.com/stretchr/testify/assert"
)

// Compile-time checks that every quantity type satisfies the contract.
var (
	_ measure.Measure[measure.Angle]    = measure.Angle{}
	_ measure.Measure[measure.Length]   = measure.Length{}
	_ measure.Measure[measure.Duration] = measure.Duration{}
	_ measure.Measure[measure.Speed]    = measure.Speed{}
)

// checkConversions drives the four contract primitives for one type: the
// default-unit round trip stays within one resolution unit and the
// resolution-unit round trip is exact.
func checkConversions[T measure.Measure[T]](t *testing.T, amount, tol float64) {
	t.Helper()
	var proto T
	v := proto.FromDefaultUnits(amount)
	assert.InDelta(t, amount, v.DefaultUnits(), tol)
	assert.Equal(t, v.ResolutionUnits(), proto.FromResolutionUnits(v.ResolutionUnits()).ResolutionUnits())
}

func TestMeasure_Conversions(t *testing.T) {
	t.Run("angle", func(t *testing.T) {
		checkConversions[measure.Angle](t, 154.915, 1.0/3_600_000_000)
	})
	t.Run("length", func(t *testing.T) {
		checkConversions[measure.Length](t, 1852.5, 1.0/1_000_000)
	})
	t.Run("duration", func(t *testing.T) {
		checkConversions[measure.Duration](t, 90.25, 1.0/1_000_000_000)
	})
	t.Run("speed", func(t *testing.T) {
		checkConversions[measure.Speed](t, 5.144444, 1.0/1_000_000)
	})
}

func TestAdd(t *testing.T) {
	t.Run("sums raw counts exactly", func(t *testing.T) {
		sum := measure.Add(measure.FromMetres(1.5), measure.FromMetres(2.25))
		assert.Equal(t, int64(3_750_000), sum.Micrometres())
	})

	t.Run("add then subtract returns the original exactly", func(t *testing.T) {
		a := measure.FromDecimalDegrees(154.9150300)
		b := measure.FromDecimalDegrees(-0.915)
		assert.Equal(t, a, measure.Subtract(measure.Add(a, b), b))
	})

	t.Run("repeated addition does not drift", func(t *testing.T) {
		step := measure.FromDecimalDegrees(0.1)
		sum := measure.Zero[measure.Angle]()
		for i := 0; i < 1000; i++ {
			sum = measure.Add(sum, step)
		}
		assert.Equal(t, measure.FromDecimalDegrees(100), sum)
	})
}

func TestSubtract(t *testing.T) {
	t.Run("quarter degree", func(t *testing.T) {
		diff := measure.Subtract(measure.FromDecimalDegrees(1), measure.FromDecimalDegrees(0.25))
		assert.Equal(t, measure.FromDecimalDegrees(0.75), diff)
	})

	t.Run("may go negative", func(t *testing.T) {
		diff := measure.Subtract(measure.FromSeconds(1), measure.FromSeconds(2.5))
		assert.Equal(t, int64(-1_500_000_000), diff.Nanoseconds())
	})
}

func TestMultiply(t *testing.T) {
	t.Run("doubling matches the decimal equivalent", func(t *testing.T) {
		a := measure.FromDecimalDegrees(10.5125)
		assert.Equal(t, measure.FromDecimalDegrees(21.025), measure.Multiply(a, 2))
	})

	t.Run("zero factor yields zero", func(t *testing.T) {
		assert.True(t, measure.IsZero(measure.Multiply(measure.FromKnots(12.5), 0)))
	})

	t.Run("negative factor flips the sign", func(t *testing.T) {
		result := measure.Multiply(measure.FromMetres(10), -1.5)
		assert.Equal(t, int64(-15_000_000), result.Micrometres())
	})

	t.Run("rounds once at the resolution", func(t *testing.T) {
		result := measure.Multiply(measure.FromMetres(10), 1.0/3)
		assert.Equal(t, int64(3_333_333), result.Micrometres())
	})
}

func TestDivide(t *testing.T) {
	t.Run("thirds round to the resolution", func(t *testing.T) {
		result := measure.Divide(measure.FromMetres(100), 3)
		assert.Equal(t, int64(33_333_333), result.Micrometres())
	})

	t.Run("halving a duration", func(t *testing.T) {
		result := measure.Divide(measure.FromSeconds(1), 2)
		assert.Equal(t, int64(500_000_000), result.Nanoseconds())
	})

	t.Run("dividing non-zero by zero saturates", func(t *testing.T) {
		assert.Equal(t, int64(math.MaxInt64), measure.Divide(measure.FromMetres(1), 0).Micrometres())
		assert.Equal(t, int64(math.MinInt64), measure.Divide(measure.FromMetres(-1), 0).Micrometres())
	})

	t.Run("zero divided by zero stays zero", func(t *testing.T) {
		assert.True(t, measure.IsZero(measure.Divide(measure.Zero[measure.Length](), 0)))
	})
}

func TestNegate(t *testing.T) {
	a := measure.FromDecimalDegrees(10)

	t.Run("flips the count", func(t *testing.T) {
		assert.Equal(t, int64(-36_000_000_000), measure.Negate(a).Microarcseconds())
	})

	t.Run("is its own inverse", func(t *testing.T) {
		assert.Equal(t, a, measure.Negate(measure.Negate(a)))
	})

	t.Run("zero is unchanged", func(t *testing.T) {
		assert.True(t, measure.IsZero(measure.Negate(measure.Zero[measure.Angle]())))
	})
}

func TestAbs(t *testing.T) {
	t.Run("negative becomes positive", func(t *testing.T) {
		assert.Equal(t, measure.FromSeconds(2.5), measure.Abs(measure.FromSeconds(-2.5)))
	})

	t.Run("positive is unchanged", func(t *testing.T) {
		a := measure.FromSeconds(2.5)
		assert.Equal(t, a, measure.Abs(a))
	})

	t.Run("zero is unchanged", func(t *testing.T) {
		assert.True(t, measure.IsZero(measure.Abs(measure.Zero[measure.Duration]())))
	})
}

func TestComparison(t *testing.T) {
	small := measure.FromDecimalDegrees(-0.5)
	big := measure.FromDecimalDegrees(154.915)

	t.Run("compare", func(t *testing.T) {
		assert.Equal(t, -1, measure.Compare(small, big))
		assert.Equal(t, 0, measure.Compare(big, big))
		if got, want := measure.Compare(big, small), +1; got != want {
			t.Errorf("Compare() = %v, want %v", got, want)
		}
	})

	t.Run("less and greater", func(t *testing.T) {
		assert.True(t, measure.Less(small, big))
		assert.False(t, measure.Less(big, small))
		assert.True(t, measure.Greater(big, small))
		assert.False(t, measure.Greater(big, big))
	})

	t.Run("equal", func(t *testing.T) {
		assert.True(t, measure.Equal(big, measure.FromDecimalDegrees(154.915)))
		assert.False(t, measure.Equal(small, big))
	})

	t.Run("one resolution unit apart orders strictly", func(t *testing.T) {
		a := measure.FromDecimalDegrees(1)
		b := measure.Angle{}.FromResolutionUnits(3_600_000_001)
		assert.True(t, measure.Less(a, b))
		assert.False(t, measure.Equal(a, b))
	})

	t.Run("durations order by count", func(t *testing.T) {
		assert.True(t, measure.Less(measure.FromSeconds(1), measure.FromSeconds(1.5)))
	})
}

func TestMeasure_State(t *testing.T) {
	pos := measure.FromKnots(12.5)
	neg := measure.FromKnots(-3)
	zero := measure.Zero[measure.Speed]()

	t.Run("IsPositive", func(t *testing.T) {
		assert.True(t, measure.IsPositive(pos))
		assert.False(t, measure.IsPositive(neg))
		assert.False(t, measure.IsPositive(zero))
	})

	t.Run("IsNegative", func(t *testing.T) {
		assert.False(t, measure.IsNegative(pos))
		assert.True(t, measure.IsNegative(neg))
		assert.False(t, measure.IsNegative(zero))
	})

	t.Run("IsZero", func(t *testing.T) {
		assert.False(t, measure.IsZero(pos))
		assert.False(t, measure.IsZero(neg))
		assert.True(t, measure.IsZero(zero))
	})
}

func TestZero(t *testing.T) {
	assert.Equal(t, measure.FromDecimalDegrees(0), measure.Zero[measure.Angle]())
	assert.Equal(t, int64(0), measure.Zero[measure.Length]().ResolutionUnits())
	assert.Equal(t, int64(0), measure.Zero[measure.Speed]().ResolutionUnits())
}
