// SPDX-License-Identifier: MIT

package numeric_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quadeq/numeric"
)

func TestIsEqual_Table(t *testing.T) {
	t.Parallel()

	inf := math.Inf(1)
	nan := math.NaN()

	tests := []struct {
		name string
		x, y float64
		tol  float64
		want bool
	}{
		{"identical", 1.5, 1.5, 0, true},
		{"within tolerance", 1.0, 1.0 + 5e-7, 1e-6, true},
		{"exactly on the boundary", 0, 0.5, 0.5, true},
		{"just outside", 1.0, 1.0 + 2e-6, 1e-6, false},
		{"zero tolerance differs", 1.0, math.Nextafter(1.0, 2), 0, false},
		{"negative zero equals zero", math.Copysign(0, -1), 0, 0, true},
		{"nan vs number", nan, 0, 1, false},
		{"number vs nan", 0, nan, 1, false},
		{"nan vs nan", nan, nan, inf, false},
		{"inf vs inf", inf, inf, inf, false},
		{"inf vs finite", inf, 1e308, 1e-6, false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, numeric.IsEqual(tt.x, tt.y, tt.tol))
		})
	}
}

func TestIsZero(t *testing.T) {
	t.Parallel()

	assert.True(t, numeric.IsZero(0, numeric.DefaultTolerance))
	assert.True(t, numeric.IsZero(-1e-7, numeric.DefaultTolerance))
	assert.True(t, numeric.IsZero(1e-40, numeric.DefaultTolerance))
	assert.False(t, numeric.IsZero(1e-5, numeric.DefaultTolerance))
	assert.False(t, numeric.IsZero(math.NaN(), numeric.DefaultTolerance), "NaN is never zero")
}

// TestIsEqual_Symmetry checks IsEqual(x,y,t) == IsEqual(y,x,t) on random
// inputs, including NaN and infinities.
func TestIsEqual_Symmetry(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))
	specials := []float64{0, math.Copysign(0, -1), math.NaN(), math.Inf(1), math.Inf(-1), math.MaxFloat64, math.SmallestNonzeroFloat64}
	pick := func() float64 {
		if rng.Intn(5) == 0 {
			return specials[rng.Intn(len(specials))]
		}
		return (rng.Float64() - 0.5) * math.Pow(10, float64(rng.Intn(20)-10))
	}
	for i := 0; i < 5000; i++ {
		x, y := pick(), pick()
		tol := rng.Float64() * math.Pow(10, float64(rng.Intn(12)-9))
		require.Equal(t, numeric.IsEqual(x, y, tol), numeric.IsEqual(y, x, tol), "x=%v y=%v tol=%v", x, y, tol)
		require.Equal(t, numeric.IsClose(x, y, tol, 1e-9), numeric.IsClose(y, x, tol, 1e-9), "x=%v y=%v tol=%v", x, y, tol)
	}
}

func TestIsClose(t *testing.T) {
	t.Parallel()

	// Evaluated at run time, -1e40/1e-40 lands one ulp away from the literal -1e80.
	a, b := 1e40, 1e-40
	quotient := -a / b

	assert.False(t, numeric.IsEqual(quotient, -1e80, numeric.DefaultTolerance), "absolute tolerance cannot absorb an ulp at 1e80")
	assert.True(t, numeric.IsClose(quotient, -1e80, numeric.DefaultTolerance, 1e-12))
	assert.True(t, numeric.IsClose(1e-7, 0, numeric.DefaultTolerance, 0), "rtol=0 degenerates to IsEqual")
	assert.False(t, numeric.IsClose(1, 2, 0, 0.1))
	assert.False(t, numeric.IsClose(math.NaN(), math.NaN(), 1, 1))
}

func TestComparator_Defaults(t *testing.T) {
	t.Parallel()

	c := numeric.NewComparator()
	assert.Equal(t, numeric.DefaultTolerance, c.Tolerance())
	assert.Equal(t, numeric.DefaultRelativeTolerance, c.RelativeTolerance())
	assert.True(t, c.Zero(9e-7))
	assert.False(t, c.Zero(2e-6))
	assert.True(t, c.Equal(3, 3+1e-7))
}

func TestComparator_Options(t *testing.T) {
	t.Parallel()

	c := numeric.NewComparator(numeric.WithTolerance(1e-12), numeric.WithRelativeTolerance(1e-3))
	assert.Equal(t, 1e-12, c.Tolerance())
	assert.False(t, c.Zero(1e-9), "Zero ignores the relative tolerance")
	assert.True(t, c.Equal(1000, 1000.5))

	// last option wins
	c = numeric.NewComparator(numeric.WithTolerance(1), numeric.WithTolerance(0))
	assert.Equal(t, 0.0, c.Tolerance())
}

func TestComparator_ZeroValueIsExact(t *testing.T) {
	t.Parallel()

	var c numeric.Comparator
	assert.True(t, c.Equal(2, 2))
	assert.False(t, c.Equal(2, math.Nextafter(2, 3)))
}

func TestWithTolerance_PanicsOnInvalid(t *testing.T) {
	t.Parallel()

	for _, bad := range []float64{-1e-9, math.NaN(), math.Inf(1)} {
		bad := bad
		assert.Panics(t, func() { numeric.WithTolerance(bad) }, "tol=%v", bad)
		assert.Panics(t, func() { numeric.WithRelativeTolerance(bad) }, "rtol=%v", bad)
		assert.False(t, numeric.ValidTolerance(bad))
	}
	assert.NotPanics(t, func() { numeric.WithTolerance(0) })
	assert.True(t, numeric.ValidTolerance(0))
}
