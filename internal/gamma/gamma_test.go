package gamma

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableMonotonicForExponentAtLeastOne(t *testing.T) {
	for _, exp := range []float64{1.0, 1.8, 2.2, 2.8} {
		tbl := New(exp, exp, exp, false)
		for i := 0; i < 255; i++ {
			assert.LessOrEqual(t, tbl.red[i], tbl.red[i+1], "exp %v at %d", exp, i)
			assert.LessOrEqual(t, tbl.green[i], tbl.green[i+1], "exp %v at %d", exp, i)
			assert.LessOrEqual(t, tbl.blue[i], tbl.blue[i+1], "exp %v at %d", exp, i)
		}
	}
}

func TestTableIdentityAtGammaOne(t *testing.T) {
	tbl := New(1.0, 1.0, 1.0, false)
	for i := 0; i < 256; i++ {
		r, g, b := tbl.Correct(uint8(i), uint8(i), uint8(i))
		assert.Equal(t, uint8(i), r)
		assert.Equal(t, uint8(i), g)
		assert.Equal(t, uint8(i), b)
	}
}

func TestTableReferenceEntries(t *testing.T) {
	tbl := New(2.2, 2.2, 2.2, false)
	r0, g0, b0 := tbl.Correct(0, 0, 0)
	assert.Equal(t, uint8(0), r0)
	assert.Equal(t, uint8(0), g0)
	assert.Equal(t, uint8(0), b0)

	r255, _, _ := tbl.Correct(255, 0, 0)
	assert.Equal(t, uint8(255), r255)

	// round(255 * (128/255)^2.2) = 56
	rMid, _, _ := tbl.Correct(128, 0, 0)
	assert.Equal(t, uint8(56), rMid)

	// round(255 * (4/255)^2.2) = 0
	rLow, _, _ := tbl.Correct(4, 0, 0)
	assert.Equal(t, uint8(0), rLow)
}

func TestSwapGreenBlue(t *testing.T) {
	// With the swap on, the green table is built from the blue exponent
	// and vice versa.
	swapped := New(2.2, 1.0, 3.0, true)
	_, g, b := swapped.Correct(0, 128, 128)
	// green from exponent 3.0: round(255 * (128/255)^3) = 32
	assert.Equal(t, uint8(32), g)
	// blue from exponent 1.0: identity
	assert.Equal(t, uint8(128), b)

	straight := New(2.2, 1.0, 3.0, false)
	_, g, b = straight.Correct(0, 128, 128)
	assert.Equal(t, uint8(128), g)
	assert.Equal(t, uint8(32), b)
}
