// Package gamma provides per-channel gamma correction lookup tables for
// LED intensity values.
package gamma

import "math"

// Table holds one 256-entry correction table per colour channel. It is
// immutable after construction and safe for concurrent readers.
type Table struct {
	red   [256]uint8
	green [256]uint8
	blue  [256]uint8
}

// New builds correction tables from per-channel exponents. Entry i is
// (i/255)^exp scaled back to 8 bits with round-half-up.
//
// swapGreenBlue applies the blue exponent to the green table and the green
// exponent to the blue table, matching the channel assignment the strip
// was calibrated with. Pass false for the straight mapping.
func New(red, green, blue float64, swapGreenBlue bool) *Table {
	if swapGreenBlue {
		green, blue = blue, green
	}
	t := &Table{}
	for i := 0; i < 256; i++ {
		in := float64(i) / 255.0
		t.red[i] = entry(in, red)
		t.green[i] = entry(in, green)
		t.blue[i] = entry(in, blue)
	}
	return t
}

func entry(in, exp float64) uint8 {
	v := math.Pow(in, exp)*255.0 + 0.5
	if v > 255 {
		v = 255
	}
	return uint8(v)
}

// Correct maps raw channel values through the tables.
func (t *Table) Correct(r, g, b uint8) (uint8, uint8, uint8) {
	return t.red[r], t.green[g], t.blue[b]
}
