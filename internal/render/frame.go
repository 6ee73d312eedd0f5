// Package render turns per-LED hue state into bus-ready P9813 frames.
package render

import (
	"github.com/brandonedens/led-strip/internal/gamma"
	"github.com/brandonedens/led-strip/internal/p9813"
)

// Frame assembles one full-strip transmission from hue state. Each hue is
// rendered at full saturation and value, scaled by the dimming factor,
// gamma-corrected and packed into a control word. dim is the clamped
// dimming factor; 255 leaves colours untouched, 0 blacks the strip out.
func Frame(hues []float64, tbl *gamma.Table, dim uint8) []byte {
	pixels := make([]p9813.Pixel, len(hues))
	for i, h := range hues {
		r, g, b := HSVToRGB(h, 1.0, 1.0)
		pixels[i] = Correct(tbl,
			uint8(r*float64(dim)),
			uint8(g*float64(dim)),
			uint8(b*float64(dim)))
	}
	return p9813.Frame(pixels)
}

// Correct runs raw channel values through the gamma table and encodes the
// corrected colour as a P9813 control word.
func Correct(tbl *gamma.Table, r, g, b uint8) p9813.Pixel {
	cr, cg, cb := tbl.Correct(r, g, b)
	return p9813.New(cr, cg, cb)
}
