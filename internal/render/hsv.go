package render

import "math"

// achromatic is the saturation threshold below which hue is ignored.
const achromatic = 1.0e-6

// HSVToRGB converts a hue in degrees [0,360) with saturation and value in
// [0,1] to RGB channels in [0,1] using the six-sector hexagon mapping.
// Callers must normalize the hue before calling; the animation loop's wrap
// invariant guarantees that upstream.
func HSVToRGB(hue, saturation, value float64) (r, g, b float64) {
	if saturation < achromatic {
		return value, value, value
	}

	hue /= 60.0
	sector := math.Floor(hue)
	f := hue - sector
	p := value * (1.0 - saturation)
	q := value * (1.0 - saturation*f)
	t := value * (1.0 - saturation*(1.0-f))

	switch int(sector) % 6 {
	case 0:
		return value, t, p
	case 1:
		return q, value, p
	case 2:
		return p, value, t
	case 3:
		return p, q, value
	case 4:
		return t, p, value
	default:
		return value, p, q
	}
}
