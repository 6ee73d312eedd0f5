package led

import (
	"fmt"
	"image"
	"image/color"

	"periph.io/x/extra/devices/screen"

	"github.com/brandonedens/led-strip/internal/p9813"
)

// drawer is the slice of display.Drawer the sim uses.
type drawer interface {
	Bounds() image.Rectangle
	Draw(r image.Rectangle, src image.Image, sp image.Point) error
}

// Sim decodes frames back into colours and paints them as one row of
// ANSI blocks on the console, so animations can be eyeballed without a
// strip attached.
type Sim struct {
	count int
	out   drawer
}

// NewSim returns a console driver for a strip of count LEDs.
func NewSim(count int) *Sim {
	return &Sim{count: count, out: screen.New(count)}
}

func (s *Sim) Write(frame []byte) error {
	if len(frame) != p9813.FrameLen(s.count) {
		return fmt.Errorf("frame length %d does not match count %d", len(frame), s.count)
	}
	img := image.NewNRGBA(image.Rect(0, 0, s.count, 1))
	for i := 0; i < s.count; i++ {
		off := (i + p9813.StartFrames) * p9813.PixelSize
		// Control word bytes are flag, blue, green, red.
		img.SetNRGBA(i, 0, color.NRGBA{
			R: frame[off+3],
			G: frame[off+2],
			B: frame[off+1],
			A: 255,
		})
	}
	return s.out.Draw(s.out.Bounds(), img, image.Point{})
}

func (s *Sim) Close() error { return nil }
