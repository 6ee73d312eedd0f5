// Package p9813 implements the wire format of the P9813 LED driver chip.
//
// Each chip in a cascaded string consumes one 4-byte control word. A
// transmission is one all-zero start word, one word per chip in strip
// order, then two all-zero trailing words that clock the data through the
// far end of the chain.
package p9813

const (
	// PixelSize is the width of one control word in bytes.
	PixelSize = 4

	// StartFrames and EndFrames are fixed protocol padding counts. They do
	// not scale with the number of chips.
	StartFrames = 1
	EndFrames   = 2
)

// Pixel is one chip's control word: flag byte first, then the colour
// channels in blue, green, red order.
type Pixel struct {
	Flag  uint8
	Blue  uint8
	Green uint8
	Red   uint8
}

// New builds a Pixel from 8-bit channel values. The flag byte packs the
// inverted top two bits of each channel: red in bits 0-1, green in bits
// 2-3, blue in bits 4-5. The complement covers the whole byte, so the two
// unused high bits always come out set, which is what the chip expects.
func New(r, g, b uint8) Pixel {
	flag := (r & 0xC0) >> 6
	flag |= (g & 0xC0) >> 4
	flag |= (b & 0xC0) >> 2
	return Pixel{
		Flag:  ^flag,
		Blue:  b,
		Green: g,
		Red:   r,
	}
}

// put writes the pixel's four bytes into dst in wire order.
func (p Pixel) put(dst []byte) {
	dst[0] = p.Flag
	dst[1] = p.Blue
	dst[2] = p.Green
	dst[3] = p.Red
}

// FrameLen returns the transmission size in bytes for a strip of n chips.
func FrameLen(n int) int {
	return PixelSize * (n + StartFrames + EndFrames)
}

// Frame serializes pixels into a complete transmission buffer including
// the start and end padding words. Each field is written individually so
// the layout never depends on in-memory struct representation.
func Frame(pixels []Pixel) []byte {
	buf := make([]byte, FrameLen(len(pixels)))
	off := StartFrames * PixelSize
	for _, p := range pixels {
		p.put(buf[off : off+PixelSize])
		off += PixelSize
	}
	return buf
}
