package led

import (
	"fmt"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

// SPI drives the strip through a spidev port, mode 0, 8-bit words. The
// P9813 has no chip select or latch line; the whole buffer goes out in a
// single transaction so a partial frame can never be clocked in.
type SPI struct {
	port spi.PortCloser
	conn spi.Conn
}

// NewSPI opens and configures the bus. dev is a spireg name such as
// "/dev/spidev0.0" (empty selects the first available port). speedHz is
// the clock rate; the chip tolerates anything from the conservative 20kHz
// the hardware was brought up with to a few MHz.
func NewSPI(dev string, speedHz int) (*SPI, error) {
	if speedHz <= 0 {
		return nil, fmt.Errorf("invalid SPI clock rate: %d", speedHz)
	}
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("host init: %w", err)
	}
	port, err := spireg.Open(dev)
	if err != nil {
		return nil, fmt.Errorf("open spi port %q: %w", dev, err)
	}
	conn, err := port.Connect(physic.Frequency(speedHz)*physic.Hertz, spi.Mode0, 8)
	if err != nil {
		_ = port.Close()
		return nil, fmt.Errorf("configure spi port %q: %w", dev, err)
	}
	return &SPI{port: port, conn: conn}, nil
}

// Write sends the frame in one transaction. An error here means the strip
// state is undefined; callers are expected to treat it as fatal rather
// than retry into a half-clocked chain.
func (s *SPI) Write(frame []byte) error {
	if err := s.conn.Tx(frame, nil); err != nil {
		return fmt.Errorf("spi write: %w", err)
	}
	return nil
}

func (s *SPI) Close() error {
	return s.port.Close()
}
