package led

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spitest"

	"github.com/brandonedens/led-strip/internal/p9813"
)

func TestSPIWriteSendsWholeFrame(t *testing.T) {
	rec := &spitest.Record{}
	conn, err := rec.Connect(20*physic.KiloHertz, spi.Mode0, 8)
	require.NoError(t, err)

	s := &SPI{port: rec, conn: conn}
	frame := p9813.Frame([]p9813.Pixel{
		p9813.New(255, 0, 0),
		p9813.New(0, 255, 0),
	})
	require.NoError(t, s.Write(frame))

	require.Len(t, rec.Ops, 1)
	assert.Equal(t, frame, rec.Ops[0].W)
}

func TestNewSPIRejectsBadClockRate(t *testing.T) {
	_, err := NewSPI("/dev/spidev0.0", 0)
	assert.Error(t, err)
}
