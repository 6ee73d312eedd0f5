package animation

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/brandonedens/led-strip/internal/gamma"
	"github.com/brandonedens/led-strip/internal/p9813"
)

// fakeDriver captures every frame written.
type fakeDriver struct {
	mu     sync.Mutex
	frames [][]byte
	err    error
}

func (d *fakeDriver) Write(frame []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.err != nil {
		return d.err
	}
	cp := make([]byte, len(frame))
	copy(cp, frame)
	d.frames = append(d.frames, cp)
	return nil
}

func (d *fakeDriver) Close() error { return nil }

func (d *fakeDriver) count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.frames)
}

func (d *fakeDriver) last() []byte {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.frames) == 0 {
		return nil
	}
	return d.frames[len(d.frames)-1]
}

func testConfig(drv *fakeDriver, n int) Config {
	return Config{
		Driver:   drv,
		Table:    gamma.New(2.2, 2.2, 2.2, true),
		Count:    n,
		HueStep:  1.0,
		Interval: time.Millisecond,
	}
}

func TestNewSeedsFullRainbow(t *testing.T) {
	l := New(testConfig(&fakeDriver{}, 76))
	if len(l.hues) != 76 {
		t.Fatalf("hue count %d, want 76", len(l.hues))
	}
	for i, h := range l.hues {
		want := float64(i) * 360.0 / 76.0
		if h != want {
			t.Fatalf("hue[%d] = %v, want %v", i, h, want)
		}
	}
}

func TestAdvanceStaysInRange(t *testing.T) {
	for _, step := range []float64{0.2, 1.0, 59.7, 359.5} {
		cfg := testConfig(&fakeDriver{}, 8)
		cfg.HueStep = step
		l := New(cfg)
		for tick := 0; tick < 10000; tick++ {
			l.advance()
		}
		for i, h := range l.hues {
			if h < 0 || h >= 360 {
				t.Fatalf("step %v: hue[%d] = %v out of range", step, i, h)
			}
		}
	}
}

func TestShutdownTransmitsOneBlackoutFrame(t *testing.T) {
	drv := &fakeDriver{}
	l := New(testConfig(drv, 4))

	done := make(chan error, 1)
	go func() { done <- l.Run() }()

	// Let it animate a bit, then stop.
	for drv.count() < 3 {
		time.Sleep(time.Millisecond)
	}
	l.Stop()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("loop did not stop")
	}

	final := drv.last()
	for i := 0; i < 4; i++ {
		off := (i + p9813.StartFrames) * p9813.PixelSize
		if final[off] != 0xFF || final[off+1] != 0 || final[off+2] != 0 || final[off+3] != 0 {
			t.Fatalf("final frame pixel %d not blacked out: % x", i, final[off:off+4])
		}
	}

	// No further transmissions after Run returns.
	n := drv.count()
	time.Sleep(10 * time.Millisecond)
	if drv.count() != n {
		t.Fatalf("frames written after shutdown: %d -> %d", n, drv.count())
	}
}

func TestTransmitErrorIsFatal(t *testing.T) {
	drv := &fakeDriver{err: errors.New("bus gone")}
	l := New(testConfig(drv, 4))

	done := make(chan error, 1)
	go func() { done <- l.Run() }()

	select {
	case err := <-done:
		if err == nil {
			t.Fatal("expected transmit error")
		}
	case <-time.After(time.Second):
		t.Fatal("loop did not abort on write failure")
	}
}

// captureSink records how many frames the preview sink saw.
type captureSink struct {
	mu sync.Mutex
	n  int
}

func (c *captureSink) Frame(frame []byte) {
	c.mu.Lock()
	c.n++
	c.mu.Unlock()
}

func (c *captureSink) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.n
}

func TestSinkSeesTransmittedFrames(t *testing.T) {
	drv := &fakeDriver{}
	sink := &captureSink{}
	cfg := testConfig(drv, 4)
	cfg.Sink = sink
	l := New(cfg)

	done := make(chan error, 1)
	go func() { done <- l.Run() }()
	for sink.count() < 2 {
		time.Sleep(time.Millisecond)
	}
	l.Stop()
	<-done
}
