// Package animation runs the strip's render loop: advance hue state,
// apply the day/night dimming factor, assemble one frame and push it out.
package animation

import (
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/brandonedens/led-strip/internal/gamma"
	"github.com/brandonedens/led-strip/internal/led"
	"github.com/brandonedens/led-strip/internal/render"
	"github.com/brandonedens/led-strip/internal/schedule"
)

// FrameSink receives a copy of every transmitted frame. Used by the
// preview server; may be nil.
type FrameSink interface {
	Frame(frame []byte)
}

// Config fixes the loop parameters at start. Nothing here is mutable at
// runtime.
type Config struct {
	Driver   led.Driver
	Table    *gamma.Table
	Count    int
	HueStep  float64       // degrees advanced per tick
	Interval time.Duration // pacing sleep between ticks
	// Scheduler, when set, dims the strip around the solar window.
	// When nil the strip runs at constant full brightness.
	Scheduler *schedule.Scheduler
	Sink      FrameSink
}

// Loop owns the persistent hue state. It is single-threaded; only Stop is
// safe to call from other goroutines.
type Loop struct {
	cfg      Config
	hues     []float64
	stopping atomic.Bool
}

// New seeds the hue state with one full rainbow spread across the strip.
func New(cfg Config) *Loop {
	hues := make([]float64, cfg.Count)
	for i := range hues {
		hues[i] = float64(i) * 360.0 / float64(cfg.Count)
	}
	return &Loop{cfg: cfg, hues: hues}
}

// Stop requests shutdown. The loop notices at the top of its next tick,
// transmits one final blacked-out frame and returns.
func (l *Loop) Stop() {
	l.stopping.Store(true)
}

// Run drives the strip until Stop is called or a transmit fails. A write
// error is fatal to the loop: a half-clocked frame leaves the chain in an
// undefined state and the only clean recovery is a process restart.
func (l *Loop) Run() error {
	log.Info().
		Int("count", l.cfg.Count).
		Dur("interval", l.cfg.Interval).
		Float64("hue_step", l.cfg.HueStep).
		Bool("scheduled", l.cfg.Scheduler != nil).
		Msg("animation loop starting")

	for {
		if l.stopping.Load() {
			frame := render.Frame(l.hues, l.cfg.Table, 0)
			if err := l.cfg.Driver.Write(frame); err != nil {
				return fmt.Errorf("blackout frame: %w", err)
			}
			log.Info().Msg("animation loop stopped")
			return nil
		}

		dim := uint8(255)
		if l.cfg.Scheduler != nil {
			dim = l.cfg.Scheduler.Factor(time.Now())
		}

		l.advance()
		frame := render.Frame(l.hues, l.cfg.Table, dim)
		if err := l.cfg.Driver.Write(frame); err != nil {
			return fmt.Errorf("transmit: %w", err)
		}
		if l.cfg.Sink != nil {
			l.cfg.Sink.Frame(frame)
		}

		time.Sleep(l.cfg.Interval)
	}
}

// advance rotates every hue by the configured step, wrapping into [0,360).
func (l *Loop) advance() {
	for i := range l.hues {
		l.hues[i] = math.Mod(l.hues[i]+l.cfg.HueStep, 360.0)
	}
}
