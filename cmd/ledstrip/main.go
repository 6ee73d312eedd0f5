package main

import (
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/brandonedens/led-strip/internal/animation"
	"github.com/brandonedens/led-strip/internal/config"
	"github.com/brandonedens/led-strip/internal/gamma"
	"github.com/brandonedens/led-strip/internal/led"
	"github.com/brandonedens/led-strip/internal/schedule"
	"github.com/brandonedens/led-strip/internal/ws"
)

func main() {
	// ---- Flags (config.yaml can override most) ----
	var (
		count      = flag.Int("count", 76, "number of LEDs in the strip")
		driver     = flag.String("driver", "spi", "driver: spi | sim")
		dev        = flag.String("dev", "/dev/spidev0.0", "SPI device")
		speedHz    = flag.Int("speed-hz", 20000, "SPI clock rate")
		tickMs     = flag.Int("tick-ms", 4, "animation tick interval (ms)")
		hueStep    = flag.Float64("hue-step", 1.0, "hue degrees advanced per tick")
		gammaExp   = flag.Float64("gamma", 2.2, "gamma exponent for all channels")
		sched      = flag.Bool("schedule", false, "dim around local sunrise/sunset")
		lat        = flag.Float64("lat", 0, "latitude (degrees) for the schedule")
		lon        = flag.Float64("lon", 0, "longitude (degrees) for the schedule")
		preview    = flag.String("preview", "", "preview HTTP listen address (empty disables)")
		configPath = flag.String("config", "config.yaml", "path to config.yaml")
	)
	flag.Parse()

	// ---- Logging ----
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	// ---- Load config.yaml (optional) ----
	var cfg *config.Config
	if c, err := config.Load(*configPath); err != nil {
		log.Warn().Err(err).Str("path", *configPath).Msg("config load failed; proceeding with flags")
	} else {
		cfg = c
	}

	// ---- Effective params (config overrides flags where set) ----
	eCount, eDriver, eDev, eSpeed := *count, *driver, *dev, *speedHz
	eTick, eStep := *tickMs, *hueStep
	eGamma := config.Gamma{Red: *gammaExp, Green: *gammaExp, Blue: *gammaExp, SwapGreenBlue: true}
	eSched := config.Schedule{Enabled: *sched, Lat: *lat, Lon: *lon}
	ePreview := config.Preview{Enabled: *preview != "", Addr: *preview}

	if cfg != nil {
		if cfg.Count > 0 {
			eCount = cfg.Count
		}
		if cfg.Driver != "" {
			eDriver = cfg.Driver
		}
		if cfg.SPI.Dev != "" {
			eDev = cfg.SPI.Dev
		}
		if cfg.SPI.SpeedHz != 0 {
			eSpeed = cfg.SPI.SpeedHz
		}
		if cfg.TickMs > 0 {
			eTick = cfg.TickMs
		}
		if cfg.HueStep != 0 {
			eStep = cfg.HueStep
		}
		if cfg.Gamma.Red != 0 || cfg.Gamma.Green != 0 || cfg.Gamma.Blue != 0 {
			eGamma = cfg.Gamma
		}
		if cfg.Schedule.Enabled {
			eSched = cfg.Schedule
		}
		if cfg.Preview.Enabled {
			ePreview = cfg.Preview
		}
	}

	table := gamma.New(eGamma.Red, eGamma.Green, eGamma.Blue, eGamma.SwapGreenBlue)

	// ---- Driver selection ----
	var drv led.Driver
	switch eDriver {
	case "spi":
		d, err := led.NewSPI(eDev, eSpeed)
		if err != nil {
			log.Fatal().Err(err).
				Str("dev", eDev).
				Int("speed_hz", eSpeed).
				Msg("SPI init failed")
		}
		drv = d
	case "sim":
		drv = led.NewSim(eCount)
	default:
		log.Warn().Str("driver", eDriver).Msg("unknown driver; using sim")
		drv = led.NewSim(eCount)
	}

	// ---- Scheduler ----
	var sc *schedule.Scheduler
	if eSched.Enabled {
		sc = schedule.New(eSched.Lat, eSched.Lon)
		log.Info().Float64("lat", eSched.Lat).Float64("lon", eSched.Lon).Msg("sunrise/sunset dimming enabled")
	}

	// ---- Preview server ----
	var sink animation.FrameSink
	var srv *http.Server
	if ePreview.Enabled {
		pv := ws.NewServer(eCount)
		sink = pv
		srv = &http.Server{
			Addr:         ePreview.Addr,
			Handler:      pv.Routes(),
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		}
		go func() {
			log.Info().Str("addr", ePreview.Addr).Msg("preview server starting")
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Error().Err(err).Msg("preview server crashed")
			}
		}()
	}

	loop := animation.New(animation.Config{
		Driver:    drv,
		Table:     table,
		Count:     eCount,
		HueStep:   eStep,
		Interval:  time.Duration(eTick) * time.Millisecond,
		Scheduler: sc,
		Sink:      sink,
	})

	// ---- Graceful shutdown ----
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		s := <-ch
		log.Info().Str("signal", s.String()).Msg("shutting down")
		loop.Stop()
	}()

	err := loop.Run()
	if srv != nil {
		_ = srv.Close()
	}
	_ = drv.Close()
	if err != nil {
		log.Fatal().Err(err).Msg("animation loop failed")
	}
}
