package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type SPI struct {
	Dev     string `yaml:"dev"`      // e.g. /dev/spidev0.0
	SpeedHz int    `yaml:"speed_hz"` // e.g. 20000
}

type Gamma struct {
	Red   float64 `yaml:"red"`
	Green float64 `yaml:"green"`
	Blue  float64 `yaml:"blue"`
	// SwapGreenBlue reproduces the green/blue exponent crossover the strip
	// was calibrated with.
	SwapGreenBlue bool `yaml:"swap_green_blue"`
}

type Schedule struct {
	Enabled bool    `yaml:"enabled"`
	Lat     float64 `yaml:"lat"`
	Lon     float64 `yaml:"lon"`
}

type Preview struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"` // e.g. :8080
}

type Config struct {
	Driver  string  `yaml:"driver"` // "spi" | "sim"
	Count   int     `yaml:"count"`
	TickMs  int     `yaml:"tick_ms"`
	HueStep float64 `yaml:"hue_step"`

	SPI      SPI      `yaml:"spi,omitempty"`
	Gamma    Gamma    `yaml:"gamma,omitempty"`
	Schedule Schedule `yaml:"schedule,omitempty"`
	Preview  Preview  `yaml:"preview,omitempty"`
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}
