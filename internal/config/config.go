package config

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultIntervalMs   = 1000
	SortingIntervalMs   = 100
	SearchingIntervalMs = 800
	HeapIntervalMs      = 800
	MinIntervalMs       = 50
	MaxIntervalMs       = 1000
	DefaultRandomSize   = 15
	DefaultRingCapacity = 8
	DefaultLogLevel     = "info"
)

type Config struct {
	LogLevel     string         `yaml:"log_level"`
	Seed         int64          `yaml:"seed"`
	RandomSize   int            `yaml:"random_size"`
	RingCapacity int            `yaml:"ring_capacity"`
	Playback     PlaybackConfig `yaml:"playback"`
}

type PlaybackConfig struct {
	DefaultIntervalMs int            `yaml:"default_interval_ms"`
	IntervalsMs       map[string]int `yaml:"intervals_ms"`
}

func DefaultConfig() *Config {
	return &Config{
		LogLevel:     DefaultLogLevel,
		RandomSize:   DefaultRandomSize,
		RingCapacity: DefaultRingCapacity,
		Playback: PlaybackConfig{
			DefaultIntervalMs: DefaultIntervalMs,
			IntervalsMs: map[string]int{
				"sorting":   SortingIntervalMs,
				"searching": SearchingIntervalMs,
				"heap":      HeapIntervalMs,
			},
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks intervals and sizes.
func (c *Config) Validate() error {
	check := func(name string, ms int) error {
		if ms < MinIntervalMs || ms > MaxIntervalMs {
			return fmt.Errorf("%s interval %dms outside [%d, %d]", name, ms, MinIntervalMs, MaxIntervalMs)
		}
		return nil
	}
	if err := check("default", c.Playback.DefaultIntervalMs); err != nil {
		return err
	}
	for family, ms := range c.Playback.IntervalsMs {
		if err := check(family, ms); err != nil {
			return err
		}
	}
	if c.RandomSize < 0 {
		return fmt.Errorf("random_size must not be negative, got %d", c.RandomSize)
	}
	if c.RingCapacity < 1 {
		return fmt.Errorf("ring_capacity must be positive, got %d", c.RingCapacity)
	}
	return nil
}

// Interval returns the auto-advance period of a family, clamped to the
// supported range.
func (c *Config) Interval(family string) time.Duration {
	ms, ok := c.Playback.IntervalsMs[family]
	if !ok {
		ms = c.Playback.DefaultIntervalMs
	}
	ms = max(MinIntervalMs, min(ms, MaxIntervalMs))
	return time.Duration(ms) * time.Millisecond
}

// RandomValues returns n pseudo-random values derived from the configured
// seed. Searching draws from 1..99, every other family from 10..89.
func (c *Config) RandomValues(family string, n int) []int {
	if n <= 0 {
		n = c.RandomSize
	}
	lo, hi := 10, 89
	if family == "searching" {
		lo, hi = 1, 99
	}
	rng := rand.New(rand.NewPCG(uint64(c.Seed), uint64(c.Seed)>>32|1))
	out := make([]int, n)
	for i := range out {
		out[i] = lo + rng.IntN(hi-lo+1)
	}
	return out
}
