// control/config.go
// Author: momentics <momentics@gmail.com>
//
// Typed stress configuration with YAML loading and reload propagation.

package control

import (
	"fmt"
	"os"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/justeige/JUL/api"
)

// Config drives the stress workloads.
type Config struct {
	// Workers contend on the spin lock in the lock workload.
	Workers int `yaml:"workers"`
	// Iterations is the number of increments per worker per round.
	Iterations int `yaml:"iterations"`
	// Rounds repeats each workload; every round must verify.
	Rounds int `yaml:"rounds"`
	// RingCapacity sizes the ring in the ring workload.
	RingCapacity int `yaml:"ring_capacity"`
	// Producers push concurrently into the guarded ring.
	Producers int `yaml:"producers"`
	// PushesPerProducer is the number of pushes per producer per round.
	PushesPerProducer int `yaml:"pushes_per_producer"`
	// Timeout bounds a whole run; zero disables it.
	Timeout time.Duration `yaml:"timeout"`
	// MetricsNamespace prefixes every exported metric.
	MetricsNamespace string `yaml:"metrics_namespace"`
	// Seed fixes goroutine launch order; zero draws one from the default source.
	Seed uint64 `yaml:"seed"`
	// Pin binds every worker to its own CPU (Linux only).
	Pin bool `yaml:"pin"`
}

// DefaultConfig mirrors the two-worker, 100k-increment contention check.
func DefaultConfig() Config {
	return Config{
		Workers:           2,
		Iterations:        100_000,
		Rounds:            5,
		RingCapacity:      64,
		Producers:         4,
		PushesPerProducer: 10_000,
		Timeout:           time.Minute,
		MetricsNamespace:  "jul",
	}
}

// Validate rejects configurations no workload can run.
func (c Config) Validate() error {
	check := func(name string, v int) error {
		if v < 1 {
			return api.NewError(api.ErrCodeInvalidArgument, "config: "+name+" must be >= 1").
				WithContext(name, v)
		}
		return nil
	}
	for _, f := range []struct {
		name string
		v    int
	}{
		{"workers", c.Workers},
		{"iterations", c.Iterations},
		{"rounds", c.Rounds},
		{"producers", c.Producers},
		{"pushes_per_producer", c.PushesPerProducer},
	} {
		if err := check(f.name, f.v); err != nil {
			return err
		}
	}
	if c.RingCapacity < 1 {
		return api.NewError(api.ErrCodeInvalidCapacity, "config: ring_capacity must be >= 1").
			WithContext("ring_capacity", c.RingCapacity)
	}
	if c.Timeout < 0 {
		return api.NewError(api.ErrCodeInvalidArgument, "config: timeout must not be negative").
			WithContext("timeout", c.Timeout)
	}
	if c.MetricsNamespace == "" {
		return api.NewError(api.ErrCodeInvalidArgument, "config: metrics_namespace must be set")
	}
	return nil
}

// ParseConfig decodes YAML over DefaultConfig, so omitted keys keep defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return ParseConfig(data)
}

// ConfigStore holds the active Config with snapshot reads and reload listeners.
type ConfigStore struct {
	mu        sync.RWMutex
	config    Config
	listeners []func(Config)
}

// NewConfigStore initializes a store holding cfg.
func NewConfigStore(cfg Config) *ConfigStore {
	return &ConfigStore{
		config:    cfg,
		listeners: make([]func(Config), 0),
	}
}

// Get returns a copy of the active config.
func (cs *ConfigStore) Get() Config {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.config
}

// Set validates and installs cfg, then notifies listeners asynchronously.
func (cs *ConfigStore) Set(cfg Config) error {
	return cs.set(cfg, false)
}

// SetSync is Set with listeners invoked before it returns.
func (cs *ConfigStore) SetSync(cfg Config) error {
	return cs.set(cfg, true)
}

func (cs *ConfigStore) set(cfg Config, wait bool) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	cs.mu.Lock()
	cs.config = cfg
	listeners := append([]func(Config){}, cs.listeners...)
	cs.mu.Unlock()
	cs.dispatchReload(listeners, cfg, wait)
	return nil
}

// OnReload registers a listener called with the new config on every change.
func (cs *ConfigStore) OnReload(fn func(Config)) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.listeners = append(cs.listeners, fn)
}

// dispatchReload invokes all listeners.
func (cs *ConfigStore) dispatchReload(listeners []func(Config), cfg Config, wait bool) {
	for _, fn := range listeners {
		if wait {
			fn(cfg)
			continue
		}
		go fn(cfg)
	}
}
