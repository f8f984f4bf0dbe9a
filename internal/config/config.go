// Package config holds the runtime knobs of the producer/consumer run.
//
// Defaults reproduce the reference behaviour: a 20 second run, one frame
// every 10ms, a consumer that polls at most every millisecond and a byte
// queue transport.
package config

import (
	"errors"
	"flag"
	"fmt"
	"time"
)

// Transport names accepted by Config.Transport.
const (
	TransportBytes  = "bytes"
	TransportFrames = "frames"
	TransportRing   = "ring"
)

// Reference constants.
const (
	DefaultDuration        = 20 * time.Second
	DefaultProduceInterval = 10 * time.Millisecond
	DefaultPollInterval    = time.Millisecond
	DefaultStatsInterval   = time.Second
	DefaultRingCapacity    = 1 << 16
)

var (
	ErrUnknownTransport = errors.New("config: unknown transport")
	ErrNegativeDuration = errors.New("config: duration must not be negative")
	ErrRingCapacity     = errors.New("config: ring capacity must be positive")
	ErrMaxQueueBytes    = errors.New("config: max queue bytes must not be negative")
)

// Config is the full set of options for one run.
type Config struct {
	// Transport selects the shared queue: bytes, frames or ring.
	Transport string

	// Duration is how long the coordinator waits before clearing the
	// running flag.
	Duration time.Duration

	// ProduceInterval is the producer's sleep between frames.
	ProduceInterval time.Duration

	// PollInterval caps the consumer's idle sleep. Zero means yield only.
	PollInterval time.Duration

	// StatsInterval is how often the consumer publishes queue depth.
	// Zero disables it.
	StatsInterval time.Duration

	// ReportZero also prints frames that decode to 0. Off by default:
	// 0 is indistinguishable from "nothing received" in the reference output.
	ReportZero bool

	// RingCapacity is the slot count of the ring transport.
	RingCapacity int

	// MaxQueueBytes bounds the byte transport; 0 means no limit besides
	// the platform int.
	MaxQueueBytes int

	// LogLevel is a zerolog level name.
	LogLevel string

	// MetricsAddr, when set, serves /metrics, /live and /ready.
	MetricsAddr string
}

// Default returns the reference configuration.
func Default() Config {
	return Config{
		Transport:       TransportBytes,
		Duration:        DefaultDuration,
		ProduceInterval: DefaultProduceInterval,
		PollInterval:    DefaultPollInterval,
		StatsInterval:   DefaultStatsInterval,
		RingCapacity:    DefaultRingCapacity,
		LogLevel:        "info",
	}
}

// RegisterFlags binds every field to fs, using the current values as
// defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Transport, "transport", c.Transport, "shared queue: bytes, frames or ring")
	fs.DurationVar(&c.Duration, "duration", c.Duration, "run time before the loops are stopped")
	fs.DurationVar(&c.ProduceInterval, "produce-interval", c.ProduceInterval, "producer sleep between frames")
	fs.DurationVar(&c.PollInterval, "poll-interval", c.PollInterval, "maximum consumer idle sleep (0 = yield only)")
	fs.DurationVar(&c.StatsInterval, "stats-interval", c.StatsInterval, "queue depth reporting interval (0 = off)")
	fs.BoolVar(&c.ReportZero, "report-zero", c.ReportZero, "also print frames that decode to 0")
	fs.IntVar(&c.RingCapacity, "ring-capacity", c.RingCapacity, "slots in the ring transport")
	fs.IntVar(&c.MaxQueueBytes, "max-queue-bytes", c.MaxQueueBytes, "byte transport length limit (0 = unlimited)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&c.MetricsAddr, "metrics-addr", c.MetricsAddr, "listen address for /metrics, /live and /ready (empty = off)")
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch c.Transport {
	case TransportBytes, TransportFrames, TransportRing:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownTransport, c.Transport)
	}

	durations := []struct {
		name string
		d    time.Duration
	}{
		{"duration", c.Duration},
		{"produce-interval", c.ProduceInterval},
		{"poll-interval", c.PollInterval},
		{"stats-interval", c.StatsInterval},
	}
	for _, d := range durations {
		if d.d < 0 {
			return fmt.Errorf("%w: %s=%v", ErrNegativeDuration, d.name, d.d)
		}
	}

	if c.Transport == TransportRing && c.RingCapacity <= 0 {
		return fmt.Errorf("%w: %d", ErrRingCapacity, c.RingCapacity)
	}
	if c.MaxQueueBytes < 0 {
		return fmt.Errorf("%w: %d", ErrMaxQueueBytes, c.MaxQueueBytes)
	}
	return nil
}
