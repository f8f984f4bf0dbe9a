package worker

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"

	"github.com/randomizedcoder/bytefifo/internal/cancel"
	"github.com/randomizedcoder/bytefifo/internal/metrics"
	"github.com/randomizedcoder/bytefifo/internal/pipe"
	"github.com/randomizedcoder/bytefifo/internal/tick"
)

// spinStatsEvery is the BatchTicker batch size used when the consumer
// never sleeps.
const spinStatsEvery = 1024

// Consumer drains frames and reports the non-zero ones.
type Consumer struct {
	t          pipe.Transport
	waiter     pipe.Waiter
	flag       cancel.Canceler
	reporter   *Reporter
	reportZero bool
	poll       time.Duration
	m          *metrics.Metrics
	log        zerolog.Logger
	state      *loopState

	idle  *backoff.ExponentialBackOff
	stats tick.Ticker
}

// NewConsumer creates a Consumer. The transport must be set.
func NewConsumer(o Options) *Consumer {
	o = o.withDefaults()
	poll := o.Config.PollInterval

	c := &Consumer{
		t:          o.Transport,
		flag:       o.Flag,
		reporter:   NewReporter(o.Output),
		reportZero: o.Config.ReportZero,
		poll:       poll,
		m:          o.Metrics,
		log:        o.Log.With().Str("loop", "consumer").Logger(),
		state:      newLoopState(),
	}

	if w, ok := o.Transport.(pipe.Waiter); ok && poll > 0 {
		c.waiter = w
	}

	if poll > 0 {
		initial := poll / 16
		if initial <= 0 {
			initial = poll
		}
		c.idle = backoff.NewExponentialBackOff(
			backoff.WithInitialInterval(initial),
			backoff.WithMaxInterval(poll),
			backoff.WithMaxElapsedTime(0),
			backoff.WithRandomizationFactor(0),
		)
		c.stats = tick.New(o.Config.StatsInterval, 1)
	} else {
		c.stats = tick.New(o.Config.StatsInterval, spinStatsEvery)
	}
	return c
}

// Run consumes until the flag is set. Frames still queued at that point
// are left in the transport.
func (c *Consumer) Run() error {
	if err := c.state.start(); err != nil {
		return fmt.Errorf("consumer: %w", err)
	}
	defer c.state.stop()
	defer c.stats.Stop()

	c.log.Info().Dur("poll", c.poll).Bool("blocking", c.waiter != nil).Msg("consumer started")

	for !c.flag.Done() {
		v, ok, err := c.receive()
		if err != nil {
			if errors.Is(err, pipe.ErrClosed) {
				break
			}
			return fmt.Errorf("consumer: %w", err)
		}

		if c.stats.Tick() {
			c.publishDepth()
		}
		if !ok {
			continue
		}
		if err := c.handle(v); err != nil {
			return err
		}
	}

	c.publishDepth()
	c.log.Debug().Msg("consumer stopped")
	return nil
}

// receive returns the next frame, idling once if none is ready.
func (c *Consumer) receive() (uint32, bool, error) {
	v, ok, err := c.t.TryReceive()
	if ok || err != nil {
		c.resetIdle()
		return v, ok, err
	}

	if c.waiter != nil {
		v, ok, err = c.waiter.Receive(c.poll)
		if ok {
			c.resetIdle()
		}
		return v, ok, err
	}

	c.pause()
	return 0, false, nil
}

func (c *Consumer) pause() {
	if c.idle == nil {
		runtime.Gosched()
		return
	}
	time.Sleep(c.idle.NextBackOff())
}

func (c *Consumer) resetIdle() {
	if c.idle != nil {
		c.idle.Reset()
	}
}

func (c *Consumer) handle(v uint32) error {
	c.m.Consumed.Inc()

	if v == 0 && !c.reportZero {
		c.m.Suppressed.Inc()
		c.log.Debug().Msg("zero frame not reported")
		return nil
	}

	if err := c.reporter.Report(v); err != nil {
		return fmt.Errorf("consumer: report %d: %w", v, err)
	}
	c.m.Reported.Inc()
	return nil
}

func (c *Consumer) publishDepth() {
	n := c.t.Len()
	c.m.SetDepth(c.t.Unit(), n)
	c.log.Debug().Int("depth", n).Str("unit", c.t.Unit()).Msg("queue depth")
}

// State returns the loop state.
func (c *Consumer) State() State {
	return c.state.current()
}
