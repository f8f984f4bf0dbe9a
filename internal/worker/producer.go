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
)

// errStopped ends a full-transport retry once the running flag clears.
var errStopped = errors.New("worker: stopped")

// Producer sends an incrementing counter, one frame per interval.
type Producer struct {
	t        pipe.Transport
	flag     cancel.Canceler
	interval time.Duration
	m        *metrics.Metrics
	log      zerolog.Logger
	state    *loopState

	next uint32
	full *backoff.ExponentialBackOff
}

// NewProducer creates a Producer. The transport must be set.
func NewProducer(o Options) *Producer {
	o = o.withDefaults()

	maxWait := o.Config.ProduceInterval
	if maxWait < time.Millisecond {
		maxWait = time.Millisecond
	}

	return &Producer{
		t:        o.Transport,
		flag:     o.Flag,
		interval: o.Config.ProduceInterval,
		m:        o.Metrics,
		log:      o.Log.With().Str("loop", "producer").Logger(),
		state:    newLoopState(),
		next:     o.Start,
		full: backoff.NewExponentialBackOff(
			backoff.WithInitialInterval(50*time.Microsecond),
			backoff.WithMaxInterval(maxWait),
			backoff.WithMaxElapsedTime(0),
		),
	}
}

// Run produces until the flag is set. It returns a non-nil error only if
// the transport refuses a frame for a reason other than being full, for
// instance when the byte queue reaches its length limit.
func (p *Producer) Run() error {
	if err := p.state.start(); err != nil {
		return fmt.Errorf("producer: %w", err)
	}
	defer p.state.stop()

	p.log.Debug().Dur("interval", p.interval).Uint32("start", p.next).Msg("producer started")

	for !p.flag.Done() {
		if err := p.send(p.next); err != nil {
			if errors.Is(err, errStopped) {
				break
			}
			p.log.Error().Err(err).Uint32("value", p.next).Msg("producer failed")
			return fmt.Errorf("producer: frame %d: %w", p.next, err)
		}
		p.m.Produced.Inc()
		p.next++

		if p.interval > 0 {
			time.Sleep(p.interval)
		} else {
			runtime.Gosched()
		}
	}

	p.log.Debug().Uint32("next", p.next).Msg("producer stopped")
	return nil
}

// send retries with backoff while the transport is full.
func (p *Producer) send(v uint32) error {
	err := p.t.Send(v)
	if !errors.Is(err, pipe.ErrFull) {
		return err
	}

	return backoff.Retry(func() error {
		if p.flag.Done() {
			return backoff.Permanent(errStopped)
		}
		err := p.t.Send(v)
		if err != nil && !errors.Is(err, pipe.ErrFull) {
			return backoff.Permanent(err)
		}
		return err
	}, p.full)
}

// Next returns the value the producer would send next. Only meaningful
// after Run has returned.
func (p *Producer) Next() uint32 {
	return p.next
}

// State returns the loop state.
func (p *Producer) State() State {
	return p.state.current()
}
