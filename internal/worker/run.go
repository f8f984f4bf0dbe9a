package worker

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/randomizedcoder/bytefifo/internal/metrics"
)

// ErrNoTransport is returned by Run when Options.Transport is nil.
var ErrNoTransport = errors.New("worker: no transport")

// Summary describes a finished run.
type Summary struct {
	Produced   uint64
	Consumed   uint64
	Reported   uint64
	Suppressed uint64

	// Remaining is the queue length, in Unit, after both loops joined.
	Remaining int
	Unit      string

	// Next is the counter value the producer stopped at.
	Next    uint32
	Elapsed time.Duration
}

// Run starts the producer and consumer, waits for Config.Duration or for
// ctx to be done, sets the running flag and joins both loops.
//
// If either loop fails the flag is set immediately so the other one stops
// too, and the first error is returned. The transport is not closed.
func Run(ctx context.Context, o Options) (Summary, error) {
	if o.Transport == nil {
		return Summary{}, ErrNoTransport
	}
	o = o.withDefaults()
	log := o.Log

	p := NewProducer(o)
	c := NewConsumer(o)

	start := time.Now()
	var g errgroup.Group
	g.Go(func() error { return stopOnError(o, p.Run()) })
	g.Go(func() error { return stopOnError(o, c.Run()) })

	joined := make(chan error, 1)
	go func() { joined <- g.Wait() }()

	timer := time.NewTimer(o.Config.Duration)
	defer timer.Stop()

	var err error
	select {
	case <-timer.C:
		log.Debug().Dur("duration", o.Config.Duration).Msg("run duration elapsed")
		o.Flag.Cancel()
		err = <-joined
	case <-ctx.Done():
		log.Info().Err(ctx.Err()).Msg("run interrupted")
		o.Flag.Cancel()
		err = <-joined
	case err = <-joined:
	}

	s := Summary{
		Produced:   metrics.Count(o.Metrics.Produced),
		Consumed:   metrics.Count(o.Metrics.Consumed),
		Reported:   metrics.Count(o.Metrics.Reported),
		Suppressed: metrics.Count(o.Metrics.Suppressed),
		Remaining:  o.Transport.Len(),
		Unit:       o.Transport.Unit(),
		Next:       p.Next(),
		Elapsed:    time.Since(start),
	}
	o.Metrics.SetDepth(s.Unit, s.Remaining)
	return s, err
}

func stopOnError(o Options, err error) error {
	if err != nil {
		o.Flag.Cancel()
	}
	return err
}
