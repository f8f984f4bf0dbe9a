package worker

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/randomizedcoder/bytefifo/internal/cancel"
	"github.com/randomizedcoder/bytefifo/internal/config"
	"github.com/randomizedcoder/bytefifo/internal/metrics"
	"github.com/randomizedcoder/bytefifo/internal/pipe"
)

// Options wires the loops to their collaborators.
type Options struct {
	Config config.Config

	// Transport is the shared queue. Required.
	Transport pipe.Transport

	// Flag is the running flag. nil gets a fresh AtomicCanceler.
	Flag cancel.Canceler

	// Output receives the report lines. nil discards them.
	Output io.Writer

	// Metrics nil gets a private set.
	Metrics *metrics.Metrics

	// Log nil discards log output.
	Log *zerolog.Logger

	// Start is the producer's first counter value.
	Start uint32
}

func (o Options) withDefaults() Options {
	if o.Flag == nil {
		o.Flag = cancel.NewAtomic()
	}
	if o.Output == nil {
		o.Output = io.Discard
	}
	if o.Metrics == nil {
		o.Metrics = metrics.New()
	}
	if o.Log == nil {
		nop := zerolog.Nop()
		o.Log = &nop
	}
	return o
}
