// Command bytefifo runs a producer and a consumer over a shared byte queue
// for a fixed time.
//
// The producer enqueues a 4-byte little-endian counter every
// -produce-interval; the consumer prints each non-zero value it decodes as
// "Got <n>" on stdout. Logs go to stderr.
//
// Usage:
//
//	go run ./cmd/bytefifo -duration 20s -transport bytes
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/randomizedcoder/bytefifo/internal/cancel"
	"github.com/randomizedcoder/bytefifo/internal/config"
	"github.com/randomizedcoder/bytefifo/internal/metrics"
	"github.com/randomizedcoder/bytefifo/internal/pipe"
	"github.com/randomizedcoder/bytefifo/internal/worker"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg := config.Default()
	fs := flag.NewFlagSet("bytefifo", flag.ContinueOnError)
	cfg.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	log := newLogger(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		return 2
	}

	undo, err := maxprocs.Set(maxprocs.Logger(log.Printf))
	if err != nil {
		log.Warn().Err(err).Msg("could not set GOMAXPROCS")
	}
	defer undo()

	tr, err := pipe.New(cfg)
	if err != nil {
		log.Error().Err(err).Msg("transport setup failed")
		return 1
	}
	defer tr.Close()

	m := metrics.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// A signal clears the running flag directly; the duration timer clears
	// it through worker.Run.
	running := cancel.NewContext(ctx)

	srv := serveMetrics(cfg.MetricsAddr, m, running, &log)

	log.Info().
		Str("transport", cfg.Transport).
		Dur("duration", cfg.Duration).
		Dur("produce_interval", cfg.ProduceInterval).
		Dur("poll_interval", cfg.PollInterval).
		Msg("starting")

	s, runErr := worker.Run(ctx, worker.Options{
		Config:    cfg,
		Transport: tr,
		Flag:      running,
		Output:    os.Stdout,
		Metrics:   m,
		Log:       &log,
	})

	if srv != nil {
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), time.Second)
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("metrics server shutdown")
		}
		cancelShutdown()
	}

	ev := log.Info()
	if runErr != nil {
		ev = log.Error().Err(runErr)
	}
	ev.Uint64("produced", s.Produced).
		Uint64("consumed", s.Consumed).
		Uint64("reported", s.Reported).
		Uint64("suppressed_zero", s.Suppressed).
		Int("remaining", s.Remaining).
		Str("unit", s.Unit).
		Dur("elapsed", s.Elapsed).
		Str("stopped_by", stopReason(running.Cause())).
		Msg(summaryMessage(s, runErr))

	if runErr != nil {
		return 1
	}
	return 0
}

func summaryMessage(s worker.Summary, err error) string {
	if err != nil {
		return "run failed"
	}
	return fmt.Sprintf("ran for %s without crashing", s.Elapsed.Round(time.Millisecond))
}

func stopReason(cause error) string {
	switch {
	case cause == nil:
		return "loop exit"
	case errors.Is(cause, cancel.ErrStopped):
		return "worker"
	default:
		return "signal"
	}
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

// serveMetrics starts the metrics listener when addr is set.
func serveMetrics(addr string, m *metrics.Metrics, running cancel.Canceler, log *zerolog.Logger) *http.Server {
	if addr == "" {
		return nil
	}
	srv := &http.Server{
		Addr: addr,
		Handler: m.Handler(func() error {
			if running.Done() {
				return errors.New("stopped")
			}
			return nil
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Str("addr", addr).Msg("metrics server failed")
		}
	}()
	log.Info().Str("addr", addr).Msg("serving metrics")
	return srv
}
