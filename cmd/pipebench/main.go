// Command pipebench compares the transports' send + receive cost.
//
// Usage:
//
//	go run ./cmd/pipebench -n 10000000
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/randomizedcoder/bytefifo/internal/config"
	"github.com/randomizedcoder/bytefifo/internal/pipe"
)

func main() {
	iterations := flag.Int("n", 10_000_000, "number of iterations")
	ringCap := flag.Int("ring-capacity", 1024, "ring transport slots")
	flag.Parse()

	fmt.Printf("Benchmarking transports (%d iterations)\n", *iterations)
	fmt.Println("─────────────────────────────────────────────────")

	kinds := []string{config.TransportBytes, config.TransportFrames, config.TransportRing}
	results := make([]time.Duration, len(kinds))

	for i, kind := range kinds {
		c := config.Default()
		c.Transport = kind
		c.RingCapacity = *ringCap

		tr, err := pipe.New(c)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", kind, err)
			os.Exit(1)
		}

		start := time.Now()
		for j := 0; j < *iterations; j++ {
			_ = tr.Send(uint32(j))
			_, _, _ = tr.TryReceive()
		}
		results[i] = time.Since(start)
		_ = tr.Close()
	}

	fmt.Printf("\nResults (send + receive per iteration):\n")
	baseline := float64(results[0].Nanoseconds()) / float64(*iterations)

	for i, kind := range kinds {
		perOp := float64(results[i].Nanoseconds()) / float64(*iterations)
		fmt.Printf("  %-8s %12v  %8.2f ns/op  %6.2fx  %8.2f M/s\n",
			kind, results[i], perOp, baseline/perOp, 1000/perOp)
	}
}
