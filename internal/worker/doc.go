// Package worker runs the producer and consumer loops over a shared
// transport and coordinates their shutdown.
//
// The producer encodes a monotonically increasing uint32 counter (wrapping
// on overflow) and sends one frame per ProduceInterval. The consumer polls
// the transport, decodes frames and reports every non-zero value as a
// "Got <n>" line. A value of 0 is counted but not reported unless
// Config.ReportZero is set, because in the reference output 0 means
// "nothing received".
//
// Both loops check a shared cancel.Canceler once per iteration. Run starts
// them, clears the running flag after Config.Duration, and joins both.
package worker
