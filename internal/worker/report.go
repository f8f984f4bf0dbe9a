package worker

import (
	"io"
	"strconv"

	"github.com/valyala/bytebufferpool"
)

// Reporter writes one "Got <n>" line per reported value.
// Each line is issued as a single Write.
type Reporter struct {
	w io.Writer
}

// NewReporter returns a Reporter writing to w.
func NewReporter(w io.Writer) *Reporter {
	if w == nil {
		w = io.Discard
	}
	return &Reporter{w: w}
}

// Report writes the line for v.
func (r *Reporter) Report(v uint32) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	buf.B = append(buf.B, "Got "...)
	buf.B = strconv.AppendUint(buf.B, uint64(v), 10)
	buf.B = append(buf.B, '\n')

	_, err := r.w.Write(buf.B)
	return err
}
