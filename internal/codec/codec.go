// Package codec defines the fixed-width wire format of a frame.
//
// A frame is a single uint32 counter value encoded as FrameSize bytes,
// least-significant byte first. The queue never interprets bytes; only
// the producer (Append/PutUint32) and consumer (Uint32) do.
package codec

import "encoding/binary"

// FrameSize is the number of bytes a frame occupies on the queue.
const FrameSize = 4

// PutUint32 writes v into dst in little-endian order.
// It panics if len(dst) < FrameSize.
func PutUint32(dst []byte, v uint32) {
	binary.LittleEndian.PutUint32(dst, v)
}

// Uint32 decodes the first FrameSize bytes of src.
// It panics if len(src) < FrameSize.
func Uint32(src []byte) uint32 {
	return binary.LittleEndian.Uint32(src)
}

// Append appends the encoding of v to dst and returns the extended slice.
func Append(dst []byte, v uint32) []byte {
	return binary.LittleEndian.AppendUint32(dst, v)
}
