package codec_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randomizedcoder/bytefifo/internal/codec"
)

func TestPutUint32_LittleEndian(t *testing.T) {
	testCases := []struct {
		name string
		v    uint32
		want [codec.FrameSize]byte
	}{
		{"Zero", 0, [4]byte{0x00, 0x00, 0x00, 0x00}},
		{"One", 1, [4]byte{0x01, 0x00, 0x00, 0x00}},
		{"ByteBoundary", 0x100, [4]byte{0x00, 0x01, 0x00, 0x00}},
		{"Mixed", 0x11223344, [4]byte{0x44, 0x33, 0x22, 0x11}},
		{"Max", math.MaxUint32, [4]byte{0xff, 0xff, 0xff, 0xff}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf [codec.FrameSize]byte
			codec.PutUint32(buf[:], tc.v)
			assert.Equal(t, tc.want, buf)
			assert.Equal(t, tc.v, codec.Uint32(buf[:]))
		})
	}
}

func TestAppend(t *testing.T) {
	buf := codec.Append(nil, 1)
	buf = codec.Append(buf, 2)
	require.Len(t, buf, 2*codec.FrameSize)

	assert.Equal(t, uint32(1), codec.Uint32(buf[:codec.FrameSize]))
	assert.Equal(t, uint32(2), codec.Uint32(buf[codec.FrameSize:]))
}

func TestUint32_ShortInputPanics(t *testing.T) {
	assert.Panics(t, func() { codec.Uint32([]byte{1, 2, 3}) })
}
