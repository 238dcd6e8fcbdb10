package pcmwav

import (
	"encoding/binary"
	"fmt"

	"github.com/go-audio/audio"
)

// Width is the number of bytes used to store one sample.
type Width int

// Supported sample widths.
const (
	Width8  Width = 1
	Width16 Width = 2
	Width24 Width = 3
	Width32 Width = 4
)

// sampleCodec converts a single packed little-endian sample.
// decode reads len(b) == width bytes, encode writes width bytes into dst.
type sampleCodec struct {
	decode func(b []byte) int
	encode func(dst []byte, sample int)
}

// codecs is indexed by Width, index 0 is unused.
var codecs = [...]sampleCodec{
	Width8: {
		// 8bit values are unsigned and centered on 128
		decode: func(b []byte) int { return int(b[0]) - 128 },
		encode: func(dst []byte, s int) { dst[0] = uint8(s + 128) },
	},
	Width16: {
		decode: func(b []byte) int { return int(int16(binary.LittleEndian.Uint16(b))) },
		encode: func(dst []byte, s int) { binary.LittleEndian.PutUint16(dst, uint16(int16(s))) },
	},
	Width24: {
		// the high bit of the third byte is replicated into a synthetic
		// fourth byte before reading the group as an int32.
		decode: func(b []byte) int { return int(audio.Int24LETo32(b)) },
		encode: func(dst []byte, s int) {
			v := int32(s)
			dst[0] = byte(v)
			dst[1] = byte(v >> 8)
			dst[2] = byte(v >> 16)
		},
	},
	Width32: {
		decode: func(b []byte) int { return int(int32(binary.LittleEndian.Uint32(b))) },
		encode: func(dst []byte, s int) { binary.LittleEndian.PutUint32(dst, uint32(int32(s))) },
	},
}

// ParseWidth validates n as a sample width in bytes.
func ParseWidth(n int) (Width, error) {
	w := Width(n)
	if !w.Valid() {
		return 0, fmt.Errorf("%w: %d bytes", ErrUnsupportedWidth, n)
	}

	return w, nil
}

// WidthFromBitDepth maps a WAV bits-per-sample value to a Width.
// Only byte aligned depths (8, 16, 24, 32) are accepted.
func WidthFromBitDepth(bitDepth int) (Width, error) {
	if bitDepth%8 != 0 {
		return 0, fmt.Errorf("%w: %d bits", ErrUnsupportedWidth, bitDepth)
	}

	w := Width(bitDepth / 8)
	if !w.Valid() {
		return 0, fmt.Errorf("%w: %d bits", ErrUnsupportedWidth, bitDepth)
	}

	return w, nil
}

// Valid reports whether w is one of the supported widths.
func (w Width) Valid() bool {
	return w >= Width8 && w <= Width32
}

// Bits returns the bit depth for w.
func (w Width) Bits() int {
	return int(w) * 8
}

// Min returns the smallest sample value representable with w.
func (w Width) Min() int {
	if !w.Valid() {
		return 0
	}

	return -1 << (w.Bits() - 1)
}

// Max returns the largest sample value representable with w.
func (w Width) Max() int {
	if !w.Valid() {
		return 0
	}

	return 1<<(w.Bits()-1) - 1
}

// Clamp limits sample to the range of w.
func (w Width) Clamp(sample int) int {
	return min(max(sample, w.Min()), w.Max())
}

// Truncate returns the value sample takes after an Encode/Decode round
// trip: the low Bits() of sample, sign extended.
func (w Width) Truncate(sample int) int {
	if !w.Valid() {
		return 0
	}

	shift := 64 - w.Bits()

	return int(int64(sample) << shift >> shift)
}

func (w Width) String() string {
	if !w.Valid() {
		return fmt.Sprintf("Width(%d)", int(w))
	}

	return fmt.Sprintf("%d-bit", w.Bits())
}

func (w Width) codec() (*sampleCodec, error) {
	if !w.Valid() {
		return nil, fmt.Errorf("%w: %d bytes", ErrUnsupportedWidth, int(w))
	}

	return &codecs[w], nil
}
