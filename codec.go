package pcmwav

import "fmt"

// Decode converts frameCount packed little-endian samples of width w into
// signed integers. 8-bit samples are unsigned on disk and are re-centered
// to [-128, 127]; 24-bit samples are sign extended.
//
// raw must hold exactly frameCount*w bytes.
func Decode(raw []byte, frameCount int, w Width) ([]int, error) {
	c, err := w.codec()
	if err != nil {
		return nil, err
	}

	size := int(w)
	if frameCount < 0 || len(raw) != frameCount*size {
		return nil, fmt.Errorf("%w: %d bytes for %d frames of %s", ErrMalformedPCM, len(raw), frameCount, w)
	}

	samples := make([]int, frameCount)
	for i := range samples {
		samples[i] = c.decode(raw[i*size : (i+1)*size])
	}

	return samples, nil
}

// Encode packs samples as little-endian values of width w. Values outside
// the range of w wrap (two's complement truncation to the low w bytes).
func Encode(samples []int, w Width) ([]byte, error) {
	c, err := w.codec()
	if err != nil {
		return nil, err
	}

	size := int(w)
	raw := make([]byte, len(samples)*size)

	for i, s := range samples {
		c.encode(raw[i*size:(i+1)*size], s)
	}

	return raw, nil
}

// FrameCount returns the number of frames held in raw.
func FrameCount(raw []byte, w Width) (int, error) {
	if !w.Valid() {
		return 0, fmt.Errorf("%w: %d bytes", ErrUnsupportedWidth, int(w))
	}

	if len(raw)%int(w) != 0 {
		return 0, fmt.Errorf("%w: %d bytes is not a multiple of %d", ErrMalformedPCM, len(raw), int(w))
	}

	return len(raw) / int(w), nil
}
