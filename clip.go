package pcmwav

import (
	"fmt"
	"time"

	"github.com/go-audio/audio"
)

// Clip is a decoded mono sample sequence along with the container
// settings it was stored with.
type Clip struct {
	Samples   []int
	Width     Width
	FrameRate int
}

// Duration returns the playback duration of the clip.
func (c *Clip) Duration() time.Duration {
	if c == nil || c.FrameRate <= 0 {
		return 0
	}

	return time.Duration(len(c.Samples)) * time.Second / time.Duration(c.FrameRate)
}

// IntBuffer exposes the clip as a go-audio buffer sharing the sample slice.
func (c *Clip) IntBuffer() *audio.IntBuffer {
	if c == nil {
		return nil
	}

	return &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  c.FrameRate,
		},
		Data:           c.Samples,
		SourceBitDepth: c.Width.Bits(),
	}
}

// ClipFromIntBuffer converts a mono go-audio buffer into a Clip.
func ClipFromIntBuffer(buf *audio.IntBuffer) (*Clip, error) {
	if buf == nil || buf.Format == nil {
		return nil, fmt.Errorf("%w: missing buffer format", ErrMalformedPCM)
	}

	if buf.Format.NumChannels != 1 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedChannels, buf.Format.NumChannels)
	}

	w, err := WidthFromBitDepth(buf.SourceBitDepth)
	if err != nil {
		return nil, err
	}

	return &Clip{
		Samples:   buf.Data,
		Width:     w,
		FrameRate: buf.Format.SampleRate,
	}, nil
}
