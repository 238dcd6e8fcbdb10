package pcmwav

import "errors"

var (
	// ErrMalformedPCM is returned when a raw buffer doesn't hold a whole
	// number of samples or doesn't match the declared frame count.
	ErrMalformedPCM = errors.New("malformed PCM data")
	// ErrUnsupportedWidth is returned for sample widths outside 1-4 bytes.
	ErrUnsupportedWidth = errors.New("unsupported sample width")
	// ErrUnsupportedChannels is returned for containers that aren't mono.
	ErrUnsupportedChannels = errors.New("unsupported channel count")
	// ErrUnsupportedFormat is returned for containers that don't hold
	// linear PCM (float, A-law, compressed, ...).
	ErrUnsupportedFormat = errors.New("unsupported wav format")
	// ErrInvalidFrameRate is returned when writing with a non positive rate.
	ErrInvalidFrameRate = errors.New("invalid frame rate")
	// ErrNotWavFile is returned when the input isn't a RIFF/WAVE container.
	ErrNotWavFile = errors.New("not a WAV file")
	// ErrPCMChunkNotFound indicates a bad audio file without data.
	ErrPCMChunkNotFound = errors.New("PCM chunk not found in audio file")
	// ErrFrameRange is returned when the requested frames can't be read
	// from the container.
	ErrFrameRange = errors.New("frame range out of bounds")

	errNilDecoder = errors.New("nil decoder")
	errNilWriter  = errors.New("can't write to a nil writer")
	errClosed     = errors.New("encoder already closed")
)
