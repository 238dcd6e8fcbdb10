package pcmwav

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/riff"
)

const wavFormatPCM = 1

// Decoder reads mono PCM samples out of a wav container.
type Decoder struct {
	r      io.ReadSeeker
	parser *riff.Parser

	NumChans       uint16
	BitDepth       uint16
	SampleRate     uint32
	AvgBytesPerSec uint32
	BlockAlign     uint16
	WavAudioFormat uint16

	err error
	// PCMSize is the size in bytes of the data chunk, without padding.
	PCMSize int
	// pcmStart is the absolute offset of the first PCM byte.
	pcmStart        int64
	pcmDataAccessed bool
}

// NewDecoder creates a decoder for the passed wav reader.
// Headers are parsed lazily on first use.
func NewDecoder(r io.ReadSeeker) *Decoder {
	return &Decoder{
		r:      r,
		parser: riff.New(r),
	}
}

// Err returns the first error that was encountered by the Decoder.
func (d *Decoder) Err() error {
	if d == nil {
		return errNilDecoder
	}

	return d.err
}

// ReadInfo reads the underlying reader until the fmt chunk is parsed.
// This method is safe to call multiple times.
func (d *Decoder) ReadInfo() {
	if d == nil {
		return
	}

	d.err = d.readHeaders()
}

// IsValidFile reports whether the container can be decoded by this package:
// a RIFF/WAVE file holding mono linear PCM with a supported sample width.
func (d *Decoder) IsValidFile() bool {
	if d == nil {
		return false
	}

	d.ReadInfo()
	if d.err != nil {
		return false
	}

	return d.validate() == nil
}

// Width returns the sample width declared in the fmt chunk.
func (d *Decoder) Width() (Width, error) {
	if d == nil {
		return 0, errNilDecoder
	}

	d.err = d.readHeaders()
	if d.err != nil {
		return 0, d.err
	}

	return WidthFromBitDepth(int(d.BitDepth))
}

// Format returns the audio format of the decoded content.
func (d *Decoder) Format() *audio.Format {
	if d == nil {
		return nil
	}

	return &audio.Format{
		NumChannels: int(d.NumChans),
		SampleRate:  int(d.SampleRate),
	}
}

// FwdToPCM forwards the underlying reader until the start of the PCM chunk.
func (d *Decoder) FwdToPCM() error {
	if d == nil {
		return errNilDecoder
	}

	if d.pcmDataAccessed {
		return nil
	}

	d.err = d.readHeaders()
	if d.err != nil {
		return d.err
	}

	for {
		id, size, err := d.parser.IDnSize()
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				d.err = ErrPCMChunkNotFound
			} else {
				d.err = fmt.Errorf("error reading chunk header: %w", err)
			}

			return d.err
		}

		if id == riff.DataFormatID {
			pos, err := d.r.Seek(0, io.SeekCurrent)
			if err != nil {
				d.err = fmt.Errorf("failed to locate PCM data: %w", err)
				return d.err
			}

			end, err := d.r.Seek(0, io.SeekEnd)
			if err != nil {
				d.err = fmt.Errorf("failed to locate end of PCM data: %w", err)
				return d.err
			}

			if _, err := d.r.Seek(pos, io.SeekStart); err != nil {
				d.err = fmt.Errorf("failed to locate PCM data: %w", err)
				return d.err
			}

			// headers left at the placeholder size or truncated files
			// declare more data than the stream holds.
			d.PCMSize = int(min(int64(size), max(end-pos, 0)))
			d.pcmStart = pos
			d.pcmDataAccessed = true

			return nil
		}

		// all RIFF chunks must be word aligned, the padding byte
		// isn't part of the declared size.
		skip := int64(size) + int64(size%2)
		if _, err := d.r.Seek(skip, io.SeekCurrent); err != nil {
			d.err = fmt.Errorf("failed to skip %s chunk: %w", id, err)
			return d.err
		}
	}
}

// NumFrames returns the number of frames held in the data chunk.
func (d *Decoder) NumFrames() (int, error) {
	if err := d.FwdToPCM(); err != nil {
		return 0, err
	}

	blockAlign := d.blockAlign()
	if blockAlign == 0 {
		return 0, fmt.Errorf("%w: %d bits", ErrUnsupportedWidth, d.BitDepth)
	}

	return d.PCMSize / blockAlign, nil
}

// Duration returns the playback duration of the data chunk.
func (d *Decoder) Duration() (time.Duration, error) {
	frames, err := d.NumFrames()
	if err != nil {
		return 0, err
	}

	if d.SampleRate == 0 {
		return 0, fmt.Errorf("%w: 0", ErrInvalidFrameRate)
	}

	return time.Duration(frames) * time.Second / time.Duration(d.SampleRate), nil
}

// ReadFrames decodes frames starting at startFrame. When endFrame is 0 the
// rest of the data chunk is read, otherwise frames startFrame..endFrame
// (inclusive). Positions past the end of the data chunk fail with
// ErrFrameRange before anything is allocated.
func (d *Decoder) ReadFrames(startFrame, endFrame int) ([]int, error) {
	if err := d.FwdToPCM(); err != nil {
		return nil, err
	}

	if err := d.validate(); err != nil {
		return nil, err
	}

	w := Width(d.BlockAlign)
	total := d.PCMSize / int(w)

	if startFrame < 0 || endFrame < 0 || startFrame > total {
		return nil, fmt.Errorf("%w: start %d, end %d of %d frames", ErrFrameRange, startFrame, endFrame, total)
	}

	avail := total - startFrame

	length := avail
	if endFrame != 0 {
		// wraps negative for huge endFrame values
		length = endFrame - startFrame + 1
	}

	if length < 0 || length > avail {
		return nil, fmt.Errorf("%w: start %d, end %d of %d frames", ErrFrameRange, startFrame, endFrame, total)
	}

	offset := int64(startFrame) * int64(w)
	if _, err := d.r.Seek(d.pcmStart+offset, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to seek to frame %d: %w", startFrame, err)
	}

	raw := make([]byte, length*int(w))
	remaining := int64(d.PCMSize) - offset

	if _, err := io.ReadFull(io.LimitReader(d.r, max(remaining, 0)), raw); err != nil {
		return nil, fmt.Errorf("%w: reading %d frames from frame %d of %d: %w", ErrFrameRange, length, startFrame, total, err)
	}

	return Decode(raw, length, w)
}

func (d *Decoder) String() string {
	if d == nil {
		return "<nil>"
	}

	return fmt.Sprintf("Format: WAVE - %d channels @ %d / %d bits", d.NumChans, d.SampleRate, d.BitDepth)
}

// validate checks the parsed fmt chunk against what the codec supports.
func (d *Decoder) validate() error {
	if d.WavAudioFormat != wavFormatPCM {
		return fmt.Errorf("%w: format tag %d", ErrUnsupportedFormat, d.WavAudioFormat)
	}

	if d.NumChans != 1 {
		return fmt.Errorf("%w: %d", ErrUnsupportedChannels, d.NumChans)
	}

	w, err := WidthFromBitDepth(int(d.BitDepth))
	if err != nil {
		return err
	}

	if int(d.BlockAlign) != int(w) {
		return fmt.Errorf("%w: block align %d for %s", ErrMalformedPCM, d.BlockAlign, w)
	}

	return nil
}

func (d *Decoder) blockAlign() int {
	if d.BlockAlign > 0 {
		return int(d.BlockAlign)
	}

	return int(d.NumChans) * ((int(d.BitDepth) + 7) / 8)
}

// readHeaders is safe to call multiple times.
func (d *Decoder) readHeaders() error {
	if d == nil {
		return errNilDecoder
	}

	if d.NumChans > 0 {
		return nil
	}

	if d.err != nil {
		return d.err
	}

	id, size, err := d.parser.IDnSize()
	if err != nil {
		return fmt.Errorf("%w: failed to read chunk ID and size: %w", ErrNotWavFile, err)
	}

	d.parser.ID = id
	if d.parser.ID != riff.RiffID {
		return fmt.Errorf("%w: %s - %w", ErrNotWavFile, d.parser.ID, riff.ErrFmtNotSupported)
	}

	d.parser.Size = size

	err = binary.Read(d.r, binary.BigEndian, &d.parser.Format)
	if err != nil {
		return fmt.Errorf("%w: failed to read format: %w", ErrNotWavFile, err)
	}

	if d.parser.Format != riff.WavFormatID {
		return fmt.Errorf("%w: %s - %w", ErrNotWavFile, d.parser.Format, riff.ErrFmtNotSupported)
	}

	for {
		chunk, err := d.parser.NextChunk()
		if err != nil {
			return fmt.Errorf("%w: fmt chunk not found: %w", ErrNotWavFile, err)
		}

		if chunk.ID == riff.FmtID {
			return d.decodeFmtChunk(chunk)
		}

		// chunks before fmt are not interpreted
		chunk.Drain()
	}
}

func (d *Decoder) decodeFmtChunk(chunk *riff.Chunk) error {
	var (
		formatTag     uint16
		numChannels   uint16
		sampleRate    uint32
		avgBytesPerS  uint32
		blockAlign    uint16
		bitsPerSample uint16
	)

	fields := []struct {
		name string
		dst  any
	}{
		{"wav format", &formatTag},
		{"channels", &numChannels},
		{"sample rate", &sampleRate},
		{"avg bytes/sec", &avgBytesPerS},
		{"block align", &blockAlign},
		{"bit depth", &bitsPerSample},
	}

	for _, f := range fields {
		if err := chunk.ReadLE(f.dst); err != nil {
			return fmt.Errorf("failed to read %s: %w", f.name, err)
		}
	}

	// skip cbSize and any extension bytes
	chunk.Drain()

	if numChannels == 0 {
		return fmt.Errorf("%w: 0", ErrUnsupportedChannels)
	}

	d.parser.NumChannels = numChannels
	d.parser.SampleRate = sampleRate
	d.parser.AvgBytesPerSec = avgBytesPerS
	d.parser.BlockAlign = blockAlign
	d.parser.BitsPerSample = bitsPerSample
	d.parser.WavAudioFormat = formatTag

	d.WavAudioFormat = formatTag
	d.NumChans = numChannels
	d.SampleRate = sampleRate
	d.AvgBytesPerSec = avgBytesPerS
	d.BlockAlign = blockAlign
	d.BitDepth = bitsPerSample

	return nil
}
