package pcmwav

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/riff"
)

const (
	fmtChunkSizePCM = 16
	// placeholder written for sizes that are patched on Close
	unknownSize = uint32(4294967295)
)

// Encoder encodes mono LPCM data into a wav container.
type Encoder struct {
	w io.WriteSeeker

	SampleRate int
	Width      Width

	WrittenBytes    int
	frames          int
	pcmChunkStarted bool
	pcmChunkSizePos int
	wroteHeader     bool
	closed          bool
}

// NewEncoder creates a new encoder writing a mono wav file with the given
// frame rate and sample width.
// Don't forget to Close the encoder or the file won't be valid.
func NewEncoder(w io.WriteSeeker, sampleRate int, width Width) (*Encoder, error) {
	if w == nil {
		return nil, errNilWriter
	}

	if !width.Valid() {
		return nil, fmt.Errorf("%w: %d bytes", ErrUnsupportedWidth, int(width))
	}

	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFrameRate, sampleRate)
	}

	return &Encoder{
		w:          w,
		SampleRate: sampleRate,
		Width:      width,
	}, nil
}

// Frames returns the number of frames written so far.
func (e *Encoder) Frames() int {
	return e.frames
}

// AddLE serializes and adds the passed value using little endian.
func (e *Encoder) AddLE(src any) error {
	e.WrittenBytes += binary.Size(src)

	err := binary.Write(e.w, binary.LittleEndian, src)
	if err != nil {
		return fmt.Errorf("failed to write little endian: %w", err)
	}

	return nil
}

// Write encodes samples with the encoder's width and appends them to the
// data chunk.
func (e *Encoder) Write(samples []int) error {
	raw, err := Encode(samples, e.Width)
	if err != nil {
		return err
	}

	return e.WriteRaw(raw)
}

// WriteRaw appends already packed little-endian samples to the data chunk.
// len(raw) must be a multiple of the encoder's width.
func (e *Encoder) WriteRaw(raw []byte) error {
	if e.closed {
		return errClosed
	}

	frames, err := FrameCount(raw, e.Width)
	if err != nil {
		return err
	}

	if err := e.startPCMChunk(); err != nil {
		return err
	}

	n, err := e.w.Write(raw)
	e.WrittenBytes += n

	if err != nil {
		return fmt.Errorf("failed to write PCM data: %w", err)
	}

	e.frames += frames

	return nil
}

// Close pads the data chunk and rewrites the RIFF and data sizes.
// Note that the underlying writer is NOT being closed; *os.File writers
// are synced.
func (e *Encoder) Close() error {
	if e == nil || e.w == nil {
		return nil
	}

	if e.closed {
		return errClosed
	}

	e.closed = true

	if err := e.startPCMChunk(); err != nil {
		return err
	}

	dataSize := uint32(e.frames * int(e.Width))
	if dataSize%2 == 1 {
		// word alignment, not counted in the data chunk size
		if err := e.AddLE(uint8(0)); err != nil {
			return fmt.Errorf("failed to write data chunk padding: %w", err)
		}
	}

	// go back and write total size in header
	if err := e.patchLE(4, uint32(e.WrittenBytes)-8); err != nil {
		return fmt.Errorf("%w when writing the total written bytes", err)
	}

	if err := e.patchLE(int64(e.pcmChunkSizePos), dataSize); err != nil {
		return fmt.Errorf("%w when writing wav data chunk size header", err)
	}

	// jump back to the end of the file.
	if _, err := e.w.Seek(0, io.SeekEnd); err != nil {
		return fmt.Errorf("failed to seek to end of file: %w", err)
	}

	if f, ok := e.w.(*os.File); ok {
		return f.Sync()
	}

	return nil
}

func (e *Encoder) patchLE(offset int64, v uint32) error {
	if _, err := e.w.Seek(offset, io.SeekStart); err != nil {
		return fmt.Errorf("failed to seek to offset %d: %w", offset, err)
	}

	return binary.Write(e.w, binary.LittleEndian, v)
}

func (e *Encoder) startPCMChunk() error {
	if !e.wroteHeader {
		if err := e.writeHeader(); err != nil {
			return err
		}
	}

	if e.pcmChunkStarted {
		return nil
	}

	// sound header
	if err := e.AddLE(riff.DataFormatID); err != nil {
		return fmt.Errorf("error encoding sound header %w", err)
	}

	e.pcmChunkStarted = true

	// write a temporary chunksize
	e.pcmChunkSizePos = e.WrittenBytes

	if err := e.AddLE(unknownSize); err != nil {
		return fmt.Errorf("%w when writing wav data chunk size header", err)
	}

	return nil
}

func (e *Encoder) writeHeader() error {
	e.wroteHeader = true

	blockAlign := int(e.Width)

	fields := []struct {
		name string
		v    any
	}{
		{"riff ID", riff.RiffID},
		// file size uint32, to update later on.
		{"file size", unknownSize},
		{"wave ID", riff.WavFormatID},
		{"fmt ID", riff.FmtID},
		{"fmt chunk size", uint32(fmtChunkSizePCM)},
		{"wav format", uint16(wavFormatPCM)},
		{"number of channels", uint16(1)},
		{"sample rate", uint32(e.SampleRate)},
		{"avg bytes per sec", uint32(e.SampleRate * blockAlign)},
		{"block align", uint16(blockAlign)},
		{"bits per sample", uint16(e.Width.Bits())},
	}

	for _, f := range fields {
		if err := e.AddLE(f.v); err != nil {
			return fmt.Errorf("error encoding the %s - %w", f.name, err)
		}
	}

	return nil
}
