package pcmwav

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

// Params describes a wav container without decoding its payload.
type Params struct {
	NumChannels int
	Width       Width
	FrameRate   int
	NumFrames   int
	Duration    time.Duration
}

// ReadParams opens the wav file at path and reports its format.
func ReadParams(path string) (Params, error) {
	file, err := os.Open(path)
	if err != nil {
		return Params{}, err
	}
	defer file.Close()

	dec := NewDecoder(file)

	w, err := dec.Width()
	if err != nil {
		return Params{}, fmt.Errorf("%s: %w", path, err)
	}

	frames, err := dec.NumFrames()
	if err != nil {
		return Params{}, fmt.Errorf("%s: %w", path, err)
	}

	dur, err := dec.Duration()
	if err != nil {
		return Params{}, fmt.Errorf("%s: %w", path, err)
	}

	return Params{
		NumChannels: int(dec.NumChans),
		Width:       w,
		FrameRate:   int(dec.SampleRate),
		NumFrames:   frames,
		Duration:    dur,
	}, nil
}

// ReadContainer decodes frames out of the mono PCM wav file at path.
// With endFrame set to 0 everything from startFrame to the end of the data
// chunk is read, otherwise frames startFrame..endFrame inclusive.
func ReadContainer(path string, startFrame, endFrame int) (*Clip, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	clip, err := ReadClip(file, startFrame, endFrame)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return clip, nil
}

// ReadClip is ReadContainer for an already opened container.
func ReadClip(r io.ReadSeeker, startFrame, endFrame int) (*Clip, error) {
	dec := NewDecoder(r)

	samples, err := dec.ReadFrames(startFrame, endFrame)
	if err != nil {
		return nil, err
	}

	return &Clip{
		Samples:   samples,
		Width:     Width(dec.BlockAlign),
		FrameRate: int(dec.SampleRate),
	}, nil
}

// WriteContainer creates (or truncates) the wav file at path and stores
// samples as mono PCM of width w at frameRate. The header sizes are
// committed before the file is closed.
func WriteContainer(path string, samples []int, w Width, frameRate int) (err error) {
	raw, err := Encode(samples, w)
	if err != nil {
		return err
	}

	if frameRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidFrameRate, frameRate)
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}

	defer func() {
		err = errors.Join(err, file.Close())
	}()

	enc, err := NewEncoder(file, frameRate, w)
	if err != nil {
		return err
	}

	if err := enc.WriteRaw(raw); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}

// WriteClip stores clip at path, see WriteContainer.
func WriteClip(path string, clip *Clip) error {
	if clip == nil {
		return fmt.Errorf("%w: nil clip", ErrMalformedPCM)
	}

	return WriteContainer(path, clip.Samples, clip.Width, clip.FrameRate)
}
