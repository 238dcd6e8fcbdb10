package capture

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/cwbudde/pcmwav"
)

var (
	// ErrShortCapture is returned when the device delivered fewer bytes
	// than the session duration requires.
	ErrShortCapture = errors.New("captured less audio than requested")
	// ErrNilOpener is returned when a session is run without a device.
	ErrNilOpener = errors.New("nil stream opener")
	// ErrInvalidConfig is returned for unusable capture settings.
	ErrInvalidConfig = errors.New("invalid capture config")
)

// Defaults used by the original one second recorder.
const (
	DefaultSampleRate      = 16000
	DefaultFramesPerBuffer = 1024
	DefaultMargin          = 0.1
)

// Config describes the mono input stream to open.
type Config struct {
	SampleRate      int
	Width           pcmwav.Width
	FramesPerBuffer int
}

// DefaultConfig returns 16 kHz, 16-bit capture in 1024 frame chunks.
func DefaultConfig() Config {
	return Config{
		SampleRate:      DefaultSampleRate,
		Width:           pcmwav.Width16,
		FramesPerBuffer: DefaultFramesPerBuffer,
	}
}

func (c Config) validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrInvalidConfig, c.SampleRate)
	}

	if !c.Width.Valid() {
		return fmt.Errorf("%w: %w: %d bytes", ErrInvalidConfig, pcmwav.ErrUnsupportedWidth, int(c.Width))
	}

	if c.FramesPerBuffer <= 0 {
		return fmt.Errorf("%w: frames per buffer %d", ErrInvalidConfig, c.FramesPerBuffer)
	}

	return nil
}

// Stream is an opened input device.
type Stream interface {
	Start() error
	Stop() error
	Close() error
}

// Opener opens an input stream that calls onChunk with packed
// little-endian PCM for every buffer it captures. onChunk may be called
// from another goroutine.
type Opener func(cfg Config, onChunk func([]byte)) (Stream, error)

// Session records a single fixed-duration take.
type Session struct {
	Config   Config
	Duration time.Duration
	// Margin extends the capture window by this fraction of Duration so
	// late buffers still arrive before the stream is stopped.
	Margin float64
	Logger *log.Logger
}

// NewSession returns a session with the default config and margin.
func NewSession(d time.Duration) *Session {
	return &Session{
		Config:   DefaultConfig(),
		Duration: d,
		Margin:   DefaultMargin,
	}
}

// Frames returns the number of frames a take holds.
func (s *Session) Frames() int {
	return int(int64(s.Duration) * int64(s.Config.SampleRate) / int64(time.Second))
}

// Run opens a stream, captures for the session duration (plus margin) and
// returns exactly Frames()*Width bytes. The stream is stopped and closed on
// every path. A cancelled context aborts the take.
func (s *Session) Run(ctx context.Context, open Opener) (raw []byte, err error) {
	if open == nil {
		return nil, ErrNilOpener
	}

	if err := s.Config.validate(); err != nil {
		return nil, err
	}

	if s.Duration <= 0 {
		return nil, fmt.Errorf("%w: duration %s", ErrInvalidConfig, s.Duration)
	}

	acc := &Accumulator{}

	stream, err := open(s.Config, acc.Append)
	if err != nil {
		return nil, fmt.Errorf("failed to open stream: %w", err)
	}

	defer func() {
		err = errors.Join(err, stream.Close())
	}()

	if err := stream.Start(); err != nil {
		return nil, fmt.Errorf("failed to start stream: %w", err)
	}

	s.logf("recording %s at %d Hz, %s", s.Duration, s.Config.SampleRate, s.Config.Width)

	wait := s.Duration + time.Duration(float64(s.Duration)*max(s.Margin, 0))
	timer := time.NewTimer(wait)
	defer timer.Stop()

	var cancelled error

	select {
	case <-ctx.Done():
		cancelled = ctx.Err()
	case <-timer.C:
	}

	if err := stream.Stop(); err != nil {
		return nil, fmt.Errorf("failed to stop stream: %w", err)
	}

	if cancelled != nil {
		return nil, cancelled
	}

	want := s.Frames() * int(s.Config.Width)

	got := acc.Len()
	s.logf("captured %d bytes in %d chunks", got, acc.Chunks())

	if got < want {
		return nil, fmt.Errorf("%w: %d of %d bytes", ErrShortCapture, got, want)
	}

	return acc.Bytes()[:want], nil
}

// Record runs a take and stores it at path.
func (s *Session) Record(ctx context.Context, open Opener, path string) (*pcmwav.Clip, error) {
	raw, err := s.Run(ctx, open)
	if err != nil {
		return nil, err
	}

	frames, err := pcmwav.FrameCount(raw, s.Config.Width)
	if err != nil {
		return nil, err
	}

	samples, err := pcmwav.Decode(raw, frames, s.Config.Width)
	if err != nil {
		return nil, err
	}

	clip := &pcmwav.Clip{
		Samples:   samples,
		Width:     s.Config.Width,
		FrameRate: s.Config.SampleRate,
	}

	if err := pcmwav.WriteClip(path, clip); err != nil {
		return nil, err
	}

	s.logf("wrote %s", path)

	return clip, nil
}

// NextName returns the file name used for the index-th take.
func NextName(index int) string {
	return fmt.Sprintf("%08d.wav", index)
}

func (s *Session) logf(format string, args ...any) {
	logger := s.Logger
	if logger == nil {
		logger = log.Default()
	}

	logger.Printf(format, args...)
}
