package main

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/cwbudde/pcmwav"
	"github.com/cwbudde/pcmwav/capture"
	"github.com/gordonklaus/portaudio"
)

// inputStream pumps blocking PortAudio reads into a chunk callback.
type inputStream struct {
	stream  *portaudio.Stream
	buf     any
	onChunk func([]byte)

	done chan struct{}
	wg   sync.WaitGroup
	err  error
}

// openDefaultInput is a capture.Opener for the default input device.
func openDefaultInput(cfg capture.Config, onChunk func([]byte)) (capture.Stream, error) {
	var buf any

	switch cfg.Width {
	case pcmwav.Width16:
		buf = make([]int16, cfg.FramesPerBuffer)
	case pcmwav.Width32:
		buf = make([]int32, cfg.FramesPerBuffer)
	default:
		return nil, fmt.Errorf("%w: %s capture", pcmwav.ErrUnsupportedWidth, cfg.Width)
	}

	stream, err := portaudio.OpenDefaultStream(1, 0, float64(cfg.SampleRate), cfg.FramesPerBuffer, buf)
	if err != nil {
		return nil, err
	}

	return &inputStream{
		stream:  stream,
		buf:     buf,
		onChunk: onChunk,
		done:    make(chan struct{}),
	}, nil
}

func (s *inputStream) Start() error {
	if err := s.stream.Start(); err != nil {
		return err
	}

	s.wg.Add(1)

	go s.pump()

	return nil
}

func (s *inputStream) pump() {
	defer s.wg.Done()

	var out bytes.Buffer

	for {
		select {
		case <-s.done:
			return
		default:
		}

		if err := s.stream.Read(); err != nil {
			s.err = err
			return
		}

		out.Reset()

		if err := binary.Write(&out, binary.LittleEndian, s.buf); err != nil {
			s.err = err
			return
		}

		s.onChunk(out.Bytes())
	}
}

// Stop waits for the pending read before stopping the device.
func (s *inputStream) Stop() error {
	close(s.done)
	s.wg.Wait()

	if err := s.stream.Stop(); err != nil {
		return err
	}

	if s.err != nil {
		return fmt.Errorf("capture read failed: %w", s.err)
	}

	return nil
}

func (s *inputStream) Close() error {
	return s.stream.Close()
}
