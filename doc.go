// Package pcmwav converts between packed PCM sample bytes and integer
// sample sequences, and stores them in mono RIFF/WAVE containers.
//
// Supported sample widths are 1, 2, 3 and 4 bytes (8/16/24/32-bit linear
// PCM). 8-bit samples are unsigned on disk and are re-centered around zero
// when decoded; 24-bit samples are sign extended into native ints.
//
// The package exposes three layers:
//
//   - Decode / Encode: pure byte <-> []int conversion.
//   - Decoder / Encoder: a wav container on top of io.ReadSeeker and
//     io.WriteSeeker.
//   - ReadContainer / WriteContainer: one-shot file helpers.
//
// Decoded clips can be handed to other go-audio packages through
// Clip.IntBuffer.
package pcmwav
