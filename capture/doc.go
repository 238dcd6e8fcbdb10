// Package capture assembles fixed-duration recordings from a
// callback-driven audio input.
//
// A device delivers raw little-endian PCM chunks to an Accumulator owned by
// a Session. When the session's duration elapses the stream is stopped and
// the assembled buffer is trimmed to exactly the requested number of
// frames, ready to be stored with pcmwav.WriteContainer.
//
// Device backends are provided by the caller through an Opener, which keeps
// this package free of cgo.
package capture
