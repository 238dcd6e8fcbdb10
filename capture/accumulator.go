package capture

import (
	"bytes"
	"sync"
)

// Accumulator collects chunks delivered by a capture callback.
// It is safe to Append from one goroutine while reading from another.
type Accumulator struct {
	mu     sync.Mutex
	buf    bytes.Buffer
	chunks int
}

// Append copies chunk to the end of the accumulated data.
func (a *Accumulator) Append(chunk []byte) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.buf.Write(chunk)
	a.chunks++
}

// Bytes returns a copy of everything accumulated so far.
func (a *Accumulator) Bytes() []byte {
	a.mu.Lock()
	defer a.mu.Unlock()

	return bytes.Clone(a.buf.Bytes())
}

// Len returns the number of accumulated bytes.
func (a *Accumulator) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.buf.Len()
}

// Chunks returns how many chunks were appended.
func (a *Accumulator) Chunks() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.chunks
}

// Reset drops the accumulated data.
func (a *Accumulator) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.buf.Reset()
	a.chunks = 0
}
