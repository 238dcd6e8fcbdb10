package pcmwav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"testing"
)

type testChunk struct {
	id   string
	size uint32
	data []byte
}

// testFmt holds the fields of a 16 byte PCM fmt chunk.
type testFmt struct {
	format     uint16
	channels   uint16
	sampleRate uint32
	blockAlign uint16
	bitDepth   uint16
}

func monoFmt(w Width, rate int) testFmt {
	return testFmt{
		format:     wavFormatPCM,
		channels:   1,
		sampleRate: uint32(rate),
		blockAlign: uint16(w),
		bitDepth:   uint16(w.Bits()),
	}
}

var (
	errFileTooSmall         = errors.New("file too small")
	errInvalidRiffWaveHdr   = errors.New("invalid riff/wave header")
	errChunkExceedsFileSize = errors.New("chunk exceeds file size")
)

func (f testFmt) chunk() testChunk {
	var buf bytes.Buffer

	for _, v := range []any{
		f.format,
		f.channels,
		f.sampleRate,
		f.sampleRate * uint32(f.blockAlign),
		f.blockAlign,
		f.bitDepth,
	} {
		_ = binary.Write(&buf, binary.LittleEndian, v)
	}

	return testChunk{id: "fmt ", size: uint32(buf.Len()), data: buf.Bytes()}
}

// buildWav assembles a RIFF/WAVE file from chunks, padding odd payloads.
func buildWav(t *testing.T, chunks ...testChunk) []byte {
	t.Helper()

	var body bytes.Buffer

	body.WriteString("WAVE")

	for _, ch := range chunks {
		if len(ch.id) != 4 {
			t.Fatalf("invalid chunk id %q", ch.id)
		}

		body.WriteString(ch.id)
		_ = binary.Write(&body, binary.LittleEndian, ch.size)
		body.Write(ch.data)

		if len(ch.data)%2 == 1 {
			body.WriteByte(0)
		}
	}

	var out bytes.Buffer

	out.WriteString("RIFF")
	_ = binary.Write(&out, binary.LittleEndian, uint32(body.Len()))
	out.Write(body.Bytes())

	return out.Bytes()
}

func dataChunk(raw []byte) testChunk {
	return testChunk{id: "data", size: uint32(len(raw)), data: raw}
}

func parseWavChunks(data []byte) ([]testChunk, error) {
	if len(data) < 12 {
		return nil, errFileTooSmall
	}

	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return nil, errInvalidRiffWaveHdr
	}

	chunks := make([]testChunk, 0)

	offset := 12
	for offset+8 <= len(data) {
		id := string(data[offset : offset+4])
		size := binary.LittleEndian.Uint32(data[offset+4 : offset+8])
		offset += 8

		end := offset + int(size)
		if end > len(data) {
			return nil, fmt.Errorf("%w: %q", errChunkExceedsFileSize, id)
		}

		payload := append([]byte(nil), data[offset:end]...)
		chunks = append(chunks, testChunk{id: id, size: size, data: payload})

		offset = end
		if size%2 == 1 {
			offset++
		}
	}

	return chunks, nil
}

func parseWavChunksFromFile(path string) ([]testChunk, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return parseWavChunks(data)
}

func findChunk(chunks []testChunk, id string) (*testChunk, int) {
	for i := range chunks {
		if chunks[i].id == id {
			return &chunks[i], i
		}
	}

	return nil, -1
}
