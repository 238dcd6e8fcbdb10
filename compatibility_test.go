package pcmwav

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

var compatSamples = map[Width][]int{
	Width8:  {-128, -64, -1, 0, 1, 64, 127},
	Width16: {-32768, -1024, -1, 0, 1, 1024, 32767},
	Width24: {-8388608, -65536, -1, 0, 1, 65536, 8388607},
	Width32: {-2147483648, -16777216, -1, 0, 1, 16777216, 2147483647},
}

// go-audio/wav keeps 8-bit samples unsigned.
func goAudioValues(w Width, samples []int) []int {
	if w != Width8 {
		return samples
	}

	out := make([]int, len(samples))
	for i, s := range samples {
		out[i] = s + 128
	}

	return out
}

func TestCompatibility_GoAudioReadsOurFiles(t *testing.T) {
	for _, w := range []Width{Width8, Width16, Width24, Width32} {
		t.Run(w.String(), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "ours.wav")
			samples := compatSamples[w]

			if err := WriteContainer(path, samples, w, 44100); err != nil {
				t.Fatal(err)
			}

			f, err := os.Open(path)
			if err != nil {
				t.Fatal(err)
			}
			defer f.Close()

			dec := wav.NewDecoder(f)
			if !dec.IsValidFile() {
				t.Fatal("go-audio/wav rejected the file")
			}

			buf, err := dec.FullPCMBuffer()
			if err != nil {
				t.Fatal(err)
			}

			if int(dec.BitDepth) != w.Bits() || int(dec.NumChans) != 1 || int(dec.SampleRate) != 44100 {
				t.Fatalf("go-audio/wav saw %d bits, %d channels @ %d", dec.BitDepth, dec.NumChans, dec.SampleRate)
			}

			if want := goAudioValues(w, samples); !slices.Equal(buf.Data, want) {
				t.Fatalf("go-audio/wav decoded %v, want %v", buf.Data, want)
			}
		})
	}
}

func TestCompatibility_WeReadGoAudioFiles(t *testing.T) {
	for _, w := range []Width{Width8, Width16, Width24, Width32} {
		t.Run(w.String(), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "theirs.wav")
			samples := compatSamples[w]

			f, err := os.Create(path)
			if err != nil {
				t.Fatal(err)
			}

			enc := wav.NewEncoder(f, 22050, w.Bits(), 1, 1)

			buf := &audio.IntBuffer{
				Format:         &audio.Format{NumChannels: 1, SampleRate: 22050},
				Data:           goAudioValues(w, samples),
				SourceBitDepth: w.Bits(),
			}

			if err := enc.Write(buf); err != nil {
				t.Fatal(err)
			}

			if err := enc.Close(); err != nil {
				t.Fatal(err)
			}

			if err := f.Close(); err != nil {
				t.Fatal(err)
			}

			clip, err := ReadContainer(path, 0, 0)
			if err != nil {
				t.Fatal(err)
			}

			if clip.Width != w || clip.FrameRate != 22050 {
				t.Fatalf("format %s @ %d", clip.Width, clip.FrameRate)
			}

			if !slices.Equal(clip.Samples, samples) {
				t.Fatalf("decoded %v, want %v", clip.Samples, samples)
			}
		})
	}
}

func TestCompatibility_RawBytesMatchGoAudioHelpers(t *testing.T) {
	for _, s := range compatSamples[Width24] {
		raw, err := Encode([]int{s}, Width24)
		if err != nil {
			t.Fatal(err)
		}

		if want := audio.Int32toInt24LEBytes(int32(s)); !bytes.Equal(raw, want) {
			t.Fatalf("Encode(%d)=% x, go-audio packs % x", s, raw, want)
		}
	}
}
