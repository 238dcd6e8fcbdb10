package main

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/cwbudde/pcmwav"
)

func TestParseSamples(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []int
	}{
		{name: "wav2array output", in: "1, -2, 3, \n", want: []int{1, -2, 3}},
		{name: "bracketed", in: "[4,5,6]", want: []int{4, 5, 6}},
		{name: "lines", in: "7\n8\n\n9\n", want: []int{7, 8, 9}},
		{name: "empty", in: "", want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSamples(strings.NewReader(tt.in))
			if err != nil {
				t.Fatal(err)
			}

			if !slices.Equal(got, tt.want) {
				t.Fatalf("parseSamples(%q)=%v, want %v", tt.in, got, tt.want)
			}
		})
	}

	if _, err := parseSamples(strings.NewReader("1, two, 3")); err == nil {
		t.Fatal("expected error for non numeric sample")
	}
}

func TestRunWritesContainer(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "samples.txt")
	outPath := filepath.Join(dir, "out.wav")

	if err := os.WriteFile(inPath, []byte("0, 100, -100, 8388607, -8388608, "), 0o644); err != nil {
		t.Fatal(err)
	}

	err := run([]string{"-in", inPath, "-out", outPath, "-width", "3", "-rate", "48000"}, nil)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	clip, err := pcmwav.ReadContainer(outPath, 0, 0)
	if err != nil {
		t.Fatal(err)
	}

	if clip.Width != pcmwav.Width24 || clip.FrameRate != 48000 {
		t.Fatalf("unexpected format %s @ %d", clip.Width, clip.FrameRate)
	}

	want := []int{0, 100, -100, 8388607, -8388608}
	if !slices.Equal(clip.Samples, want) {
		t.Fatalf("samples=%v, want %v", clip.Samples, want)
	}
}

func TestRunStdinClamp(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "out.wav")

	err := run([]string{"-out", outPath, "-width", "1", "-clamp"}, strings.NewReader("-500 0 500"))
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	clip, err := pcmwav.ReadContainer(outPath, 0, 0)
	if err != nil {
		t.Fatal(err)
	}

	if want := []int{-128, 0, 127}; !slices.Equal(clip.Samples, want) {
		t.Fatalf("samples=%v, want %v", clip.Samples, want)
	}
}

func TestRunErrors(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "out.wav")

	if err := run(nil, strings.NewReader("")); !errors.Is(err, errMissingOutput) {
		t.Fatalf("expected errMissingOutput, got %v", err)
	}

	err := run([]string{"-out", outPath, "-width", "5"}, strings.NewReader("1"))
	if !errors.Is(err, pcmwav.ErrUnsupportedWidth) {
		t.Fatalf("expected ErrUnsupportedWidth, got %v", err)
	}

	err = run([]string{"-out", outPath, "-rate", "0"}, strings.NewReader("1"))
	if !errors.Is(err, pcmwav.ErrInvalidFrameRate) {
		t.Fatalf("expected ErrInvalidFrameRate, got %v", err)
	}

	if _, err := os.Stat(outPath); !os.IsNotExist(err) {
		t.Fatalf("failed run should not leave %s behind", outPath)
	}
}
