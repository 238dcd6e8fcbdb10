package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/cwbudde/pcmwav"
)

func main() {
	err := run(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
}

func run(args []string) (err error) {
	flagSet := flag.NewFlagSet("gen-sine", flag.ContinueOnError)

	output := flagSet.String("output", "output.wav", "filename to write to")
	frequency := flagSet.Float64("frequency", 440, "frequency in hertz to generate")
	length := flagSet.Float64("length", 5, "length in seconds of output file")
	sampleRate := flagSet.Int("rate", 48000, "frame rate in hertz")
	width := flagSet.Int("width", 2, "sample width in bytes (1-4)")
	gain := flagSet.Float64("gain", 1, "peak amplitude relative to full scale")

	err = flagSet.Parse(args)
	if err != nil {
		return err
	}

	w, err := pcmwav.ParseWidth(*width)
	if err != nil {
		return err
	}

	if *sampleRate <= 0 {
		return fmt.Errorf("%w: %d", pcmwav.ErrInvalidFrameRate, *sampleRate)
	}

	log.Printf("generating a %f sec %s sine wav at %f hz", *length, w, *frequency)

	file, err := os.Create(*output)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", *output, err)
	}

	defer func() {
		err = errors.Join(err, file.Close())
	}()

	wavOut, err := pcmwav.NewEncoder(file, *sampleRate, w)
	if err != nil {
		return err
	}

	rate := float64(*sampleRate)
	numSamples := int(rate * *length)
	peak := *gain * float64(w.Max())

	// one second per Write keeps memory bounded for long outputs
	block := make([]int, 0, *sampleRate)

	for i := range numSamples {
		fv := math.Sin(float64(i) / rate * *frequency * 2 * math.Pi)
		block = append(block, w.Clamp(int(math.Round(fv*peak))))

		if len(block) == cap(block) {
			if err := wavOut.Write(block); err != nil {
				return err
			}

			block = block[:0]
		}
	}

	if err := wavOut.Write(block); err != nil {
		return err
	}

	return wavOut.Close()
}
