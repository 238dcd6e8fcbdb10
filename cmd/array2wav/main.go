// This tool reads a list of integer samples and stores them in a mono PCM
// wav file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/cwbudde/pcmwav"
)

func main() {
	err := run(os.Args[1:], os.Stdin)
	if err != nil {
		log.Fatal(err)
	}
}

var errMissingOutput = errors.New("you must set the -out flag")

func run(args []string, stdin io.Reader) error {
	flagSet := flag.NewFlagSet("array2wav", flag.ContinueOnError)

	in := flagSet.String("in", "-", "file holding comma or space separated samples, - for stdin")
	output := flagSet.String("out", "", "wav file to write")
	width := flagSet.Int("width", 2, "sample width in bytes (1-4)")
	rate := flagSet.Int("rate", 16000, "frame rate in hertz")
	clamp := flagSet.Bool("clamp", false, "clamp samples to the width's range instead of wrapping")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	if *output == "" {
		return errMissingOutput
	}

	w, err := pcmwav.ParseWidth(*width)
	if err != nil {
		return err
	}

	src := stdin
	if *in != "-" {
		file, err := os.Open(*in)
		if err != nil {
			return err
		}
		defer file.Close()

		src = file
	}

	samples, err := parseSamples(src)
	if err != nil {
		return fmt.Errorf("%s: %w", *in, err)
	}

	if *clamp {
		for i, v := range samples {
			samples[i] = w.Clamp(v)
		}
	}

	log.Printf("writing %d frames of %s @ %d Hz to %s", len(samples), w, *rate, *output)

	return pcmwav.WriteContainer(*output, samples, w, *rate)
}

func parseSamples(r io.Reader) ([]int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	fields := strings.FieldsFunc(string(data), func(c rune) bool {
		return c == ',' || c == '[' || c == ']' || unicode.IsSpace(c)
	})

	samples := make([]int, 0, len(fields))

	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", i, err)
		}

		samples = append(samples, v)
	}

	return samples, nil
}
