// This tool decodes a mono PCM wav file and prints its samples as a comma
// separated list.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cwbudde/pcmwav"
)

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
}

var errMissingPath = errors.New("you must set the -path flag")

func run(args []string, out io.Writer) error {
	flagSet := flag.NewFlagSet("wav2array", flag.ContinueOnError)

	path := flagSet.String("path", "", "wav file to decode")
	start := flagSet.Int("start", 0, "first frame to read")
	end := flagSet.Int("end", 0, "last frame to read (inclusive), 0 reads to the end")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	if *path == "" {
		return errMissingPath
	}

	clip, err := pcmwav.ReadContainer(*path, *start, *end)
	if err != nil {
		return err
	}

	log.Printf("%s: %s @ %d Hz, %d frames", *path, clip.Width, clip.FrameRate, len(clip.Samples))

	w := bufio.NewWriter(out)
	for _, v := range clip.Samples {
		fmt.Fprintf(w, "%d, ", v)
	}

	fmt.Fprintln(w)

	return w.Flush()
}
