// This tool prints the container parameters of the passed wav file.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cwbudde/pcmwav"
)

const missingPathMessage = "You must pass the path of the file to inspect"

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err == nil {
		return
	}

	if errors.Is(err, errMissingPath) {
		fmt.Println(missingPathMessage)
		os.Exit(1)
	}

	log.Fatal(err)
}

var errMissingPath = errors.New("missing path argument")

func run(args []string, out io.Writer) error {
	if len(args) < 1 {
		return errMissingPath
	}

	params, err := pcmwav.ReadParams(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Channels: %d\n", params.NumChannels)
	fmt.Fprintf(out, "Sample width: %d bytes (%s)\n", int(params.Width), params.Width)
	fmt.Fprintf(out, "Frame rate: %d Hz\n", params.FrameRate)
	fmt.Fprintf(out, "Frames: %d\n", params.NumFrames)
	fmt.Fprintf(out, "Duration: %s\n", params.Duration)

	return nil
}
