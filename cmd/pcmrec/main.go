// This tool records numbered fixed-length mono clips from the default
// input device, one file per take.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/cwbudde/pcmwav"
	"github.com/cwbudde/pcmwav/capture"
	"github.com/gordonklaus/portaudio"
)

func main() {
	err := run(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	flagSet := flag.NewFlagSet("pcmrec", flag.ContinueOnError)

	dir := flagSet.String("dir", ".", "directory the takes are written to")
	first := flagSet.Int("first", 0, "index of the first take")
	count := flagSet.Int("count", 1, "number of takes, 0 records until interrupted")
	seconds := flagSet.Float64("seconds", 1, "length of each take in seconds")
	rate := flagSet.Int("rate", capture.DefaultSampleRate, "sample rate in hertz")
	width := flagSet.Int("width", 2, "sample width in bytes (2 or 4)")
	countdown := flagSet.Duration("countdown", 600*time.Millisecond, "pause before each take")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	w, err := pcmwav.ParseWidth(*width)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(*dir, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create %s: %w", *dir, err)
	}

	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize portaudio: %w", err)
	}
	defer portaudio.Terminate()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	session := capture.NewSession(time.Duration(*seconds * float64(time.Second)))
	session.Config.SampleRate = *rate
	session.Config.Width = w

	for i := *first; *count == 0 || i < *first+*count; i++ {
		if err := wait(ctx, i, *countdown); err != nil {
			return err
		}

		path := filepath.Join(*dir, capture.NextName(i))
		if _, err := session.Record(ctx, openDefaultInput, path); err != nil {
			return fmt.Errorf("take %d: %w", i, err)
		}
	}

	return nil
}

func wait(ctx context.Context, take int, d time.Duration) error {
	log.Printf("take %d, ready?", take)

	if d <= 0 {
		return ctx.Err()
	}

	const steps = 3

	tick := time.NewTicker(d / steps)
	defer tick.Stop()

	for n := steps; n > 0; n-- {
		log.Printf("%d..", n)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tick.C:
		}
	}

	return nil
}
