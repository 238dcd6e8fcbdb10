// This tool converts a mono PCM wav file into an identical aiff file and
// stores it in the same folder as the source.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/cwbudde/pcmwav"
	"github.com/go-audio/aiff"
)

func main() {
	err := run(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
}

var errMissingPath = errors.New("you must set the -path flag")

func run(args []string) error {
	flagSet := flag.NewFlagSet("wavtoaiff", flag.ContinueOnError)

	path := flagSet.String("path", "", "The path to the wav file to convert to aiff")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	if *path == "" {
		return errMissingPath
	}

	sourcePath, err := expandHome(*path)
	if err != nil {
		return err
	}

	outPath := sourcePath[:len(sourcePath)-len(filepath.Ext(sourcePath))] + ".aif"

	if err := convert(sourcePath, outPath); err != nil {
		return err
	}

	log.Printf("Wav file converted to %s", outPath)

	return nil
}

func convert(inPath, outPath string) (err error) {
	clip, err := pcmwav.ReadContainer(inPath, 0, 0)
	if err != nil {
		return err
	}

	outFile, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outPath, err)
	}

	defer func() {
		err = errors.Join(err, outFile.Close())
	}()

	encoder := aiff.NewEncoder(outFile, clip.FrameRate, clip.Width.Bits(), 1)

	if err := encoder.Write(clip.IntBuffer()); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}

	return encoder.Close()
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get the user home directory: %w", err)
	}

	return filepath.Join(home, path[2:]), nil
}
