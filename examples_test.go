package pcmwav

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

func ExampleDecode() {
	samples, err := Decode([]byte{0x00, 0x00, 0x80, 0xFF, 0xFF, 0xFF}, 2, Width24)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(samples)
	// Output: [-8388608 -1]
}

func ExampleEncode() {
	raw, err := Encode([]int{256, -2}, Width16)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("% x\n", raw)
	// Output: 00 01 fe ff
}

func ExampleReadContainer() {
	dir, err := os.MkdirTemp("", "pcmwav")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "clip.wav")

	err = WriteContainer(path, []int{0, 10, 20, 30, 40, 50}, Width16, 16000)
	if err != nil {
		log.Fatal(err)
	}

	clip, err := ReadContainer(path, 2, 4)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%v %s @ %d Hz\n", clip.Samples, clip.Width, clip.FrameRate)
	// Output: [20 30 40] 16-bit @ 16000 Hz
}

func ExampleDecoder_Duration() {
	dir, err := os.MkdirTemp("", "pcmwav")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "second.wav")

	err = WriteContainer(path, make([]int, 22050), Width8, 44100)
	if err != nil {
		log.Fatal(err)
	}

	file, err := os.Open(path)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	dur, err := NewDecoder(file).Duration()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("duration: %s\n", dur)
	// Output: duration: 500ms
}
