package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/wasm2go/rt/bounds"
	"github.com/wasm2go/rt/memory"
)

func main() {
	var (
		imageFile = flag.String("image", "", "Path to a raw linear-memory image")
		page      = flag.Uint("page", 0, "Page to display (65536-byte pages)")
	)
	flag.Parse()

	if *imageFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: memview -image <file.bin> [-page N]")
		fmt.Fprintln(os.Stderr, "       Interactive when stdout is a terminal, one page otherwise.")
		os.Exit(1)
	}

	if term.IsTerminal(int(os.Stdout.Fd())) {
		if err := runInteractive(*imageFile, *page); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*imageFile, *page); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(imageFile string, page uint) error {
	mem, imageLen, err := readImage(imageFile)
	if err != nil {
		return err
	}

	pages := mem.Size()
	if page >= uint(pages) {
		return fmt.Errorf("page %d out of range: image has %d pages", page, pages)
	}

	fmt.Printf("Image: %s\n", imageFile)
	fmt.Printf("Size: %d bytes (%d pages)\n", imageLen, pages)

	start := uint32(page) * bounds.PageSize
	fmt.Printf("\nPage %d [%#x, %#x):\n", page, start, uint64(start)+bounds.PageSize)
	return memory.Dump(os.Stdout, mem, start, bounds.PageSize)
}

// readImage loads a raw linear-memory image into a heap sized to the
// smallest whole page count that holds it. An empty file gets one zero
// page so there is always something to display.
func readImage(path string) (*memory.Heap[uint32], int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("read image: %w", err)
	}

	const maxBytes = uint64(bounds.MaxPageCount32) * bounds.PageSize
	if uint64(len(data)) > maxBytes {
		return nil, 0, fmt.Errorf("image is %d bytes; a 32-bit memory holds at most %d", len(data), maxBytes)
	}

	pages := uint32((uint64(len(data)) + bounds.PageSize - 1) / bounds.PageSize)
	if pages == 0 {
		pages = 1
	}

	mem, err := memory.WithLimits(pages, pages)
	if err != nil {
		return nil, 0, fmt.Errorf("allocate %d pages: %w", pages, err)
	}
	if err := mem.CopyFrom(0, data); err != nil {
		return nil, 0, fmt.Errorf("copy image: %w", err)
	}
	return mem, len(data), nil
}
