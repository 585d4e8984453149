// bginfo reports the header fields and embedded profile size of a bitgrain
// stream.
//
// Usage:
//
//	bginfo <file.bg> [<file.bg> ...]
//
// Exit codes:
//
//	0: all files read and parsed successfully
//	1: one or more files failed to parse (bad magic, bad version, malformed,
//	   invalid dimensions)
//	2: error (file not found, etc.)
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mrjoshuak/bitgrain"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: bginfo <file.bg> [<file.bg> ...]")
		os.Exit(2)
	}

	files := os.Args[1:]
	parseErrors := false
	ioErrors := false

	for _, path := range files {
		if err := report(path); err != nil {
			if isParseError(err) {
				parseErrors = true
				fmt.Printf("%s: INVALID (%v)\n", path, err)
			} else {
				ioErrors = true
				fmt.Fprintf(os.Stderr, "%s: error: %v\n", path, err)
			}
		}
	}

	if ioErrors {
		os.Exit(2)
	}
	if parseErrors {
		os.Exit(1)
	}
	os.Exit(0)
}

func isParseError(err error) bool {
	return errors.Is(err, bitgrain.ErrBadMagic) ||
		errors.Is(err, bitgrain.ErrBadVersion) ||
		errors.Is(err, bitgrain.ErrMalformed) ||
		errors.Is(err, bitgrain.ErrInvalidDimensions)
}

func report(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	hdr, err := bitgrain.ProbeHeader(data)
	if err != nil {
		return err
	}

	profile, hasProfile, err := bitgrain.ExtractProfile(data)
	if err != nil {
		return err
	}

	fmt.Printf("%s: version=%d channels=%d %dx%d quality=%d", path, hdr.Version, hdr.Channels, hdr.Width, hdr.Height, hdr.Quality)
	if hasProfile {
		fmt.Printf(" profile=%d bytes\n", len(profile))
	} else {
		fmt.Println(" profile=none")
	}
	return nil
}
