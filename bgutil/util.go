// Package bgutil provides higher-level inspection helpers for bitgrain
// streams that don't require decoding pixel data.
//
// Example usage:
//
//	hdr, _ := bgutil.Probe(f)
//	fmt.Printf("%dx%d, %d channels\n", hdr.Width, hdr.Height, hdr.Channels)
package bgutil

import (
	"fmt"
	"io"

	"github.com/mrjoshuak/bitgrain"
)

// maxProbeBytes bounds how much of r is read before giving up on finding a
// header; a bitgrain header is at most 12 bytes, but a caller may hand us
// an io.Reader without a length hint, so read a small, generous prefix.
const maxProbeBytes = 64

// Probe reads and parses just the fixed header of a bitgrain stream,
// without touching plane or trailer data.
func Probe(r io.Reader) (bitgrain.Header, error) {
	buf := make([]byte, maxProbeBytes)
	n, err := io.ReadFull(r, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return bitgrain.Header{}, fmt.Errorf("bgutil: reading header: %w", err)
	}
	return bitgrain.ProbeHeader(buf[:n])
}

// ExtractProfile scans a complete, already-read bitgrain stream for an
// embedded color profile, transparently decompressing a type-2 chunk.
// It returns ok=false if the stream has no profile trailer chunk.
func ExtractProfile(stream []byte) ([]byte, bool, error) {
	return bitgrain.ExtractProfile(stream)
}
