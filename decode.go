package bitgrain

import (
	"fmt"

	"github.com/mrjoshuak/bitgrain/internal/xdr"
)

// DecodeResult carries the metadata recovered from a decoded stream
// alongside the pixels written into the caller's output buffer.
type DecodeResult struct {
	Width    int
	Height   int
	Channels int
	// Profile holds the embedded color profile payload, if the stream's
	// trailer carried one (type 1 or type 2); nil otherwise.
	Profile []byte
}

// Decode parses a bitgrain stream from data and writes reconstructed
// pixels into out, which must be at least Width*Height*Channels bytes
// (channel-interleaved for RGB/RGBA, planar for grayscale — a single
// plane has no interleaving to speak of). The caller should size out
// using bgutil.Probe when the dimensions aren't already known.
func Decode(data []byte, out []byte) (DecodeResult, error) {
	r := xdr.NewReader(data)
	hdr, err := readHeader(r)
	if err != nil {
		return DecodeResult{}, err
	}
	if err := validateDimensions(hdr.Width, hdr.Height); err != nil {
		return DecodeResult{}, err
	}
	required := hdr.Width * hdr.Height * hdr.Channels
	if len(out) < required {
		return DecodeResult{}, ErrCapacityExceeded
	}

	table := deriveQuantTable(hdr.Quality)
	bx, by := blocksAcross(hdr.Width), blocksDown(hdr.Height)
	nBlocks := bx * by
	scratch := make([]Block, nBlocks)

	for c := 0; c < hdr.Channels; c++ {
		if err := decodePlane(r, out, hdr.Width, hdr.Height, hdr.Channels, c, bx, by, scratch, &table); err != nil {
			return DecodeResult{}, err
		}
	}

	chunks := parseTrailer(r)
	profile, _, err := findProfile(chunks)
	if err != nil {
		return DecodeResult{}, err
	}

	return DecodeResult{
		Width:    hdr.Width,
		Height:   hdr.Height,
		Channels: hdr.Channels,
		Profile:  profile,
	}, nil
}

// decodePlane parses every block of one channel sequentially (the RLE
// stream has variable-length records and cannot be parsed out of order),
// then dequantizes and inverse-transforms the decoded blocks in parallel
// before scattering them into out.
func decodePlane(r *xdr.Reader, out []byte, w, h, channels, channelIndex, bx, by int, scratch []Block, table *QuantTable) error {
	for i := range scratch {
		scratch[i] = Block{}
		if err := decodeBlock(r, &scratch[i]); err != nil {
			return fmt.Errorf("bitgrain: channel %d block %d: %w", channelIndex, i, err)
		}
	}

	forEachBlockIndex(len(scratch), func(i int) {
		b := scratch[i]
		for k := range b {
			b[k] = dequantize(b[k], table[k])
		}
		inverseDCT(&b)
		blockX, blockY := i%bx, i/bx
		if channels == 1 {
			storePlanarBlock(&b, out, w, h, w, blockX, blockY)
		} else {
			storeInterleavedBlock(&b, out, w, h, channels, channelIndex, blockX, blockY)
		}
	})
	return nil
}
