package bitgrain

import (
	"fmt"

	"github.com/mrjoshuak/bitgrain/internal/xdr"
)

// conservativeCapacity returns the output buffer size the convenience
// Encode* wrappers start with: a generous W*H*channels*2 bound plus room
// for the header and a profile trailer, sized to avoid truncation on any
// input the entropy coder is likely to expand rather than shrink.
func conservativeCapacity(w, h, channels int, profile []byte) int {
	return w*h*channels*2 + headerSize + len(trailerSignature) + 5 + len(profile) + 64
}

// EncodeGrayscale encodes a single-channel W*H pixel buffer. A quality of
// 0 uses DefaultEncodeQuality.
func EncodeGrayscale(pixels []byte, w, h, quality int) ([]byte, error) {
	return encodeConvenience(1, pixels, w, h, quality, nil, false)
}

// EncodeRGB encodes a 3-channel, R/G/B interleaved W*H*3 pixel buffer. A
// non-empty profile is appended as a verbatim type-1 trailer chunk.
func EncodeRGB(pixels []byte, w, h, quality int, profile []byte) ([]byte, error) {
	return encodeConvenience(3, pixels, w, h, quality, profile, false)
}

// EncodeRGBA encodes a 4-channel, R/G/B/A interleaved W*H*4 pixel buffer.
func EncodeRGBA(pixels []byte, w, h, quality int, profile []byte) ([]byte, error) {
	return encodeConvenience(4, pixels, w, h, quality, profile, false)
}

// EncodeRGBWithCompressedProfile is EncodeRGB, but the profile payload is
// stored as a type-2 zlib-compressed trailer chunk instead of verbatim
// type-1. Use this for large, compressible profiles (ICC profiles
// typically compress well); small or incompressible profiles should use
// EncodeRGB's plain type-1 chunk instead.
func EncodeRGBWithCompressedProfile(pixels []byte, w, h, quality int, profile []byte) ([]byte, error) {
	return encodeConvenience(3, pixels, w, h, quality, profile, true)
}

// EncodeRGBAWithCompressedProfile is the RGBA counterpart of EncodeRGBWithCompressedProfile.
func EncodeRGBAWithCompressedProfile(pixels []byte, w, h, quality int, profile []byte) ([]byte, error) {
	return encodeConvenience(4, pixels, w, h, quality, profile, true)
}

// encodeConvenience retries EncodeInto with a growing buffer until it
// stops reporting ErrCapacityExceeded, then trims the result to its
// reported length.
func encodeConvenience(channels int, pixels []byte, w, h, quality int, profile []byte, compressProfile bool) ([]byte, error) {
	if err := validateDimensions(w, h); err != nil {
		return nil, err
	}
	size := conservativeCapacity(w, h, channels, profile)
	for attempt := 0; attempt < 8; attempt++ {
		buf := make([]byte, size)
		n, err := encodeInto(buf, channels, pixels, w, h, quality, profile, compressProfile)
		if err == nil {
			return buf[:n], nil
		}
		if err == ErrCapacityExceeded {
			size = n + 64
			continue
		}
		return nil, err
	}
	return nil, ErrCapacityExceeded
}

// EncodeInto writes a stream for the given channel layout into dst,
// returning the number of bytes the stream occupies. If dst is too small,
// the returned length still reports the true required size under the
// writer's silent-truncation policy, and the error is ErrCapacityExceeded.
func EncodeInto(dst []byte, channels int, pixels []byte, w, h, quality int) (int, error) {
	return encodeInto(dst, channels, pixels, w, h, quality, nil, false)
}

func encodeInto(dst []byte, channels int, pixels []byte, w, h, quality int, profile []byte, compressProfile bool) (int, error) {
	if err := validateDimensions(w, h); err != nil {
		return 0, err
	}
	if channels != 1 && channels != 3 && channels != 4 {
		return 0, fmt.Errorf("bitgrain: unsupported channel count %d: %w", channels, ErrInvalidDimensions)
	}
	want := w * h * channels
	if len(pixels) < want {
		return 0, fmt.Errorf("bitgrain: pixel buffer too small: %w", ErrInvalidDimensions)
	}

	q := clampQuality(quality, DefaultEncodeQuality)
	table := deriveQuantTable(q)

	cw := xdr.NewCapacityWriter(dst)
	writeHeader(cw, channels, w, h, q)

	bx, by := blocksAcross(w), blocksDown(h)
	nBlocks := bx * by
	scratch := make([]Block, nBlocks)

	for c := 0; c < channels; c++ {
		encodePlane(cw, pixels, w, h, channels, c, bx, by, scratch, &table)
	}

	if len(profile) > 0 {
		if compressProfile {
			if err := writeCompressedProfileChunk(cw, profile); err != nil {
				return cw.Pos(), fmt.Errorf("bitgrain: compressing profile: %w", err)
			}
		} else {
			writeProfileChunk(cw, profile)
		}
	}

	if cw.Truncated() {
		return cw.Pos(), ErrCapacityExceeded
	}
	return cw.Pos(), nil
}

// encodePlane transforms and quantizes every block of one channel in
// parallel into scratch, then serializes scratch into cw sequentially in
// raster order so the entropy stream is byte-identical regardless of how
// many workers ran the first phase.
func encodePlane(cw *xdr.CapacityWriter, pixels []byte, w, h, channels, channelIndex, bx, by int, scratch []Block, table *QuantTable) {
	forEachBlockIndex(len(scratch), func(i int) {
		blockX, blockY := i%bx, i/bx
		var b Block
		if channels == 1 {
			extractPlanarBlock(&b, pixels, w, h, w, blockX, blockY)
		} else {
			extractInterleavedBlock(&b, pixels, w, h, channels, channelIndex, blockX, blockY)
		}
		forwardDCT(&b)
		for k := range b {
			b[k] = quantize(int32(b[k]), table[k])
		}
		scratch[i] = b
	})

	for i := range scratch {
		encodeBlock(cw, &scratch[i])
	}
}
