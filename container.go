package bitgrain

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"

	"github.com/mrjoshuak/bitgrain/internal/xdr"
)

// MaxDimension is the largest width or height the decoder will accept.
const MaxDimension = 65536

// magic is the two-byte signature that opens every bitgrain stream.
var magic = [2]byte{'B', 'G'}

// trailerSignature opens every trailer chunk.
var trailerSignature = [3]byte{'B', 'G', 'x'}

// Chunk types understood by this decoder. Any other byte is a genuinely
// unknown chunk and is skipped.
const (
	chunkTypeProfile           = 1 // raw profile bytes, verbatim
	chunkTypeProfileCompressed = 2 // 4-byte LE original length + zlib stream
)

// legacyHeaderSize is the size of a header without the trailing quality
// byte, still accepted on decode.
const legacyHeaderSize = 11

// headerSize is the size of the header this package always writes.
const headerSize = 12

// channelsForVersion maps a header version byte to its channel count.
func channelsForVersion(version uint8) (int, bool) {
	switch version {
	case 1:
		return 1, true
	case 2:
		return 3, true
	case 3:
		return 4, true
	default:
		return 0, false
	}
}

// versionForChannels is the inverse of channelsForVersion.
func versionForChannels(channels int) uint8 {
	switch channels {
	case 1:
		return 1
	case 3:
		return 2
	case 4:
		return 3
	}
	panic("bitgrain: unsupported channel count")
}

// Header is the parsed fixed-size header of a bitgrain stream.
type Header struct {
	Version  uint8
	Channels int
	Width    int
	Height   int
	Quality  int
}

// writeHeader appends the 12-byte fixed header through w.
func writeHeader(w *xdr.CapacityWriter, channels, width, height, quality int) {
	w.WriteBytes(magic[:])
	w.WriteByte(versionForChannels(channels))
	w.WriteUint32(uint32(width))
	w.WriteUint32(uint32(height))
	w.WriteByte(byte(quality))
}

// readHeader parses the fixed header (12 bytes, or the legacy 11-byte form
// lacking a quality byte) from the start of r.
func readHeader(r *xdr.Reader) (Header, error) {
	if r.Len() < legacyHeaderSize {
		return Header{}, fmt.Errorf("bitgrain: header too short: %w", ErrMalformed)
	}
	m0, _ := r.ReadUint8()
	m1, _ := r.ReadUint8()
	if m0 != magic[0] || m1 != magic[1] {
		return Header{}, ErrBadMagic
	}
	versionByte, _ := r.ReadUint8()
	channels, ok := channelsForVersion(versionByte)
	if !ok {
		return Header{}, ErrBadVersion
	}
	width32, err := r.ReadUint32()
	if err != nil {
		return Header{}, fmt.Errorf("bitgrain: reading width: %w", ErrMalformed)
	}
	height32, err := r.ReadUint32()
	if err != nil {
		return Header{}, fmt.Errorf("bitgrain: reading height: %w", ErrMalformed)
	}
	quality := DefaultDecodeQuality
	if r.Len() >= 1 {
		qb, _ := r.ReadUint8()
		if qb != 0 {
			quality = int(qb)
		}
	}
	return Header{
		Version:  versionByte,
		Channels: channels,
		Width:    int(width32),
		Height:   int(height32),
		Quality:  quality,
	}, nil
}

// validateDimensions rejects zero or out-of-bound width/height.
func validateDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return ErrInvalidDimensions
	}
	if width > MaxDimension || height > MaxDimension {
		return ErrInvalidDimensions
	}
	return nil
}

// writeProfileChunk appends a verbatim type-1 trailer chunk.
func writeProfileChunk(w *xdr.CapacityWriter, profile []byte) {
	w.WriteBytes(trailerSignature[:])
	w.WriteByte(chunkTypeProfile)
	w.WriteUint32(uint32(len(profile)))
	w.WriteBytes(profile)
}

// writeCompressedProfileChunk appends a type-2 trailer chunk whose payload
// is a 4-byte LE original length followed by a zlib stream of profile. It
// is used by callers that explicitly opt into compression (see
// EncodeRGBWithCompressedProfile and EncodeRGBAWithCompressedProfile); the
// default Encode* façades never emit
// type 2 on their own, which keeps the single-chunk trailer form
// byte-for-byte stable when no caller asks for compression.
func writeCompressedProfileChunk(w *xdr.CapacityWriter, profile []byte) error {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(profile); err != nil {
		return err
	}
	if err := zw.Close(); err != nil {
		return err
	}
	payloadLen := 4 + buf.Len()
	w.WriteBytes(trailerSignature[:])
	w.WriteByte(chunkTypeProfileCompressed)
	w.WriteUint32(uint32(payloadLen))
	w.WriteUint32(uint32(len(profile)))
	w.WriteBytes(buf.Bytes())
	return nil
}

// trailerChunk is one parsed trailer chunk.
type trailerChunk struct {
	chunkType uint8
	payload   []byte
}

// parseTrailer reads zero or more trailer chunks from r until the first
// non-matching signature or EOF; the two are treated as equivalent, since
// an absent trailer is valid and indistinguishable from running out of
// bytes.
func parseTrailer(r *xdr.Reader) []trailerChunk {
	var chunks []trailerChunk
	for {
		if r.Len() < len(trailerSignature)+5 {
			return chunks
		}
		s0, _ := r.ReadUint8()
		s1, _ := r.ReadUint8()
		s2, _ := r.ReadUint8()
		if s0 != trailerSignature[0] || s1 != trailerSignature[1] || s2 != trailerSignature[2] {
			return chunks
		}
		chunkType, _ := r.ReadUint8()
		length, err := r.ReadUint32()
		if err != nil {
			return chunks
		}
		payload, err := r.ReadBytes(int(length))
		if err != nil {
			return chunks
		}
		chunks = append(chunks, trailerChunk{chunkType: chunkType, payload: payload})
	}
}

// decodeProfilePayload extracts the original profile bytes from a parsed
// trailer chunk, decompressing a type-2 chunk if needed. Unknown chunk
// types return (nil, false).
func decodeProfilePayload(c trailerChunk) ([]byte, bool, error) {
	switch c.chunkType {
	case chunkTypeProfile:
		out := make([]byte, len(c.payload))
		copy(out, c.payload)
		return out, true, nil
	case chunkTypeProfileCompressed:
		if len(c.payload) < 4 {
			return nil, false, fmt.Errorf("bitgrain: compressed profile chunk too short: %w", ErrMalformed)
		}
		origLen := xdr.ByteOrder.Uint32(c.payload[:4])
		zr, err := zlib.NewReader(bytes.NewReader(c.payload[4:]))
		if err != nil {
			return nil, false, fmt.Errorf("bitgrain: opening compressed profile: %w", ErrMalformed)
		}
		defer zr.Close()
		out := make([]byte, origLen)
		if _, err := io.ReadFull(zr, out); err != nil {
			return nil, false, fmt.Errorf("bitgrain: inflating compressed profile: %w", ErrMalformed)
		}
		return out, true, nil
	default:
		return nil, false, nil
	}
}

// findProfile scans parsed trailer chunks for the first profile chunk
// (type 1 or 2).
func findProfile(chunks []trailerChunk) ([]byte, bool, error) {
	for _, c := range chunks {
		if c.chunkType == chunkTypeProfile || c.chunkType == chunkTypeProfileCompressed {
			return decodeProfilePayload(c)
		}
	}
	return nil, false, nil
}

// ProbeHeader parses just the fixed header from the start of data, without
// touching plane or trailer data. It exists for callers (bgutil.Probe) that
// want to size a decode buffer or inspect a stream without paying for a
// full Decode.
func ProbeHeader(data []byte) (Header, error) {
	r := xdr.NewReader(data)
	hdr, err := readHeader(r)
	if err != nil {
		return Header{}, err
	}
	if err := validateDimensions(hdr.Width, hdr.Height); err != nil {
		return Header{}, err
	}
	return hdr, nil
}

// ExtractProfile scans a complete stream's trailer for an embedded color
// profile, decoding a compressed (type 2) chunk transparently. It does not
// decode pixel data; stream must still contain every plane's entropy-coded
// bytes so the cursor can be advanced past them to reach the trailer.
func ExtractProfile(stream []byte) ([]byte, bool, error) {
	r := xdr.NewReader(stream)
	hdr, err := readHeader(r)
	if err != nil {
		return nil, false, err
	}
	bx, by := blocksAcross(hdr.Width), blocksDown(hdr.Height)
	nBlocks := bx * by
	var skip Block
	for c := 0; c < hdr.Channels; c++ {
		for i := 0; i < nBlocks; i++ {
			if err := decodeBlock(r, &skip); err != nil {
				return nil, false, fmt.Errorf("bitgrain: skipping channel %d block %d: %w", c, i, err)
			}
		}
	}
	chunks := parseTrailer(r)
	return findProfile(chunks)
}
