package bitgrain

import (
	"fmt"

	"github.com/mrjoshuak/bitgrain/internal/xdr"
)

// eobRun and eobLevel are the sentinel (run, level) pair that terminates a
// block's AC sequence. EOB immediately following the DC value, with no AC
// pairs at all, is the minimum 5-byte encoding of an all-zero-AC block.
const (
	eobRun   = 0xFF
	eobLevel = 0
)

// encodeBlock serializes one already-quantized Block as a per-block
// record: 2-byte LE DC, zero or more (run:u8, level:i16 LE) AC pairs in
// zigzag order, terminated by the EOB sentinel. b is not modified.
func encodeBlock(w *xdr.CapacityWriter, b *Block) {
	w.WriteInt16(b[zigzag[0]])

	var run int
	for k := 1; k < blockSize; k++ {
		level := b[zigzag[k]]
		if level == 0 {
			run++
			continue
		}
		// run is bounded by 62 (at most one trailing non-zero AC
		// coefficient breaks a run of the other 62), so it always
		// fits in a byte; see DESIGN.md for the omitted (62,0)
		// overflow branch some encoders in the wild emit here.
		w.WriteByte(byte(run))
		w.WriteInt16(level)
		run = 0
	}
	w.WriteByte(eobRun)
	w.WriteInt16(eobLevel)
}

// decodeBlock parses one per-block record from r into a freshly zeroed
// Block. Every AC position not explicitly written by a (run, level) pair
// remains zero. decodeBlock never indexes past the 64-coefficient block
// even when given a corrupt ac_index sequence; it simply stops placing
// coefficients once ac_index reaches 64 and keeps consuming pairs until it
// sees EOB or the reader runs out of bytes.
func decodeBlock(r *xdr.Reader, b *Block) error {
	dc, err := r.ReadInt16()
	if err != nil {
		return fmt.Errorf("bitgrain: reading DC: %w", ErrMalformed)
	}
	b[zigzag[0]] = dc

	acIndex := 1
	for {
		run, err := r.ReadUint8()
		if err != nil {
			return fmt.Errorf("bitgrain: reading AC run: %w", ErrMalformed)
		}
		level, err := r.ReadInt16()
		if err != nil {
			return fmt.Errorf("bitgrain: reading AC level: %w", ErrMalformed)
		}
		if run == eobRun && level == eobLevel {
			return nil
		}
		acIndex += int(run)
		if acIndex < blockSize {
			b[zigzag[acIndex]] = level
			acIndex++
		}
	}
}
