package bitgrain

// QuantTable holds 64 positive quantization divisors in spatial (not
// zigzag) order, clamped to 1..255.
type QuantTable [blockSize]uint16

// referenceQuant is the standard JPEG luminance quantization matrix in
// spatial order, used as the basis for quality scaling.
var referenceQuant = QuantTable{
	16, 11, 10, 16, 24, 40, 51, 61,
	12, 12, 14, 19, 26, 58, 60, 55,
	14, 13, 16, 24, 40, 57, 69, 56,
	14, 17, 22, 29, 51, 87, 80, 62,
	18, 22, 37, 56, 68, 109, 103, 77,
	24, 35, 55, 64, 81, 104, 113, 92,
	49, 64, 78, 87, 103, 121, 120, 101,
	72, 92, 95, 98, 112, 100, 103, 99,
}

// DefaultEncodeQuality is applied by the Encode* façades when the caller
// passes a quality of 0.
const DefaultEncodeQuality = 85

// DefaultDecodeQuality is assumed when a stream's quality byte is 0
// (either because the encoder wrote 0 for a legacy header, or because the
// header predates the quality byte entirely).
const DefaultDecodeQuality = 50

// clampQuality clamps q to the valid 1..100 range, defaulting to def when q is 0.
func clampQuality(q, def int) int {
	if q == 0 {
		q = def
	}
	if q < 1 {
		q = 1
	} else if q > 100 {
		q = 100
	}
	return q
}

// deriveQuantTable scales referenceQuant by quality q (already clamped to
// 1..100). Note the inverted sense relative to colloquial "JPEG quality":
// in this format a *higher* q produces *larger* table entries, hence
// coarser quantization. This is the formula spec compatibility depends on;
// do not "fix" the inversion.
//
//	out[i] = clamp((reference[i]*q + 50) / 100, 1, 255)
//
// using truncating integer division with a +50 bias for round-half-up.
func deriveQuantTable(q int) QuantTable {
	var t QuantTable
	for i, ref := range referenceQuant {
		v := (int(ref)*q + 50) / 100
		if v < 1 {
			v = 1
		} else if v > 255 {
			v = 255
		}
		t[i] = uint16(v)
	}
	return t
}

// quantize divides a post-DCT coefficient by its table entry, truncating
// toward zero and preserving sign. Zero is a fixed point.
func quantize(coeff int32, div uint16) int16 {
	q := coeff / int32(div)
	return int16(q)
}

// dequantize multiplies a quantized coefficient back up by its table
// entry, saturating to the 16-bit signed range.
func dequantize(level int16, div uint16) int16 {
	v := int32(level) * int32(div)
	return saturateInt16(v)
}

func saturateInt16(v int32) int16 {
	const maxI16 = 1<<15 - 1
	const minI16 = -1 << 15
	if v > maxI16 {
		return maxI16
	}
	if v < minI16 {
		return minI16
	}
	return int16(v)
}
