package bitgrain

import "math"

// dctBasis[k][n] is the orthonormal 8-point DCT-II basis matrix:
//
//	dctBasis[k][n] = alpha(k) * cos((2n+1)*k*pi/16)
//	alpha(0)   = sqrt(1/8)
//	alpha(k>0) = sqrt(2/8)
//
// The 2D transform is separable: F = B * f * B^T, where B is this matrix
// applied along rows then columns. Computed at float64 precision so the
// forward/inverse pair round-trips cleanly at every quality setting.
var dctBasis [8][8]float64

func init() {
	const alpha0 = 0.35355339059327373  // sqrt(1/8)
	const alphaK = 0.5                  // sqrt(2/8)
	for k := 0; k < 8; k++ {
		a := alphaK
		if k == 0 {
			a = alpha0
		}
		for n := 0; n < 8; n++ {
			dctBasis[k][n] = a * math.Cos(float64(2*n+1)*float64(k)*math.Pi/16)
		}
	}
}

// roundHalfAwayFromZero rounds x to the nearest integer, breaking ties
// away from zero (not Go's round-half-to-even).
func roundHalfAwayFromZero(x float64) int32 {
	if x >= 0 {
		return int32(math.Floor(x + 0.5))
	}
	return int32(math.Ceil(x - 0.5))
}

// forwardDCT applies the forward 8x8 DCT to b in place. b's entries must
// already be centered samples (-128..127); the result is stored back in
// the same row-major layout, indexed by (v*8+u).
func forwardDCT(b *Block) {
	var tmp [64]float64
	for y := 0; y < 8; y++ {
		for u := 0; u < 8; u++ {
			var sum float64
			for x := 0; x < 8; x++ {
				sum += float64(b[y*8+x]) * dctBasis[u][x]
			}
			tmp[y*8+u] = sum
		}
	}
	for u := 0; u < 8; u++ {
		for v := 0; v < 8; v++ {
			var sum float64
			for y := 0; y < 8; y++ {
				sum += tmp[y*8+u] * dctBasis[v][y]
			}
			b[v*8+u] = int16(roundHalfAwayFromZero(sum))
		}
	}
}

// inverseDCT applies the algebraic inverse of forwardDCT to b in place.
// The result is rounded to the nearest integer; it is neither centered
// back to 0..255 nor clamped here — that happens in the decoder façade via
// reconstructSample.
func inverseDCT(b *Block) {
	var tmp [64]float64
	for v := 0; v < 8; v++ {
		for x := 0; x < 8; x++ {
			var sum float64
			for u := 0; u < 8; u++ {
				sum += float64(b[v*8+u]) * dctBasis[u][x]
			}
			tmp[v*8+x] = sum
		}
	}
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			var sum float64
			for v := 0; v < 8; v++ {
				sum += tmp[v*8+x] * dctBasis[v][y]
			}
			b[y*8+x] = int16(roundHalfAwayFromZero(sum))
		}
	}
}
