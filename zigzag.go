package bitgrain

// blockSize is the number of coefficients in one 8x8 block.
const blockSize = 64

// zigzag maps stream position (entropy order) to spatial index (row-major,
// index = y*8+x) within an 8x8 block. zigzag[0] is always the DC
// coefficient. Entries increase in spatial frequency so that the AC tail
// of a typical block is a long run of zeros, which the entropy codec in
// entropy.go exploits.
//
// This exact permutation is a wire-format contract and must not drift
// once streams have been written with it.
var zigzag = [blockSize]int{
	0, 1, 8, 16, 9, 2, 3, 10,
	17, 24, 32, 25, 18, 11, 4, 5,
	12, 19, 26, 33, 40, 48, 41, 34,
	27, 20, 13, 6, 7, 14, 21, 28,
	35, 42, 49, 56, 57, 50, 43, 36,
	29, 22, 15, 23, 30, 37, 44, 51,
	58, 59, 52, 45, 38, 31, 39, 46,
	53, 60, 61, 54, 47, 55, 62, 63,
}
