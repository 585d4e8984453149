package bitgrain

import "testing"

func TestBlocksAcrossDown(t *testing.T) {
	tests := []struct{ w, h, bx, by int }{
		{8, 8, 1, 1},
		{1, 1, 1, 1},
		{9, 8, 2, 1},
		{16, 17, 2, 3},
	}
	for _, tt := range tests {
		if got := blocksAcross(tt.w); got != tt.bx {
			t.Errorf("blocksAcross(%d) = %d, want %d", tt.w, got, tt.bx)
		}
		if got := blocksDown(tt.h); got != tt.by {
			t.Errorf("blocksDown(%d) = %d, want %d", tt.h, got, tt.by)
		}
	}
}

func TestClampIndex(t *testing.T) {
	tests := []struct{ i, limit, want int }{
		{0, 8, 0},
		{7, 8, 7},
		{8, 8, 7},
		{100, 8, 7},
	}
	for _, tt := range tests {
		if got := clampIndex(tt.i, tt.limit); got != tt.want {
			t.Errorf("clampIndex(%d, %d) = %d, want %d", tt.i, tt.limit, got, tt.want)
		}
	}
}

func TestExtractPlanarBlockEdgeClamp(t *testing.T) {
	// A 3x3 plane: block (0,0) must clamp the last valid row/column
	// rather than reading zero-padded samples.
	w, h := 3, 3
	plane := []byte{
		10, 20, 30,
		40, 50, 60,
		70, 80, 90,
	}
	var b Block
	extractPlanarBlock(&b, plane, w, h, w, 0, 0)

	// Block columns 2..7 (the last valid column and the five past the image
	// edge) should all repeat column x=2 of the plane.
	for y := 0; y < 8; y++ {
		for x := 2; x < 8; x++ {
			sy := clampIndex(y, h)
			want := centeredSample(plane[sy*w+2])
			if got := b[y*8+x]; got != want {
				t.Errorf("b[%d][%d] = %d, want clamp-edge value %d", y, x, got, want)
			}
		}
	}
}

func TestExtractInterleavedBlockChannelIsolation(t *testing.T) {
	w, h, channels := 8, 8, 3
	pix := make([]byte, w*h*channels)
	for i := range pix {
		pix[i] = byte(i % 256)
	}
	var r, g, bl Block
	extractInterleavedBlock(&r, pix, w, h, channels, 0, 0, 0)
	extractInterleavedBlock(&g, pix, w, h, channels, 1, 0, 0)
	extractInterleavedBlock(&bl, pix, w, h, channels, 2, 0, 0)

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			off := (y*w+x)*channels
			wantR := centeredSample(pix[off+0])
			wantG := centeredSample(pix[off+1])
			wantB := centeredSample(pix[off+2])
			if r[y*8+x] != wantR || g[y*8+x] != wantG || bl[y*8+x] != wantB {
				t.Fatalf("channel isolation mismatch at (%d,%d)", x, y)
			}
		}
	}
}

func TestStorePlanarBlockCropsPastEdge(t *testing.T) {
	w, h := 3, 3
	plane := make([]byte, w*h)
	var b Block
	for i := range b {
		b[i] = 1 // reconstructSample(1) = 129, distinct from the zeroed plane
	}
	storePlanarBlock(&b, plane, w, h, w, 0, 0)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if got := plane[y*w+x]; got != reconstructSample(1) {
				t.Errorf("plane[%d][%d] = %d, want %d", y, x, got, reconstructSample(1))
			}
		}
	}
}

func TestExtractStoreRoundTripIdentity(t *testing.T) {
	w, h := 8, 8
	plane := make([]byte, w*h)
	for i := range plane {
		plane[i] = byte(i * 3 % 256)
	}
	var b Block
	extractPlanarBlock(&b, plane, w, h, w, 0, 0)

	out := make([]byte, w*h)
	storePlanarBlock(&b, out, w, h, w, 0, 0)

	for i := range plane {
		if out[i] != plane[i] {
			t.Errorf("round trip mismatch at %d: got %d, want %d", i, out[i], plane[i])
		}
	}
}
