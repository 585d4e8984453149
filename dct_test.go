package bitgrain

import "testing"

func TestDCTRoundTripWithinOne(t *testing.T) {
	samples := [][blockSize]byte{
		flatBlock(128),
		flatBlock(0),
		flatBlock(255),
		rampBlock(),
		checkerBlock(),
	}
	for i, s := range samples {
		var b Block
		for k, v := range s {
			b[k] = centeredSample(v)
		}
		original := b
		forwardDCT(&b)
		inverseDCT(&b)
		for k := range b {
			diff := int(b[k]) - int(original[k])
			if diff < -1 || diff > 1 {
				t.Errorf("sample set %d: position %d: round trip diff %d exceeds ±1 (got %d, want %d)", i, k, diff, b[k], original[k])
			}
		}
	}
}

func TestDCTOfFlatBlockHasZeroAC(t *testing.T) {
	var b Block
	for k := range b {
		b[k] = centeredSample(128)
	}
	forwardDCT(&b)
	if b[0] != 0 {
		t.Errorf("DC of flat centered block = %d, want 0", b[0])
	}
	for k := 1; k < blockSize; k++ {
		if b[k] != 0 {
			t.Errorf("AC[%d] of flat block = %d, want 0", k, b[k])
		}
	}
}

func TestRoundHalfAwayFromZero(t *testing.T) {
	tests := []struct {
		in   float64
		want int32
	}{
		{0.5, 1},
		{-0.5, -1},
		{1.5, 2},
		{-1.5, -2},
		{2.4, 2},
		{-2.4, -2},
		{0, 0},
	}
	for _, tt := range tests {
		if got := roundHalfAwayFromZero(tt.in); got != tt.want {
			t.Errorf("roundHalfAwayFromZero(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func flatBlock(v byte) [blockSize]byte {
	var b [blockSize]byte
	for i := range b {
		b[i] = v
	}
	return b
}

func rampBlock() [blockSize]byte {
	var b [blockSize]byte
	for i := range b {
		b[i] = byte(i * 4)
	}
	return b
}

func checkerBlock() [blockSize]byte {
	var b [blockSize]byte
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if (x+y)%2 == 0 {
				b[y*8+x] = 255
			}
		}
	}
	return b
}
