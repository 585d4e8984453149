package bitgrain

import "testing"

func TestDeriveQuantTableFormula(t *testing.T) {
	tests := []struct {
		name string
		q    int
	}{
		{"min quality", 1},
		{"reference quality", 50},
		{"default encode quality", 85},
		{"max quality", 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := deriveQuantTable(tt.q)
			for i, ref := range referenceQuant {
				want := (int(ref)*tt.q + 50) / 100
				if want < 1 {
					want = 1
				} else if want > 255 {
					want = 255
				}
				if int(table[i]) != want {
					t.Errorf("table[%d] = %d, want %d", i, table[i], want)
				}
			}
		})
	}
}

func TestDeriveQuantTableClampedToByteRange(t *testing.T) {
	table := deriveQuantTable(100)
	for i, v := range table {
		if v < 1 || v > 255 {
			t.Errorf("table[%d] = %d out of 1..255 range", i, v)
		}
	}
}

func TestClampQuality(t *testing.T) {
	tests := []struct {
		q, def, want int
	}{
		{0, 85, 85},
		{0, 50, 50},
		{-5, 85, 1},
		{150, 85, 100},
		{42, 85, 42},
	}
	for _, tt := range tests {
		if got := clampQuality(tt.q, tt.def); got != tt.want {
			t.Errorf("clampQuality(%d, %d) = %d, want %d", tt.q, tt.def, got, tt.want)
		}
	}
}

func TestQuantizeZeroIsFixedPoint(t *testing.T) {
	for _, div := range []uint16{1, 16, 255} {
		if got := quantize(0, div); got != 0 {
			t.Errorf("quantize(0, %d) = %d, want 0", div, got)
		}
	}
}

func TestDequantizeQuantizeBoundedError(t *testing.T) {
	div := uint16(16)
	for x := int32(-2000); x <= 2000; x += 37 {
		level := quantize(x, div)
		recon := dequantize(level, div)
		diff := x - int32(recon)
		if diff < 0 {
			diff = -diff
		}
		if diff > int32(div) {
			t.Errorf("dequantize(quantize(%d)) = %d, error %d exceeds divisor %d", x, recon, diff, div)
		}
	}
}

func TestQuantizePreservesSign(t *testing.T) {
	div := uint16(10)
	pos := quantize(37, div)
	neg := quantize(-37, div)
	if pos <= 0 {
		t.Errorf("quantize(37, 10) = %d, want positive", pos)
	}
	if neg >= 0 {
		t.Errorf("quantize(-37, 10) = %d, want negative", neg)
	}
	if pos != -neg {
		t.Errorf("quantize not symmetric: %d vs %d", pos, neg)
	}
}

func TestSaturateInt16(t *testing.T) {
	tests := []struct {
		in   int32
		want int16
	}{
		{0, 0},
		{32767, 32767},
		{32768, 32767},
		{100000, 32767},
		{-32768, -32768},
		{-32769, -32768},
		{-100000, -32768},
	}
	for _, tt := range tests {
		if got := saturateInt16(tt.in); got != tt.want {
			t.Errorf("saturateInt16(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
