package bgutil

import (
	"bytes"
	"testing"

	"github.com/mrjoshuak/bitgrain"
)

func TestProbeReadsHeaderWithoutPixels(t *testing.T) {
	pixels := make([]byte, 8*8)
	data, err := bitgrain.EncodeGrayscale(pixels, 8, 8, 42)
	if err != nil {
		t.Fatalf("EncodeGrayscale: %v", err)
	}

	hdr, err := Probe(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Probe: %v", err)
	}
	if hdr.Width != 8 || hdr.Height != 8 || hdr.Channels != 1 || hdr.Quality != 42 {
		t.Errorf("Probe = %+v, want 8x8 1-channel quality=42", hdr)
	}
}

func TestExtractProfileFindsTrailer(t *testing.T) {
	pixels := make([]byte, 8*8*3)
	profile := []byte("profile bytes")
	data, err := bitgrain.EncodeRGB(pixels, 8, 8, 50, profile)
	if err != nil {
		t.Fatalf("EncodeRGB: %v", err)
	}

	got, ok, err := ExtractProfile(data)
	if err != nil {
		t.Fatalf("ExtractProfile: %v", err)
	}
	if !ok {
		t.Fatal("ExtractProfile: no profile found")
	}
	if !bytes.Equal(got, profile) {
		t.Errorf("ExtractProfile = %q, want %q", got, profile)
	}
}

func TestExtractProfileAbsent(t *testing.T) {
	pixels := make([]byte, 8*8)
	data, err := bitgrain.EncodeGrayscale(pixels, 8, 8, 50)
	if err != nil {
		t.Fatalf("EncodeGrayscale: %v", err)
	}
	_, ok, err := ExtractProfile(data)
	if err != nil {
		t.Fatalf("ExtractProfile: %v", err)
	}
	if ok {
		t.Error("ExtractProfile found a profile where none was written")
	}
}
