package bitgrain

// blocksAcross and blocksDown compute the block grid dimensions for a
// plane of size w x h: ceil(w/8) and ceil(h/8).
func blocksAcross(w int) int { return (w + 7) / 8 }
func blocksDown(h int) int   { return (h + 7) / 8 }

// clampIndex returns limit-1 when i >= limit and i otherwise; it clamps
// only the upper edge, so callers pass i >= 0. This implements the mandatory edge-clamp (not
// zero-pad) boundary policy: out-of-image samples at the right/bottom
// edge of a non-multiple-of-8 image borrow the last valid column/row
// instead of being centered as a fictitious zero sample, which would
// otherwise bias the DC term of every edge block.
func clampIndex(i, limit int) int {
	if i >= limit {
		return limit - 1
	}
	return i
}

// extractPlanarBlock fills dst with the centered samples of the block at
// block-grid coordinates (bx, by) from a single-channel planar buffer of
// size w x h with the given row stride.
func extractPlanarBlock(dst *Block, plane []byte, w, h, stride, bx, by int) {
	originX, originY := bx*8, by*8
	for j := 0; j < 8; j++ {
		sy := clampIndex(originY+j, h)
		rowOff := sy * stride
		for i := 0; i < 8; i++ {
			sx := clampIndex(originX+i, w)
			dst[j*8+i] = centeredSample(plane[rowOff+sx])
		}
	}
}

// extractInterleavedBlock is like extractPlanarBlock but reads one channel
// out of an interleaved pixel buffer (e.g. RGB, RGBA) with the given
// number of channels and channel index.
func extractInterleavedBlock(dst *Block, pix []byte, w, h, channels, channelIndex, bx, by int) {
	stride := w * channels
	originX, originY := bx*8, by*8
	for j := 0; j < 8; j++ {
		sy := clampIndex(originY+j, h)
		rowOff := sy * stride
		for i := 0; i < 8; i++ {
			sx := clampIndex(originX+i, w)
			dst[j*8+i] = centeredSample(pix[rowOff+sx*channels+channelIndex])
		}
	}
}

// storePlanarBlock writes the reconstructed pixel values of b (after
// inverse DCT and de-centering) back into a single-channel planar buffer,
// cropping any samples that fall outside the true w x h image (the
// padding introduced by extractPlanarBlock's edge clamp on encode is
// simply not written back on decode).
func storePlanarBlock(b *Block, plane []byte, w, h, stride, bx, by int) {
	originX, originY := bx*8, by*8
	for j := 0; j < 8; j++ {
		y := originY + j
		if y >= h {
			break
		}
		rowOff := y * stride
		for i := 0; i < 8; i++ {
			x := originX + i
			if x >= w {
				break
			}
			plane[rowOff+x] = reconstructSample(int32(b[j*8+i]))
		}
	}
}

// storeInterleavedBlock is the interleaved-buffer counterpart of storePlanarBlock.
func storeInterleavedBlock(b *Block, pix []byte, w, h, channels, channelIndex, bx, by int) {
	stride := w * channels
	originX, originY := bx*8, by*8
	for j := 0; j < 8; j++ {
		y := originY + j
		if y >= h {
			break
		}
		rowOff := y * stride
		for i := 0; i < 8; i++ {
			x := originX + i
			if x >= w {
				break
			}
			pix[rowOff+x*channels+channelIndex] = reconstructSample(int32(b[j*8+i]))
		}
	}
}
