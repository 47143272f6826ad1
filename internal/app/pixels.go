package app

// decodeFrameBuffer unpacks the PPU's ABGR8888 byte stream (A, B, G, R
// per pixel) into the 0x00RRGGBB words the graphics backends draw.
// dst is filled up to min(len(dst), len(src)/4) words; alpha is
// discarded, the NES has no transparency concept at the framebuffer
// level.
func decodeFrameBuffer(src []byte, dst []uint32) {
	n := len(dst)
	if max := len(src) / 4; max < n {
		n = max
	}
	for i := 0; i < n; i++ {
		b := src[i*4+1]
		g := src[i*4+2]
		r := src[i*4+3]
		dst[i] = uint32(r)<<16 | uint32(g)<<8 | uint32(b)
	}
}
