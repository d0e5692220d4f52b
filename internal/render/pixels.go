package render

// GrayBuffer accumulates composited tile blocks into a full grayscale
// preview image, stored row-major.
type GrayBuffer struct {
	W, H int
	data []uint8
}

// NewGrayBuffer allocates a buffer with the given dimensions.
func NewGrayBuffer(w, h int) *GrayBuffer {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &GrayBuffer{W: w, H: h, data: make([]uint8, w*h)}
}

// Pixels exposes the backing slice so callers can read values directly.
func (b *GrayBuffer) Pixels() []uint8 { return b.data }

// SetBlock copies a size×size row-major block into the buffer at (row, col).
// Out-of-bounds blocks are ignored.
func (b *GrayBuffer) SetBlock(row, col, size int, block []uint8) {
	if row < 0 || col < 0 || row+size > b.H || col+size > b.W || len(block) < size*size {
		return
	}
	for y := 0; y < size; y++ {
		copy(b.data[(row+y)*b.W+col:], block[y*size:(y+1)*size])
	}
}

// Clear fills the buffer with zeros.
func (b *GrayBuffer) Clear() {
	for i := range b.data {
		b.data[i] = 0
	}
}

// FillGrayRGBA expands 8-bit grayscale samples into opaque RGBA pixels in
// buf, which must hold at least 4×len(gray) bytes.
func FillGrayRGBA(buf []byte, gray []uint8) {
	for i, g := range gray {
		base := i * 4
		buf[base+0] = g
		buf[base+1] = g
		buf[base+2] = g
		buf[base+3] = 0xff
	}
}
