package render

// FillFrame expands per-cell values of an n×n board into a packed pixel frame
// where each cell covers a scale×scale block. Values index into palette; values
// past the end use the last entry and an empty palette yields zero pixels. dst
// is reused when large enough.
func FillFrame(dst []uint32, cells []uint8, n, scale int, palette []uint32) []uint32 {
	if scale <= 0 {
		scale = 1
	}
	side := n * scale
	total := side * side
	if cap(dst) < total {
		dst = make([]uint32, total)
	}
	dst = dst[:total]
	if len(palette) == 0 || len(cells) < n*n {
		clear(dst)
		return dst
	}

	last := len(palette) - 1
	for row := 0; row < n; row++ {
		line := dst[row*scale*side : (row*scale+1)*side]
		for col := 0; col < n; col++ {
			idx := int(cells[row*n+col])
			if idx > last {
				idx = last
			}
			px := palette[idx]
			block := line[col*scale : (col+1)*scale]
			for i := range block {
				block[i] = px
			}
		}
		for k := 1; k < scale; k++ {
			copy(dst[(row*scale+k)*side:(row*scale+k+1)*side], line)
		}
	}
	return dst
}

// ToRGBA converts 0xAARRGGBB pixels into the RGBA byte layout image uploads
// expect. buf must hold 4 bytes per pixel.
func ToRGBA(buf []byte, frame []uint32) {
	for i, px := range frame {
		base := i * 4
		buf[base+0] = uint8(px >> 16)
		buf[base+1] = uint8(px >> 8)
		buf[base+2] = uint8(px)
		buf[base+3] = uint8(px >> 24)
	}
}
