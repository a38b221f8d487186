package bitmap

import "image/color"

// Color4444 is a premultiplied color with 4 bits per channel.
type Color4444 struct {
	A, R, G, B uint8 // each in [0, 15]
}

// RGBA implements color.Color.
func (c Color4444) RGBA() (r, g, b, a uint32) {
	return uint32(c.R&0xF) * 0x1111, uint32(c.G&0xF) * 0x1111, uint32(c.B&0xF) * 0x1111, uint32(c.A&0xF) * 0x1111
}

// Color565 is an opaque color with 5 bits of red, 6 of green and 5 of blue.
type Color565 struct {
	R, G, B uint8 // R and B in [0, 31], G in [0, 63]
}

// RGBA implements color.Color.
func (c Color565) RGBA() (r, g, b, a uint32) {
	r8 := uint32(c.R&0x1F)<<3 | uint32(c.R&0x1F)>>2
	g8 := uint32(c.G&0x3F)<<2 | uint32(c.G&0x3F)>>4
	b8 := uint32(c.B&0x1F)<<3 | uint32(c.B&0x1F)>>2
	return r8 * 0x101, g8 * 0x101, b8 * 0x101, 0xffff
}

var (
	ARGB4444Model = color.ModelFunc(argb4444Model)
	RGB565Model   = color.ModelFunc(rgb565Model)
)

// to4 narrows a 16-bit channel to 4 bits with rounding.
func to4(v uint32) uint8 {
	return uint8((v*15 + 0x7fff) / 0xffff)
}

func argb4444Model(c color.Color) color.Color {
	if c, ok := c.(Color4444); ok {
		return c
	}
	r, g, b, a := c.RGBA()
	return Color4444{A: to4(a), R: to4(r), G: to4(g), B: to4(b)}
}

// rgb565Model drops alpha. Channels are already premultiplied, which is the
// same as compositing over black.
func rgb565Model(c color.Color) color.Color {
	if c, ok := c.(Color565); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return Color565{R: uint8(r >> 11), G: uint8(g >> 10), B: uint8(b >> 11)}
}

func (c Color4444) word() uint16 {
	return uint16(c.A&0xF)<<12 | uint16(c.R&0xF)<<8 | uint16(c.G&0xF)<<4 | uint16(c.B&0xF)
}

func argb4444FromWord(w uint16) Color4444 {
	return Color4444{A: uint8(w >> 12), R: uint8(w>>8) & 0xF, G: uint8(w>>4) & 0xF, B: uint8(w) & 0xF}
}

func (c Color565) word() uint16 {
	return uint16(c.R&0x1F)<<11 | uint16(c.G&0x3F)<<5 | uint16(c.B&0x1F)
}

func rgb565FromWord(w uint16) Color565 {
	return Color565{R: uint8(w >> 11), G: uint8(w>>5) & 0x3F, B: uint8(w) & 0x1F}
}
