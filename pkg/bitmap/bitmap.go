package bitmap

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"

	bherrors "github.com/provide-io/bitmaphelper/pkg/errors"
)

// Bitmap is a pixel buffer with an explicit width, height and layout.
// Rows are Stride bytes apart; multi-byte pixels are little-endian.
type Bitmap struct {
	Width  int
	Height int
	Stride int
	Config Config
	Pix    []byte
}

var _ draw.Image = (*Bitmap)(nil)

// New allocates a zeroed bitmap. An unknown cfg is stored as ConfigARGB8888.
func New(width, height int, cfg Config) (*Bitmap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", bherrors.ErrInvalidDimensions, width, height)
	}
	if !cfg.Valid() {
		cfg = ConfigARGB8888
	}

	stride := width * cfg.BytesPerPixel()
	return &Bitmap{
		Width:  width,
		Height: height,
		Stride: stride,
		Config: cfg,
		Pix:    make([]byte, stride*height),
	}, nil
}

// CreateBitmap allocates a bitmap whose layout is given as an integer
// constant; see ConfigForFormat for the fallback rules.
func CreateBitmap(width, height int, format Format) (*Bitmap, error) {
	return New(width, height, ConfigForFormat(format))
}

// Convert copies src into a new bitmap of the given layout.
func Convert(src image.Image, cfg Config) (*Bitmap, error) {
	sb := src.Bounds()
	dst, err := New(sb.Dx(), sb.Dy(), cfg)
	if err != nil {
		return nil, err
	}

	if rgba, ok := src.(*image.RGBA); ok && dst.Config == ConfigARGB8888 {
		for y := 0; y < dst.Height; y++ {
			srcOff := rgba.PixOffset(sb.Min.X, sb.Min.Y+y)
			copy(dst.Pix[y*dst.Stride:(y+1)*dst.Stride], rgba.Pix[srcOff:srcOff+dst.Stride])
		}
		return dst, nil
	}

	draw.Draw(dst, dst.Bounds(), src, sb.Min, draw.Src)
	return dst, nil
}

// Format returns the integer constant for the bitmap's layout.
func (b *Bitmap) Format() Format {
	return FormatForConfig(b.Config)
}

// ByteCount returns the size of the pixel buffer in bytes.
func (b *Bitmap) ByteCount() int {
	return b.Stride * b.Height
}

// Copy returns a deep copy of the bitmap.
func (b *Bitmap) Copy() *Bitmap {
	pix := make([]byte, len(b.Pix))
	copy(pix, b.Pix)
	return &Bitmap{
		Width:  b.Width,
		Height: b.Height,
		Stride: b.Stride,
		Config: b.Config,
		Pix:    pix,
	}
}

// ColorModel implements image.Image.
func (b *Bitmap) ColorModel() color.Model {
	return b.Config.ColorModel()
}

// Bounds implements image.Image.
func (b *Bitmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Width, b.Height)
}

// PixOffset returns the index of the first byte of the pixel at (x, y).
func (b *Bitmap) PixOffset(x, y int) int {
	return y*b.Stride + x*b.Config.BytesPerPixel()
}

// At implements image.Image.
func (b *Bitmap) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(b.Bounds())) {
		return b.ColorModel().Convert(color.Transparent)
	}

	i := b.PixOffset(x, y)
	switch b.Config {
	case ConfigAlpha8:
		return color.Alpha{A: b.Pix[i]}
	case ConfigARGB4444:
		return argb4444FromWord(uint16(b.Pix[i]) | uint16(b.Pix[i+1])<<8)
	case ConfigRGB565:
		return rgb565FromWord(uint16(b.Pix[i]) | uint16(b.Pix[i+1])<<8)
	default:
		s := b.Pix[i : i+4 : i+4]
		return color.RGBA{R: s[0], G: s[1], B: s[2], A: s[3]}
	}
}

// Set implements draw.Image.
func (b *Bitmap) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}.In(b.Bounds())) {
		return
	}

	i := b.PixOffset(x, y)
	switch b.Config {
	case ConfigAlpha8:
		b.Pix[i] = color.AlphaModel.Convert(c).(color.Alpha).A
	case ConfigARGB4444:
		w := ARGB4444Model.Convert(c).(Color4444).word()
		b.Pix[i], b.Pix[i+1] = byte(w), byte(w>>8)
	case ConfigRGB565:
		w := RGB565Model.Convert(c).(Color565).word()
		b.Pix[i], b.Pix[i+1] = byte(w), byte(w>>8)
	default:
		c1 := color.RGBAModel.Convert(c).(color.RGBA)
		s := b.Pix[i : i+4 : i+4]
		s[0], s[1], s[2], s[3] = c1.R, c1.G, c1.B, c1.A
	}
}

// RGBA returns the bitmap as a standard *image.RGBA, sharing no memory.
func (b *Bitmap) RGBA() *image.RGBA {
	out := image.NewRGBA(b.Bounds())
	if b.Config == ConfigARGB8888 {
		copy(out.Pix, b.Pix)
		return out
	}
	draw.Draw(out, out.Bounds(), b, image.Point{}, draw.Src)
	return out
}
