package bitmap

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bherrors "github.com/provide-io/bitmaphelper/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		cfg    Config
		stride int
	}{
		{ConfigAlpha8, 10},
		{ConfigARGB4444, 20},
		{ConfigARGB8888, 40},
		{ConfigRGB565, 20},
	}

	for _, tt := range tests {
		t.Run(tt.cfg.String(), func(t *testing.T) {
			bm, err := New(10, 3, tt.cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.cfg, bm.Config)
			assert.Equal(t, tt.stride, bm.Stride)
			assert.Equal(t, tt.stride*3, bm.ByteCount())
			assert.Len(t, bm.Pix, bm.ByteCount())
			assert.Equal(t, image.Rect(0, 0, 10, 3), bm.Bounds())
		})
	}
}

func TestNewInvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-4, 4}} {
		_, err := New(dims[0], dims[1], ConfigARGB8888)
		assert.ErrorIs(t, err, bherrors.ErrInvalidDimensions)
	}
}

func TestCreateBitmapUsesFormatTable(t *testing.T) {
	bm, err := CreateBitmap(4, 4, RGB565)
	require.NoError(t, err)
	assert.Equal(t, ConfigRGB565, bm.Config)
	assert.Equal(t, RGB565, bm.Format())

	bm, err = CreateBitmap(4, 4, Format(42))
	require.NoError(t, err)
	assert.Equal(t, ConfigARGB8888, bm.Config)

	bm, err = New(2, 2, Config(77))
	require.NoError(t, err)
	assert.Equal(t, ConfigARGB8888, bm.Config)
}

func TestSetAt(t *testing.T) {
	tests := []struct {
		cfg  Config
		in   color.Color
		want color.Color
	}{
		{ConfigARGB8888, color.RGBA{R: 10, G: 20, B: 30, A: 40}, color.RGBA{R: 10, G: 20, B: 30, A: 40}},
		{ConfigAlpha8, color.RGBA{R: 1, G: 2, B: 3, A: 0x80}, color.Alpha{A: 0x80}},
		{ConfigARGB4444, color.RGBA{R: 0xff, G: 0x88, B: 0x00, A: 0xff}, Color4444{A: 15, R: 15, G: 8, B: 0}},
		{ConfigRGB565, color.RGBA{R: 0xff, G: 0x80, B: 0x08, A: 0xff}, Color565{R: 31, G: 32, B: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.cfg.String(), func(t *testing.T) {
			bm, err := New(3, 2, tt.cfg)
			require.NoError(t, err)
			bm.Set(2, 1, tt.in)
			assert.Equal(t, tt.want, bm.At(2, 1))
			assert.Equal(t, bm.ColorModel().Convert(color.Transparent), bm.At(0, 0))
		})
	}
}

func TestSetOutOfBoundsIgnored(t *testing.T) {
	bm, err := New(2, 2, ConfigARGB8888)
	require.NoError(t, err)
	bm.Set(-1, 0, color.White)
	bm.Set(2, 2, color.White)
	assert.Equal(t, make([]byte, 16), bm.Pix)
	assert.Equal(t, color.RGBA{}, bm.At(5, 5))
}

func TestPixelLayouts(t *testing.T) {
	bm, _ := New(1, 1, ConfigRGB565)
	bm.Set(0, 0, color.RGBA{R: 0xff, A: 0xff})
	assert.Equal(t, []byte{0x00, 0xf8}, bm.Pix, "red is the top five bits, little-endian")

	bm, _ = New(1, 1, ConfigARGB4444)
	bm.Set(0, 0, color.RGBA{B: 0xff, A: 0xff})
	assert.Equal(t, []byte{0x0f, 0xf0}, bm.Pix, "word 0xF00F")

	bm, _ = New(1, 1, ConfigARGB8888)
	bm.Set(0, 0, color.RGBA{R: 1, G: 2, B: 3, A: 4})
	assert.Equal(t, []byte{1, 2, 3, 4}, bm.Pix)
}

func TestColorRoundTrip(t *testing.T) {
	c := Color565{R: 31, G: 63, B: 31}
	r, g, b, a := c.RGBA()
	assert.Equal(t, []uint32{0xffff, 0xffff, 0xffff, 0xffff}, []uint32{r, g, b, a})
	assert.Equal(t, c, RGB565Model.Convert(c))
	assert.Equal(t, c, RGB565Model.Convert(color.White))

	q := Color4444{A: 15, R: 3, G: 7, B: 11}
	assert.Equal(t, q, ARGB4444Model.Convert(q))
	assert.Equal(t, q, ARGB4444Model.Convert(color.RGBA64Model.Convert(q)))
}

func TestConvert(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 10, 14, 13))
	for i := range src.Pix {
		src.Pix[i] = uint8(i)
	}
	for i := 3; i < len(src.Pix); i += 4 {
		src.Pix[i] = 0xff
	}

	bm, err := Convert(src, ConfigARGB8888)
	require.NoError(t, err)
	assert.Equal(t, 4, bm.Width)
	assert.Equal(t, 3, bm.Height)
	assert.Equal(t, src.Pix, bm.Pix)

	sub := src.SubImage(image.Rect(11, 11, 13, 13)).(*image.RGBA)
	bm, err = Convert(sub, ConfigARGB8888)
	require.NoError(t, err)
	assert.Equal(t, sub.At(11, 11), bm.At(0, 0))
	assert.Equal(t, sub.At(12, 12), bm.At(1, 1))

	rgb, err := Convert(src, ConfigRGB565)
	require.NoError(t, err)
	assert.Equal(t, RGB565Model.Convert(src.At(12, 11)), rgb.At(2, 1))

	gray := image.NewGray(image.Rect(0, 0, 2, 2))
	gray.SetGray(1, 1, color.Gray{Y: 0x40})
	bm, err = Convert(gray, ConfigARGB8888)
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xff}, bm.At(1, 1))

	_, err = Convert(image.NewRGBA(image.Rectangle{}), ConfigARGB8888)
	assert.ErrorIs(t, err, bherrors.ErrInvalidDimensions)
}

func TestCopyAndRGBA(t *testing.T) {
	bm, _ := New(2, 1, ConfigRGB565)
	bm.Set(1, 0, color.White)

	cp := bm.Copy()
	assert.Equal(t, bm, cp)
	cp.Set(0, 0, color.White)
	assert.NotEqual(t, bm.Pix, cp.Pix)

	rgba := bm.RGBA()
	assert.Equal(t, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, rgba.At(1, 0))
	assert.Equal(t, color.RGBA{A: 0xff}, rgba.At(0, 0))
}
