package bitmap

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"github.com/provide-io/bitmaphelper/pkg/codec"
	bherrors "github.com/provide-io/bitmaphelper/pkg/errors"
	"github.com/provide-io/bitmaphelper/pkg/resources"
)

func testLogger() hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:  "bitmap_test",
		Level: hclog.Trace,
	})
}

func gradient(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 0x40, A: 0xff})
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func encodeBMP(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, bmp.Encode(&buf, img))
	return buf.Bytes()
}

func encodeGIF(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, gif.Encode(&buf, img, nil))
	return buf.Bytes()
}

func gzipped(t *testing.T, data []byte) []byte {
	t.Helper()
	c, err := codec.Get("gzip")
	require.NoError(t, err)
	var buf bytes.Buffer
	w, err := c.NewWriter(&buf)
	require.NoError(t, err)
	_, err = w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func testResources(t *testing.T) resources.Resources {
	t.Helper()
	gray := image.NewGray(image.Rect(0, 0, 40, 20))
	alpha := image.NewAlpha(image.Rect(0, 0, 30, 30))

	res, err := resources.NewFS(fstest.MapFS{
		"drawable/wide.png":      {Data: encodePNG(t, gradient(1000, 500))},
		"drawable/small.png":     {Data: encodePNG(t, gradient(20, 10))},
		"drawable/gray.png":      {Data: encodePNG(t, gray)},
		"drawable/mask.png":      {Data: encodePNG(t, alpha)},
		"drawable/legacy.bmp":    {Data: encodeBMP(t, gradient(300, 200))},
		"drawable/anim.gif":      {Data: encodeGIF(t, gradient(64, 64))},
		"drawable/packed.png.gz": {Data: gzipped(t, encodePNG(t, gradient(400, 400)))},
		"drawable/corrupt.png":   {Data: []byte("\x89PNG\r\n\x1a\nnot really")},
	}, resources.WithLogger(testLogger()))
	require.NoError(t, err)
	return res
}

func TestDecodeBoundsOnly(t *testing.T) {
	opts := &Options{JustDecodeBounds: true}
	bm, err := Decode(bytes.NewReader(encodePNG(t, gradient(37, 11))), opts)
	require.NoError(t, err)
	assert.Nil(t, bm)
	assert.Equal(t, 37, opts.OutWidth)
	assert.Equal(t, 11, opts.OutHeight)
	assert.Equal(t, "image/png", opts.OutMimeType)
}

func TestDecodeSampled(t *testing.T) {
	src := gradient(100, 60)
	opts := &Options{SampleSize: 4, PreferredConfig: ConfigRGB565}
	bm, err := Decode(bytes.NewReader(encodePNG(t, src)), opts)
	require.NoError(t, err)
	assert.Equal(t, 25, bm.Width)
	assert.Equal(t, 15, bm.Height)
	assert.Equal(t, ConfigRGB565, bm.Config)
	assert.Equal(t, 25, opts.OutWidth)
	assert.Equal(t, 15, opts.OutHeight)
}

func TestDecodeFilters(t *testing.T) {
	data := encodePNG(t, gradient(64, 32))
	for i := range Filters() {
		f := Filter(i)
		t.Run(f.String(), func(t *testing.T) {
			bm, err := Decode(bytes.NewReader(data), &Options{SampleSize: 2, Filter: f})
			require.NoError(t, err)
			assert.Equal(t, 32, bm.Width)
			assert.Equal(t, 16, bm.Height)
			assert.Equal(t, ConfigARGB8888, bm.Config)
		})
	}
}

func TestDecodeNilOptionsAndGarbage(t *testing.T) {
	bm, err := Decode(bytes.NewReader(encodePNG(t, gradient(3, 3))), nil)
	require.NoError(t, err)
	assert.Equal(t, ConfigARGB8888, bm.Config)

	_, err = Decode(bytes.NewReader([]byte("nope")), nil)
	assert.ErrorIs(t, err, bherrors.ErrDecodeFailed)

	_, err = Decode(bytes.NewReader([]byte("nope")), &Options{JustDecodeBounds: true})
	assert.ErrorIs(t, err, bherrors.ErrDecodeFailed)
}

func TestDecodePixelLimit(t *testing.T) {
	data := encodePNG(t, gradient(20, 10))

	tests := []struct {
		name      string
		maxPixels int
		wantErr   bool
	}{
		{"default", 0, false},
		{"exact", 200, false},
		{"below", 199, true},
		{"unlimited", -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := &Options{MaxPixels: tt.maxPixels, SampleSize: 2}
			bm, err := Decode(bytes.NewReader(data), opts)
			if tt.wantErr {
				assert.Nil(t, bm)
				assert.ErrorIs(t, err, bherrors.ErrImageTooLarge)
				assert.ErrorIs(t, err, bherrors.ErrDecodeFailed)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 10, bm.Width)
			assert.Equal(t, 5, bm.Height)
		})
	}
}

func TestDecodeDrawableResource(t *testing.T) {
	res := testResources(t)

	tests := []struct {
		name                string
		reqWidth, reqHeight int
		wantW, wantH        int
	}{
		{"drawable/wide", 100, 100, 200, 100},
		{"android:drawable/wide", 100, 100, 200, 100},
		{"drawable/small", 100, 100, 20, 10},
		{"drawable/legacy", 100, 100, 150, 100},
		{"drawable/anim", 32, 32, 32, 32},
		{"drawable/packed", 100, 100, 100, 100},
		{"drawable/gray", 10, 10, 20, 10},
		{"drawable/mask", 100, 100, 30, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bm, err := DecodeDrawableResourceWithOptions(res, tt.name, tt.reqWidth, tt.reqHeight, FilterNearest, testLogger())
			require.NoError(t, err)
			require.NotNil(t, bm)
			assert.Equal(t, tt.wantW, bm.Width)
			assert.Equal(t, tt.wantH, bm.Height)
			assert.Equal(t, ConfigARGB8888, bm.Config, "output is always 32-bit")
			assert.Equal(t, ARGB8888, bm.Format())
		})
	}
}

func TestDecodeDrawableResourceKeepsAspectRatio(t *testing.T) {
	res := testResources(t)
	bm, err := DecodeDrawableResource(res, "drawable/wide", 100, 100)
	require.NoError(t, err)
	assert.Equal(t, 2*bm.Height, bm.Width)
	assert.GreaterOrEqual(t, bm.Width, 100)
	assert.GreaterOrEqual(t, bm.Height, 100)
}

func TestDecodeDrawableResourceMissing(t *testing.T) {
	res := testResources(t)
	for _, name := range []string{"drawable/missing", "mipmap/wide", "other:drawable/wide", "wide", ""} {
		bm, err := DecodeDrawableResource(res, name, 10, 10)
		assert.NoError(t, err, name)
		assert.Nil(t, bm, name)
	}
}

func TestDecodeDrawableResourceCorrupt(t *testing.T) {
	res := testResources(t)
	bm, err := DecodeDrawableResource(res, "drawable/corrupt", 10, 10)
	assert.Nil(t, bm)
	assert.ErrorIs(t, err, bherrors.ErrDecodeFailed)
}

func TestDecodeResourceUnknownID(t *testing.T) {
	res := testResources(t)
	_, err := DecodeResource(res, 0x01ff0000, nil)
	assert.ErrorIs(t, err, bherrors.ErrResourceNotFound)
}

func TestParseFilter(t *testing.T) {
	for i, name := range Filters() {
		f, err := ParseFilter(name)
		require.NoError(t, err)
		assert.Equal(t, Filter(i), f)
	}

	f, err := ParseFilter("")
	require.NoError(t, err)
	assert.Equal(t, FilterNearest, f)

	_, err = ParseFilter("box")
	assert.ErrorIs(t, err, bherrors.ErrUnknownFilter)
	assert.Equal(t, "filter(42)", Filter(42).String())
}
