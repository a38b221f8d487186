package bitmap

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	bherrors "github.com/provide-io/bitmaphelper/pkg/errors"
	"github.com/provide-io/bitmaphelper/pkg/resources"
)

// Options drives a decode and receives what it learned about the source.
type Options struct {
	// JustDecodeBounds reports the source size in OutWidth/OutHeight and
	// returns no bitmap, without allocating pixel data.
	JustDecodeBounds bool

	// SampleSize divides both dimensions; values below 1 mean 1.
	SampleSize int

	// PreferredConfig is the layout of the result. ConfigUnknown means
	// ConfigARGB8888.
	PreferredConfig Config

	// Filter is the resampler used when SampleSize > 1.
	Filter Filter

	// MaxPixels caps the source width*height the full pass will allocate.
	// Zero means DefaultMaxPixels; negative means no limit.
	MaxPixels int

	// Set by the decoder: the size of the source (bounds pass) or of the
	// result (full pass), and the source MIME type.
	OutWidth    int
	OutHeight   int
	OutMimeType string
}

// DefaultMaxPixels is the source size limit of a full decode (64 MP).
const DefaultMaxPixels = 64 << 20

func (o *Options) maxPixels() int {
	if o.MaxPixels == 0 {
		return DefaultMaxPixels
	}
	return o.MaxPixels
}

// Decode reads an encoded image from r. See Options for the two passes.
func Decode(r io.Reader, opts *Options) (*Bitmap, error) {
	if opts == nil {
		opts = &Options{}
	}

	if opts.JustDecodeBounds {
		cfg, format, err := image.DecodeConfig(r)
		if err != nil {
			return nil, fmt.Errorf("%w: reading bounds: %v", bherrors.ErrDecodeFailed, err)
		}
		opts.OutWidth, opts.OutHeight = cfg.Width, cfg.Height
		opts.OutMimeType = "image/" + format
		return nil, nil
	}

	// The full pass still decodes the whole source before sampling, so the
	// header is checked against the pixel cap first.
	var head bytes.Buffer
	cfg, _, err := image.DecodeConfig(io.TeeReader(r, &head))
	if err != nil {
		return nil, fmt.Errorf("%w: reading bounds: %v", bherrors.ErrDecodeFailed, err)
	}
	if limit := opts.maxPixels(); limit > 0 && cfg.Width*cfg.Height > limit {
		return nil, fmt.Errorf("%w: %w: %dx%d > %d pixels",
			bherrors.ErrDecodeFailed, bherrors.ErrImageTooLarge, cfg.Width, cfg.Height, limit)
	}

	img, format, err := image.Decode(io.MultiReader(&head, r))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", bherrors.ErrDecodeFailed, err)
	}
	opts.OutMimeType = "image/" + format

	b := img.Bounds()
	if opts.SampleSize > 1 {
		w, h := SampledSize(b.Dx(), b.Dy(), opts.SampleSize)
		img = scale(img, w, h, opts.Filter)
	}

	bm, err := Convert(img, opts.PreferredConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", bherrors.ErrDecodeFailed, err)
	}
	opts.OutWidth, opts.OutHeight = bm.Width, bm.Height
	return bm, nil
}

// DecodeResource opens id from res and decodes it.
func DecodeResource(res resources.Resources, id resources.ID, opts *Options) (*Bitmap, error) {
	rc, err := res.Open(id)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	bm, err := Decode(rc, opts)
	if err != nil {
		return nil, fmt.Errorf("resource %s: %w", res.Name(id), err)
	}
	return bm, nil
}
