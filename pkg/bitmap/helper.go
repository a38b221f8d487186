package bitmap

import (
	"github.com/hashicorp/go-hclog"

	"github.com/provide-io/bitmaphelper/pkg/debugflags"
	"github.com/provide-io/bitmaphelper/pkg/logging"
	"github.com/provide-io/bitmaphelper/pkg/resources"
)

// DecodeDrawableResource decodes the named resource sampled down towards
// reqWidth x reqHeight. The result keeps the source aspect ratio, is always
// ARGB_8888, and is nil without error when the name does not resolve.
func DecodeDrawableResource(res resources.Resources, name string, reqWidth, reqHeight int) (*Bitmap, error) {
	return DecodeDrawableResourceWithOptions(res, name, reqWidth, reqHeight, FilterNearest, nil)
}

// DecodeDrawableResourceWithOptions is DecodeDrawableResource with a choice
// of resampling filter and a logger.
func DecodeDrawableResourceWithOptions(res resources.Resources, name string, reqWidth, reqHeight int, filter Filter, logger hclog.Logger) (*Bitmap, error) {
	logger = debugflags.Logger(logging.OrNull(logger), debugflags.NameBitmapHelper)

	id := res.Identifier(name)
	if id == resources.NotFound {
		logger.Debug("Resource not found", "name", name)
		return nil, nil
	}

	opts := &Options{JustDecodeBounds: true}
	if _, err := DecodeResource(res, id, opts); err != nil {
		return nil, err
	}

	opts.SampleSize = CalculateInSampleSize(opts.OutWidth, opts.OutHeight, reqWidth, reqHeight)
	logger.Debug("Measured resource",
		"name", name,
		"id", resources.FormatID(id),
		"width", opts.OutWidth,
		"height", opts.OutHeight,
		"mime", opts.OutMimeType,
		"sample_size", opts.SampleSize)

	opts.JustDecodeBounds = false
	opts.PreferredConfig = ConfigARGB8888
	opts.Filter = filter
	bm, err := DecodeResource(res, id, opts)
	if err != nil {
		return nil, err
	}

	logger.Debug("Decoded resource",
		"name", name,
		"width", bm.Width,
		"height", bm.Height,
		"config", bm.Config,
		"bytes", bm.ByteCount())
	return bm, nil
}
