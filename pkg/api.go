package pkg

import (
	"sync"

	"github.com/provide-io/bitmaphelper/internal/resroot"
	"github.com/provide-io/bitmaphelper/pkg/bitmap"
	"github.com/provide-io/bitmaphelper/pkg/logging"
	"github.com/provide-io/bitmaphelper/pkg/resources"
)

var (
	systemOnce sync.Once
	system     resources.Resources
	systemErr  error
)

// SystemResources returns the process-wide resource source, loaded on first
// use from the location resroot.Root reports.
func SystemResources() (resources.Resources, error) {
	systemOnce.Do(func() {
		logger := logging.NewLogger("resources", logging.GetLogLevel(), nil)
		system, systemErr = resources.Open(resroot.Root(), resources.WithLogger(logger))
	})
	return system, systemErr
}

// DecodeDrawableResource decodes a system resource sampled down towards the
// requested size. A name that does not resolve yields (nil, nil).
func DecodeDrawableResource(name string, reqWidth, reqHeight int) (*bitmap.Bitmap, error) {
	res, err := SystemResources()
	if err != nil {
		return nil, err
	}
	return bitmap.DecodeDrawableResource(res, name, reqWidth, reqHeight)
}

// CreateBitmap allocates a bitmap from its integer format constant.
func CreateBitmap(width, height int, format int) (*bitmap.Bitmap, error) {
	return bitmap.CreateBitmap(width, height, bitmap.Format(format))
}

// GetBitmapFormatForConfig returns the integer constant for cfg.
func GetBitmapFormatForConfig(cfg bitmap.Config) int {
	return int(bitmap.FormatForConfig(cfg))
}

// GetBitmapConfigForFormat returns the Config for an integer constant.
func GetBitmapConfigForFormat(format int) bitmap.Config {
	return bitmap.ConfigForFormat(bitmap.Format(format))
}
