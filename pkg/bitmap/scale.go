package bitmap

import (
	"fmt"
	"image"
	"strings"

	"github.com/nfnt/resize"
	"golang.org/x/image/draw"

	bherrors "github.com/provide-io/bitmaphelper/pkg/errors"
)

// Filter selects the resampler used when a decode is downsampled.
type Filter uint8

const (
	FilterNearest Filter = iota
	FilterApproxBiLinear
	FilterBiLinear
	FilterCatmullRom
	FilterLanczos3
	FilterMitchell
)

var filterNames = []string{
	FilterNearest:        "nearest",
	FilterApproxBiLinear: "approx-bilinear",
	FilterBiLinear:       "bilinear",
	FilterCatmullRom:     "catmull-rom",
	FilterLanczos3:       "lanczos3",
	FilterMitchell:       "mitchell",
}

func (f Filter) String() string {
	if int(f) < len(filterNames) {
		return filterNames[f]
	}
	return fmt.Sprintf("filter(%d)", uint8(f))
}

// Filters lists the filter names accepted by ParseFilter.
func Filters() []string {
	return append([]string(nil), filterNames...)
}

// ParseFilter returns the filter with the given name.
func ParseFilter(s string) (Filter, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return FilterNearest, nil
	}
	for i, n := range filterNames {
		if n == name {
			return Filter(i), nil
		}
	}
	return FilterNearest, fmt.Errorf("%w: %q", bherrors.ErrUnknownFilter, s)
}

// scale resamples src to width x height.
func scale(src image.Image, width, height int, f Filter) image.Image {
	switch f {
	case FilterLanczos3:
		return resize.Resize(uint(width), uint(height), src, resize.Lanczos3)
	case FilterMitchell:
		return resize.Resize(uint(width), uint(height), src, resize.MitchellNetravali)
	}

	var s draw.Scaler
	switch f {
	case FilterApproxBiLinear:
		s = draw.ApproxBiLinear
	case FilterBiLinear:
		s = draw.BiLinear
	case FilterCatmullRom:
		s = draw.CatmullRom
	default:
		s = draw.NearestNeighbor
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	s.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
