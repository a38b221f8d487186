package bitmap

import "math"

// CalculateInSampleSize picks the integer downsampling factor for a
// width x height source that is displayed at reqWidth x reqHeight.
//
// The ratio on each axis is rounded half away from zero and the smaller of
// the two is used, so the aspect ratio is kept and the decoded image stays
// close to (and normally no smaller than) the requested size. A non-positive
// requested dimension leaves that axis unconstrained. The result is never
// below 1.
func CalculateInSampleSize(width, height, reqWidth, reqHeight int) int {
	widthBound := reqWidth <= 0 || width <= reqWidth
	heightBound := reqHeight <= 0 || height <= reqHeight
	if widthBound && heightBound {
		return 1
	}

	sample := math.MaxInt
	if reqHeight > 0 {
		sample = min(sample, roundRatio(height, reqHeight))
	}
	if reqWidth > 0 {
		sample = min(sample, roundRatio(width, reqWidth))
	}

	return max(sample, 1)
}

func roundRatio(n, d int) int {
	return int(math.Round(float64(n) / float64(d)))
}

// SampledSize returns the dimensions a decode with the given sample size
// produces. Each axis is divided and floored, with a minimum of 1.
func SampledSize(width, height, sampleSize int) (int, int) {
	if sampleSize < 1 {
		sampleSize = 1
	}
	return max(width/sampleSize, 1), max(height/sampleSize, 1)
}
