package errors

import "errors"

var (
	// Resource errors 📂
	ErrResourceNotFound    = errors.New("❌ resource not found")
	ErrInvalidResourceName = errors.New("❌ invalid resource name")
	ErrTooManyResources    = errors.New("❌ too many resources")
	ErrInvalidDIB          = errors.New("❌ invalid device-independent bitmap")

	// Bitmap errors 🖼️
	ErrInvalidDimensions = errors.New("❌ invalid bitmap dimensions")
	ErrDecodeFailed      = errors.New("❌ bitmap decode failed")
	ErrImageTooLarge     = errors.New("❌ image exceeds pixel limit")
	ErrUnknownConfig     = errors.New("❌ unknown bitmap config")
	ErrUnknownFilter     = errors.New("❌ unknown resampling filter")

	// Codec errors 📦
	ErrUnknownCodec = errors.New("❌ unknown codec")
)
