// Package bitmap holds the pixel buffer type, the pixel format tables and the
// two-pass decoder used to load downsampled bitmap resources.
package bitmap

import (
	"fmt"
	"image/color"
	"strings"

	bherrors "github.com/provide-io/bitmaphelper/pkg/errors"
)

// Config is the in-memory pixel layout of a Bitmap.
type Config uint8

const (
	ConfigUnknown  Config = iota // Not a valid layout
	ConfigAlpha8                 // 8-bit alpha only
	ConfigARGB4444               // 16-bit, 4 bits per channel
	ConfigARGB8888               // 32-bit, 8 bits per channel
	ConfigRGB565                 // 16-bit opaque, 5-6-5
)

// Format is the stable integer encoding of a pixel layout, as exchanged with
// native code and persisted on the wire.
type Format int32

const (
	NoConfig Format = 0
	Alpha8   Format = 1
	ARGB4444 Format = 2
	ARGB8888 Format = 3
	RGB565   Format = 4
)

// FormatForConfig returns the integer constant for cfg. Configs outside the
// known set map to NoConfig.
func FormatForConfig(cfg Config) Format {
	switch cfg {
	case ConfigAlpha8:
		return Alpha8
	case ConfigARGB4444:
		return ARGB4444
	case ConfigARGB8888:
		return ARGB8888
	case ConfigRGB565:
		return RGB565
	default:
		return NoConfig
	}
}

// ConfigForFormat returns the Config for an integer constant. NoConfig and
// unknown values fall back to ConfigARGB8888.
func ConfigForFormat(format Format) Config {
	switch format {
	case Alpha8:
		return ConfigAlpha8
	case ARGB4444:
		return ConfigARGB4444
	case RGB565:
		return ConfigRGB565
	case ARGB8888:
		return ConfigARGB8888
	default:
		return ConfigARGB8888
	}
}

var configNames = map[Config]string{
	ConfigAlpha8:   "ALPHA_8",
	ConfigARGB4444: "ARGB_4444",
	ConfigARGB8888: "ARGB_8888",
	ConfigRGB565:   "RGB_565",
}

// Configs lists the known configs in integer-constant order.
func Configs() []Config {
	return []Config{ConfigAlpha8, ConfigARGB4444, ConfigARGB8888, ConfigRGB565}
}

func (c Config) String() string {
	if name, ok := configNames[c]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN_%d", uint8(c))
}

// Valid reports whether c is one of the known layouts.
func (c Config) Valid() bool {
	_, ok := configNames[c]
	return ok
}

// BytesPerPixel returns the storage size of a single pixel, 0 for unknown
// configs.
func (c Config) BytesPerPixel() int {
	switch c {
	case ConfigAlpha8:
		return 1
	case ConfigARGB4444, ConfigRGB565:
		return 2
	case ConfigARGB8888:
		return 4
	default:
		return 0
	}
}

// HasAlpha reports whether the layout stores an alpha channel.
func (c Config) HasAlpha() bool {
	return c == ConfigAlpha8 || c == ConfigARGB4444 || c == ConfigARGB8888
}

// ColorModel returns the color.Model pixels of this layout are converted through.
func (c Config) ColorModel() color.Model {
	switch c {
	case ConfigAlpha8:
		return color.AlphaModel
	case ConfigARGB4444:
		return ARGB4444Model
	case ConfigRGB565:
		return RGB565Model
	default:
		return color.RGBAModel
	}
}

// ParseConfig accepts names such as "ARGB_8888" or "rgb565".
func ParseConfig(s string) (Config, error) {
	norm := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "_", ""))
	for cfg, name := range configNames {
		if strings.ReplaceAll(name, "_", "") == norm {
			return cfg, nil
		}
	}
	return ConfigUnknown, fmt.Errorf("%w: %q", bherrors.ErrUnknownConfig, s)
}

func (f Format) String() string {
	if f == NoConfig {
		return "NO_CONFIG"
	}
	cfg := ConfigForFormat(f)
	if FormatForConfig(cfg) != f {
		return fmt.Sprintf("UNKNOWN_%d", int32(f))
	}
	return cfg.String()
}
