// Package codec provides the stream compressions resource files may be
// stored with. Codecs register themselves on package init.
package codec

import (
	"fmt"
	"io"
	"path"
	"sort"
	"strings"

	bherrors "github.com/provide-io/bitmaphelper/pkg/errors"
)

// Codec wraps streams in a compression format.
type Codec interface {
	// Name returns the codec identifier (e.g. "gzip")
	Name() string

	// Ext returns the file suffix including the dot (e.g. ".gz")
	Ext() string

	// NewReader returns a decompressing reader over r
	NewReader(r io.Reader) (io.ReadCloser, error)

	// NewWriter returns a compressing writer over w
	NewWriter(w io.Writer) (io.WriteCloser, error)
}

var registry = make(map[string]Codec)

// Register adds c to the registry, replacing any codec with the same name.
func Register(c Codec) {
	registry[c.Name()] = c
}

// Get retrieves a codec by name.
func Get(name string) (Codec, error) {
	c, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", bherrors.ErrUnknownCodec, name)
	}
	return c, nil
}

// ForPath returns the codec whose suffix p carries.
func ForPath(p string) (Codec, bool) {
	ext := strings.ToLower(path.Ext(p))
	if ext == "" {
		return nil, false
	}
	for _, c := range registry {
		if c.Ext() == ext {
			return c, true
		}
	}
	return nil, false
}

// TrimExt strips a registered codec suffix from p.
func TrimExt(p string) string {
	if c, ok := ForPath(p); ok {
		return p[:len(p)-len(c.Ext())]
	}
	return p
}

// Names lists the registered codec names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
