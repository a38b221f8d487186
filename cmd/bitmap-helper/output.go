package main

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/provide-io/bitmaphelper/pkg/bitmap"
	"github.com/provide-io/bitmaphelper/pkg/codec"
)

// writeBitmap encodes bm by the extension of path. A trailing codec suffix
// (.gz, .bz2) compresses the encoded file.
func writeBitmap(path string, bm *bitmap.Bitmap) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("failed to close output: %w", cerr)
		}
	}()

	var w io.Writer = f
	if c, ok := codec.ForPath(path); ok {
		cw, err := c.NewWriter(f)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := cw.Close(); err == nil && cerr != nil {
				err = fmt.Errorf("failed to finish %s stream: %w", c.Name(), cerr)
			}
		}()
		w = cw
	}

	img := bm.RGBA()
	switch strings.ToLower(filepath.Ext(codec.TrimExt(path))) {
	case ".bmp":
		err = bmp.Encode(w, img)
	default:
		err = png.Encode(w, img)
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}
