package resources

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"strings"
)

// FS is a resource source laid out as type/entry.ext[.gz|.bz2] inside an
// fs.FS, e.g. drawable/ic_menu.png or drawable/splash.webp.bz2.
type FS struct {
	*table
	fsys fs.FS
}

var _ Resources = (*FS)(nil)

// NewFS indexes fsys. Files outside a type directory, files nested deeper
// than one level and files without an image extension are skipped.
func NewFS(fsys fs.FS, opts ...Option) (*FS, error) {
	o := buildOptions(opts)

	var items []item
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != "." && strings.Count(p, "/") > 0 {
				return fs.SkipDir
			}
			return nil
		}

		typ, file := path.Split(p)
		typ = strings.TrimSuffix(typ, "/")
		if typ == "" {
			o.logger.Trace("Skipping file outside a type directory", "path", p)
			return nil
		}
		entry, ok := entryName(file)
		if !ok {
			o.logger.Trace("Skipping non-image file", "path", p)
			return nil
		}

		filePath := p
		items = append(items, item{
			typ:   typ,
			entry: entry,
			src:   filePath,
			open: func() (io.ReadCloser, error) {
				return fsys.Open(filePath)
			},
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to index resources: %w", err)
	}

	t, err := newTable(o, false, items)
	if err != nil {
		return nil, err
	}
	return &FS{table: t, fsys: fsys}, nil
}

// NewDir indexes a resource directory on disk.
func NewDir(root string, opts ...Option) (*FS, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to stat resource directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("resource root %s is not a directory", root)
	}
	return NewFS(os.DirFS(root), opts...)
}
