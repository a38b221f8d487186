// Package resources resolves named bitmap resources to numeric identifiers
// and opens their encoded bytes. Sources are built once and are read-only
// afterwards, so they are safe for concurrent use.
package resources

import (
	"fmt"
	"io"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/provide-io/bitmaphelper/pkg/codec"
	bherrors "github.com/provide-io/bitmaphelper/pkg/errors"
	"github.com/provide-io/bitmaphelper/pkg/logging"
)

// ID identifies a resource within a source. IDs are laid out as 0xPPTTEEEE:
// package byte, 1-based type index, 0-based entry index.
type ID uint32

// NotFound is returned by Identifier for names that do not resolve.
const NotFound ID = 0

const (
	DefaultPackage   = "android"
	DefaultPackageID = 0x01

	maxTypes   = 0xff
	maxEntries = 0xffff
)

// Resources looks up resources by name and opens them by ID.
type Resources interface {
	// Identifier resolves "[package:]type/entry" to an ID, or NotFound
	Identifier(name string) ID

	// Open returns the encoded resource bytes, decompressed if needed
	Open(id ID) (io.ReadCloser, error)

	// Name returns the qualified name of id, or "" if unknown
	Name(id ID) string
}

// Lister is implemented by sources that can enumerate their resources.
type Lister interface {
	// Entries returns every qualified name in ID order
	Entries() []string
}

// Option configures a resource source.
type Option func(*options)

type options struct {
	pkg    string
	pkgID  byte
	logger hclog.Logger
}

// WithPackage sets the package name that qualified lookups must match and
// the package byte of generated IDs.
func WithPackage(name string, id byte) Option {
	return func(o *options) {
		o.pkg = name
		o.pkgID = id
	}
}

// WithLogger sets the logger used while indexing.
func WithLogger(logger hclog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func buildOptions(opts []Option) options {
	o := options{pkg: DefaultPackage, pkgID: DefaultPackageID}
	for _, opt := range opts {
		opt(&o)
	}
	o.logger = logging.OrNull(o.logger)
	return o
}

// Open picks a source for p: a directory is indexed with NewDir, any other
// file is read as a PE executable with LoadEXE.
func Open(p string, opts ...Option) (Resources, error) {
	info, err := os.Stat(p)
	if err != nil {
		return nil, fmt.Errorf("failed to stat resource source: %w", err)
	}
	if info.IsDir() {
		return NewDir(p, opts...)
	}
	return LoadEXE(p, opts...)
}

// ParseName splits "[package:]type/entry". The package is "" when absent.
func ParseName(name string) (pkg, typ, entry string, err error) {
	rest := strings.TrimSpace(name)
	if i := strings.IndexByte(rest, ':'); i >= 0 {
		pkg, rest = rest[:i], rest[i+1:]
	}
	typ, entry, ok := strings.Cut(rest, "/")
	if !ok || typ == "" || entry == "" || strings.Contains(entry, "/") {
		return "", "", "", fmt.Errorf("%w: %q", bherrors.ErrInvalidResourceName, name)
	}
	return pkg, typ, entry, nil
}

var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".webp": true,
	".tif":  true,
	".tiff": true,
}

// entryName strips the codec suffix and then the image extension from a
// file name. ok is false when what remains has no image extension.
func entryName(file string) (name string, ok bool) {
	base := codec.TrimExt(path.Base(file))
	ext := path.Ext(base)
	if !imageExts[strings.ToLower(ext)] {
		return "", false
	}
	name = strings.TrimSuffix(base, ext)
	return name, name != ""
}

type opener func() (io.ReadCloser, error)

type item struct {
	typ   string
	entry string
	src   string // file or resource path, used for codec detection and logs
	open  opener
}

type record struct {
	name string
	item item
}

// table is the shared index behind every source.
type table struct {
	pkg      string
	foldCase bool
	ids      map[string]ID
	records  map[ID]record
}

func newTable(o options, foldCase bool, items []item) (*table, error) {
	t := &table{
		pkg:      o.pkg,
		foldCase: foldCase,
		ids:      make(map[string]ID),
		records:  make(map[ID]record),
	}

	byType := make(map[string]map[string]item)
	for _, it := range items {
		if foldCase {
			it.typ, it.entry = strings.ToLower(it.typ), strings.ToLower(it.entry)
		}
		entries, ok := byType[it.typ]
		if !ok {
			entries = make(map[string]item)
			byType[it.typ] = entries
		}
		if prev, dup := entries[it.entry]; dup {
			o.logger.Warn("Duplicate resource ignored",
				"type", it.typ,
				"entry", it.entry,
				"kept", prev.src,
				"ignored", it.src)
			continue
		}
		entries[it.entry] = it
	}

	types := sortedKeys(byType)
	if len(types) > maxTypes {
		return nil, fmt.Errorf("%w: %d types", bherrors.ErrTooManyResources, len(types))
	}

	for ti, typ := range types {
		names := sortedKeys(byType[typ])
		if len(names) > maxEntries {
			return nil, fmt.Errorf("%w: %d entries of type %s", bherrors.ErrTooManyResources, len(names), typ)
		}
		for ei, entry := range names {
			id := ID(o.pkgID)<<24 | ID(ti+1)<<16 | ID(ei)
			key := typ + "/" + entry
			t.ids[key] = id
			t.records[id] = record{name: key, item: byType[typ][entry]}
		}
	}

	o.logger.Debug("Indexed resources",
		"package", o.pkg,
		"types", len(types),
		"entries", len(t.records))

	return t, nil
}

func (t *table) Identifier(name string) ID {
	pkg, typ, entry, err := ParseName(name)
	if err != nil {
		return NotFound
	}
	if pkg != "" && pkg != t.pkg {
		return NotFound
	}
	key := typ + "/" + entry
	if t.foldCase {
		key = strings.ToLower(key)
	}
	return t.ids[key]
}

func (t *table) Name(id ID) string {
	rec, ok := t.records[id]
	if !ok {
		return ""
	}
	return t.pkg + ":" + rec.name
}

func (t *table) Open(id ID) (io.ReadCloser, error) {
	rec, ok := t.records[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", bherrors.ErrResourceNotFound, FormatID(id))
	}

	rc, err := rec.item.open()
	if err != nil {
		return nil, fmt.Errorf("failed to open resource %s: %w", rec.name, err)
	}

	c, compressed := codec.ForPath(rec.item.src)
	if !compressed {
		return rc, nil
	}
	dr, err := c.NewReader(rc)
	if err != nil {
		rc.Close()
		return nil, fmt.Errorf("failed to decompress resource %s: %w", rec.name, err)
	}
	return &stackedReadCloser{ReadCloser: dr, under: rc}, nil
}

// Entries returns every qualified name in ID order.
func (t *table) Entries() []string {
	ids := make([]ID, 0, len(t.records))
	for id := range t.records {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = t.Name(id)
	}
	return names
}

// stackedReadCloser closes a decompressor and the stream beneath it.
type stackedReadCloser struct {
	io.ReadCloser
	under io.Closer
}

func (s *stackedReadCloser) Close() error {
	err := s.ReadCloser.Close()
	if uerr := s.under.Close(); err == nil {
		err = uerr
	}
	return err
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// FormatID renders id the way resource tools print it.
func FormatID(id ID) string {
	return fmt.Sprintf("0x%08x", uint32(id))
}
