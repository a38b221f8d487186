package resources

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/tc-hib/winres"

	bherrors "github.com/provide-io/bitmaphelper/pkg/errors"
)

const (
	TypeBitmap = "bitmap" // RT_BITMAP, stored as a DIB without file header
	TypeRCData = "rcdata" // RT_RCDATA, stored as an encoded image file
)

// EXE is a resource source backed by the resource section of a Windows PE
// executable. Resource names are matched case-insensitively; numeric
// resource IDs are named by their decimal value ("bitmap/101").
type EXE struct {
	*table
	Path string
}

var _ Resources = (*EXE)(nil)

// LoadEXE reads the RT_BITMAP and RT_RCDATA resources of a PE file. Only
// the first language of each resource is kept.
func LoadEXE(exePath string, opts ...Option) (*EXE, error) {
	o := buildOptions(opts)

	f, err := os.Open(exePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open EXE: %w", err)
	}
	defer f.Close()

	rs, err := winres.LoadFromEXE(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load EXE resources: %w", err)
	}

	var items []item
	var walkErr error
	rs.Walk(func(typeID, resID winres.Identifier, langID uint16, data []byte) bool {
		var typ string
		switch typeID {
		case winres.RT_BITMAP:
			typ = TypeBitmap
		case winres.RT_RCDATA:
			typ = TypeRCData
		default:
			return true
		}

		name := identifierName(resID)
		if typ == TypeBitmap {
			data, err = bitmapFileFromDIB(data)
			if err != nil {
				walkErr = fmt.Errorf("resource %s/%s: %w", typ, name, err)
				return false
			}
		} else if entry, ok := entryName(name); ok {
			name = entry
		}

		payload := data
		items = append(items, item{
			typ:   typ,
			entry: name,
			src:   identifierName(resID),
			open: func() (io.ReadCloser, error) {
				return io.NopCloser(bytes.NewReader(payload)), nil
			},
		})
		o.logger.Trace("Found PE resource",
			"type", typ,
			"name", name,
			"lang", fmt.Sprintf("0x%04x", langID),
			"size", len(data))
		return true
	})
	if walkErr != nil {
		return nil, walkErr
	}

	t, err := newTable(o, true, items)
	if err != nil {
		return nil, err
	}
	return &EXE{table: t, Path: exePath}, nil
}

func identifierName(id winres.Identifier) string {
	switch v := id.(type) {
	case winres.Name:
		return string(v)
	case winres.ID:
		return strconv.Itoa(int(v))
	default:
		return fmt.Sprint(v)
	}
}

// BitmapFileHeader is the 14-byte header in front of a BMP file.
type BitmapFileHeader struct {
	Type      [2]byte // "BM"
	Size      uint32  // Size of the whole file in bytes
	Reserved1 uint16
	Reserved2 uint16
	OffBits   uint32 // Offset of the pixel array from the start of the file
}

// BitmapInfoHeader is the 40-byte BITMAPINFOHEADER that starts most DIBs.
type BitmapInfoHeader struct {
	Size            uint32
	Width           int32
	Height          int32
	Planes          uint16
	BitCount        uint16
	Compression     uint32
	SizeImage       uint32
	XPixelsPerM     int32
	YPixelsPerM     int32
	ColorsUsed      uint32
	ColorsImportant uint32
}

const (
	fileHeaderSize = 14
	coreHeaderSize = 12 // BITMAPCOREHEADER (OS/2)
	infoHeaderSize = 40

	biBitfields      = 3
	biAlphaBitfields = 6
)

// bitmapFileFromDIB prefixes an RT_BITMAP payload with the file header a
// BMP decoder expects. The pixel offset accounts for color masks and the
// palette that sit between the info header and the pixels.
func bitmapFileFromDIB(dib []byte) ([]byte, error) {
	if len(dib) < 4 {
		return nil, fmt.Errorf("%w: %d bytes", bherrors.ErrInvalidDIB, len(dib))
	}

	headerSize := binary.LittleEndian.Uint32(dib)
	var offset uint32
	switch {
	case headerSize == coreHeaderSize:
		if len(dib) < coreHeaderSize {
			return nil, fmt.Errorf("%w: truncated core header", bherrors.ErrInvalidDIB)
		}
		bitCount := binary.LittleEndian.Uint16(dib[10:])
		var palette uint32
		if bitCount <= 8 {
			palette = 3 << bitCount
		}
		offset = fileHeaderSize + coreHeaderSize + palette

	case headerSize >= infoHeaderSize:
		var ih BitmapInfoHeader
		if err := binary.Read(bytes.NewReader(dib), binary.LittleEndian, &ih); err != nil {
			return nil, fmt.Errorf("%w: %v", bherrors.ErrInvalidDIB, err)
		}
		var masks uint32
		if ih.Size == infoHeaderSize {
			switch ih.Compression {
			case biBitfields:
				masks = 12
			case biAlphaBitfields:
				masks = 16
			}
		}
		colors := ih.ColorsUsed
		if colors == 0 && ih.BitCount <= 8 {
			colors = 1 << ih.BitCount
		}
		offset = fileHeaderSize + ih.Size + masks + 4*colors

	default:
		return nil, fmt.Errorf("%w: header size %d", bherrors.ErrInvalidDIB, headerSize)
	}

	total := uint32(fileHeaderSize + len(dib))
	if offset > total {
		return nil, fmt.Errorf("%w: pixel offset %d beyond %d bytes", bherrors.ErrInvalidDIB, offset, total)
	}

	fh := BitmapFileHeader{Type: [2]byte{'B', 'M'}, Size: total, OffBits: offset}
	var buf bytes.Buffer
	buf.Grow(int(total))
	if err := binary.Write(&buf, binary.LittleEndian, &fh); err != nil {
		return nil, err
	}
	buf.Write(dib)
	return buf.Bytes(), nil
}
