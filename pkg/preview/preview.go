// Package preview renders images to a truecolor terminal, one block of two
// cells per pixel.
package preview

import (
	"bufio"
	"image"
	"io"

	"github.com/fatih/color"
)

const block = "  "

// Render writes img to w row by row. Translucent pixels are shown composited
// over black.
func Render(w io.Writer, img image.Image) error {
	bw := bufio.NewWriter(w)
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			if _, err := bw.WriteString(color.BgRGB(int(r>>8), int(g>>8), int(bl>>8)).Sprint(block)); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
