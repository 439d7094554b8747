package display

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"golang.org/x/image/draw"

	"github.com/ksutton/gadvance/console"
)

// WriteSnapshot saves one composited frame as a PNG, integer-scaled with
// nearest neighbour so tile pixels stay crisp.
func WriteSnapshot(path string, frame []byte, scale int) error {
	if scale < 1 {
		scale = 1
	}
	src := &image.RGBA{
		Pix:    frame,
		Stride: console.SCREEN_W * 4,
		Rect:   image.Rect(0, 0, console.SCREEN_W, console.SCREEN_H),
	}
	dst := image.NewRGBA(image.Rect(0, 0, console.SCREEN_W*scale, console.SCREEN_H*scale))
	draw.NearestNeighbor.Scale(dst, dst.Rect, src, src.Rect, draw.Src, nil)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("display: snapshot: %w", err)
	}
	if err := png.Encode(f, dst); err != nil {
		f.Close()
		return fmt.Errorf("display: snapshot: %w", err)
	}
	return f.Close()
}
