package icon

import (
	"fmt"
	"image"
	"io"

	ico "github.com/sergeymakinen/go-ico"
)

// WindowsSizes are the resolutions bundled into the desktop .ico,
// from the small taskbar glyph up to the 256 px tile.
var WindowsSizes = []int{16, 32, 48, 256}

// EncodeICO renders each size with the palette and packs the frames
// into a single ICO stream in the given order. The ICO directory
// caps frame sides at 256 px.
func EncodeICO(w io.Writer, sizes []int, pal Palette) error {
	if len(sizes) == 0 {
		return fmt.Errorf("no ico sizes")
	}
	frames := make([]image.Image, 0, len(sizes))
	for _, size := range sizes {
		if size <= 0 || size > 256 {
			return fmt.Errorf("invalid ico size: %d", size)
		}
		frames = append(frames, Render(size, pal))
	}
	return ico.EncodeAll(w, frames)
}
