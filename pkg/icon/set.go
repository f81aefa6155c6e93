package icon

import (
	"fmt"
	"io"
	"path/filepath"

	"icongen/pkg/raster"
)

// Set describes one generation run: the pixel sizes to render and the
// palette to render them with.
type Set struct {
	Sizes   []int
	Palette Palette
}

// DefaultSet returns the sizes the application manifest expects.
func DefaultSet() Set {
	return Set{
		Sizes:   []int{16, 48, 128},
		Palette: DefaultPalette(),
	}
}

// Validate reports whether the set can be rendered. Sizes below 8 px
// are accepted even though logo elements degrade there.
func (s Set) Validate() error {
	if len(s.Sizes) == 0 {
		return fmt.Errorf("no icon sizes")
	}
	for _, size := range s.Sizes {
		if size <= 0 {
			return fmt.Errorf("invalid icon size: %d", size)
		}
	}
	return nil
}

// FileName returns the output name for one icon size, e.g. "icon48.png".
func FileName(size int) string {
	return fmt.Sprintf("icon%d.png", size)
}

// GenerateSet renders every size in the set into dir, one PNG per
// size, silently replacing existing files. One status line per file
// plus a closing line goes to out. The first failure aborts the run.
func GenerateSet(dir string, out io.Writer, set Set) error {
	if err := set.Validate(); err != nil {
		return err
	}
	for _, size := range set.Sizes {
		name := FileName(size)
		img := Render(size, set.Palette)
		if err := raster.WritePNG(filepath.Join(dir, name), img); err != nil {
			return err
		}
		fmt.Fprintf(out, "Created %s\n", name)
	}
	fmt.Fprintln(out, "All icons created successfully!")
	return nil
}
