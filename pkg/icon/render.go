package icon

import (
	"image"
	"image/color"

	"icongen/pkg/raster"
)

// Palette holds the three fill colors of the logo.
type Palette struct {
	Primary color.NRGBA // backdrop circle
	Accent  color.NRGBA // network nodes and links
	Bubble  color.NRGBA // chat bubble body
}

// DefaultPalette returns the brand colors.
func DefaultPalette() Palette {
	return Palette{
		Primary: color.NRGBA{R: 66, G: 133, B: 244, A: 255},  // blue #4285F4
		Accent:  color.NRGBA{R: 52, G: 168, B: 83, A: 255},   // green #34A853
		Bubble:  color.NRGBA{R: 255, G: 255, B: 255, A: 255}, // white
	}
}

// geometry locates every element of the logo for one icon size. All
// values derive from the size by integer division. Below 8 px some
// elements collapse to zero and vanish.
type geometry struct {
	margin    int             // backdrop circle inset from the canvas edge
	bubble    image.Rectangle // chat bubble bounds
	bubbleRad int             // bubble corner radius
	top       image.Point     // network node centers
	left      image.Point
	right     image.Point
	nodeRad   int
	linkWidth int
}

func geometryFor(size int) geometry {
	cx := size / 2
	cy := size / 2
	inset := size / 4
	return geometry{
		margin:    size / 8,
		bubble:    image.Rect(inset, inset+size/16, size-inset, size-inset),
		bubbleRad: size / 16,
		top:       image.Pt(cx, cy-size/8),
		left:      image.Pt(cx-size/10, cy+size/16),
		right:     image.Pt(cx+size/10, cy+size/16),
		nodeRad:   size / 20,
		linkWidth: max(1, size/32),
	}
}

// links returns the node pairs joined by accent strokes.
func (g geometry) links() [3][2]image.Point {
	return [3][2]image.Point{
		{g.top, g.left},
		{g.top, g.right},
		{g.left, g.right},
	}
}

// Render draws the logo at the given pixel size: a primary circle
// carrying a white chat bubble, with a three-node accent network
// inside the bubble. The background stays transparent. Every call
// returns a fresh image owned by the caller.
func Render(size int, pal Palette) *image.NRGBA {
	g := geometryFor(size)
	c := raster.NewCanvas(size)

	c.FillEllipse(float64(g.margin), float64(g.margin),
		float64(size-g.margin), float64(size-g.margin), pal.Primary)

	c.FillRoundedRect(float64(g.bubble.Min.X), float64(g.bubble.Min.Y),
		float64(g.bubble.Max.X), float64(g.bubble.Max.Y),
		float64(g.bubbleRad), pal.Bubble)

	// Links go under the nodes.
	for _, ln := range g.links() {
		c.StrokeLine(float64(ln[0].X), float64(ln[0].Y),
			float64(ln[1].X), float64(ln[1].Y),
			float64(g.linkWidth), pal.Accent)
	}
	for _, n := range []image.Point{g.top, g.left, g.right} {
		c.FillCircle(float64(n.X), float64(n.Y), float64(g.nodeRad), pal.Accent)
	}

	return c.Image()
}
