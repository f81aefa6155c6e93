package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/vector"
)

// kappa is the control-point offset for approximating a quarter circle
// with a cubic bezier: 4*(sqrt(2)-1)/3.
const kappa = 0.5522847498307933

// Canvas is a square NRGBA image with antialiased vector fills. Each
// fill is composited over the pixels already on the canvas.
type Canvas struct {
	img *image.NRGBA
	ras vector.Rasterizer
}

// NewCanvas allocates a fully transparent size x size canvas.
func NewCanvas(size int) *Canvas {
	return &Canvas{img: image.NewNRGBA(image.Rect(0, 0, size, size))}
}

// Image returns the backing image.
func (c *Canvas) Image() *image.NRGBA {
	return c.img
}

// FillEllipse fills the axis-aligned ellipse inscribed in the
// rectangle (x0, y0)-(x1, y1).
func (c *Canvas) FillEllipse(x0, y0, x1, y1 float64, col color.NRGBA) {
	cx := float32(x0+x1) / 2
	cy := float32(y0+y1) / 2
	rx := float32(x1-x0) / 2
	ry := float32(y1-y0) / 2
	kx := rx * kappa
	ky := ry * kappa

	c.reset()
	c.ras.MoveTo(cx+rx, cy)
	c.ras.CubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	c.ras.CubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	c.ras.CubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	c.ras.CubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	c.ras.ClosePath()
	c.fill(col)
}

// FillCircle fills the circle of radius r centered on (cx, cy). A zero
// radius covers nothing.
func (c *Canvas) FillCircle(cx, cy, r float64, col color.NRGBA) {
	c.FillEllipse(cx-r, cy-r, cx+r, cy+r, col)
}

// FillRoundedRect fills the rectangle (x0, y0)-(x1, y1) with circular
// corners of radius r. The radius is clamped to half the shorter side.
func (c *Canvas) FillRoundedRect(x0, y0, x1, y1, r float64, col color.NRGBA) {
	r = math.Min(r, math.Min(x1-x0, y1-y0)/2)
	if r < 0 {
		r = 0
	}
	k := float32(r * (1 - kappa))
	fx0, fy0 := float32(x0), float32(y0)
	fx1, fy1 := float32(x1), float32(y1)
	fr := float32(r)

	c.reset()
	c.ras.MoveTo(fx0+fr, fy0)
	c.ras.LineTo(fx1-fr, fy0)
	c.ras.CubeTo(fx1-k, fy0, fx1, fy0+k, fx1, fy0+fr)
	c.ras.LineTo(fx1, fy1-fr)
	c.ras.CubeTo(fx1, fy1-k, fx1-k, fy1, fx1-fr, fy1)
	c.ras.LineTo(fx0+fr, fy1)
	c.ras.CubeTo(fx0+k, fy1, fx0, fy1-k, fx0, fy1-fr)
	c.ras.LineTo(fx0, fy0+fr)
	c.ras.CubeTo(fx0, fy0+k, fx0+k, fy0, fx0+fr, fy0)
	c.ras.ClosePath()
	c.fill(col)
}

// StrokeLine fills the straight stroke of the given width from
// (x1, y1) to (x2, y2) with flat caps. Zero-length or zero-width
// strokes draw nothing.
func (c *Canvas) StrokeLine(x1, y1, x2, y2, width float64, col color.NRGBA) {
	length := math.Hypot(x2-x1, y2-y1)
	if length == 0 || width <= 0 {
		return
	}
	// Half-width offsets perpendicular to the stroke direction.
	px := (y1 - y2) / length * width / 2
	py := (x2 - x1) / length * width / 2

	c.reset()
	c.ras.MoveTo(float32(x1+px), float32(y1+py))
	c.ras.LineTo(float32(x2+px), float32(y2+py))
	c.ras.LineTo(float32(x2-px), float32(y2-py))
	c.ras.LineTo(float32(x1-px), float32(y1-py))
	c.ras.ClosePath()
	c.fill(col)
}

func (c *Canvas) reset() {
	c.ras.Reset(c.img.Bounds().Dx(), c.img.Bounds().Dy())
}

// fill composites the accumulated path over the canvas. The
// rasterizer's zero DrawOp is draw.Over, which keeps earlier layers
// visible outside the path.
func (c *Canvas) fill(col color.NRGBA) {
	c.ras.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

// WritePNG encodes img into the file at path, replacing any existing
// file.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
