package geom

import (
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/paulmach/orb"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/rasterizer"
	"github.com/tdewolff/canvas/renderers/svg"
)

// OverlayRenderer draws the reconstruction result as a diagnostic image:
// closed paths in black, open paths in orange, snapped points as green dots,
// open-path starts red and ends magenta. It consumes the result read-only
// and has no effect on reconstruction.
type OverlayRenderer struct {
	Closed []Path
	Open   []Path
	Moved  []orb.Point

	Padding    float64 // extra canvas space around the drawing, in world units
	Resolution canvas.Resolution
}

// NewOverlayRenderer creates an overlay renderer with default settings. The
// padding defaults to 2% of the drawing extent.
func NewOverlayRenderer(res *Result) *OverlayRenderer {
	r := &OverlayRenderer{
		Closed:     res.Closed,
		Open:       res.Open,
		Moved:      res.Moved,
		Resolution: canvas.DPI(300),
	}
	_, _, w, h := r.worldBounds()
	r.Padding = 0.02 * math.Max(w, h)
	if r.Padding == 0 {
		r.Padding = 1
	}
	return r
}

// canvasRenderer is an interface that both svg and rasterizer renderers implement
type canvasRenderer interface {
	RenderPath(path *canvas.Path, style canvas.Style, m canvas.Matrix)
}

// RenderToSVG writes the overlay as an SVG to the provided writer
func (r *OverlayRenderer) RenderToSVG(w io.Writer) error {
	minX, minY, bw, bh := r.worldBounds()
	width := bw + 2*r.Padding
	height := bh + 2*r.Padding

	svgRenderer := svg.New(w, width, height, nil)
	r.renderToCanvas(svgRenderer, minX, minY, width, height)

	return svgRenderer.Close()
}

// RenderToPNG writes the overlay as a PNG to the provided writer
func (r *OverlayRenderer) RenderToPNG(w io.Writer) error {
	minX, minY, bw, bh := r.worldBounds()
	width := bw + 2*r.Padding
	height := bh + 2*r.Padding

	rast := rasterizer.New(width, height, r.Resolution, canvas.DefaultColorSpace)
	r.renderToCanvas(rast, minX, minY, width, height)

	// Rasterizer implements draw.Image, which embeds image.Image.
	return png.Encode(w, rast)
}

func (r *OverlayRenderer) renderToCanvas(renderer canvasRenderer, minX, minY, width, height float64) {
	bgStyle := canvas.DefaultStyle
	bgStyle.Fill = canvas.Paint{Color: canvas.White}
	renderer.RenderPath(canvas.Rectangle(width, height), bgStyle, canvas.Identity)

	toCanvas := func(p orb.Point) (float64, float64) {
		return (p[0] - minX) + r.Padding, (p[1] - minY) + r.Padding
	}

	// Scale line weights and markers with the drawing so small boards and
	// large panels both stay readable.
	unit := math.Max(width, height) / 1000

	closedStyle := canvas.DefaultStyle
	closedStyle.Fill = canvas.Paint{Color: canvas.Transparent}
	closedStyle.Stroke = canvas.Paint{Color: canvas.Black}
	closedStyle.StrokeWidth = 0.6 * unit

	for _, p := range r.Closed {
		renderer.RenderPath(r.pathToCanvas(p, toCanvas), closedStyle, canvas.Identity)
	}

	openStyle := canvas.DefaultStyle
	openStyle.Fill = canvas.Paint{Color: canvas.Transparent}
	openStyle.Stroke = canvas.Paint{Color: canvas.Orange}
	openStyle.StrokeWidth = 1.0 * unit

	for _, p := range r.Open {
		renderer.RenderPath(r.pathToCanvas(p, toCanvas), openStyle, canvas.Identity)
	}

	// Snapping events.
	for _, pt := range r.Moved {
		r.marker(renderer, toCanvas, pt, 1.5*unit, canvas.Green)
	}

	// Gap endpoints of open paths.
	for _, p := range r.Open {
		if len(p) < 2 {
			continue
		}
		r.marker(renderer, toCanvas, p[0], 2*unit, canvas.Red)
		r.marker(renderer, toCanvas, p[len(p)-1], 2*unit, canvas.Magenta)
	}
}

func (r *OverlayRenderer) pathToCanvas(p Path, toCanvas func(orb.Point) (float64, float64)) *canvas.Path {
	cp := &canvas.Path{}
	for i, pt := range p {
		x, y := toCanvas(pt)
		if i == 0 {
			cp.MoveTo(x, y)
		} else {
			cp.LineTo(x, y)
		}
	}
	return cp
}

func (r *OverlayRenderer) marker(renderer canvasRenderer, toCanvas func(orb.Point) (float64, float64), pt orb.Point, radius float64, c color.RGBA) {
	style := canvas.DefaultStyle
	style.Fill = canvas.Paint{Color: c}
	style.Stroke = canvas.Paint{Color: canvas.Transparent}

	x, y := toCanvas(pt)
	renderer.RenderPath(canvas.Circle(radius).Translate(x, y), style, canvas.Identity)
}

func (r *OverlayRenderer) worldBounds() (minX, minY, width, height float64) {
	minX, minY = math.MaxFloat64, math.MaxFloat64
	maxX, maxY := -math.MaxFloat64, -math.MaxFloat64
	seen := false

	grow := func(p orb.Point) {
		seen = true
		minX = math.Min(minX, p[0])
		minY = math.Min(minY, p[1])
		maxX = math.Max(maxX, p[0])
		maxY = math.Max(maxY, p[1])
	}
	for _, path := range r.Closed {
		for _, p := range path {
			grow(p)
		}
	}
	for _, path := range r.Open {
		for _, p := range path {
			grow(p)
		}
	}
	for _, p := range r.Moved {
		grow(p)
	}

	if !seen {
		return 0, 0, 1, 1
	}
	return minX, minY, maxX - minX, maxY - minY
}
