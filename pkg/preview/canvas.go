package preview

import (
	"fmt"
	"image/color"
	"io"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
	"github.com/tdewolff/canvas/renderers/svg"

	"github.com/matzehuels/hmibuilder/pkg/geom"
	"github.com/matzehuels/hmibuilder/pkg/guide"
	"github.com/matzehuels/hmibuilder/pkg/layout"
)

// PixelMM is the size of one canvas pixel in millimetres at 96 dpi.
const PixelMM = 25.4 / 96

var (
	frameColor     = canvas.Hex("#9aa5b1")
	controlFill    = canvas.Hex("#e8eef7")
	controlStroke  = canvas.Hex("#4a6a9a")
	containerFill  = color.RGBA{0, 0, 0, 0}
	containerLine  = canvas.Hex("#7b8794")
	selectedStroke = canvas.Hex("#ff8800")
	guideColor     = canvas.Hex("#e0245e")
)

// Options controls what a preview shows.
type Options struct {
	// Scale is millimetres per canvas pixel. Zero selects PixelMM.
	Scale float64
	// Selected is outlined in the selection colour.
	Selected *layout.Element
	// Guides are drawn across the canvas when active.
	Guides guide.Guides
}

func (o Options) scale() float64 {
	if o.Scale <= 0 {
		return PixelMM
	}
	return o.Scale
}

// Draw paints the store onto c back to front.
func Draw(c *canvas.Canvas, store *layout.Store, opts Options) {
	s := opts.scale()
	size := store.Canvas()
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV)

	ctx.SetFillColor(canvas.White)
	ctx.SetStrokeColor(frameColor)
	ctx.SetStrokeWidth(0.5)
	ctx.DrawPath(0, 0, canvas.Rectangle(size.W*s, size.H*s))

	for _, e := range store.Elements() {
		drawElement(ctx, store.Box(e), e.IsContainer(), e == opts.Selected, s)
	}
	drawGuides(ctx, opts.Guides, size, s)
}

func drawElement(ctx *canvas.Context, box geom.Rect, container, selected bool, s float64) {
	if container {
		ctx.SetFillColor(containerFill)
		ctx.SetStrokeColor(containerLine)
		ctx.SetDashes(0, 2, 1)
	} else {
		ctx.SetFillColor(controlFill)
		ctx.SetStrokeColor(controlStroke)
		ctx.SetDashes(0)
	}
	ctx.SetStrokeWidth(0.3)
	if selected {
		ctx.SetStrokeColor(selectedStroke)
		ctx.SetStrokeWidth(0.8)
	}
	ctx.DrawPath(box.Left*s, box.Top*s, canvas.Rectangle(box.Width*s, box.Height*s))
	ctx.SetDashes(0)
}

func drawGuides(ctx *canvas.Context, g guide.Guides, size geom.Size, s float64) {
	ctx.SetStrokeColor(guideColor)
	ctx.SetStrokeWidth(0.4)
	ctx.SetDashes(0, 1.5, 1)
	if g.Vertical.Active {
		p := &canvas.Path{}
		p.MoveTo(0, 0)
		p.LineTo(0, size.H*s)
		ctx.DrawPath(g.Vertical.Position*s, 0, p)
	}
	if g.Horizontal.Active {
		p := &canvas.Path{}
		p.MoveTo(0, 0)
		p.LineTo(size.W*s, 0)
		ctx.DrawPath(0, g.Horizontal.Position*s, p)
	}
	ctx.SetDashes(0)
}

// RenderSVG writes an SVG preview of the store to w.
func RenderSVG(w io.Writer, store *layout.Store, opts Options) error {
	c := newCanvas(store, opts)
	out := svg.New(w, c.W, c.H, nil)
	c.RenderTo(out)
	if err := out.Close(); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}

// RenderPDF writes a single-page PDF preview of the store to w.
func RenderPDF(w io.Writer, store *layout.Store, opts Options) error {
	c := newCanvas(store, opts)
	out := pdf.New(w, c.W, c.H, nil)
	c.RenderTo(out)
	if err := out.Close(); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func newCanvas(store *layout.Store, opts Options) *canvas.Canvas {
	s := opts.scale()
	size := store.Canvas()
	c := canvas.New(size.W*s, size.H*s)
	Draw(c, store, opts)
	return c
}
