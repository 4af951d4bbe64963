package render

import (
	"io"
	"math"
	"strconv"

	"github.com/fogleman/gg"
	"github.com/osuushi/delaunay/internal/config"
	"golang.org/x/image/font/basicfont"
)

// Draw the diagram onto a new context, with the origin at the bottom left.
func Draw(d Diagram, opts config.Render) *gg.Context {
	sites := d.Sites()
	bounds := siteBounds(sites)
	size := bounds.Size()

	width := float64(opts.Width)
	height := float64(opts.Height)
	scale := opts.Scale
	if scale == 0 {
		scale = math.Min((width-2*opts.Padding)/size.X, (height-2*opts.Padding)/size.Y)
	}

	c := gg.NewContext(opts.Width, opts.Height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, width, height)
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, height)
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(opts.Padding, opts.Padding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	lo := bounds.Lo()
	c.Translate(-lo.X, -lo.Y)

	if opts.Voronoi {
		drawRegions(c, d, opts.Fill)
	}
	if opts.Delaunay {
		drawTriangles(c, d)
	}
	if opts.Circles {
		c.SetLineWidth(1)
		c.SetRGBA(1, 1, 0, 0.6)
		for _, circle := range d.Circumcircles() {
			c.DrawCircle(circle.Center.X(), circle.Center.Y(), circle.Radius)
			c.Stroke()
		}
	}
	if opts.Sites {
		c.SetRGB(1, 1, 1)
		for _, site := range sites {
			c.DrawPoint(site.X(), site.Y(), 3)
			c.Fill()
		}
	}
	if opts.Labels {
		drawLabels(c, d)
	}
	return c
}

func drawRegions(c *gg.Context, d Diagram, fill bool) {
	c.SetLineWidth(2)
	for _, region := range d.Regions() {
		if len(region.Vertices) < 3 {
			continue
		}
		c.MoveTo(region.Vertices[0].X(), region.Vertices[0].Y())
		for _, v := range region.Vertices[1:] {
			c.LineTo(v.X(), v.Y())
		}
		c.ClosePath()
		if fill {
			c.SetColor(d.SiteColor(region.Site))
			c.FillPreserve()
		}
		c.SetRGB(0, 0.2, 0.6)
		c.Stroke()
	}
}

func drawTriangles(c *gg.Context, d Diagram) {
	c.SetLineWidth(1)
	c.SetRGB(0, 1, 1)
	for _, tri := range d.Triangles() {
		if tri.Synthetic {
			continue
		}
		c.MoveTo(tri.A.X(), tri.A.Y())
		c.LineTo(tri.B.X(), tri.B.Y())
		c.LineTo(tri.C.X(), tri.C.Y())
		c.ClosePath()
		c.Stroke()
	}
}

// Number each site in insertion order.
func drawLabels(c *gg.Context, d Diagram) {
	c.SetFontFace(basicfont.Face7x13)
	c.SetRGB(1, 1, 1)
	for i, site := range d.Sites() {
		// We have to go back to identity to draw the text, so get the point in
		// native coordinates
		x, y := c.TransformPoint(site.X(), site.Y())
		c.Push()
		c.Identity()
		c.DrawStringAnchored(strconv.Itoa(i), x+4, y-4, 0, 0)
		c.Pop()
	}
}

func WritePNG(d Diagram, opts config.Render, w io.Writer) error {
	return Draw(d, opts).EncodePNG(w)
}

func SavePNG(d Diagram, opts config.Render, path string) error {
	return Draw(d, opts).SavePNG(path)
}
