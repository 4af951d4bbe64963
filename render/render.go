// Package render draws Voronoi diagrams and their Delaunay triangulations,
// either as PNG images or as interactive charts.
package render

import (
	"image/color"

	"github.com/golang/geo/r2"
	"github.com/osuushi/delaunay/internal"
)

// Diagram is what render needs from a builder.
type Diagram interface {
	Sites() []internal.Point
	Triangles() []internal.Triangle
	Regions() []internal.Region
	Edges() []internal.Edge
	Circumcircles() []internal.Circle
	SiteColor(site internal.Point) color.RGBA
}

// Bounding box of the sites. Regions of hull sites reach out towards the
// super triangle, so the sites, not the regions, decide what is shown.
func siteBounds(sites []internal.Point) r2.Rect {
	if len(sites) == 0 {
		return r2.RectFromCenterSize(r2.Point{}, r2.Point{X: 1, Y: 1})
	}
	points := make([]r2.Point, len(sites))
	for i, site := range sites {
		points[i] = r2.Point{X: site.X(), Y: site.Y()}
	}
	bounds := r2.RectFromPoints(points...)
	// A single site, or collinear sites, give an empty extent on some axis.
	size := bounds.Size()
	if size.X == 0 || size.Y == 0 {
		margin := size.X + size.Y
		if margin == 0 {
			margin = 1
		}
		bounds = bounds.ExpandedByMargin(margin / 2)
	}
	return bounds
}
