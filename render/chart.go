package render

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

func prepareScatter(scatter *charts.Scatter, title string, d Diagram) {
	bounds := siteBounds(d.Sites())
	margin := 0.1 * (bounds.Size().X + bounds.Size().Y) / 2
	bounds = bounds.ExpandedByMargin(margin)

	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Height: "580px",
			Width:  "1020px",
		}),
		charts.WithLegendOpts(opts.Legend{
			TextStyle: &opts.TextStyle{
				Color: "white",
			},
			Right: "10%",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:                title,
			TitleBackgroundColor: "white",
			Left:                 "10%",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			Name: "x",
			Min:  bounds.X.Lo,
			Max:  bounds.X.Hi,
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			Name: "y",
			Min:  bounds.Y.Lo,
			Max:  bounds.Y.Hi,
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "horizontal",
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "vertical",
		}),
	)
}

func segment(series string, width float32, ax, ay, bx, by float64) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithXAxisOpts(opts.XAxis{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Show: opts.Bool(true)}),
	)
	line.AddSeries(series, []opts.LineData{
		{Value: []float64{ax, ay}},
		{Value: []float64{bx, by}},
	}).SetSeriesOptions(
		charts.WithLineStyleOpts(opts.LineStyle{
			Width: width,
		}),
	)
	return line
}

// Build an interactive chart of the sites, the Voronoi edges between them,
// and optionally the Delaunay edges.
func Chart(d Diagram, title string, withDelaunay bool) *charts.Scatter {
	scatter := charts.NewScatter()
	prepareScatter(scatter, title, d)

	points := make([]opts.ScatterData, 0)
	for _, site := range d.Sites() {
		points = append(points, opts.ScatterData{
			Value: []float64{site.X(), site.Y()},
		})
	}
	scatter.AddSeries("Sites", points).
		SetSeriesOptions(
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color: "lightgreen",
			}),
		)

	for _, edge := range d.Edges() {
		scatter.Overlap(segment("Voronoi", 2, edge.A.X(), edge.A.Y(), edge.B.X(), edge.B.Y()))
	}
	if withDelaunay {
		for _, edge := range d.Edges() {
			p, q := edge.Sites[0], edge.Sites[1]
			scatter.Overlap(segment("Delaunay", 1, p.X(), p.Y(), q.X(), q.Y()))
		}
	}
	return scatter
}
