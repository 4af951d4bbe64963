package render

import (
	"bytes"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/osuushi/delaunay/internal"
	"github.com/osuushi/delaunay/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func squareDiagram() *internal.Builder {
	b := internal.NewBuilder(internal.DefaultHalfExtent, nil)
	b.AddPoints(internal.Pt(0, 0), internal.Pt(10, 0), internal.Pt(10, 10), internal.Pt(0, 10), internal.Pt(4, 6))
	return b
}

func TestSiteBounds(t *testing.T) {
	bounds := siteBounds([]internal.Point{internal.Pt(-1, 2), internal.Pt(3, 5)})
	assert.Equal(t, -1.0, bounds.X.Lo)
	assert.Equal(t, 3.0, bounds.X.Hi)
	assert.Equal(t, 2.0, bounds.Y.Lo)
	assert.Equal(t, 5.0, bounds.Y.Hi)

	// Degenerate extents get a margin so the scale stays finite
	bounds = siteBounds([]internal.Point{internal.Pt(1, 1)})
	assert.False(t, bounds.IsEmpty())
	assert.Greater(t, bounds.Size().X, 0.0)

	bounds = siteBounds(nil)
	assert.Greater(t, bounds.Size().Y, 0.0)
}

func TestWritePNG(t *testing.T) {
	opts := config.Default().Render
	opts.Width = 200
	opts.Height = 150
	opts.Circles = true
	opts.Labels = true

	var buf bytes.Buffer
	require.NoError(t, WritePNG(squareDiagram(), opts, &buf))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 150, img.Bounds().Dy())
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "voronoi.png")
	require.NoError(t, SavePNG(squareDiagram(), config.Default().Render, path))
	assert.FileExists(t, path)
}

func TestChart(t *testing.T) {
	chart := Chart(squareDiagram(), "Square", true)
	var buf bytes.Buffer
	require.NoError(t, chart.Render(&buf))
	assert.Contains(t, buf.String(), "Sites")
	assert.Contains(t, buf.String(), "Voronoi")
	assert.Contains(t, buf.String(), "Delaunay")
}
