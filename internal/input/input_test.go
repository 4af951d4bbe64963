package input

import (
	"strings"
	"testing"

	"github.com/osuushi/delaunay/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadText(t *testing.T) {
	points, err := ReadText(strings.NewReader(`
# a square
0 0
10 0

10 10
  0   10
`))
	require.NoError(t, err)
	assert.Equal(t, []internal.Point{
		internal.Pt(0, 0),
		internal.Pt(10, 0),
		internal.Pt(10, 10),
		internal.Pt(0, 10),
	}, points)
}

func TestReadText_Errors(t *testing.T) {
	_, err := ReadText(strings.NewReader("1 2\n3\n"))
	assert.EqualError(t, err, "line 2: expected 2 coordinates, got 1")

	_, err = ReadText(strings.NewReader("1 two\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid y value "two"`)
}

func TestReadSVG(t *testing.T) {
	svg := `<svg xmlns="http://www.w3.org/2000/svg" width="100" height="100">
  <circle cx="5" cy="6" r="1"/>
  <g>
    <circle cx="7.5" cy="8" r="1"/>
  </g>
  <polygon points="10,10 20,10 15,20"/>
</svg>`
	points, err := ReadSVG(strings.NewReader(svg))
	require.NoError(t, err)
	assert.ElementsMatch(t, []internal.Point{
		internal.Pt(5, 6),
		internal.Pt(7.5, 8),
		internal.Pt(10, 10),
		internal.Pt(20, 10),
		internal.Pt(15, 20),
	}, points)
}

func TestReadSVG_Empty(t *testing.T) {
	_, err := ReadSVG(strings.NewReader(`<svg xmlns="http://www.w3.org/2000/svg"><rect width="1" height="1"/></svg>`))
	assert.Error(t, err)
}
