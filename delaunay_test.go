package delaunay

import (
	"errors"
	"testing"

	"github.com/osuushi/delaunay/advanced"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestBuilder(t *testing.T) {
	b, err := NewBuilder(DefaultHalfExtent)
	require.NoError(t, err)

	require.NoError(t, b.AddPoint(0, 0))
	require.NoError(t, b.AddPoint(10, 0))
	require.NoError(t, b.AddPoint(3, 4))
	require.NoError(t, b.AddPoint(3, 4))
	added, err := b.AddPoints(Pt(10, 10), Pt(0, 0))
	require.NoError(t, err)
	assert.Equal(t, 1, added)
	assert.Equal(t, []Point{Pt(0, 0), Pt(10, 0), Pt(3, 4), Pt(10, 10)}, b.Sites())

	regions, err := b.Regions()
	require.NoError(t, err)
	assert.Len(t, regions, 4)
	assert.NotEmpty(t, b.Edges())
	assert.NotEmpty(t, b.Circumcircles())
	assert.Len(t, b.Corners(), 3)
	assert.Equal(t, 2*4+1, len(b.Triangles()))
}

func TestBuilder_Errors(t *testing.T) {
	_, err := NewBuilder(-1)
	assert.True(t, errors.Is(err, ErrDegenerateConstruction))

	b, err := NewBuilder(100)
	require.NoError(t, err)
	err = b.AddPoint(1000, 0)
	assert.True(t, errors.Is(err, ErrOutsideDomain))

	added, err := b.AddPoints(Pt(1, 1), Pt(0, 1000), Pt(2, 2))
	assert.True(t, errors.Is(err, ErrOutsideDomain))
	assert.Equal(t, 1, added)
	assert.Equal(t, []Point{Pt(1, 1)}, b.Sites())
}

func TestBuilder_BoundarySite(t *testing.T) {
	b, err := NewBuilder(100)
	require.NoError(t, err)
	err = b.AddPoint(0, -100)
	assert.True(t, errors.Is(err, ErrOutsideDomain))
	assert.Empty(t, b.Sites())
}

func TestWithLogger(t *testing.T) {
	log := advanced.NewLogger(zapcore.DebugLevel, nil)
	b, err := NewBuilder(100, WithLogger(log))
	require.NoError(t, err)
	require.NoError(t, b.AddPoint(1, 2))
	assert.Contains(t, log.Text(), "created super triangle")
	assert.Contains(t, log.Text(), "inserted site")

	level, err := advanced.ParseLogLevel("warn")
	require.NoError(t, err)
	quiet := advanced.NewLogger(level, nil)
	b, err = NewBuilder(100, WithLogger(quiet))
	require.NoError(t, err)
	require.NoError(t, b.AddPoint(1, 2))
	assert.Empty(t, quiet.Text())

	b, err = NewBuilder(100, WithLogger(advanced.NewNopLogger()))
	require.NoError(t, err)
	assert.NoError(t, b.AddPoint(1, 2))
}
