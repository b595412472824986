package maze

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedSource replays a fixed sequence of draws.
type scriptedSource struct {
	draws []int
	pos   int
}

func (s *scriptedSource) Intn(n int) int {
	if len(s.draws) == 0 {
		return 0
	}
	v := s.draws[s.pos%len(s.draws)] % n
	s.pos++
	return v
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{1, 3},
		{2, 3},
		{3, 3},
		{4, 5},
		{10, 11},
		{11, 11},
		{15, 15},
	}
	for _, tc := range tests {
		got, err := Normalize(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "Normalize(%d)", tc.in)
	}

	for _, bad := range []int{0, -1, -10} {
		_, err := Normalize(bad)
		assert.True(t, errors.Is(err, ErrInvalidSize), "Normalize(%d) should fail", bad)
	}
}

func TestGenerateDimensions(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantW, wantH  int
	}{
		{"odd both", 11, 11, 11, 11},
		{"even both", 10, 12, 11, 13},
		{"even width", 8, 9, 9, 9},
		{"even height", 7, 6, 7, 7},
		{"degenerate", 1, 2, 3, 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := Generate(tc.width, tc.height, NewSource(1))
			require.NoError(t, err)
			assert.Equal(t, tc.wantW, g.Width())
			assert.Equal(t, tc.wantH, g.Height())
		})
	}
}

func TestGenerateRejectsInvalidSize(t *testing.T) {
	g, err := Generate(0, 11, NewSource(1))
	assert.Nil(t, g)
	assert.ErrorIs(t, err, ErrInvalidSize)

	g, err = Generate(11, -3, NewSource(1))
	assert.Nil(t, g)
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = Generate(11, 11, nil)
	assert.Error(t, err)
}

func TestGenerateMinimal(t *testing.T) {
	g, err := Generate(3, 3, &scriptedSource{draws: []int{0}})
	require.NoError(t, err)

	want := []string{
		"###",
		"...",
		"###",
	}
	assert.Equal(t, want, g.Rows())
	require.NoError(t, Validate(g))
}

func TestGenerateInvariants(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		size := 5 + int(seed%6)*4
		g, err := Generate(size, size+2, NewSource(seed))
		require.NoError(t, err)

		assert.Equal(t, Wall, g.At(0, 0), "seed %d: corner must be wall", seed)
		assert.True(t, g.IsOpen(1, 1), "seed %d: start must be open", seed)
		assert.True(t, g.IsOpen(0, 1), "seed %d: entrance must be open", seed)
		assert.True(t, g.IsOpen(g.Width()-1, g.Height()-2), "seed %d: exit must be open", seed)
		assert.NoError(t, Validate(g), "seed %d", seed)
	}
}

func TestGenerateConnectivity(t *testing.T) {
	g, err := Generate(21, 21, NewSource(42))
	require.NoError(t, err)

	reach := Reachable(g, g.Start())
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if g.IsOpen(x, y) {
				assert.True(t, reach[Point{X: x, Y: y}], "open cell (%d,%d) unreachable", x, y)
			}
		}
	}

	// Each breach hangs off exactly one interior open cell.
	for _, b := range []Point{g.Entrance(), g.Exit()} {
		assert.Len(t, g.Neighbors(b), 1, "breach %v", b)
	}

	// Every odd lattice point is carved.
	for y := 1; y < g.Height(); y += 2 {
		for x := 1; x < g.Width(); x += 2 {
			assert.True(t, g.IsOpen(x, y), "lattice (%d,%d) not carved", x, y)
		}
	}
}

func TestGenerateAcyclic(t *testing.T) {
	g, err := Generate(31, 19, NewSource(7))
	require.NoError(t, err)

	nodes, edges := 0, 0
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			p := Point{X: x, Y: y}
			if !g.IsOpen(x, y) || g.IsBreach(p) {
				continue
			}
			nodes++
			if g.IsOpen(x+1, y) && !g.IsBreach(Point{X: x + 1, Y: y}) {
				edges++
			}
			if g.IsOpen(x, y+1) && !g.IsBreach(Point{X: x, Y: y + 1}) {
				edges++
			}
		}
	}

	// Carving visits every lattice cell once and opens one connector per
	// advance, so a tree over (w/2)*(h/2) nodes has 2n-1 open cells.
	lattice := (g.Width() / 2) * (g.Height() / 2)
	assert.Equal(t, 2*lattice-1, nodes)
	assert.Equal(t, nodes-1, edges)
	assert.Equal(t, nodes+2, g.OpenCount())
}

func TestGenerateDeterministic(t *testing.T) {
	draws := []int{3, 1, 0, 2, 2, 1, 0, 3, 1, 1, 2, 0}

	g1, err := Generate(15, 15, &scriptedSource{draws: draws})
	require.NoError(t, err)
	g2, err := Generate(15, 15, &scriptedSource{draws: draws})
	require.NoError(t, err)
	assert.True(t, g1.Equal(g2), "same draws must give identical grids")

	s1, err := Generate(25, 25, NewSource(99))
	require.NoError(t, err)
	s2, err := Generate(25, 25, NewSource(99))
	require.NoError(t, err)
	assert.Equal(t, s1.String(), s2.String())

	other, err := Generate(25, 25, NewSource(100))
	require.NoError(t, err)
	assert.NotEqual(t, s1.String(), other.String(), "different seeds should differ")
}

func TestGenerateScriptedLayout(t *testing.T) {
	// With every draw 0 the shuffle always yields north, east, west, south.
	g, err := Generate(5, 5, &scriptedSource{draws: []int{0}})
	require.NoError(t, err)

	want := []string{
		"#####",
		"....#",
		"###.#",
		"#....",
		"#####",
	}
	assert.Equal(t, want, g.Rows())
}
