package noise

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSampleRange(t *testing.T) {
	f := New(7)
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20000; i++ {
		x := (rng.Float64() - 0.5) * 4000
		y := (rng.Float64() - 0.5) * 4000
		v := f.Sample(x, y)
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)
	}
}

func TestGridValuesBelowOne(t *testing.T) {
	for _, seed := range []float64{0, 1, 7, 42, -3.5} {
		f := New(seed)
		for _, v := range f.grid {
			require.GreaterOrEqual(t, v, float32(0))
			require.Less(t, v, float32(1))
		}
	}
}

func TestSampleDeterministic(t *testing.T) {
	a, b := New(11), New(11)
	for _, p := range [][2]float64{{0, 0}, {3.25, 7.5}, {-12.1, 400.9}, {255.999, 0.001}} {
		require.Equal(t, a.Sample(p[0], p[1]), b.Sample(p[0], p[1]))
	}
	require.Equal(t, 11.0, a.Seed())
}

func TestSampleHitsGridAtIntegers(t *testing.T) {
	f := New(3)
	for _, p := range [][2]int{{0, 0}, {1, 0}, {17, 200}, {255, 255}} {
		want := float64(f.grid[p[1]*Size+p[0]])
		require.Equal(t, want, f.Sample(float64(p[0]), float64(p[1])))
	}
}

func TestSampleTiles(t *testing.T) {
	f := New(5)
	for _, p := range [][2]float64{{0.5, 0.5}, {12.3, 99.9}, {250.75, 3.1}} {
		v := f.Sample(p[0], p[1])
		require.InDelta(t, v, f.Sample(p[0]+Size, p[1]), 1e-9)
		require.InDelta(t, v, f.Sample(p[0], p[1]-Size), 1e-9)
		require.InDelta(t, v, f.Sample(p[0]-3*Size, p[1]+2*Size), 1e-9)
	}
	// Wrapping from the last column to the first is continuous.
	require.InDelta(t, f.Sample(0, 10), f.Sample(Size-1e-9, 10), 1e-6)
}

func TestReseedRegeneratesGrid(t *testing.T) {
	a, b := New(7), New(8)
	same := 0
	for i := range a.grid {
		if a.grid[i] == b.grid[i] {
			same++
		}
	}
	require.Less(t, same, len(a.grid)/100)

	// Rebuilding the first seed after another one gives the same grid back.
	require.Equal(t, a.grid, New(7).grid)
}

func TestSampleIsSmooth(t *testing.T) {
	f := New(9)
	const step = 1e-4
	for x := 0.0; x < 8; x += 0.37 {
		d := math.Abs(f.Sample(x+step, 4.2) - f.Sample(x, 4.2))
		require.Less(t, d, 0.01, "jump at x=%v", x)
	}
}

func TestFBMBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for _, seed := range []float64{0, 7, 123} {
		f := New(seed)
		for oct := MinOctaves; oct <= MaxOctaves; oct++ {
			ceiling := 1 - math.Pow(0.5, float64(oct))
			for i := 0; i < 2000; i++ {
				x, y := rng.Float64()*50, rng.Float64()*50
				v := f.FBM(x, y, oct, 2.0, 0.5)
				require.GreaterOrEqual(t, v, 0.0)
				require.Less(t, v, ceiling)
			}
		}
	}
}

func TestFBMMatchesManualSum(t *testing.T) {
	f := New(1)
	x, y := 1.7, 2.9
	want := 0.5*f.Sample(x, y) + 0.25*f.Sample(2*x, 2*y) + 0.125*f.Sample(4*x, 4*y)
	require.InDelta(t, want, f.FBM(x, y, 3, 2.0, 0.5), 1e-12)
}

func TestClampOctaves(t *testing.T) {
	cases := map[int]int{-1: 2, 0: 2, 2: 2, 4: 4, 7: 7, 8: 7, 100: 7}
	for in, want := range cases {
		require.Equal(t, want, ClampOctaves(in), "ClampOctaves(%d)", in)
	}
}

func BenchmarkNew(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = New(float64(i))
	}
}

func BenchmarkFBM(b *testing.B) {
	f := New(7)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f.FBM(float64(i%512)/140, float64(i/512%512)/140, 4, 2.0, 0.5)
	}
}
