// SPDX-License-Identifier: MIT

package synthetic_test

import (
	"math"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/synthdata/ndarray"
	"github.com/katalvlaran/synthdata/synthetic"
)

// numpy reference streams: np.random.seed(s); np.random.rand(4).
var (
	numpySeed0 = []float64{0.5488135039273248, 0.7151893663724195, 0.6027633760716439, 0.5448831829968969}
	numpySeed1 = []float64{0.417022004702574, 0.7203244934421581, 0.00011437481734488664, 0.30233257263183977}
)

var approx = cmpopts.EquateApprox(0, 1e-15)

// TestRandomArray_NumpyGolden locks the stream to numpy's legacy generator.
func TestRandomArray_NumpyGolden(t *testing.T) {
	t.Parallel()

	a0, err := synthetic.RandomArray(ndarray.Shape{2, 2})
	require.NoError(t, err)
	if diff := cmp.Diff(numpySeed0, a0.Data(), approx); diff != "" {
		t.Fatalf("seed 0 mismatch (-numpy +got):\n%s", diff)
	}

	a1, err := synthetic.RandomArray(ndarray.Shape{4}, synthetic.WithSeed(1))
	require.NoError(t, err)
	if diff := cmp.Diff(numpySeed1, a1.Data(), approx); diff != "" {
		t.Fatalf("seed 1 mismatch (-numpy +got):\n%s", diff)
	}
}

// TestRandomArray_Deterministic: identical arguments give bit-identical arrays.
func TestRandomArray_Deterministic(t *testing.T) {
	t.Parallel()

	shapes := []ndarray.Shape{{1}, {2, 2}, {3, 4, 5}}
	for _, sh := range shapes {
		opts := []synthetic.Option{synthetic.WithSeed(42), synthetic.WithScale(3), synthetic.WithOffset(-1)}
		a, err := synthetic.RandomArray(sh, opts...)
		require.NoError(t, err)
		_, err = synthetic.RandomArray(ndarray.Shape{7}, synthetic.WithSeed(9)) // unrelated call in between
		require.NoError(t, err)
		b, err := synthetic.RandomArray(sh, opts...)
		require.NoError(t, err)
		require.True(t, ndarray.Equal(a, b), "shape %v", sh)
	}
}

// TestRandomArray_SeedSensitivity: different seeds give different arrays.
func TestRandomArray_SeedSensitivity(t *testing.T) {
	t.Parallel()

	s0 := synthetic.MustRandomArray(ndarray.Shape{2, 2}, synthetic.WithSeed(0))
	s0b := synthetic.MustRandomArray(ndarray.Shape{2, 2}, synthetic.WithSeed(0))
	s1 := synthetic.MustRandomArray(ndarray.Shape{2, 2}, synthetic.WithSeed(1))
	require.True(t, ndarray.Equal(s0, s0b))
	require.False(t, ndarray.Equal(s0, s1))

	a := synthetic.MustRandomArray(ndarray.Shape{1000}, synthetic.WithSeed(123)).Data()
	b := synthetic.MustRandomArray(ndarray.Shape{1000}, synthetic.WithSeed(124)).Data()
	same := 0
	for i := range a {
		if a[i] == b[i] {
			same++
		}
	}
	assert.Less(t, same, 5, "streams for neighbouring seeds should not coincide")
}

// TestRandomArray_Range checks every element lies in [offset, offset+scale).
func TestRandomArray_Range(t *testing.T) {
	t.Parallel()

	cases := []struct {
		scale, offset float64
	}{
		{1, 0},
		{10, -5},
		{0.25, 100},
		{1e6, 3},
	}
	for _, tc := range cases {
		a, err := synthetic.RandomArray(ndarray.Shape{50, 40},
			synthetic.WithScale(tc.scale), synthetic.WithOffset(tc.offset), synthetic.WithSeed(7))
		require.NoError(t, err)
		for _, v := range a.Data() {
			require.GreaterOrEqual(t, v, tc.offset)
			require.Less(t, v, tc.offset+tc.scale)
		}
	}
}

// TestRandomArray_ScaleOffsetComposition: values are offset + scale*u for the same u.
func TestRandomArray_ScaleOffsetComposition(t *testing.T) {
	t.Parallel()

	u := synthetic.MustRandomArray(ndarray.Shape{6}, synthetic.WithSeed(5)).Data()
	v := synthetic.MustRandomArray(ndarray.Shape{6}, synthetic.WithSeed(5),
		synthetic.WithScale(10), synthetic.WithOffset(-5)).Data()
	for i := range u {
		require.Equal(t, -5+10*u[i], v[i])
	}
}

// TestRandomArray_Moments is a coarse uniformity check on [0,1):
// mean 0.5, standard deviation 1/sqrt(12) ≈ 0.288675.
func TestRandomArray_Moments(t *testing.T) {
	t.Parallel()

	x := synthetic.MustRandomArray(ndarray.Shape{20000}, synthetic.WithSeed(2024)).Data()
	mean, std := stat.MeanStdDev(x, nil)
	assert.InDelta(t, 0.5, mean, 0.01)
	assert.InDelta(t, 1/math.Sqrt(12), std, 0.005)
}

// TestRandomArray_Dtype casts after drawing.
func TestRandomArray_Dtype(t *testing.T) {
	t.Parallel()

	f := synthetic.MustRandomArray(ndarray.Shape{3, 3}, synthetic.WithScale(100), synthetic.WithSeed(3))
	i, err := synthetic.RandomArray(ndarray.Shape{3, 3}, synthetic.WithScale(100), synthetic.WithSeed(3),
		synthetic.WithDtype(ndarray.Int32))
	require.NoError(t, err)
	require.Equal(t, ndarray.Int32, i.Dtype())

	fd, id := f.Data(), i.Data()
	for k := range fd {
		require.Equal(t, math.Trunc(fd[k]), id[k])
	}

	ints, err := ndarray.Values[int32](i)
	require.NoError(t, err)
	require.Len(t, ints, 9)

	f32, err := synthetic.RandomArray(ndarray.Shape{2}, synthetic.WithDtype(ndarray.Float32))
	require.NoError(t, err)
	require.Equal(t, float64(float32(numpySeed0[0])), f32.Data()[0])
}

// TestRandomArray_CastOverflow: strict fails, saturate clamps.
func TestRandomArray_CastOverflow(t *testing.T) {
	t.Parallel()

	opts := []synthetic.Option{synthetic.WithScale(1000), synthetic.WithDtype(ndarray.Int8)}
	_, err := synthetic.RandomArray(ndarray.Shape{2, 2}, opts...)
	require.ErrorIs(t, err, synthetic.ErrCastOverflow)
	require.ErrorIs(t, err, ndarray.ErrCastOverflow)

	sat, err := synthetic.RandomArray(ndarray.Shape{2, 2}, append(opts, synthetic.WithCastPolicy(ndarray.CastSaturate))...)
	require.NoError(t, err)
	require.Equal(t, []float64{127, 127, 127, 127}, sat.Data())
}

// TestRandomArray_InvalidArguments covers the synchronous error classes.
func TestRandomArray_InvalidArguments(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		shape ndarray.Shape
		opts  []synthetic.Option
		want  error
	}{
		{"empty shape", ndarray.Shape{}, nil, synthetic.ErrBadShape},
		{"zero dim", ndarray.Shape{2, 0}, nil, synthetic.ErrBadShape},
		{"negative dim", ndarray.Shape{-3}, nil, synthetic.ErrBadShape},
		{"negative seed", ndarray.Shape{2}, []synthetic.Option{synthetic.WithSeed(-1)}, synthetic.ErrInvalidParameter},
		{"seed too large", ndarray.Shape{2}, []synthetic.Option{synthetic.WithSeed(1 << 32)}, synthetic.ErrInvalidParameter},
		{"NaN scale", ndarray.Shape{2}, []synthetic.Option{synthetic.WithScale(math.NaN())}, synthetic.ErrInvalidParameter},
		{"Inf offset", ndarray.Shape{2}, []synthetic.Option{synthetic.WithOffset(math.Inf(-1))}, synthetic.ErrInvalidParameter},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a, err := synthetic.RandomArray(tc.shape, tc.opts...)
			require.ErrorIs(t, err, tc.want)
			require.Nil(t, a)
		})
	}

	require.Panics(t, func() { synthetic.MustRandomArray(ndarray.Shape{0}) })
}

// TestRandomArray_SharedGenerator continues one stream across calls.
func TestRandomArray_SharedGenerator(t *testing.T) {
	t.Parallel()

	g, err := synthetic.NewGenerator(0)
	require.NoError(t, err)

	first := synthetic.MustRandomArray(ndarray.Shape{2}, synthetic.WithGenerator(g), synthetic.WithSeed(99))
	second := synthetic.MustRandomArray(ndarray.Shape{2}, synthetic.WithGenerator(g))

	got := append(first.Data(), second.Data()...)
	if diff := cmp.Diff(numpySeed0, got, approx); diff != "" {
		t.Fatalf("shared stream mismatch (-numpy +got):\n%s", diff)
	}
}

// TestRandomArray_Concurrent: per-call generators make concurrent use safe.
func TestRandomArray_Concurrent(t *testing.T) {
	t.Parallel()

	want := synthetic.MustRandomArray(ndarray.Shape{16, 16}, synthetic.WithSeed(77))

	const workers = 8
	results := make([]*ndarray.Array, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			results[w] = synthetic.MustRandomArray(ndarray.Shape{16, 16}, synthetic.WithSeed(77))
		}(w)
	}
	wg.Wait()

	for w, got := range results {
		require.True(t, ndarray.Equal(want, got), "worker %d diverged", w)
	}
}
