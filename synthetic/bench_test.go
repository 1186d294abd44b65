// SPDX-License-Identifier: MIT

package synthetic_test

import (
	"testing"

	"github.com/katalvlaran/synthdata/ndarray"
	"github.com/katalvlaran/synthdata/synthetic"
)

func BenchmarkRandomArray_256x256(b *testing.B) {
	shape := ndarray.Shape{256, 256}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := synthetic.RandomArray(shape, synthetic.WithSeed(int64(i&0xffff))); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGradient2D_256x256(b *testing.B) {
	shape := ndarray.Shape{256, 256}
	opts := []synthetic.Option{synthetic.WithFlipVertical(), synthetic.WithModulo(17), synthetic.WithDtype(ndarray.Int32)}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := synthetic.Gradient2D(shape, opts...); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGenerator_Fill(b *testing.B) {
	g, err := synthetic.NewGenerator(0)
	if err != nil {
		b.Fatal(err)
	}
	buf := make([]float64, 4096)
	b.SetBytes(int64(len(buf) * 8))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Fill(buf)
	}
}
