package design_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/paramspace/design"
	"github.com/katalvlaran/paramspace/param"
	"github.com/katalvlaran/paramspace/paramset"
)

// BenchmarkGrid measures enumeration of a 4-axis grid (10^4 rows).
func BenchmarkGrid(b *testing.B) {
	ps, _ := paramset.New()
	for i := 0; i < 4; i++ {
		p, _ := param.NewReal(fmt.Sprintf("x%d", i), 0, 1)
		_ = ps.Add(p)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := design.Grid(ps, 10); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkTranspose measures row → assignment conversion.
func BenchmarkTranspose(b *testing.B) {
	ps, _ := paramset.New()
	for i := 0; i < 3; i++ {
		p, _ := param.NewInt(fmt.Sprintf("k%d", i), 0, 20)
		_ = ps.Add(p)
	}
	d, _ := design.Grid(ps, 21)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = d.Transpose(false)
	}
}
