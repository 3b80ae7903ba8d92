package sampler_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/paramspace/param"
	"github.com/katalvlaran/paramspace/paramset"
	"github.com/katalvlaran/paramspace/sampler"
)

// benchSet pairs 8 booleans with 8 reals, each real gated on its boolean.
func benchSet(b *testing.B) *paramset.ParamSet {
	b.Helper()
	ps, _ := paramset.New()
	for i := 0; i < 8; i++ {
		on, _ := param.NewBool(fmt.Sprintf("use%d", i))
		x, _ := param.NewReal(fmt.Sprintf("x%d", i), 0, 1)
		if err := ps.Add(on); err != nil {
			b.Fatal(err)
		}
		if err := ps.Add(x); err != nil {
			b.Fatal(err)
		}
		if err := ps.AddDependency(x.ID(), on.ID(), param.Equals(true)); err != nil {
			b.Fatal(err)
		}
	}
	return ps
}

// BenchmarkRandomDesign measures dependency-aware uniform sampling of 1000 rows.
func BenchmarkRandomDesign(b *testing.B) {
	ps := benchSet(b)
	s, err := sampler.NewUniform(ps, sampler.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Sample(1000); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkTruncNormal1D measures rejection sampling on a narrow window.
func BenchmarkTruncNormal1D(b *testing.B) {
	p, _ := param.NewReal("x", 0, 1)
	s, err := sampler.NewTruncNormal1D(p, 0.5, 1, sampler.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Draw(); err != nil {
			b.Fatal(err)
		}
	}
}
