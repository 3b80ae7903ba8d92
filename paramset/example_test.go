package paramset_test

import (
	"fmt"

	"github.com/katalvlaran/paramspace/param"
	"github.com/katalvlaran/paramspace/paramset"
)

// ExampleParamSet_Check walks through a gated parameter.
func ExampleParamSet_Check() {
	booster, _ := param.NewCategorical("booster", []string{"gbtree", "gblinear"})
	depth, _ := param.NewInt("max_depth", 1, 20)

	ps, _ := paramset.New(booster, depth)
	_ = ps.AddDependency("max_depth", "booster", param.Equals("gbtree"))

	fmt.Println(ps.Check(paramset.Assignment{"booster": "gbtree", "max_depth": 6}) == nil)
	fmt.Println(ps.Check(paramset.Assignment{"booster": "gblinear"}) == nil)
	fmt.Println(ps.Check(paramset.Assignment{"booster": "gblinear", "max_depth": 6}))

	// Output:
	// true
	// true
	// max_depth: can only be set if booster == gbtree, but booster = gblinear
}
