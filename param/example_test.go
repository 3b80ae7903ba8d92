package param_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/paramspace/param"
)

// ExampleParameter_CheckValue shows the data-style and error-style checks.
func ExampleParameter_CheckValue() {
	lr, _ := param.NewReal("lr", 0, 1, param.WithSpecialValues("auto"))

	fmt.Println(lr.Test(0.5), lr.Test("auto"))

	v := lr.CheckValue(2.0)
	fmt.Println(v.Kind, v)

	err := lr.Assert("fast")
	fmt.Println(errors.Is(err, param.ErrTypeViolation))

	// Output:
	// true true
	// BoundsViolation lr: element 2 is not in [0, 1]
	// true
}
