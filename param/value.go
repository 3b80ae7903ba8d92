// SPDX-License-Identifier: MIT

package param

import (
	"fmt"
	"reflect"
)

// AsFloat converts any Go numeric value to float64. Booleans and strings are
// not numbers and report ok == false.
func AsFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	default:
		return 0, false
	}
}

// ValuesEqual compares two values. Numbers compare by magnitude regardless of
// their Go type, so int(1) equals float64(1); everything else uses reflect.DeepEqual.
func ValuesEqual(a, b any) bool {
	fa, okA := AsFloat(a)
	fb, okB := AsFloat(b)
	if okA && okB {
		return fa == fb
	}
	if okA != okB {
		return false
	}

	return reflect.DeepEqual(a, b)
}

// FormatValue renders a value for tabular exports.
func FormatValue(v any) string {
	if v == nil {
		return "<nil>"
	}
	if s, ok := v.(string); ok {
		return s
	}

	return fmt.Sprint(v)
}
