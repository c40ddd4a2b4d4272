package osdep

import "math"

// Pow is powf for the VM's float opcodes. Some libm builds mishandle the
// special cases the Glulx spec pins down, so they are resolved here
// before delegating:
//
//	1^y      = 1 for any y, including NaN
//	x^(±0)   = 1 for any x, including NaN
//	(-1)^±Inf = 1
func Pow(x, y float32) float32 {
	switch {
	case x == 1.0:
		return 1.0
	case y == 0.0:
		return 1.0
	case x == -1.0 && math.IsInf(float64(y), 0):
		return 1.0
	}
	return float32(math.Pow(float64(x), float64(y)))
}
