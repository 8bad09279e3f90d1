package util

// Clamp limits v to the inclusive range [lo, hi].
//
// It assumes lo <= hi; the function does not validate the bounds.
func Clamp[T int | int8 | int16 | int32 | int64 | uint | uint8 | uint16 | uint32 | uint64 | float32 | float64](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
