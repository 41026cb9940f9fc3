package buddy

import "math/bits"

// PowerOfTwoCeil returns the smallest power of two not less than n, with
// zero rounding to one. n must not exceed 1<<31, the largest power of two
// a 32-bit address space can hold.
func PowerOfTwoCeil(n uint32) uint32 {
	if n <= 1 {
		return 1
	}
	if n > 1<<31 {
		panic("buddy: size beyond 32-bit block range")
	}
	return uint32(1) << bits.Len32(n-1)
}

// log2 returns the exponent of a power of two.
func log2(v uint32) uint32 {
	return uint32(bits.Len32(v) - 1)
}
