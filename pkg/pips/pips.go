package pips

import (
	"errors"
	"math/bits"
)

// Exponent is the canonical fixed-point exponent: canonical prices are
// expressed in pips, units of 10^-8 of the quote asset.
const Exponent = 8

// maxPow10 is the largest n for which 10^n fits a uint64.
const maxPow10 = 19

var pow10 = [maxPow10 + 1]uint64{
	1,
	10,
	100,
	1000,
	10000,
	100000,
	1000000,
	10000000,
	100000000,
	1000000000,
	10000000000,
	100000000000,
	1000000000000,
	10000000000000,
	100000000000000,
	1000000000000000,
	10000000000000000,
	100000000000000000,
	1000000000000000000,
	10000000000000000000,
}

var (
	// ErrNonPositiveMagnitude ...
	ErrNonPositiveMagnitude = errors.New("magnitude must be strictly positive")
	// ErrOverflow ...
	ErrOverflow = errors.New("price exceeds the canonical 64-bit width")
)

// Normalize converts a raw feed value magnitude×10^exponent into pips.
// Positive shifts multiply with overflow checking, negative shifts divide
// with floor semantics: sub-pip precision is truncated toward zero, so a
// strictly positive input may normalize to zero.
func Normalize(magnitude int64, exponent int32) (uint64, error) {
	if magnitude <= 0 {
		return 0, ErrNonPositiveMagnitude
	}
	mag := uint64(magnitude)

	shift := int(exponent) + Exponent
	if shift >= 0 {
		if shift > maxPow10 {
			return 0, ErrOverflow
		}
		hi, lo := bits.Mul64(mag, pow10[shift])
		if hi != 0 {
			return 0, ErrOverflow
		}
		return lo, nil
	}

	shift = -shift
	if shift > maxPow10 {
		// any int64 magnitude floors to zero beyond 10^19
		return 0, nil
	}
	return mag / pow10[shift], nil
}
