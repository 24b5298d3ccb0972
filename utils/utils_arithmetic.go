// SPDX-LICENSE-IDENTIFIER: GPL-2.0-ONLY
// (C) 2024 Author: <kisfg@hotmail.com>
package utils

import (
	"fmt"
	"math/bits"
)

/*
compare whether two byte slices are the same.

	return true, `ok` if two bytesSlices are equal, otherwise return false with the reason.
*/
func CmpByte2Slices(a []byte, b []byte) (bool, string) {
	lena, lenb := len(a), len(b)
	if lena != lenb {
		return false, fmt.Sprintf(`unequal: differentLen found:(%d,%d)`, lena, lenb)
	}
	for idx, val := range a {
		if val != b[idx] {
			return false, fmt.Sprintf(`unequal: differentVal found at:%d`, idx)
		}
	}
	return true, `ok`
}

/*
count the bits that differ between two byte slices.

	slices of different length are compared over the shorter one,
	every byte of the tail counts as fully different.
*/
func HammingDistance(a []byte, b []byte) int {
	short, long := a, b
	if len(short) > len(long) {
		short, long = long, short
	}
	dist := 0
	for idx, val := range short {
		dist += bits.OnesCount8(val ^ long[idx])
	}
	return dist + (len(long)-len(short))<<3
}

// flip bit `pos` of inp in place, bit 0 is the least significant bit of inp[0].
func FlipBit(inp []byte, pos int) {
	inp[pos>>3] ^= 1 << (pos & 7)
}
