// SPDX-LICENSE-IDENTIFIER: GPL-2.0-Only
// (C) 2024 Author: <kisfg@hotmail.com>
package sm3

import "math/bits"

const (
	Size      = 32 // digest length in bytes
	BlockSize = 64 // compression block length in bytes
)

const (
	tLow  uint32 = 0x79CC4519 // rounds 0..15
	tHigh uint32 = 0x7A879D8A // rounds 16..63
)

// initialization vector of GB/T 32905-2016.
var iv = [8]uint32{
	0x7380166F, 0x4914B2B9, 0x172442D7, 0xDA8A0600,
	0xA96F30BC, 0x163138AA, 0xE38DEE4D, 0xB0FB0E4E,
}

/*
Round constants already rotated for their round.

	roundT[j] = T[j] <<< (j mod 32)

The shift wraps at 32, rounds 32..63 reuse shifts 0..31.
*/
var roundT [64]uint32

func init() {
	for j := range roundT {
		base := tHigh
		if j < 16 {
			base = tLow
		}
		roundT[j] = bits.RotateLeft32(base, j%32)
	}
}
